package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

var errStaleCallback = errors.New("stale callback")

// callbackFunc handles a callback and returns the screen that replaces the
// message, or nil to leave it, and a short toast for the user.
type callbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	cd := decodeCallback(cb.Data)

	var fn callbackFunc
	switch cd.Action {
	case actionCareers:
		fn = h.careersCallback
	case actionCareer:
		fn = h.careerCallback
	case actionBookmark:
		fn = h.bookmarkCallback
	case actionMedia:
		fn = h.mediaCallback
	case actionStories:
		fn = h.storiesCallback
	case actionResources:
		fn = h.resourcesCallback
	case actionAdmission:
		fn = h.admissionCallback
	case actionQuiz:
		fn = h.quizCallback
	case actionProfile:
		fn = h.profileCallback
	case actionFeedback:
		fn = h.feedbackCallback
	default:
		fn = func(context.Context, *tgbotapi.CallbackQuery, callbackData) (*view, string, error) {
			return nil, "", errStaleCallback
		}
	}

	v, toast, err := fn(ctx, cb, cd)
	if err != nil {
		toast = msgStaleCallbackAnswer
		if !errors.Is(err, errStaleCallback) {
			toast = userMessage(err)
			if toast == msgInternalError {
				h.logger.Error("callback error",
					zap.Int64("user_id", cb.From.ID),
					zap.String("data", cb.Data),
					zap.Error(err),
				)
			}
		}
	}

	if err == nil && v != nil && cb.Message != nil {
		_ = h.editView(cb.Message.Chat.ID, cb.Message.MessageID, *v)
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, toast)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func chatOf(cb *tgbotapi.CallbackQuery) (int64, error) {
	if cb.Message == nil {
		return 0, errStaleCallback
	}
	return cb.Message.Chat.ID, nil
}

func (h *Handler) careersCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	p, ok := parseCareersCallback(cd)
	if !ok {
		return nil, "", errStaleCallback
	}
	chatID, err := chatOf(cb)
	if err != nil {
		return nil, "", err
	}

	v := h.careersView(chatID, p)
	return &v, "", nil
}

// careerCallback sends career details as a new message and keeps the list.
func (h *Handler) careerCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	id, ok := cd.intParam(0)
	if !ok {
		return nil, "", errStaleCallback
	}
	chatID, err := chatOf(cb)
	if err != nil {
		return nil, "", err
	}

	v, err := h.careerView(id)
	if err != nil {
		return nil, "", err
	}
	return nil, "", h.sendView(chatID, v)
}

func (h *Handler) bookmarkCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	kind, ok := entities.ParseBookmarkKind(cd.param(0))
	if !ok {
		return nil, "", errStaleCallback
	}
	id, ok := cd.intParam(1)
	if !ok {
		return nil, "", errStaleCallback
	}

	added, err := h.bookmarkService.Toggle(ctx, cb.From.ID, kind, id)
	if err != nil {
		return nil, "", err
	}
	if added {
		return nil, msgBookmarkAdded, nil
	}
	return nil, msgBookmarkRemoved, nil
}

func (h *Handler) mediaCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	profile := entities.UserTypeNone
	if user, err := h.userService.Get(ctx, cb.From.ID); err == nil {
		profile = user.UserType
	}
	v := h.mediaView(profile, cd.param(0), cd.param(1))
	return &v, "", nil
}

func (h *Handler) storiesCallback(_ context.Context, _ *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	v := h.storiesView(cd.param(0))
	return &v, "", nil
}

func (h *Handler) resourcesCallback(_ context.Context, _ *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	v := h.resourcesView(cd.param(0))
	return &v, "", nil
}

func (h *Handler) admissionCallback(_ context.Context, _ *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	v := h.admissionsView(cd.param(0))
	return &v, "", nil
}

func (h *Handler) quizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	userID := cb.From.ID

	switch cd.param(0) {
	case quizStart:
		v := h.interestsView()
		return &v, "", nil

	case quizInterest:
		i, ok := cd.intParam(1)
		interests := h.quizService.Interests()
		if !ok || i < 0 || i >= len(interests) {
			return nil, "", errStaleCallback
		}
		p, err := h.quizService.Start(ctx, userID, interests[i])
		if err != nil {
			return nil, "", err
		}
		v, err := h.questionView(p)
		return &v, "", err

	case quizAnswer:
		questionID, ok1 := cd.intParam(1)
		opt, ok2 := cd.intParam(2)
		if !ok1 || !ok2 {
			return nil, "", errStaleCallback
		}
		out, err := h.quizService.Answer(ctx, userID, questionID, opt)
		if err != nil {
			return nil, "", err
		}
		if out.Finished() {
			v := h.resultView(out.Result)
			return &v, "", nil
		}
		v, err := h.questionView(out.Progress)
		return &v, "", err

	case quizBack:
		p, err := h.quizService.Back(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		v, err := h.questionView(p)
		return &v, "", err

	case quizCancel:
		if err := h.quizService.Cancel(ctx, userID); err != nil {
			return nil, "", err
		}
		return &view{Text: md(msgQuizCanceled)}, "", nil
	}

	return nil, "", errStaleCallback
}

func (h *Handler) profileCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	userID := cb.From.ID

	if cd.param(0) == profileClear {
		if err := h.userService.ClearProfile(ctx, userID); err != nil {
			return nil, "", err
		}
		return &view{Text: md(msgProfileCleared)}, "", nil
	}

	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	name := user.DisplayName
	if name == "" {
		name = cb.From.FirstName
	}

	if err := h.userService.SetProfile(ctx, userID, cd.param(0), name); err != nil {
		return nil, "", err
	}

	user, err = h.userService.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return &view{Text: renderWelcome(user)}, "", nil
}

func (h *Handler) feedbackCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (*view, string, error) {
	chatID, err := chatOf(cb)
	if err != nil {
		return nil, "", err
	}

	if cd.param(0) == feedbackCancel {
		h.state.ClearDraft(chatID)
		return &view{Text: md(msgFeedbackCanceled)}, "", nil
	}

	draft, ok := h.state.Draft(chatID)
	if !ok {
		return &view{Text: md(msgFeedbackNoDraft)}, "", nil
	}

	switch cd.param(0) {
	case feedbackCategory:
		draft.Form.Category = cd.param(1)
		draft.Step = stepRating
		h.state.SetDraft(chatID, draft)
		v := withKeyboard(md(msgFeedbackPickRating), buildFeedbackRatingKeyboard())
		return &v, "", nil

	case feedbackRating:
		rating, ok := cd.intParam(1)
		if !ok {
			return nil, "", errStaleCallback
		}
		draft.Form.Rating = rating
		draft.Step = stepMessage
		prompt := msgFeedbackAskMessage
		if draft.Form.Contact == "" {
			draft.Step = stepContact
			prompt = msgFeedbackAskContact
		}
		h.state.SetDraft(chatID, draft)
		return &view{Text: md(prompt)}, "", nil
	}

	return nil, "", errStaleCallback
}
