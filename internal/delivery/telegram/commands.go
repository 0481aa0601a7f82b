package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

// view is a rendered screen that can be sent as a new message or replace an existing one.
type view struct {
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

func withKeyboard(text string, kb tgbotapi.InlineKeyboardMarkup) view {
	return view{Text: text, Keyboard: &kb}
}

func (h *Handler) sendView(chatID int64, v view) error {
	msg := newMessage(chatID, v.Text)
	if v.Keyboard != nil {
		msg.ReplyMarkup = *v.Keyboard
	}
	return h.send(msg)
}

func (h *Handler) editView(chatID int64, messageID int, v view) error {
	edit := newEdit(chatID, messageID, v.Text)
	edit.ReplyMarkup = v.Keyboard
	return h.send(edit)
}

func (h *Handler) handleProfile(user *entities.User) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, withKeyboard(md(msgProfilePrompt), buildProfileKeyboard(user.UserType)))
	}
}

func (h *Handler) handleCareers(p careersPage) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, h.careersView(chatID, p))
	}
}

func (h *Handler) careersView(chatID int64, p careersPage) view {
	search := h.state.Search(chatID)
	careers := h.catalogService.Careers(catalog.Query{
		SearchText: search,
		Category:   p.Category,
		Sort:       p.Sort,
	})

	categories := h.catalogService.Categories()
	categoryName := ""
	for _, c := range categories {
		if c.ID == p.Category {
			categoryName = c.Name
		}
	}

	text, page, pages := renderCareersPage(careers, p, search, categoryName)
	p.Page = page
	return withKeyboard(text, buildCareersKeyboard(careers, p, pages, categories))
}

func (h *Handler) careerView(id int) (view, error) {
	c, err := h.catalogService.Career(id)
	if err != nil {
		return view{}, err
	}
	return withKeyboard(renderCareer(c), buildCareerKeyboard(c)), nil
}

// handleMedia shows media items for everyone. The user's profile only adds a hint.
func (h *Handler) handleMedia(user *entities.User, category, audience string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, h.mediaView(user.UserType, category, audience))
	}
}

func (h *Handler) mediaView(profile entities.UserType, category, audience string) view {
	if category == "" {
		category = catalog.All
	}

	if audience == "" {
		audience = catalog.All
	}

	items := h.catalogService.Media(catalog.Query{Category: category, Audience: audience})

	hint := ""
	if audience == catalog.All && profile != entities.UserTypeNone {
		hint = fmt.Sprintf(msgMediaProfileHint, profile.Label())
	}

	categories := h.mediaCategories()
	return withKeyboard(
		renderMedia(items, optionLabel(categories, category), audienceLabel(audience), hint),
		buildMediaKeyboard(categories, category, audience),
	)
}

// mediaCategories lists categories present in media content, in order of appearance.
func (h *Handler) mediaCategories() []option {
	names := make(map[string]string)
	for _, c := range h.catalogService.Categories() {
		names[c.ID] = c.Name
	}

	opts := []option{{Value: catalog.All, Label: "Tất cả"}}
	seen := make(map[string]bool)
	for _, m := range h.catalogService.Media(catalog.DefaultQuery()) {
		if m.Category == "" || seen[m.Category] {
			continue
		}
		seen[m.Category] = true

		label := names[m.Category]
		if label == "" {
			label = m.Category
		}
		opts = append(opts, option{Value: m.Category, Label: label})
	}
	return opts
}

func optionLabel(opts []option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func audienceLabel(audience string) string {
	if t, ok := entities.ParseUserType(audience); ok {
		return t.Label()
	}
	return "Mọi người"
}

func (h *Handler) handleStories(field string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, h.storiesView(field))
	}
}

func (h *Handler) storiesView(field string) view {
	if field == "" {
		field = catalog.All
	}

	fields := []option{{Value: catalog.All, Label: "Tất cả"}}
	for _, c := range h.catalogService.Categories() {
		fields = append(fields, option{Value: c.ID, Label: c.Name})
	}

	stories := h.catalogService.Stories(catalog.Query{Category: field})
	return withKeyboard(renderStories(stories, optionLabel(fields, field)), buildStoriesKeyboard(fields, field))
}

func (h *Handler) handleResources(kind string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, h.resourcesView(kind))
	}
}

func (h *Handler) resourcesView(kind string) view {
	if kind == "" {
		kind = entities.ResourceArticle
	}
	resources := h.catalogService.Resources(kind, "")
	return withKeyboard(renderResources(resources, kind), buildResourcesKeyboard(resources, kind))
}

func (h *Handler) handleAdmissions(section string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, h.admissionsView(section))
	}
}

func (h *Handler) admissionsView(section string) view {
	var text string
	switch section {
	case admissionAbroad:
		text = renderStudyAbroad(h.catalogService.StudyAbroad())
	case admissionInterview, admissionCV:
		text = renderTips(h.catalogService.Tips(), section)
	default:
		section = admissionMajors
		text = renderMajors(h.catalogService.Majors())
	}
	return withKeyboard(text, buildAdmissionsKeyboard(section))
}

// handleQuizStart resumes an unfinished quiz or asks for an interest to start a new one.
func (h *Handler) handleQuizStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		p, err := h.quizService.Current(ctx, userID)
		if errors.Is(err, service.ErrNoActiveQuiz) {
			return h.sendView(chatID, h.interestsView())
		}
		if err != nil {
			return err
		}

		v, err := h.questionView(p)
		if err != nil {
			return err
		}
		return h.sendView(chatID, v)
	}
}

func (h *Handler) interestsView() view {
	return withKeyboard(md(msgQuizPickInterest), buildInterestKeyboard(h.quizService.Interests()))
}

func (h *Handler) questionView(p *entities.QuizProgress) (view, error) {
	q, ok := h.quizService.CurrentQuestion(p)
	if !ok {
		return view{}, fmt.Errorf("progress of user %d points at question %d: %w", p.UserID, p.Current, service.ErrNoActiveQuiz)
	}

	selected, answered := p.Answers[q.ID]
	if !answered {
		selected = -1
	}

	total := len(h.quizService.Questions())
	return withKeyboard(
		renderQuizQuestion(q, p.Current, total, p.Interest),
		buildQuizAnswerKeyboard(q, selected, p.Current > 0),
	), nil
}

func (h *Handler) resultView(res *entities.QuizResult) view {
	return withKeyboard(renderQuizResult(res, h.quizService.Outcome), buildQuizResultKeyboard())
}

func (h *Handler) handleResult(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		res, err := h.quizService.LastResult(ctx, userID)
		if err != nil {
			return err
		}
		return h.sendView(chatID, h.resultView(res))
	}
}

func (h *Handler) handleBookmarks(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		list, err := h.bookmarkService.List(ctx, userID)
		if err != nil {
			return err
		}
		return h.sendView(chatID, view{Text: renderBookmarks(list)})
	}
}

func (h *Handler) handleFeedbackStart(user *entities.User, from *tgbotapi.User) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		userID := from.ID

		name := user.DisplayName
		if name == "" {
			name = strings.TrimSpace(from.FirstName + " " + from.LastName)
		}
		contact := ""
		if from.UserName != "" {
			contact = "@" + from.UserName
		}

		h.state.SetDraft(chatID, feedbackDraft{
			Step: stepCategory,
			Form: entities.FeedbackForm{
				UserID:  &userID,
				Name:    name,
				Contact: contact,
			},
		})

		return h.sendView(chatID, withKeyboard(md(msgFeedbackPickTopic), buildFeedbackCategoryKeyboard()))
	}
}

// handleFeedbackInput consumes a text message while a feedback draft is open.
func (h *Handler) handleFeedbackInput(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		draft, ok := h.state.Draft(chatID)
		if !ok {
			return h.send(newPlainMessage(chatID, msgFeedbackNoDraft))
		}

		switch draft.Step {
		case stepCategory:
			return h.sendView(chatID, withKeyboard(md(msgFeedbackPickTopic), buildFeedbackCategoryKeyboard()))

		case stepRating:
			return h.sendView(chatID, withKeyboard(md(msgFeedbackPickRating), buildFeedbackRatingKeyboard()))

		case stepContact:
			draft.Form.Contact = strings.TrimSpace(text)
			draft.Step = stepMessage
			h.state.SetDraft(chatID, draft)
			return h.send(newPlainMessage(chatID, msgFeedbackAskMessage))
		}

		draft.Form.Message = text
		f, err := h.feedbackService.Submit(ctx, draft.Form)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				if _, bad := verr.Fields["email"]; bad {
					draft.Step = stepContact
					h.state.SetDraft(chatID, draft)
				}
			}
			return err
		}

		h.state.ClearDraft(chatID)
		return h.sendView(chatID, view{Text: renderFeedbackReceived(f)})
	}
}
