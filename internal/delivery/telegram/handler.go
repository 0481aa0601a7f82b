package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
)

// chatStateTTL is how long an idle chat keeps its search text and feedback draft.
const chatStateTTL = 24 * time.Hour

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	userService     UserService
	catalogService  CatalogService
	quizService     QuizService
	bookmarkService BookmarkService
	feedbackService FeedbackService
	state           *ChatStateStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	catalogService CatalogService,
	quizService QuizService,
	bookmarkService BookmarkService,
	feedbackService FeedbackService,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		catalogService:  catalogService,
		quizService:     quizService,
		bookmarkService: bookmarkService,
		feedbackService: feedbackService,
		state:           NewChatStateStorage(chatStateTTL),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	user, err := h.userService.EnsureUser(ctx, from.ID, chatID)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	if update.Message.IsCommand() {
		args := update.Message.CommandArguments()

		switch update.Message.Command() {
		case "start":
			_ = h.send(newMessage(chatID, renderWelcome(user)))

		case "help":
			_ = h.send(newPlainMessage(chatID, msgHelp))

		case "profile":
			_ = h.withErrorHandling(h.handleProfile(user))(ctx, chatID)

		case "careers":
			h.state.SetSearch(chatID, args)
			_ = h.withErrorHandling(h.handleCareers(careersPage{Category: catalog.All}))(ctx, chatID)

		case "media":
			_ = h.withErrorHandling(h.handleMedia(user, "", ""))(ctx, chatID)

		case "stories":
			_ = h.withErrorHandling(h.handleStories(""))(ctx, chatID)

		case "resources":
			_ = h.withErrorHandling(h.handleResources(""))(ctx, chatID)

		case "admissions":
			_ = h.withErrorHandling(h.handleAdmissions(admissionMajors))(ctx, chatID)

		case "quiz":
			_ = h.withErrorHandling(h.handleQuizStart(from.ID))(ctx, chatID)

		case "result":
			_ = h.withErrorHandling(h.handleResult(from.ID))(ctx, chatID)

		case "bookmarks":
			_ = h.withErrorHandling(h.handleBookmarks(from.ID))(ctx, chatID)

		case "feedback":
			_ = h.withErrorHandling(h.handleFeedbackStart(user, from))(ctx, chatID)

		default:
			_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	if _, ok := h.state.Draft(chatID); ok {
		_ = h.withErrorHandling(h.handleFeedbackInput(update.Message.Text))(ctx, chatID)
		return
	}

	// Free text searches the career bank.
	h.state.SetSearch(chatID, update.Message.Text)
	_ = h.withErrorHandling(h.handleCareers(careersPage{Category: catalog.All}))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
