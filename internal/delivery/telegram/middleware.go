package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler errors and replies with a message the user can act on.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			text := userMessage(err)
			if text == msgInternalError {
				h.logger.Error("handle error",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}
			h.sendError(chatID, text)
			return nil
		}
		return nil
	}
}

// userMessage maps service errors to replies.
func userMessage(err error) string {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return renderValidationError(verr)
	case errors.Is(err, service.ErrItemNotFound):
		return msgItemNotFound
	case errors.Is(err, service.ErrNoActiveQuiz):
		return msgNoActiveQuiz
	case errors.Is(err, service.ErrQuestionMismatch):
		return msgStaleQuestion
	case errors.Is(err, service.ErrNoResult):
		return msgNoResult
	case errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, service.ErrInvalidUserType),
		errors.Is(err, service.ErrUnknownInterest):
		return msgStaleCallbackAnswer
	default:
		return msgInternalError
	}
}

var validationFieldLabels = map[string]string{
	"name":     "Họ tên",
	"email":    "Email hoặc @username",
	"category": "Chủ đề",
	"rating":   "Đánh giá",
	"message":  "Nội dung",
}

func renderValidationError(verr *service.ValidationError) string {
	text := "Phản hồi chưa hợp lệ:"
	for _, field := range []string{"name", "email", "category", "rating", "message"} {
		if reason, ok := verr.Fields[field]; ok {
			text += "\n• " + validationFieldLabels[field] + ": " + reason
		}
	}
	return text
}
