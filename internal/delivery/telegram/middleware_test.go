package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/career-compass-bot/internal/service"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("career 9: %w", service.ErrItemNotFound), msgItemNotFound},
		{service.ErrNoActiveQuiz, msgNoActiveQuiz},
		{fmt.Errorf("answer: %w", service.ErrQuestionMismatch), msgStaleQuestion},
		{service.ErrNoResult, msgNoResult},
		{fmt.Errorf("option 7: %w", service.ErrInvalidOption), msgStaleCallbackAnswer},
		{errors.New("connection refused"), msgInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, userMessage(tt.err), tt.err.Error())
	}
}

func TestUserMessageValidation(t *testing.T) {
	err := fmt.Errorf("submit: %w", &service.ValidationError{Fields: map[string]string{
		"message": "required",
		"email":   "required",
	}})

	text := userMessage(err)

	assert.Contains(t, text, "Email hoặc @username: required")
	assert.Contains(t, text, "Nội dung: required")
	assert.Less(t, strings.Index(text, "Email"), strings.Index(text, "Nội dung"))
}

