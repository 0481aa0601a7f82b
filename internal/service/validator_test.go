package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

func TestFeedbackValidatorNormalizes(t *testing.T) {
	v := NewFeedbackValidator()

	form, err := v.Validate(entities.FeedbackForm{
		Name:    "  Lan   Anh ",
		Contact: " lan@example.com ",
		Message: "  Cảm ơn!  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lan Anh", form.Name)
	assert.Equal(t, "lan@example.com", form.Contact)
	assert.Equal(t, entities.FeedbackGeneral, form.Category)
	assert.Equal(t, "Cảm ơn!", form.Message)
}

func TestFeedbackValidatorContact(t *testing.T) {
	v := NewFeedbackValidator()

	tests := []struct {
		contact string
		valid   bool
	}{
		{"user@example.com", true},
		{"@career_fan", true},
		{"@abc", false},
		{"user@", false},
		{"user example.com", false},
		{"not-an-email", false},
	}

	for _, tt := range tests {
		t.Run(tt.contact, func(t *testing.T) {
			_, err := v.Validate(entities.FeedbackForm{Name: "A", Contact: tt.contact, Message: "m"})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, "email")
		})
	}
}

func TestFeedbackValidatorAggregatesFields(t *testing.T) {
	v := NewFeedbackValidator()

	_, err := v.Validate(entities.FeedbackForm{Category: "spam", Rating: 6})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
	for _, field := range []string{"name", "email", "category", "rating", "message"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.Contains(t, err.Error(), "category: unknown category")
}

func TestFeedbackValidatorRating(t *testing.T) {
	v := NewFeedbackValidator()
	base := entities.FeedbackForm{Name: "A", Contact: "a@b.co", Message: "m"}

	for _, rating := range []int{0, 1, 5} {
		form := base
		form.Rating = rating
		_, err := v.Validate(form)
		assert.NoError(t, err, rating)
	}

	form := base
	form.Rating = -1
	_, err := v.Validate(form)
	assert.Error(t, err)
}
