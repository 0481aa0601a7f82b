package entities

import (
	"time"

	"github.com/google/uuid"
)

// Feedback categories.
const (
	FeedbackGeneral = "general"
	FeedbackFeature = "feature"
	FeedbackBug     = "bug"
	FeedbackContent = "content"
	FeedbackUI      = "ui"
)

// FeedbackCategories lists categories in display order.
var FeedbackCategories = []string{FeedbackGeneral, FeedbackFeature, FeedbackBug, FeedbackContent, FeedbackUI}

// FeedbackForm is the raw user input of a feedback submission.
type FeedbackForm struct {
	UserID      *int64 `json:"-"`
	Name        string `json:"name"`
	Contact     string `json:"email"` // email address or Telegram handle
	Category    string `json:"category"`
	Rating      int    `json:"rating"` // 0 when not given, otherwise 1..5
	Message     string `json:"message"`
	Suggestions string `json:"suggestions"`
}

// Feedback is a validated, stored feedback entry.
type Feedback struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *int64     `json:"user_id,omitempty"`
	Name        string     `json:"name"`
	Contact     string     `json:"contact"`
	Category    string     `json:"category"`
	Rating      int        `json:"rating,omitempty"`
	Message     string     `json:"message"`
	Suggestions string     `json:"suggestions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"-"`
}

// NewFeedback creates a feedback entry from a validated form.
func NewFeedback(form FeedbackForm) *Feedback {
	return &Feedback{
		ID:          uuid.New(),
		UserID:      form.UserID,
		Name:        form.Name,
		Contact:     form.Contact,
		Category:    form.Category,
		Rating:      form.Rating,
		Message:     form.Message,
		Suggestions: form.Suggestions,
		CreatedAt:   time.Now().UTC(),
	}
}
