package service

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	handlePattern = regexp.MustCompile(`^@[A-Za-z0-9_]{5,32}$`)
)

// ValidationError lists invalid form fields with a reason per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid feedback: " + strings.Join(parts, "; ")
}

// FeedbackValidator normalizes and checks feedback forms.
type FeedbackValidator struct {
	maxMessageLen int
}

// NewFeedbackValidator creates a new FeedbackValidator.
func NewFeedbackValidator() *FeedbackValidator {
	return &FeedbackValidator{
		maxMessageLen: 4000,
	}
}

// Validate returns the normalized form or a *ValidationError.
func (v *FeedbackValidator) Validate(form entities.FeedbackForm) (entities.FeedbackForm, error) {
	form.Name = v.normalize(form.Name)
	form.Contact = strings.TrimSpace(form.Contact)
	form.Category = strings.ToLower(strings.TrimSpace(form.Category))
	form.Message = strings.TrimSpace(form.Message)
	form.Suggestions = strings.TrimSpace(form.Suggestions)

	if form.Category == "" {
		form.Category = entities.FeedbackGeneral
	}

	fields := make(map[string]string)

	if form.Name == "" {
		fields["name"] = "required"
	}

	switch {
	case form.Contact == "":
		fields["email"] = "required"
	case !v.validContact(form.Contact):
		fields["email"] = "must be an email address or a Telegram @username"
	}

	if !slices.Contains(entities.FeedbackCategories, form.Category) {
		fields["category"] = "unknown category"
	}

	if form.Rating < 0 || form.Rating > 5 {
		fields["rating"] = "must be between 1 and 5"
	}

	switch {
	case form.Message == "":
		fields["message"] = "required"
	case len([]rune(form.Message)) > v.maxMessageLen:
		fields["message"] = "too long"
	}

	if len(fields) > 0 {
		return form, &ValidationError{Fields: fields}
	}
	return form, nil
}

func (v *FeedbackValidator) validContact(s string) bool {
	if strings.HasPrefix(s, "@") {
		return handlePattern.MatchString(s)
	}
	return emailPattern.MatchString(s)
}

// normalize trims the string and collapses inner whitespace.
func (v *FeedbackValidator) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
