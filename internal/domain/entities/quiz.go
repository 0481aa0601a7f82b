package entities

import (
	"time"

	"github.com/aliskhannn/career-compass-bot/internal/quiz"
)

// PersonalityType holds the presentation of one quiz outcome.
type PersonalityType struct {
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"` // suggested careers
}

// QuizContent is the static personality quiz definition.
type QuizContent struct {
	Questions []quiz.Question                   `json:"questions" yaml:"questions"`
	Interests []string                          `json:"interests" yaml:"interests"` // fields of interest offered before the quiz starts
	Types     map[quiz.Category]PersonalityType `json:"types" yaml:"types"`
}

// HasInterest reports whether interest is one of the offered interests.
func (c QuizContent) HasInterest(interest string) bool {
	for _, i := range c.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// QuizProgress is the in-flight state of a user's quiz.
type QuizProgress struct {
	UserID    int64        `json:"user_id"`
	Interest  string       `json:"interest"`
	Answers   quiz.Answers `json:"answers"`
	Current   int          `json:"current"` // index into the question list
	StartedAt time.Time    `json:"started_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewQuizProgress creates progress positioned at the first question.
func NewQuizProgress(userID int64, interest string) *QuizProgress {
	now := time.Now()
	return &QuizProgress{
		UserID:    userID,
		Interest:  interest,
		Answers:   make(quiz.Answers),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// QuizResult is a stored, scored quiz attempt.
type QuizResult struct {
	ID          int64
	UserID      int64
	Interest    string
	Counts      map[quiz.Category]int
	Primary     quiz.Category
	Answers     quiz.Answers
	CompletedAt time.Time
}
