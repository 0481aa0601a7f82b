package httpapi

import (
	"context"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
)

type CatalogService interface {
	Careers(q catalog.Query) []entities.Career
	Career(id int) (entities.Career, error)
	Categories() []entities.CareerCategory
	Media(q catalog.Query) []entities.MediaItem
	Stories(q catalog.Query) []entities.Story
	Resources(kind, search string) []entities.Resource
}

type QuizService interface {
	Questions() []quiz.Question
	Interests() []string
	Outcome(c quiz.Category) entities.PersonalityType
	Score(answers quiz.Answers) quiz.Result
}

type FeedbackService interface {
	Submit(ctx context.Context, form entities.FeedbackForm) (*entities.Feedback, error)
}
