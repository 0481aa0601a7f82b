package telegram

import (
	"context"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (*entities.User, error)
	Get(ctx context.Context, userID int64) (*entities.User, error)
	SetProfile(ctx context.Context, userID int64, userType, name string) error
	ClearProfile(ctx context.Context, userID int64) error
}

type CatalogService interface {
	Careers(q catalog.Query) []entities.Career
	Career(id int) (entities.Career, error)
	Categories() []entities.CareerCategory
	Media(q catalog.Query) []entities.MediaItem
	Stories(q catalog.Query) []entities.Story
	Resources(kind, search string) []entities.Resource
	Majors() []entities.Major
	StudyAbroad() []entities.StudyAbroadProgram
	Tips() []entities.TipSection
}

type QuizService interface {
	Interests() []string
	Questions() []quiz.Question
	Outcome(c quiz.Category) entities.PersonalityType
	Start(ctx context.Context, userID int64, interest string) (*entities.QuizProgress, error)
	Current(ctx context.Context, userID int64) (*entities.QuizProgress, error)
	CurrentQuestion(p *entities.QuizProgress) (quiz.Question, bool)
	Answer(ctx context.Context, userID int64, questionID, option int) (*service.AnswerOutcome, error)
	Back(ctx context.Context, userID int64) (*entities.QuizProgress, error)
	Cancel(ctx context.Context, userID int64) error
	LastResult(ctx context.Context, userID int64) (*entities.QuizResult, error)
}

type BookmarkService interface {
	Toggle(ctx context.Context, userID int64, kind entities.BookmarkKind, itemID int) (bool, error)
	List(ctx context.Context, userID int64) (*service.BookmarkList, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, form entities.FeedbackForm) (*entities.Feedback, error)
}
