package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

// ContentProvider gives read access to the static portal content.
type ContentProvider interface {
	Careers() []entities.Career
	CareerByID(id int) (entities.Career, error)
	Categories() []entities.CareerCategory
	Media() []entities.MediaItem
	Stories() []entities.Story
	Resources() []entities.Resource
	ResourceByID(id int) (entities.Resource, error)
	Majors() []entities.Major
	StudyAbroad() []entities.StudyAbroadProgram
	Tips() []entities.TipSection
	Quiz() entities.QuizContent
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID int64, userType entities.UserType, name string) error
}

type BookmarkRepository interface {
	Toggle(ctx context.Context, userID int64, kind entities.BookmarkKind, itemID int) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Bookmark, error)
}

type QuizResultRepository interface {
	SaveResult(ctx context.Context, result *entities.QuizResult) (int64, error)
	GetLatestResult(ctx context.Context, userID int64) (*entities.QuizResult, error)
}

// QuizProgressStore keeps unfinished quizzes. Get returns storage.ErrProgressNotFound
// when the user has none.
type QuizProgressStore interface {
	Save(ctx context.Context, p *entities.QuizProgress) error
	Get(ctx context.Context, userID int64) (*entities.QuizProgress, error)
	Delete(ctx context.Context, userID int64) error
}

// ProgressSweeper removes expired quiz progress.
type ProgressSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *entities.Feedback) error
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
	ListUnpublished(ctx context.Context, limit int) ([]*entities.Feedback, error)
}

// FeedbackPublisher delivers feedback events to the message broker.
type FeedbackPublisher interface {
	PublishFeedback(ctx context.Context, f *entities.Feedback) error
}

// FeedbackTxFunc runs fn with a feedback repository bound to one transaction.
type FeedbackTxFunc func(ctx context.Context, fn func(ctx context.Context, repo FeedbackRepository) error) error
