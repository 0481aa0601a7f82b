package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

// FeedbackService stores feedback and publishes it to the broker.
type FeedbackService struct {
	repo      FeedbackRepository
	withTx    FeedbackTxFunc
	publisher FeedbackPublisher
	validator *FeedbackValidator
	logger    *zap.Logger
}

// NewFeedbackService creates a new feedback service. publisher may be nil,
// in which case feedback is only stored. withTx may be nil, in which case
// the relay works on repo directly.
func NewFeedbackService(
	repo FeedbackRepository,
	withTx FeedbackTxFunc,
	publisher FeedbackPublisher,
	logger *zap.Logger,
) *FeedbackService {
	if withTx == nil {
		withTx = func(ctx context.Context, fn func(ctx context.Context, repo FeedbackRepository) error) error {
			return fn(ctx, repo)
		}
	}

	return &FeedbackService{
		repo:      repo,
		withTx:    withTx,
		publisher: publisher,
		validator: NewFeedbackValidator(),
		logger:    logger,
	}
}

// Submit validates and stores form. A failed publish is left to the relay.
func (s *FeedbackService) Submit(ctx context.Context, form entities.FeedbackForm) (*entities.Feedback, error) {
	form, err := s.validator.Validate(form)
	if err != nil {
		return nil, err
	}

	f := entities.NewFeedback(form)
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.logger.Info("feedback received",
		zap.String("feedback_id", f.ID.String()),
		zap.String("category", f.Category),
	)

	if s.publisher == nil {
		return f, nil
	}

	if err := s.publish(ctx, s.repo, f); err != nil {
		s.logger.Warn("feedback publish deferred to relay",
			zap.String("feedback_id", f.ID.String()),
			zap.Error(err),
		)
	}

	return f, nil
}

// RelayPending publishes up to limit stored but unpublished entries and
// returns how many were published. It stops at the first publish failure.
func (s *FeedbackService) RelayPending(ctx context.Context, limit int) (int, error) {
	if s.publisher == nil {
		return 0, nil
	}

	published := 0
	var publishErr error

	err := s.withTx(ctx, func(ctx context.Context, repo FeedbackRepository) error {
		pending, err := repo.ListUnpublished(ctx, limit)
		if err != nil {
			return fmt.Errorf("list unpublished: %w", err)
		}

		for _, f := range pending {
			if err := s.publish(ctx, repo, f); err != nil {
				// Keep what was already marked.
				publishErr = err
				return nil
			}
			published++
		}
		return nil
	})
	if err != nil {
		return published, err
	}

	return published, publishErr
}

func (s *FeedbackService) publish(ctx context.Context, repo FeedbackRepository, f *entities.Feedback) error {
	if err := s.publisher.PublishFeedback(ctx, f); err != nil {
		return fmt.Errorf("publish feedback: %w", err)
	}

	now := time.Now().UTC()
	if err := repo.MarkPublished(ctx, f.ID, now); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	f.PublishedAt = &now
	return nil
}
