package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/storage"
)

// AnswerOutcome is the state after an answer. Result is set once the last
// question was answered and the quiz is finished.
type AnswerOutcome struct {
	Progress *entities.QuizProgress
	Result   *entities.QuizResult
}

// Finished reports whether the answer completed the quiz.
func (o AnswerOutcome) Finished() bool { return o.Result != nil }

// QuizService runs the personality quiz flow.
type QuizService struct {
	content  ContentProvider
	progress QuizProgressStore
	results  QuizResultRepository
	logger   *zap.Logger
}

func NewQuizService(
	content ContentProvider,
	progress QuizProgressStore,
	results QuizResultRepository,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		content:  content,
		progress: progress,
		results:  results,
		logger:   logger,
	}
}

// Questions returns the quiz questions in order.
func (s *QuizService) Questions() []quiz.Question {
	return s.content.Quiz().Questions
}

// Interests returns the fields of interest offered before the quiz.
func (s *QuizService) Interests() []string {
	return s.content.Quiz().Interests
}

// Outcome returns the presentation of a personality type.
func (s *QuizService) Outcome(c quiz.Category) entities.PersonalityType {
	return s.content.Quiz().Types[c]
}

// Score scores an answer set without touching any state.
func (s *QuizService) Score(answers quiz.Answers) quiz.Result {
	return quiz.Score(answers, s.Questions())
}

// Start begins a new quiz, discarding any unfinished one.
func (s *QuizService) Start(ctx context.Context, userID int64, interest string) (*entities.QuizProgress, error) {
	if !s.content.Quiz().HasInterest(interest) {
		return nil, fmt.Errorf("%q: %w", interest, ErrUnknownInterest)
	}

	p := entities.NewQuizProgress(userID, interest)
	if err := s.progress.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	s.logger.Info("quiz started", zap.Int64("user_id", userID), zap.String("interest", interest))
	return p, nil
}

// Current returns the user's unfinished quiz.
func (s *QuizService) Current(ctx context.Context, userID int64) (*entities.QuizProgress, error) {
	p, err := s.progress.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrProgressNotFound) {
			return nil, ErrNoActiveQuiz
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// CurrentQuestion returns the question p is positioned at.
func (s *QuizService) CurrentQuestion(p *entities.QuizProgress) (quiz.Question, bool) {
	questions := s.Questions()
	if p.Current < 0 || p.Current >= len(questions) {
		return quiz.Question{}, false
	}
	return questions[p.Current], true
}

// Answer records option for the current question and advances. Answering
// the last question scores the quiz, stores the result and clears progress.
func (s *QuizService) Answer(ctx context.Context, userID int64, questionID, option int) (*AnswerOutcome, error) {
	if option < 0 || option >= quiz.OptionsPerQuestion {
		return nil, fmt.Errorf("option %d: %w", option, ErrInvalidOption)
	}

	p, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	q, ok := s.CurrentQuestion(p)
	if !ok || q.ID != questionID {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrQuestionMismatch)
	}

	p.Answers[q.ID] = option
	p.Current++
	p.UpdatedAt = time.Now()

	if p.Current < len(s.Questions()) {
		if err := s.progress.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("save progress: %w", err)
		}
		return &AnswerOutcome{Progress: p}, nil
	}

	result, err := s.finish(ctx, p)
	if err != nil {
		return nil, err
	}
	return &AnswerOutcome{Progress: p, Result: result}, nil
}

// Back moves to the previous question. Answers are kept.
func (s *QuizService) Back(ctx context.Context, userID int64) (*entities.QuizProgress, error) {
	p, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.Current > 0 {
		p.Current--
		p.UpdatedAt = time.Now()
		if err := s.progress.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("save progress: %w", err)
		}
	}
	return p, nil
}

// Cancel drops the user's unfinished quiz.
func (s *QuizService) Cancel(ctx context.Context, userID int64) error {
	if err := s.progress.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

// LastResult returns the user's most recent finished quiz.
func (s *QuizService) LastResult(ctx context.Context, userID int64) (*entities.QuizResult, error) {
	res, err := s.results.GetLatestResult(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return nil, ErrNoResult
		}
		return nil, fmt.Errorf("get latest result: %w", err)
	}
	return res, nil
}

func (s *QuizService) finish(ctx context.Context, p *entities.QuizProgress) (*entities.QuizResult, error) {
	scored := quiz.Score(p.Answers, s.Questions())

	result := &entities.QuizResult{
		UserID:      p.UserID,
		Interest:    p.Interest,
		Counts:      scored.Counts,
		Primary:     scored.Primary,
		Answers:     p.Answers,
		CompletedAt: time.Now().UTC(),
	}

	id, err := s.results.SaveResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	result.ID = id

	if err := s.progress.Delete(ctx, p.UserID); err != nil {
		// The result is stored; a leftover progress entry only expires later.
		s.logger.Warn("failed to delete finished quiz progress",
			zap.Int64("user_id", p.UserID),
			zap.Error(err),
		)
	}

	s.logger.Info("quiz finished",
		zap.Int64("user_id", p.UserID),
		zap.String("primary", string(result.Primary)),
	)
	return result, nil
}
