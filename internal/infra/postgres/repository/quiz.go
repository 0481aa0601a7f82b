package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres"
)

var ErrResultNotFound = errors.New("quiz result not found")

// QuizRepository stores scored quiz attempts.
type QuizRepository struct {
	db postgres.DBTX
}

// NewQuizRepository creates a new QuizRepository with the provided database pool.
func NewQuizRepository(db postgres.DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// SaveResult inserts a result and returns its ID.
func (r *QuizRepository) SaveResult(ctx context.Context, result *entities.QuizResult) (int64, error) {
	query := `
		INSERT INTO quiz_results (user_id, interest, counts, answers, primary_type, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		result.UserID,
		result.Interest,
		result.Counts,
		result.Answers,
		string(result.Primary),
		result.CompletedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save quiz result: %w", err)
	}

	return id, nil
}

// GetLatestResult returns the user's most recent result.
func (r *QuizRepository) GetLatestResult(ctx context.Context, userID int64) (*entities.QuizResult, error) {
	query := `
		SELECT id, user_id, interest, counts, answers, primary_type, completed_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY completed_at DESC, id DESC
		LIMIT 1
	`

	var res entities.QuizResult
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&res.ID,
		&res.UserID,
		&res.Interest,
		&res.Counts,
		&res.Answers,
		&res.Primary,
		&res.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("get latest quiz result: %w", err)
	}

	return &res, nil
}
