package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres"
)

// FeedbackRepository stores feedback and tracks which entries were published.
type FeedbackRepository struct {
	db postgres.DBTX
}

func NewFeedbackRepository(db postgres.DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *FeedbackRepository) WithTx(tx postgres.DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: tx}
}

// Create inserts a feedback entry.
func (r *FeedbackRepository) Create(ctx context.Context, f *entities.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, name, contact, category, rating, message, suggestions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		f.ID, f.UserID, f.Name, f.Contact, f.Category, f.Rating, f.Message, f.Suggestions, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

// MarkPublished records the time the entry reached the broker.
func (r *FeedbackRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE feedback SET published_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("mark feedback published: %w", err)
	}
	return nil
}

// ListUnpublished locks up to limit unpublished entries, oldest first.
// Rows locked by another relay are skipped.
func (r *FeedbackRepository) ListUnpublished(ctx context.Context, limit int) ([]*entities.Feedback, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, contact, category, rating, message, suggestions, created_at
		FROM feedback
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list unpublished feedback: %w", err)
	}
	defer rows.Close()

	var out []*entities.Feedback
	for rows.Next() {
		var f entities.Feedback
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.Name, &f.Contact, &f.Category,
			&f.Rating, &f.Message, &f.Suggestions, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}

	return out, nil
}
