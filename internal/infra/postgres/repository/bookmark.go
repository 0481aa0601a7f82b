package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres"
)

// BookmarkRepository stores saved careers and resources.
type BookmarkRepository struct {
	db postgres.DBTX
}

func NewBookmarkRepository(db postgres.DBTX) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Toggle removes the bookmark if it exists and adds it otherwise.
// It reports whether the bookmark exists afterwards.
func (r *BookmarkRepository) Toggle(ctx context.Context, userID int64, kind entities.BookmarkKind, itemID int) (bool, error) {
	deleted, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND kind = $2 AND item_id = $3`,
		userID, string(kind), itemID,
	)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	if deleted.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO bookmarks (user_id, kind, item_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT DO NOTHING
	`, userID, string(kind), itemID)
	if err != nil {
		return false, fmt.Errorf("insert bookmark: %w", err)
	}

	return true, nil
}

// ListByUser returns the user's bookmarks, newest first.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]entities.Bookmark, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, kind, item_id, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC, item_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []entities.Bookmark
	for rows.Next() {
		var b entities.Bookmark
		if err := rows.Scan(&b.UserID, &b.Kind, &b.ItemID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}

	return bookmarks, nil
}
