//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
)

func startPostgres(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "compass",
			"POSTGRES_PASSWORD": "compass",
			"POSTGRES_DB":       "compass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pgC.Terminate(context.Background()))
	})

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://compass:compass@%s:%s/compass?sslmode=disable", host, port.Port())
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	// Migrations are idempotent.
	require.NoError(t, postgres.Migrate(ctx, pool))

	return pool
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(ctx, t)

	users := NewUserRepository(pool)
	bookmarks := NewBookmarkRepository(pool)
	results := NewQuizRepository(pool)
	feedback := NewFeedbackRepository(pool)

	t.Run("users", func(t *testing.T) {
		created, err := users.Save(ctx, entities.NewUser(1, 100))
		require.NoError(t, err)
		assert.True(t, created)

		created, err = users.Save(ctx, entities.NewUser(1, 101))
		require.NoError(t, err)
		assert.False(t, created)

		require.NoError(t, users.UpdateProfile(ctx, 1, entities.UserTypeStudent, "An"))

		u, err := users.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(101), u.ChatID)
		assert.Equal(t, entities.UserTypeStudent, u.UserType)
		assert.Equal(t, "An", u.DisplayName)

		_, err = users.GetByID(ctx, 2)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.ErrorIs(t, users.UpdateProfile(ctx, 2, entities.UserTypeNone, ""), ErrUserNotFound)
	})

	t.Run("bookmarks", func(t *testing.T) {
		added, err := bookmarks.Toggle(ctx, 1, entities.BookmarkCareer, 3)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = bookmarks.Toggle(ctx, 1, entities.BookmarkResource, 6)
		require.NoError(t, err)
		assert.True(t, added)

		list, err := bookmarks.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		added, err = bookmarks.Toggle(ctx, 1, entities.BookmarkCareer, 3)
		require.NoError(t, err)
		assert.False(t, added)

		list, err = bookmarks.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, entities.BookmarkResource, list[0].Kind)
	})

	t.Run("quiz results", func(t *testing.T) {
		_, err := results.GetLatestResult(ctx, 1)
		assert.ErrorIs(t, err, ErrResultNotFound)

		first := &entities.QuizResult{
			UserID:      1,
			Interest:    "Giáo dục và đào tạo",
			Counts:      map[quiz.Category]int{quiz.Analytical: 0, quiz.Creative: 1, quiz.Social: 4, quiz.Practical: 0},
			Primary:     quiz.Social,
			Answers:     quiz.Answers{1: 2, 2: 2, 3: 2, 4: 2, 5: 1},
			CompletedAt: time.Now().Add(-time.Hour).UTC(),
		}
		_, err = results.SaveResult(ctx, first)
		require.NoError(t, err)

		second := *first
		second.Primary = quiz.Creative
		second.CompletedAt = time.Now().UTC()
		id, err := results.SaveResult(ctx, &second)
		require.NoError(t, err)

		latest, err := results.GetLatestResult(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, id, latest.ID)
		assert.Equal(t, quiz.Creative, latest.Primary)
		assert.Equal(t, 4, latest.Counts[quiz.Social])
		assert.Equal(t, first.Answers, latest.Answers)
	})

	t.Run("feedback outbox", func(t *testing.T) {
		userID := int64(1)
		f := entities.NewFeedback(entities.FeedbackForm{
			UserID:   &userID,
			Name:     "An",
			Contact:  "@an_nguyen",
			Category: entities.FeedbackBug,
			Rating:   4,
			Message:  "Nút quay lại không hoạt động",
		})
		require.NoError(t, feedback.Create(ctx, f))

		transactor := postgres.NewTransactor(pool)

		err := transactor.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
			repo := feedback.WithTx(tx)

			pending, err := repo.ListUnpublished(ctx, 10)
			require.NoError(t, err)
			require.Len(t, pending, 1)
			assert.Equal(t, f.ID, pending[0].ID)
			assert.Equal(t, &userID, pending[0].UserID)

			return repo.MarkPublished(ctx, f.ID, time.Now().UTC())
		})
		require.NoError(t, err)

		pending, err := feedback.ListUnpublished(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("rollback", func(t *testing.T) {
		f := entities.NewFeedback(entities.FeedbackForm{
			Name: "Bình", Contact: "binh@example.com", Category: entities.FeedbackGeneral, Message: "Hay",
		})

		errAbort := errors.New("abort")
		err := postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
			require.NoError(t, feedback.WithTx(tx).Create(ctx, f))
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		pending, err := feedback.ListUnpublished(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}
