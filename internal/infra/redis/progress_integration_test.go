//go:build integration

package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/storage"
)

func startRedis(ctx context.Context, t *testing.T) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, redisC.Terminate(context.Background()))
	})

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestProgressStore(t *testing.T) {
	ctx := context.Background()

	rdb, err := NewClient(ctx, startRedis(ctx, t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewProgressStore(rdb, time.Hour)

	_, err = store.Get(ctx, 7)
	assert.ErrorIs(t, err, storage.ErrProgressNotFound)

	p := entities.NewQuizProgress(7, "Kinh doanh và quản lý")
	p.Answers[1] = 3
	p.Current = 1
	require.NoError(t, store.Save(ctx, p))

	got, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, p.Interest, got.Interest)
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 3, got.Answers[1])

	ttl, err := rdb.TTL(ctx, progressKey(7)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, store.Delete(ctx, 7))
	_, err = store.Get(ctx, 7)
	assert.ErrorIs(t, err, storage.ErrProgressNotFound)
}
