package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/storage"
)

// NewClient parses url and checks the connection.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// ProgressStore keeps unfinished quizzes in Redis as JSON with a TTL.
type ProgressStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewProgressStore creates a ProgressStore. Every Save refreshes the TTL.
func NewProgressStore(rdb redis.Cmdable, ttl time.Duration) *ProgressStore {
	return &ProgressStore{rdb: rdb, ttl: ttl}
}

func progressKey(userID int64) string {
	return fmt.Sprintf("quiz:%d:progress", userID)
}

// Save stores the progress.
func (s *ProgressStore) Save(ctx context.Context, p *entities.QuizProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	if err := s.rdb.Set(ctx, progressKey(p.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Get returns the user's progress or storage.ErrProgressNotFound.
func (s *ProgressStore) Get(ctx context.Context, userID int64) (*entities.QuizProgress, error) {
	raw, err := s.rdb.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrProgressNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}

	var p entities.QuizProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	if p.Answers == nil {
		p.Answers = make(map[int]int)
	}
	return &p, nil
}

// Delete removes the user's progress.
func (s *ProgressStore) Delete(ctx context.Context, userID int64) error {
	if err := s.rdb.Del(ctx, progressKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
