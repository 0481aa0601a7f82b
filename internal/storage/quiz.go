package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

var ErrProgressNotFound = errors.New("quiz progress not found")

// QuizProgressStorage keeps unfinished quizzes in memory by user ID.
// Entries older than ttl are treated as missing and removed by Sweep.
type QuizProgressStorage struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	progress map[int64]entities.QuizProgress
}

// NewQuizProgressStorage creates a new QuizProgressStorage.
func NewQuizProgressStorage(ttl time.Duration) *QuizProgressStorage {
	return &QuizProgressStorage{
		ttl:      ttl,
		now:      time.Now,
		progress: make(map[int64]entities.QuizProgress),
	}
}

// Save stores a copy of p.
func (s *QuizProgressStorage) Save(_ context.Context, p *entities.QuizProgress) error {
	cp := *p
	cp.Answers = make(map[int]int, len(p.Answers))
	for k, v := range p.Answers {
		cp.Answers[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[p.UserID] = cp
	return nil
}

// Get returns the user's progress.
func (s *QuizProgressStorage) Get(_ context.Context, userID int64) (*entities.QuizProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[userID]
	if !ok || s.expired(p) {
		return nil, ErrProgressNotFound
	}

	cp := p
	cp.Answers = make(map[int]int, len(p.Answers))
	for k, v := range p.Answers {
		cp.Answers[k] = v
	}
	return &cp, nil
}

// Delete removes the user's progress.
func (s *QuizProgressStorage) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.progress, userID)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *QuizProgressStorage) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, p := range s.progress {
		if s.expired(p) {
			delete(s.progress, id)
			removed++
		}
	}
	return removed, nil
}

func (s *QuizProgressStorage) expired(p entities.QuizProgress) bool {
	return s.ttl > 0 && s.now().Sub(p.UpdatedAt) > s.ttl
}
