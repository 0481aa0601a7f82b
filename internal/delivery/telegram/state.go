package telegram

import (
	"sync"
	"time"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

// feedbackStep is the next input a feedback draft waits for.
type feedbackStep int

const (
	stepCategory feedbackStep = iota
	stepRating
	stepContact
	stepMessage
)

// feedbackDraft collects a feedback form across several updates.
type feedbackDraft struct {
	Step feedbackStep
	Form entities.FeedbackForm
}

// chatState is the per-chat conversation state.
type chatState struct {
	Search    string
	Feedback  *feedbackDraft
	UpdatedAt time.Time
}

func (st chatState) empty() bool {
	return st.Search == "" && st.Feedback == nil
}

// ChatStateStorage keeps conversation state in memory by chat ID.
// States idle for longer than ttl are treated as missing. Writes drop
// empty states and sweep expired ones at most once per ttl.
type ChatStateStorage struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	states    map[int64]chatState
}

// NewChatStateStorage creates a new ChatStateStorage.
func NewChatStateStorage(ttl time.Duration) *ChatStateStorage {
	return &ChatStateStorage{
		ttl:    ttl,
		now:    time.Now,
		states: make(map[int64]chatState),
	}
}

// Search returns the careers search text of the chat.
func (s *ChatStateStorage) Search(chatID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(chatID).Search
}

// SetSearch stores the careers search text of the chat.
func (s *ChatStateStorage) SetSearch(chatID int64, text string) {
	s.update(chatID, func(st *chatState) { st.Search = text })
}

// Draft returns a copy of the chat's feedback draft.
func (s *ChatStateStorage) Draft(chatID int64) (feedbackDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.get(chatID).Feedback
	if d == nil {
		return feedbackDraft{}, false
	}
	return *d, true
}

// SetDraft stores the chat's feedback draft.
func (s *ChatStateStorage) SetDraft(chatID int64, d feedbackDraft) {
	s.update(chatID, func(st *chatState) { st.Feedback = &d })
}

// ClearDraft removes the chat's feedback draft.
func (s *ChatStateStorage) ClearDraft(chatID int64) {
	s.update(chatID, func(st *chatState) { st.Feedback = nil })
}

// get must be called with s.mu held.
func (s *ChatStateStorage) get(chatID int64) chatState {
	st, ok := s.states[chatID]
	if !ok || s.expired(st) {
		return chatState{}
	}
	return st
}

func (s *ChatStateStorage) update(chatID int64, fn func(st *chatState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.ttl > 0 && now.Sub(s.lastSweep) > s.ttl {
		s.sweep()
		s.lastSweep = now
	}

	st := s.get(chatID)
	fn(&st)
	if st.empty() {
		delete(s.states, chatID)
		return
	}
	st.UpdatedAt = now
	s.states[chatID] = st
}

// sweep must be called with s.mu held.
func (s *ChatStateStorage) sweep() int {
	removed := 0
	for id, st := range s.states {
		if s.expired(st) {
			delete(s.states, id)
			removed++
		}
	}
	return removed
}

func (s *ChatStateStorage) expired(st chatState) bool {
	return s.ttl > 0 && s.now().Sub(st.UpdatedAt) > s.ttl
}
