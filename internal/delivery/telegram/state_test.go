package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

func TestChatStateSearch(t *testing.T) {
	s := NewChatStateStorage(time.Hour)

	assert.Empty(t, s.Search(1))

	s.SetSearch(1, "kỹ sư")
	assert.Equal(t, "kỹ sư", s.Search(1))
	assert.Empty(t, s.Search(2))
}

func TestChatStateDraft(t *testing.T) {
	s := NewChatStateStorage(time.Hour)

	_, ok := s.Draft(1)
	assert.False(t, ok)

	s.SetSearch(1, "bác sĩ")
	s.SetDraft(1, feedbackDraft{Step: stepRating, Form: entities.FeedbackForm{Name: "An"}})

	d, ok := s.Draft(1)
	require.True(t, ok)
	assert.Equal(t, stepRating, d.Step)
	assert.Equal(t, "An", d.Form.Name)

	// Modifying the copy does not touch the stored draft.
	d.Step = stepMessage
	stored, _ := s.Draft(1)
	assert.Equal(t, stepRating, stored.Step)

	s.ClearDraft(1)
	_, ok = s.Draft(1)
	assert.False(t, ok)
	assert.Equal(t, "bác sĩ", s.Search(1))
}

func TestChatStateDropsEmptyEntries(t *testing.T) {
	s := NewChatStateStorage(time.Hour)

	s.SetSearch(1, "kỹ sư")
	s.SetDraft(2, feedbackDraft{Step: stepCategory})
	assert.Len(t, s.states, 2)

	s.SetSearch(1, "")
	s.ClearDraft(2)
	assert.Empty(t, s.states)
}

func TestChatStateExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewChatStateStorage(time.Hour)
	s.now = func() time.Time { return now }

	s.SetSearch(1, "bác sĩ")
	s.SetDraft(2, feedbackDraft{Step: stepMessage})

	now = now.Add(30 * time.Minute)
	assert.Equal(t, "bác sĩ", s.Search(1))

	now = now.Add(2 * time.Hour)
	assert.Empty(t, s.Search(1))
	_, ok := s.Draft(2)
	assert.False(t, ok)

	// The next write sweeps both idle chats.
	s.SetSearch(3, "giáo viên")
	assert.Len(t, s.states, 1)
	assert.Equal(t, "giáo viên", s.Search(3))
}
