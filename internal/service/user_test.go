package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

func TestUserServiceProfile(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(&fakeUsers{users: make(map[int64]*entities.User)}, zap.NewNop())

	u, err := s.EnsureUser(ctx, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, entities.UserTypeNone, u.UserType)

	require.NoError(t, s.SetProfile(ctx, 10, "postgraduate", "  Thu   Hà "))
	u, err = s.EnsureUser(ctx, 10, 101)
	require.NoError(t, err)
	assert.Equal(t, entities.UserTypePostgraduate, u.UserType)
	assert.Equal(t, "Thu Hà", u.DisplayName)
	assert.Equal(t, int64(101), u.ChatID)

	err = s.SetProfile(ctx, 10, "astronaut", "")
	assert.ErrorIs(t, err, ErrInvalidUserType)

	require.NoError(t, s.ClearProfile(ctx, 10))
	u, err = s.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, entities.UserTypeNone, u.UserType)
	assert.Empty(t, u.DisplayName)
}

func TestUserServiceUnknownUser(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(&fakeUsers{users: make(map[int64]*entities.User)}, zap.NewNop())

	_, err := s.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = s.SetProfile(ctx, 5, "student", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
