package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

func TestBookmarkServiceToggle(t *testing.T) {
	ctx := context.Background()
	s := NewBookmarkService(&fakeBookmarks{clock: time.Now()}, newFakeContent())

	added, err := s.Toggle(ctx, 1, entities.BookmarkCareer, 2)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Toggle(ctx, 1, entities.BookmarkCareer, 2)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = s.Toggle(ctx, 1, entities.BookmarkCareer, 99)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.Toggle(ctx, 1, entities.BookmarkKind("story"), 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestBookmarkServiceListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookmarks{clock: time.Now()}
	s := NewBookmarkService(repo, newFakeContent())

	for _, b := range []struct {
		kind entities.BookmarkKind
		id   int
	}{
		{entities.BookmarkCareer, 1},
		{entities.BookmarkResource, 2},
		{entities.BookmarkCareer, 3},
	} {
		_, err := s.Toggle(ctx, 1, b.kind, b.id)
		require.NoError(t, err)
	}
	_, err := s.Toggle(ctx, 2, entities.BookmarkCareer, 2)
	require.NoError(t, err)

	list, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chuyên viên dữ liệu", "Kỹ sư phần mềm"}, titles(list.Careers))
	assert.Equal(t, []string{"Cẩm nang"}, titles(list.Resources))

	empty, err := s.List(ctx, 3)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}
