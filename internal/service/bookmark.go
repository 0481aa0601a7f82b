package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

// BookmarkList holds a user's resolved bookmarks, newest first.
type BookmarkList struct {
	Careers   []entities.Career
	Resources []entities.Resource
}

// Empty reports whether nothing is bookmarked.
func (l BookmarkList) Empty() bool {
	return len(l.Careers) == 0 && len(l.Resources) == 0
}

// BookmarkService saves careers and resources for later.
type BookmarkService struct {
	repo    BookmarkRepository
	content ContentProvider
}

func NewBookmarkService(repo BookmarkRepository, content ContentProvider) *BookmarkService {
	return &BookmarkService{repo: repo, content: content}
}

// Toggle adds or removes a bookmark and reports whether it is now saved.
func (s *BookmarkService) Toggle(ctx context.Context, userID int64, kind entities.BookmarkKind, itemID int) (bool, error) {
	if !s.exists(kind, itemID) {
		return false, fmt.Errorf("%s %d: %w", kind, itemID, ErrItemNotFound)
	}

	added, err := s.repo.Toggle(ctx, userID, kind, itemID)
	if err != nil {
		return false, fmt.Errorf("toggle bookmark: %w", err)
	}
	return added, nil
}

// List returns the user's bookmarks. Items no longer in the content are skipped.
func (s *BookmarkService) List(ctx context.Context, userID int64) (*BookmarkList, error) {
	bookmarks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	var list BookmarkList
	for _, b := range bookmarks {
		switch b.Kind {
		case entities.BookmarkCareer:
			if c, err := s.content.CareerByID(b.ItemID); err == nil {
				list.Careers = append(list.Careers, c)
			}
		case entities.BookmarkResource:
			if r, err := s.content.ResourceByID(b.ItemID); err == nil {
				list.Resources = append(list.Resources, r)
			}
		}
	}
	return &list, nil
}

func (s *BookmarkService) exists(kind entities.BookmarkKind, itemID int) bool {
	switch kind {
	case entities.BookmarkCareer:
		_, err := s.content.CareerByID(itemID)
		return err == nil
	case entities.BookmarkResource:
		_, err := s.content.ResourceByID(itemID)
		return err == nil
	default:
		return false
	}
}
