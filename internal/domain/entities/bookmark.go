package entities

import "time"

// BookmarkKind is the kind of bookmarked content.
type BookmarkKind string

const (
	BookmarkCareer   BookmarkKind = "career"
	BookmarkResource BookmarkKind = "resource"
)

// ParseBookmarkKind returns the kind named s.
func ParseBookmarkKind(s string) (BookmarkKind, bool) {
	switch BookmarkKind(s) {
	case BookmarkCareer, BookmarkResource:
		return BookmarkKind(s), true
	}
	return "", false
}

// Bookmark is a saved career or resource.
type Bookmark struct {
	UserID    int64
	Kind      BookmarkKind
	ItemID    int
	CreatedAt time.Time
}
