package entities

import "github.com/aliskhannn/career-compass-bot/internal/catalog"

// Media types.
const (
	MediaVideo   = "video"
	MediaPodcast = "podcast"
)

// MediaItem is a video or podcast guide.
type MediaItem struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"` // "video" or "podcast"
	URL         string `json:"url" yaml:"url"`
	Duration    string `json:"duration" yaml:"duration"`
	Category    string `json:"category" yaml:"category"`
	UserType    string `json:"userType" yaml:"user_type"` // target audience, "all" for everyone
	Thumbnail   string `json:"thumbnail" yaml:"thumbnail"`
}

// CatalogFields implements catalog.Record.
func (m MediaItem) CatalogFields() catalog.Fields {
	return catalog.Fields{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Numeric:     m.Duration,
		Audience:    m.UserType,
	}
}
