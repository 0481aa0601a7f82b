package entities

import "github.com/aliskhannn/career-compass-bot/internal/catalog"

// Story is a success story of a professional.
type Story struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`   // person's name
	Title       string `json:"title" yaml:"title"` // current position
	Field       string `json:"field" yaml:"field"` // category ID
	Image       string `json:"image" yaml:"image"`
	Story       string `json:"story" yaml:"story"`
	Achievement string `json:"achievement" yaml:"achievement"`
	Journey     string `json:"journey" yaml:"journey"`
}

// CatalogFields implements catalog.Record.
func (s Story) CatalogFields() catalog.Fields {
	return catalog.Fields{
		ID:          s.ID,
		Title:       s.Name,
		Description: s.Story,
		Tags:        []string{s.Title, s.Achievement, s.Journey},
		Category:    s.Field,
	}
}
