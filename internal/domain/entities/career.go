// Package entities contains domain entities used across the application.
package entities

import "github.com/aliskhannn/career-compass-bot/internal/catalog"

// Career is one entry of the career bank.
type Career struct {
	ID          int      `json:"id" yaml:"id"`                   // unique career ID
	Title       string   `json:"title" yaml:"title"`             // career name
	Description string   `json:"description" yaml:"description"` // short description of the job
	Skills      []string `json:"skills" yaml:"skills"`           // required skills, searchable
	Education   string   `json:"education" yaml:"education"`     // typical education path
	Salary      string   `json:"salary" yaml:"salary"`           // salary range as text, e.g. "15,000,000 - 25,000,000 VNĐ"
	Category    string   `json:"category" yaml:"category"`       // category ID: technology, healthcare, business, education
	Image       string   `json:"image" yaml:"image"`             // image reference
}

// CatalogFields implements catalog.Record.
func (c Career) CatalogFields() catalog.Fields {
	return catalog.Fields{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Tags:        c.Skills,
		Category:    c.Category,
		Numeric:     c.Salary,
	}
}

// CareerCategory describes a category of careers.
type CareerCategory struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}
