package entities

import "github.com/aliskhannn/career-compass-bot/internal/catalog"

// Resource kinds.
const (
	ResourceArticle   = "article"
	ResourceEbook     = "ebook"
	ResourceChecklist = "checklist"
	ResourceWebinar   = "webinar"
)

// ResourceKinds lists kinds in display order.
var ResourceKinds = []string{ResourceArticle, ResourceEbook, ResourceChecklist, ResourceWebinar}

// Resource is an article, e-book, checklist or webinar from the library.
type Resource struct {
	ID          int    `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link"`
	Extra       string `json:"extra" yaml:"extra"` // author, page count, item count or duration
}

// CatalogFields implements catalog.Record.
func (r Resource) CatalogFields() catalog.Fields {
	return catalog.Fields{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Tags:        []string{r.Extra},
		Category:    r.Kind,
	}
}
