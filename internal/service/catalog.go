package service

import (
	"fmt"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

// CatalogService lists static content through catalog queries.
type CatalogService struct {
	content ContentProvider
}

func NewCatalogService(content ContentProvider) *CatalogService {
	return &CatalogService{content: content}
}

// Careers returns careers matching q.
func (s *CatalogService) Careers(q catalog.Query) []entities.Career {
	return catalog.FilterAndSort(s.content.Careers(), q)
}

// Career returns a single career.
func (s *CatalogService) Career(id int) (entities.Career, error) {
	c, err := s.content.CareerByID(id)
	if err != nil {
		return entities.Career{}, fmt.Errorf("career %d: %w", id, ErrItemNotFound)
	}
	return c, nil
}

// Categories returns career categories with counts computed from the career bank.
func (s *CatalogService) Categories() []entities.CareerCategory {
	counts := catalog.Count(s.content.Careers())

	categories := make([]entities.CareerCategory, 0, len(s.content.Categories()))
	for _, c := range s.content.Categories() {
		c.Count = counts[c.ID]
		categories = append(categories, c)
	}
	return categories
}

// Media returns media items matching q in file order.
func (s *CatalogService) Media(q catalog.Query) []entities.MediaItem {
	q.Sort = catalog.SortNone
	return catalog.FilterAndSort(s.content.Media(), q)
}

// Stories returns stories matching q in file order unless q asks for a
// name sort.
func (s *CatalogService) Stories(q catalog.Query) []entities.Story {
	if q.Sort != catalog.SortName {
		q.Sort = catalog.SortNone
	}
	q.Audience = catalog.All
	return catalog.FilterAndSort(s.content.Stories(), q)
}

// Resources returns resources of the given kind in file order.
func (s *CatalogService) Resources(kind, search string) []entities.Resource {
	return catalog.FilterAndSort(s.content.Resources(), catalog.Query{
		SearchText: search,
		Category:   kind,
		Audience:   catalog.All,
		Sort:       catalog.SortNone,
	})
}

// Resource returns a single resource.
func (s *CatalogService) Resource(id int) (entities.Resource, error) {
	r, err := s.content.ResourceByID(id)
	if err != nil {
		return entities.Resource{}, fmt.Errorf("resource %d: %w", id, ErrItemNotFound)
	}
	return r, nil
}

func (s *CatalogService) Majors() []entities.Major { return s.content.Majors() }

func (s *CatalogService) StudyAbroad() []entities.StudyAbroadProgram { return s.content.StudyAbroad() }

func (s *CatalogService) Tips() []entities.TipSection { return s.content.Tips() }
