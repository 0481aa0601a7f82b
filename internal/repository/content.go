package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
)

var (
	ErrCareerNotFound   = errors.New("career not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidContent   = errors.New("invalid content")
)

// Content file names inside the data directory.
const (
	CareersFile    = "careers.json"
	MediaFile      = "multimedia.json"
	StoriesFile    = "success-stories.json"
	ResourcesFile  = "resources.yaml"
	AdmissionsFile = "admissions.yaml"
	QuizFile       = "quiz.yaml"
)

// ContentRepository provides read-only access to the bundled portal content.
// Everything is loaded once; returned slices must not be modified.
type ContentRepository struct {
	careers     []entities.Career
	categories  []entities.CareerCategory
	media       []entities.MediaItem
	stories     []entities.Story
	resources   []entities.Resource
	majors      []entities.Major
	studyAbroad []entities.StudyAbroadProgram
	tips        []entities.TipSection
	quiz        entities.QuizContent
}

// NewContentRepository loads all content files from dir.
func NewContentRepository(dir string) (*ContentRepository, error) {
	var careers struct {
		Careers    []entities.Career         `json:"careers"`
		Categories []entities.CareerCategory `json:"categories"`
	}
	var media struct {
		Multimedia []entities.MediaItem `json:"multimedia"`
	}
	var stories struct {
		Stories []entities.Story `json:"stories"`
	}
	var resources struct {
		Resources []entities.Resource `yaml:"resources"`
	}
	var admissions struct {
		Majors      []entities.Major              `yaml:"majors"`
		StudyAbroad []entities.StudyAbroadProgram `yaml:"study_abroad"`
		Tips        []entities.TipSection         `yaml:"tips"`
	}
	var quizContent entities.QuizContent

	files := []struct {
		name string
		dst  any
	}{
		{CareersFile, &careers},
		{MediaFile, &media},
		{StoriesFile, &stories},
		{ResourcesFile, &resources},
		{AdmissionsFile, &admissions},
		{QuizFile, &quizContent},
	}
	for _, f := range files {
		if err := decodeFile(filepath.Join(dir, f.name), f.dst); err != nil {
			return nil, err
		}
	}

	r := &ContentRepository{
		careers:     careers.Careers,
		categories:  careers.Categories,
		media:       media.Multimedia,
		stories:     stories.Stories,
		resources:   resources.Resources,
		majors:      admissions.Majors,
		studyAbroad: admissions.StudyAbroad,
		tips:        admissions.Tips,
		quiz:        quizContent,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Careers returns all careers in file order.
func (r *ContentRepository) Careers() []entities.Career { return r.careers }

// CareerByID returns the career with the given ID.
func (r *ContentRepository) CareerByID(id int) (entities.Career, error) {
	for _, c := range r.careers {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Career{}, ErrCareerNotFound
}

// Categories returns career categories.
func (r *ContentRepository) Categories() []entities.CareerCategory { return r.categories }

func (r *ContentRepository) Media() []entities.MediaItem { return r.media }

func (r *ContentRepository) Stories() []entities.Story { return r.stories }

func (r *ContentRepository) Resources() []entities.Resource { return r.resources }

// ResourceByID returns the resource with the given ID.
func (r *ContentRepository) ResourceByID(id int) (entities.Resource, error) {
	for _, res := range r.resources {
		if res.ID == id {
			return res, nil
		}
	}
	return entities.Resource{}, ErrResourceNotFound
}

func (r *ContentRepository) Majors() []entities.Major { return r.majors }

func (r *ContentRepository) StudyAbroad() []entities.StudyAbroadProgram { return r.studyAbroad }

func (r *ContentRepository) Tips() []entities.TipSection { return r.tips }

// Quiz returns the personality quiz definition.
func (r *ContentRepository) Quiz() entities.QuizContent { return r.quiz }

func (r *ContentRepository) validate() error {
	if err := uniqueIDs(CareersFile, r.careers, func(c entities.Career) int { return c.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(MediaFile, r.media, func(m entities.MediaItem) int { return m.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(StoriesFile, r.stories, func(s entities.Story) int { return s.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(ResourcesFile, r.resources, func(res entities.Resource) int { return res.ID }); err != nil {
		return err
	}
	if err := uniqueIDs(QuizFile, r.quiz.Questions, func(q quiz.Question) int { return q.ID }); err != nil {
		return err
	}

	if len(r.quiz.Questions) == 0 {
		return fmt.Errorf("%s: %w: no questions", QuizFile, ErrInvalidContent)
	}
	for _, q := range r.quiz.Questions {
		if len(q.Options) != quiz.OptionsPerQuestion {
			return fmt.Errorf("%s: %w: question %d has %d options, want %d",
				QuizFile, ErrInvalidContent, q.ID, len(q.Options), quiz.OptionsPerQuestion)
		}
	}
	for _, c := range quiz.Categories {
		if _, ok := r.quiz.Types[c]; !ok {
			return fmt.Errorf("%s: %w: missing type %q", QuizFile, ErrInvalidContent, c)
		}
	}

	return nil
}

func uniqueIDs[T any](file string, items []T, id func(T) int) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		n := id(it)
		if n <= 0 {
			return fmt.Errorf("%s: %w: non-positive id %d", file, ErrInvalidContent, n)
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%s: %w: duplicate id %d", file, ErrInvalidContent, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// decodeFile reads path as JSON or YAML depending on its extension.
func decodeFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, dst)
	default:
		err = json.Unmarshal(data, dst)
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}

	return nil
}
