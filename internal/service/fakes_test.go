package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/storage"
)

type fakeContent struct {
	careers    []entities.Career
	categories []entities.CareerCategory
	media      []entities.MediaItem
	stories    []entities.Story
	resources  []entities.Resource
	quiz       entities.QuizContent
}

func newFakeContent() *fakeContent {
	return &fakeContent{
		careers: []entities.Career{
			{ID: 1, Title: "Kỹ sư phần mềm", Category: "technology", Salary: "15,000,000 - 25,000,000 VNĐ", Skills: []string{"Lập trình"}},
			{ID: 2, Title: "Bác sĩ", Category: "healthcare", Salary: "20,000,000 - 40,000,000 VNĐ"},
			{ID: 3, Title: "Chuyên viên dữ liệu", Category: "technology", Salary: "30,000,000 - 45,000,000 VNĐ"},
		},
		categories: []entities.CareerCategory{
			{ID: "technology", Name: "Công nghệ", Count: 99},
			{ID: "healthcare", Name: "Y tế"},
			{ID: "business", Name: "Kinh doanh"},
		},
		media: []entities.MediaItem{
			{ID: 1, Title: "Video A", Category: "technology", UserType: "student"},
			{ID: 2, Title: "Podcast B", Category: "healthcare", UserType: "all"},
			{ID: 3, Title: "Video C", Category: "technology", UserType: "professional"},
		},
		stories: []entities.Story{
			{ID: 1, Name: "Trần B", Field: "technology"},
			{ID: 2, Name: "Nguyễn A", Field: "healthcare"},
		},
		resources: []entities.Resource{
			{ID: 1, Kind: entities.ResourceArticle, Title: "Viết CV"},
			{ID: 2, Kind: entities.ResourceEbook, Title: "Cẩm nang"},
			{ID: 3, Kind: entities.ResourceArticle, Title: "Phỏng vấn"},
		},
		quiz: entities.QuizContent{
			Questions: []quiz.Question{
				{ID: 1, Prompt: "q1", Options: []string{"a", "b", "c", "d"}},
				{ID: 2, Prompt: "q2", Options: []string{"a", "b", "c", "d"}},
				{ID: 3, Prompt: "q3", Options: []string{"a", "b", "c", "d"}},
			},
			Interests: []string{"Công nghệ thông tin", "Y tế"},
			Types: map[quiz.Category]entities.PersonalityType{
				quiz.Analytical: {Label: "Phân tích"},
				quiz.Creative:   {Label: "Sáng tạo"},
				quiz.Social:     {Label: "Xã hội"},
				quiz.Practical:  {Label: "Thực tế"},
			},
		},
	}
}

func (c *fakeContent) Careers() []entities.Career { return c.careers }

func (c *fakeContent) CareerByID(id int) (entities.Career, error) {
	for _, career := range c.careers {
		if career.ID == id {
			return career, nil
		}
	}
	return entities.Career{}, errors.New("career not found")
}

func (c *fakeContent) Categories() []entities.CareerCategory { return c.categories }
func (c *fakeContent) Media() []entities.MediaItem          { return c.media }
func (c *fakeContent) Stories() []entities.Story            { return c.stories }
func (c *fakeContent) Resources() []entities.Resource       { return c.resources }

func (c *fakeContent) ResourceByID(id int) (entities.Resource, error) {
	for _, r := range c.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return entities.Resource{}, errors.New("resource not found")
}

func (c *fakeContent) Majors() []entities.Major                   { return nil }
func (c *fakeContent) StudyAbroad() []entities.StudyAbroadProgram { return nil }
func (c *fakeContent) Tips() []entities.TipSection                { return nil }
func (c *fakeContent) Quiz() entities.QuizContent                 { return c.quiz }

type fakeProgressStore struct {
	mu       sync.Mutex
	progress map[int64]entities.QuizProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{progress: make(map[int64]entities.QuizProgress)}
}

func (s *fakeProgressStore) Save(_ context.Context, p *entities.QuizProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	cp.Answers = make(quiz.Answers, len(p.Answers))
	for k, v := range p.Answers {
		cp.Answers[k] = v
	}
	s.progress[p.UserID] = cp
	return nil
}

func (s *fakeProgressStore) Get(_ context.Context, userID int64) (*entities.QuizProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[userID]
	if !ok {
		return nil, storage.ErrProgressNotFound
	}
	return &p, nil
}

func (s *fakeProgressStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.progress, userID)
	return nil
}

type fakeResults struct {
	results []*entities.QuizResult
}

func (r *fakeResults) SaveResult(_ context.Context, res *entities.QuizResult) (int64, error) {
	r.results = append(r.results, res)
	return int64(len(r.results)), nil
}

func (r *fakeResults) GetLatestResult(_ context.Context, userID int64) (*entities.QuizResult, error) {
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].UserID == userID {
			return r.results[i], nil
		}
	}
	return nil, repository.ErrResultNotFound
}

type fakeBookmarks struct {
	saved []entities.Bookmark
	clock time.Time
}

func (b *fakeBookmarks) Toggle(_ context.Context, userID int64, kind entities.BookmarkKind, itemID int) (bool, error) {
	for i, s := range b.saved {
		if s.UserID == userID && s.Kind == kind && s.ItemID == itemID {
			b.saved = append(b.saved[:i], b.saved[i+1:]...)
			return false, nil
		}
	}
	b.clock = b.clock.Add(time.Second)
	b.saved = append(b.saved, entities.Bookmark{UserID: userID, Kind: kind, ItemID: itemID, CreatedAt: b.clock})
	return true, nil
}

func (b *fakeBookmarks) ListByUser(_ context.Context, userID int64) ([]entities.Bookmark, error) {
	var out []entities.Bookmark
	for _, s := range b.saved {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeUsers struct {
	users map[int64]*entities.User
}

func (u *fakeUsers) Save(_ context.Context, user *entities.User) (bool, error) {
	if existing, ok := u.users[user.ID]; ok {
		existing.ChatID = user.ChatID
		return false, nil
	}
	cp := *user
	u.users[user.ID] = &cp
	return true, nil
}

func (u *fakeUsers) GetByID(_ context.Context, userID int64) (*entities.User, error) {
	user, ok := u.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (u *fakeUsers) UpdateProfile(_ context.Context, userID int64, userType entities.UserType, name string) error {
	user, ok := u.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.UserType = userType
	user.DisplayName = name
	return nil
}

type fakeFeedbackRepo struct {
	mu      sync.Mutex
	entries []*entities.Feedback
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f *entities.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, f)
	return nil
}

func (r *fakeFeedbackRepo) MarkPublished(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.entries {
		if f.ID == id {
			f.PublishedAt = &at
		}
	}
	return nil
}

func (r *fakeFeedbackRepo) ListUnpublished(_ context.Context, limit int) ([]*entities.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Feedback
	for _, f := range r.entries {
		if f.PublishedAt == nil && len(out) < limit {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) unpublished() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.entries {
		if f.PublishedAt == nil {
			n++
		}
	}
	return n
}

type fakePublisher struct {
	mu        sync.Mutex
	published []uuid.UUID
	failAfter int // fail once this many were published; negative never fails
}

func (p *fakePublisher) PublishFeedback(_ context.Context, f *entities.Feedback) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failAfter >= 0 && len(p.published) >= p.failAfter {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, f.ID)
	return nil
}
