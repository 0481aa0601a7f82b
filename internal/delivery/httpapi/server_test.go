package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/repository"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

type memoryFeedbackRepo struct {
	mu    sync.Mutex
	items []*entities.Feedback
}

func (r *memoryFeedbackRepo) Create(_ context.Context, f *entities.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, f)
	return nil
}

func (r *memoryFeedbackRepo) MarkPublished(context.Context, uuid.UUID, time.Time) error { return nil }

func (r *memoryFeedbackRepo) ListUnpublished(context.Context, int) ([]*entities.Feedback, error) {
	return nil, nil
}

func newTestServer(t *testing.T) (http.Handler, *memoryFeedbackRepo) {
	t.Helper()

	content, err := repository.NewContentRepository("../../../assets/data")
	require.NoError(t, err)

	logger := zap.NewNop()
	feedbackRepo := &memoryFeedbackRepo{}

	srv := NewServer(":0", time.Second, logger,
		service.NewCatalogService(content),
		service.NewQuizService(content, nil, nil, logger),
		service.NewFeedbackService(feedbackRepo, nil, nil, logger),
	)
	return srv.Handler(), feedbackRepo
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListCareers(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/careers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.Career](t, rec), 8)

	rec = do(t, h, http.MethodGet, "/api/careers?category=healthcare&sort=salary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	careers := decode[[]entities.Career](t, rec)
	require.Len(t, careers, 2)
	assert.Equal(t, "Bác sĩ", careers[0].Title)
	assert.Equal(t, "Dược sĩ", careers[1].Title)

	rec = do(t, h, http.MethodGet, "/api/careers?q=PHẦN+MỀM", "")
	careers = decode[[]entities.Career](t, rec)
	require.Len(t, careers, 1)
	assert.Equal(t, 1, careers[0].ID)
}

func TestListCareersUnknownSortFallsBackToName(t *testing.T) {
	h, _ := newTestServer(t)

	byName := decode[[]entities.Career](t, do(t, h, http.MethodGet, "/api/careers", ""))
	unknown := decode[[]entities.Career](t, do(t, h, http.MethodGet, "/api/careers?sort=bogus", ""))

	assert.Equal(t, byName, unknown)
}

func TestListStoriesKeepFileOrder(t *testing.T) {
	h, _ := newTestServer(t)

	names := func(target string) []string {
		rec := do(t, h, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out []string
		for _, s := range decode[[]entities.Story](t, rec) {
			out = append(out, s.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Nguyễn Minh Anh", "Trần Thu Hà", "Lê Quốc Bảo", "Phạm Thị Lan"}, names("/api/stories"))
	assert.Equal(t, []string{"Lê Quốc Bảo", "Nguyễn Minh Anh", "Phạm Thị Lan", "Trần Thu Hà"}, names("/api/stories?sort=name"))
	assert.Equal(t, []string{"Trần Thu Hà"}, names("/api/stories?field=healthcare"))
}

func TestGetCareer(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/careers/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bác sĩ", decode[entities.Career](t, rec).Title)

	rec = do(t, h, http.MethodGet, "/api/careers/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[errorResponse](t, rec).Message)

	rec = do(t, h, http.MethodGet, "/api/careers/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListResourcesByKind(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/resources?kind=checklist", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resources := decode[[]entities.Resource](t, rec)
	require.NotEmpty(t, resources)
	for _, r := range resources {
		assert.Equal(t, entities.ResourceChecklist, r.Kind)
	}
}

func TestGetQuiz(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/quiz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[quizResponse](t, rec)
	assert.Len(t, body.Questions, 5)
	assert.Len(t, body.Types, len(quiz.Categories))
	assert.NotEmpty(t, body.Interests)
}

func TestScoreQuiz(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/quiz/score", `{"answers":{"1":2,"2":2,"3":0,"4":2,"5":1}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[scoreResponse](t, rec)
	assert.Equal(t, quiz.Social, body.Primary)
	assert.Equal(t, 3, body.Counts[quiz.Social])
	assert.True(t, body.Complete)
	assert.NotEmpty(t, body.Outcome.Label)
}

func TestScoreQuizEmptyAnswers(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/quiz/score", `{"answers":{}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[scoreResponse](t, rec)
	assert.Equal(t, quiz.Analytical, body.Primary)
	assert.False(t, body.Complete)
}

func TestScoreQuizMalformedBody(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/quiz/score", `{"answers":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitFeedback(t *testing.T) {
	h, repo := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/feedback",
		`{"name":"Lan","email":"lan@example.com","category":"feature","rating":5,"message":"Thêm nghề mới"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	f := decode[entities.Feedback](t, rec)
	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.Equal(t, entities.FeedbackFeature, f.Category)
	require.Len(t, repo.items, 1)
	assert.Equal(t, f.ID, repo.items[0].ID)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	h, repo := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/feedback", `{"name":"","email":"not-an-email","message":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode[errorResponse](t, rec)
	assert.Contains(t, body.Fields, "name")
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "message")
	assert.Empty(t, repo.items)
}

func TestPreflight(t *testing.T) {
	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodOptions, "/api/feedback", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSubmitFeedbackUnavailable(t *testing.T) {
	content, err := repository.NewContentRepository("../../../assets/data")
	require.NoError(t, err)

	logger := zap.NewNop()
	h := NewServer(":0", time.Second, logger,
		service.NewCatalogService(content),
		service.NewQuizService(content, nil, nil, logger),
		nil,
	).Handler()

	rec := do(t, h, http.MethodPost, "/api/feedback", `{}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
