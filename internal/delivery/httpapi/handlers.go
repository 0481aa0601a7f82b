package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

const maxBodyBytes = 64 << 10

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type quizResponse struct {
	Interests []string                                   `json:"interests"`
	Questions []quiz.Question                            `json:"questions"`
	Types     map[quiz.Category]entities.PersonalityType `json:"types"`
}

type scoreRequest struct {
	Answers quiz.Answers `json:"answers"`
}

type scoreResponse struct {
	quiz.Result
	Complete bool                     `json:"complete"`
	Outcome  entities.PersonalityType `json:"outcome"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// queryFromRequest reads filter parameters; absent ones are permissive.
func queryFromRequest(r *http.Request, categoryParam string) catalog.Query {
	v := r.URL.Query()

	q := catalog.Query{
		SearchText: v.Get("q"),
		Category:   v.Get(categoryParam),
		Audience:   v.Get("audience"),
		Sort:       catalog.ParseSortKey(v.Get("sort")),
	}
	if q.Category == "" {
		q.Category = catalog.All
	}
	if q.Audience == "" {
		q.Audience = catalog.All
	}
	return q
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listCareers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Careers(queryFromRequest(r, "category")))
}

func (s *Server) getCareer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid career id")
		return
	}

	c, err := s.catalog.Career(id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Categories())
}

func (s *Server) listMedia(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Media(queryFromRequest(r, "category")))
}

func (s *Server) listStories(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r, "field")
	if r.URL.Query().Get("sort") == "" {
		q.Sort = catalog.SortNone
	}
	writeJSON(w, http.StatusOK, s.catalog.Stories(q))
}

func (s *Server) listResources(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	writeJSON(w, http.StatusOK, s.catalog.Resources(v.Get("kind"), v.Get("q")))
}

func (s *Server) getQuiz(w http.ResponseWriter, _ *http.Request) {
	types := make(map[quiz.Category]entities.PersonalityType, len(quiz.Categories))
	for _, c := range quiz.Categories {
		types[c] = s.quiz.Outcome(c)
	}

	writeJSON(w, http.StatusOK, quizResponse{
		Interests: s.quiz.Interests(),
		Questions: s.quiz.Questions(),
		Types:     types,
	})
}

func (s *Server) scoreQuiz(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := s.quiz.Score(req.Answers)
	writeJSON(w, http.StatusOK, scoreResponse{
		Result:   res,
		Complete: res.Complete(),
		Outcome:  s.quiz.Outcome(res.Primary),
	})
}

func (s *Server) submitFeedback(w http.ResponseWriter, r *http.Request) {
	if s.feedback == nil {
		writeError(w, http.StatusServiceUnavailable, "feedback is not available")
		return
	}

	var form entities.FeedbackForm
	if err := decodeBody(w, r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := s.feedback.Submit(r.Context(), form)
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// handleError maps service errors to status codes.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: "validation failed", Fields: verr.Fields})
	case errors.Is(err, service.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
