// Package httpapi serves portal content and the quiz scorer as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Server struct {
	logger          *zap.Logger
	catalog         CatalogService
	quiz            QuizService
	feedback        FeedbackService
	addr            string
	shutdownTimeout time.Duration
}

// NewServer creates the API server. feedback may be nil when no database is configured.
func NewServer(
	addr string,
	shutdownTimeout time.Duration,
	logger *zap.Logger,
	catalog CatalogService,
	quiz QuizService,
	feedback FeedbackService,
) *Server {
	return &Server{
		logger:          logger,
		catalog:         catalog,
		quiz:            quiz,
		feedback:        feedback,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the routed API handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(corsMiddleware, s.loggingMiddleware)

	router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/careers", s.listCareers).Methods(http.MethodGet)
	api.HandleFunc("/careers/{id:[0-9]+}", s.getCareer).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/media", s.listMedia).Methods(http.MethodGet)
	api.HandleFunc("/stories", s.listStories).Methods(http.MethodGet)
	api.HandleFunc("/resources", s.listResources).Methods(http.MethodGet)
	api.HandleFunc("/quiz", s.getQuiz).Methods(http.MethodGet)
	api.HandleFunc("/quiz/score", s.scoreQuiz).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/feedback", s.submitFeedback).Methods(http.MethodPost, http.MethodOptions)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server started", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.logger.Info("http server stopped")

	return nil
}
