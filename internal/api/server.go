// Package api exposes the catalog and the stress-test orchestrator over
// HTTP for the selection and report collaborators.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/MEMAtest/stress-engine/internal/orchestrator"
)

// Config holds server configuration.
type Config struct {
	Port   int
	Runner *orchestrator.Runner
	Log    zerolog.Logger
}

// Server is the HTTP front of the stress engine.
type Server struct {
	router *chi.Mux
	server *http.Server
	runner *orchestrator.Runner
	log    zerolog.Logger
}

// New creates a configured HTTP server.
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		runner: cfg.Runner,
		log:    cfg.Log.With().Str("component", "api").Logger(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/scenarios", s.handleListScenarios)
		r.Get("/scenarios/{id}", s.handleGetScenario)
		r.Post("/stress-tests", s.handleRunStressTests)
	})
	s.router.Get("/healthz", s.handleHealth)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler { return s.router }

// ListenAndServe starts the server and blocks.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("listening")
	return s.server.ListenAndServe()
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
