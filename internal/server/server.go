// Package server implements the deckforge HTTP API.
//
// The API serves the presentation editor frontend: it lists themes,
// starts asynchronous deck generation jobs, analyzes deck layouts, and
// manages saved projects (save, list, trash, restore, delete).
//
// # Routes
//
//	GET    /health                       liveness probe
//	GET    /api/themes                   active themes
//	POST   /api/themes/{slug}/details    start a generation job
//	GET    /api/themes/last-request      most recent generation job
//	GET    /api/themes/project/{id}      poll a generation job
//	POST   /api/layout/analyze           run the layout pipeline on a deck
//	POST   /api/projects/save            save a presentation
//	GET    /api/projects/check/{projectId}
//	GET    /api/projects/active
//	GET    /api/projects/deleted
//	GET    /api/projects/sidebar
//	GET    /api/projects/edit/{projectId}
//	PUT    /api/projects/edit/{projectId}
//	POST   /api/projects/{id}/trash
//	POST   /api/projects/{id}/restore
//	DELETE /api/projects/{id}
//	GET    /api/projects/{projectId}
//
// Errors are returned as JSON bodies carrying the structured error code,
// with the HTTP status derived from the code.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deckforge/deckforge/pkg/gen"
	"github.com/deckforge/deckforge/pkg/images"
	"github.com/deckforge/deckforge/pkg/pipeline"
	"github.com/deckforge/deckforge/pkg/store"
)

// Config carries the server's dependencies.
// Generator and Images are optional; without them the generation
// endpoints report the feature as unavailable.
type Config struct {
	Projects store.ProjectStore
	Jobs     store.JobStore
	Themes   store.ThemeStore
	Runner   *pipeline.Runner

	Generator *gen.Generator
	Images    *images.Chain

	Logger *log.Logger
}

// Server is the deckforge HTTP API.
type Server struct {
	projects  store.ProjectStore
	jobs      store.JobStore
	themes    store.ThemeStore
	runner    *pipeline.Runner
	generator *gen.Generator
	logger    *log.Logger
	router    chi.Router
}

// New creates a Server and mounts its routes.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if runner.Images == nil {
		runner.Images = cfg.Images
	}

	s := &Server{
		projects:  cfg.Projects,
		jobs:      cfg.Jobs,
		themes:    cfg.Themes,
		runner:    runner,
		generator: cfg.Generator,
		logger:    logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/themes", func(r chi.Router) {
		r.Get("/", s.handleListThemes)
		r.Post("/{slug}/details", s.handleStartGeneration)
		r.Get("/last-request", s.handleLastJob)
		r.Get("/project/{id}", s.handleGetJob)
	})

	r.Route("/api/layout", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyzeLayout)
	})

	r.Route("/api/projects", func(r chi.Router) {
		r.Post("/save", s.handleSaveProject)
		r.Get("/check/{projectID}", s.handleCheckProject)
		r.Get("/active", s.handleListActive)
		r.Get("/deleted", s.handleListDeleted)
		r.Get("/sidebar", s.handleSidebar)
		r.Get("/edit/{projectID}", s.handleGetForEdit)
		r.Put("/edit/{projectID}", s.handleUpdateProject)
		r.Post("/{id}/trash", s.handleTrashProject)
		r.Post("/{id}/restore", s.handleRestoreProject)
		r.Delete("/{id}", s.handleDeleteProject)
		r.Get("/{projectID}", s.handleGetProject)
	})

	return r
}

// ListenAndServe runs the server on addr until it fails. Graceful
// shutdown is the caller's concern (see internal/cli serve).
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("server listening", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
