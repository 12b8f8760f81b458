package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/gen"
	"github.com/deckforge/deckforge/pkg/store"
	"github.com/deckforge/deckforge/pkg/theme"
)

// generationTimeout bounds one background generation run, including
// the image resolution pass.
const generationTimeout = 5 * time.Minute

func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := s.themes.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themes)
}

// generateRequest is the POST /api/themes/{slug}/details body.
type generateRequest struct {
	Mode       string   `json:"mode"`
	SlideCount int      `json:"slideCount"`
	Prompt     string   `json:"prompt,omitempty"`
	Outline    []string `json:"outline,omitempty"`
}

func (s *Server) handleStartGeneration(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	th, err := s.themes.Get(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse generation request"))
		return
	}

	params := gen.Params{
		Mode:       gen.Mode(req.Mode),
		Prompt:     req.Prompt,
		Outline:    req.Outline,
		SlideCount: req.SlideCount,
		Theme:      *th,
	}
	if err := params.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if s.generator == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "deck generation is not configured"))
		return
	}

	job := &store.Job{
		ThemeSlug:  slug,
		Mode:       req.Mode,
		SlideCount: req.SlideCount,
		Prompt:     req.Prompt,
		Outline:    req.Outline,
	}
	if err := s.jobs.Create(r.Context(), job); err != nil {
		writeError(w, err)
		return
	}

	// The request returns immediately; the client polls the job.
	go s.runGeneration(job.ID, params)

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message":   "Generation started",
		"projectId": job.ID,
	})
}

// runGeneration drives one job through its states in the background.
func (s *Server) runGeneration(jobID string, params gen.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	fail := func(err error) {
		s.logger.Error("deck generation failed", "job", jobID, "err", err)
		if serr := s.jobs.SetStatus(ctx, jobID, store.JobFailed, nil, err.Error()); serr != nil {
			s.logger.Error("failed to record job failure", "job", jobID, "err", serr)
		}
	}

	if err := s.jobs.SetStatus(ctx, jobID, store.JobGenerating, nil, ""); err != nil {
		s.logger.Error("failed to transition job", "job", jobID, "err", err)
		return
	}

	slides, err := s.generator.Generate(ctx, params)
	if err != nil {
		fail(err)
		return
	}

	if s.runner.Images != nil {
		if err := s.jobs.SetStatus(ctx, jobID, store.JobImages, nil, ""); err != nil {
			s.logger.Error("failed to transition job", "job", jobID, "err", err)
		}
		s.runner.ResolveImages(ctx, slides)
	}

	if err := s.jobs.SetStatus(ctx, jobID, store.JobCompleted, slides, ""); err != nil {
		fail(err)
		return
	}
	s.logger.Info("deck generation completed", "job", jobID, "slides", len(slides))
}

func (s *Server) handleLastJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobs.Last(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeJobView(w, r, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		writeError(w, errors.New(errors.ErrCodeInvalidProject, "invalid job ID"))
		return
	}
	job, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeJobView(w, r, job)
}

// jobView joins a job with its theme so pollers can render immediately
// once the slides arrive.
type jobView struct {
	store.Job
	Theme *theme.Theme `json:"theme,omitempty"`
}

func (s *Server) writeJobView(w http.ResponseWriter, r *http.Request, job *store.Job) {
	view := jobView{Job: *job}
	if th, err := s.themes.Get(r.Context(), job.ThemeSlug); err == nil {
		view.Theme = th
	}
	writeJSON(w, http.StatusOK, view)
}
