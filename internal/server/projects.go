package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/images"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/store"
	"github.com/deckforge/deckforge/pkg/theme"
)

// saveRequest is the POST /api/projects/save body.
type saveRequest struct {
	ProjectID string        `json:"projectId"`
	Title     string        `json:"title,omitempty"`
	Slides    []slide.Slide `json:"slides"`
	Theme     theme.Theme   `json:"theme"`
}

// projectView decorates a stored project with a relative date label for
// listing views.
type projectView struct {
	store.Project
	UpdatedLabel string `json:"updated_label"`
}

func (s *Server) handleSaveProject(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse save request"))
		return
	}
	if req.ProjectID == "" || len(req.Slides) == 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"projectId, slides, and theme are required"))
		return
	}

	title := req.Title
	if title == "" {
		title = req.Slides[0].Title
	}
	if title == "" {
		title = "Untitled Presentation"
	}

	p := &store.Project{
		ProjectID:     req.ProjectID,
		Title:         title,
		Description:   fmt.Sprintf("Saved presentation with %d slides", len(req.Slides)),
		CoverImageURL: images.CoverSVG(title, req.Theme),
		Content: store.ProjectContent{
			Slides: req.Slides,
			Theme:  req.Theme,
		},
	}
	if err := s.projects.Save(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"project": p,
		"message": "Presentation saved successfully",
	})
}

func (s *Server) handleCheckProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if !validID(projectID) {
		writeError(w, errors.New(errors.ErrCodeInvalidProject, "invalid project ID"))
		return
	}

	exists, err := s.projects.Exists(r.Context(), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"alreadySaved": exists})
}

func (s *Server) handleListActive(w http.ResponseWriter, r *http.Request) {
	s.listProjects(w, r, store.StatusActive)
}

func (s *Server) handleListDeleted(w http.ResponseWriter, r *http.Request) {
	s.listProjects(w, r, store.StatusDeleted)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request, status store.Status) {
	projects, err := s.projects.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	now := time.Now()
	views := make([]projectView, len(projects))
	for i, p := range projects {
		views[i] = projectView{Project: p, UpdatedLabel: store.DateLabel(p.UpdatedAt, now)}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleTrashProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Trash(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRestoreProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Restore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// sidebarEntry is one recently viewed project in the sidebar payload.
type sidebarEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	recent, err := s.projects.Recent(r.Context(), 5)
	if err != nil {
		writeError(w, err)
		return
	}

	now := time.Now()
	entries := make([]sidebarEntry, len(recent))
	for i, p := range recent {
		entries[i] = sidebarEntry{
			ID:   p.ID,
			Name: p.Title,
			Date: store.DateLabel(p.UpdatedAt, now),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recentlyViewed": entries,
		"navigation": []map[string]string{
			{"label": "Home", "path": "/", "icon": "Home"},
			{"label": "Trash", "path": "/trash", "icon": "Trash2"},
		},
	})
}

// editView is the payload for the editor: the deck content flattened to
// the top level alongside project metadata.
type editView struct {
	Slides      []slide.Slide `json:"slides"`
	Theme       theme.Theme   `json:"theme"`
	ID          string        `json:"_id"`
	ProjectID   string        `json:"projectId"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status"`
}

func (s *Server) handleGetForEdit(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editView{
		Slides:      p.Content.Slides,
		Theme:       p.Content.Theme,
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Description: p.Description,
		Status:      "completed",
	})
}

// updateRequest is the PUT /api/projects/edit/{projectId} body.
type updateRequest struct {
	Title  string        `json:"title,omitempty"`
	Slides []slide.Slide `json:"slides"`
	Theme  theme.Theme   `json:"theme"`
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse update request"))
		return
	}

	p, err := s.projects.Update(r.Context(), chi.URLParam(r, "projectID"),
		store.ProjectContent{Slides: req.Slides, Theme: req.Theme}, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Project updated successfully",
		"project": p,
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if !validID(projectID) {
		writeError(w, errors.New(errors.ErrCodeInvalidProject, "invalid project ID"))
		return
	}

	p, err := s.projects.Get(r.Context(), projectID)
	if err == nil {
		writeJSON(w, http.StatusOK, editView{
			Slides:      p.Content.Slides,
			Theme:       p.Content.Theme,
			ID:          p.ID,
			ProjectID:   p.ProjectID,
			Title:       p.Title,
			Description: p.Description,
			Status:      "completed",
		})
		return
	}

	// Not saved; it may be a generation job still in flight.
	if s.jobs != nil {
		if job, jobErr := s.jobs.Get(r.Context(), projectID); jobErr == nil {
			s.writeJobView(w, r, job)
			return
		}
	}
	writeError(w, err)
}

// validID rejects the string artifacts frontends send for missing IDs.
func validID(id string) bool {
	return id != "" && id != "undefined" && id != "null"
}
