package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/theme"
)

// MemoryProjectStore is an in-memory ProjectStore for development and tests.
type MemoryProjectStore struct {
	mu       sync.RWMutex
	projects map[string]*Project // keyed by storage ID
}

// Ensure MemoryProjectStore implements ProjectStore.
var _ ProjectStore = (*MemoryProjectStore)(nil)

// NewMemoryProjectStore creates an empty in-memory project store.
func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{projects: make(map[string]*Project)}
}

// Save implements ProjectStore.
func (s *MemoryProjectStore) Save(_ context.Context, p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.projects {
		if existing.ProjectID == p.ProjectID && existing.Status == StatusActive {
			return errors.New(errors.ErrCodeProjectExists, "project %s is already saved", p.ProjectID)
		}
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = StatusActive
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := *p
	s.projects[p.ID] = &stored
	return nil
}

// Get implements ProjectStore.
func (s *MemoryProjectStore) Get(_ context.Context, projectID string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ProjectID == projectID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeProjectNotFound, "project %s not found", projectID)
}

// Update implements ProjectStore.
func (s *MemoryProjectStore) Update(_ context.Context, projectID string, content ProjectContent, title string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.ProjectID == projectID && p.Status == StatusActive {
			p.Content = content
			if title != "" {
				p.Title = title
			}
			p.UpdatedAt = time.Now().UTC()
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeProjectNotFound, "project %s not found", projectID)
}

// List implements ProjectStore.
func (s *MemoryProjectStore) List(_ context.Context, status Status) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var projects []Project
	for _, p := range s.projects {
		if p.Status == status {
			projects = append(projects, *p)
		}
	}
	sortByUpdated(projects)
	return projects, nil
}

// Trash implements ProjectStore.
func (s *MemoryProjectStore) Trash(ctx context.Context, id string) (*Project, error) {
	return s.setStatus(ctx, id, StatusDeleted)
}

// Restore implements ProjectStore.
func (s *MemoryProjectStore) Restore(ctx context.Context, id string) (*Project, error) {
	return s.setStatus(ctx, id, StatusActive)
}

func (s *MemoryProjectStore) setStatus(_ context.Context, id string, status Status) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "project %s not found", id)
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	copied := *p
	return &copied, nil
}

// Delete implements ProjectStore.
func (s *MemoryProjectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return errors.New(errors.ErrCodeProjectNotFound, "project %s not found", id)
	}
	delete(s.projects, id)
	return nil
}

// Exists implements ProjectStore.
func (s *MemoryProjectStore) Exists(_ context.Context, projectID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ProjectID == projectID && p.Status == StatusActive {
			return true, nil
		}
	}
	return false, nil
}

// Recent implements ProjectStore.
func (s *MemoryProjectStore) Recent(_ context.Context, n int) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, *p)
	}
	sortByUpdated(projects)
	if len(projects) > n {
		projects = projects[:n]
	}
	return projects, nil
}

func sortByUpdated(projects []Project) {
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
}

// MemoryThemeStore is an in-memory ThemeStore seeded at construction.
type MemoryThemeStore struct {
	themes []theme.Theme
}

// Ensure MemoryThemeStore implements ThemeStore.
var _ ThemeStore = (*MemoryThemeStore)(nil)

// NewMemoryThemeStore creates a theme store holding the given themes.
func NewMemoryThemeStore(themes ...theme.Theme) *MemoryThemeStore {
	return &MemoryThemeStore{themes: themes}
}

// ListActive implements ThemeStore.
func (s *MemoryThemeStore) ListActive(_ context.Context) ([]theme.Theme, error) {
	var active []theme.Theme
	for _, t := range s.themes {
		if t.IsActive {
			active = append(active, t)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder < active[j].SortOrder
	})
	return active, nil
}

// Get implements ThemeStore.
func (s *MemoryThemeStore) Get(_ context.Context, slug string) (*theme.Theme, error) {
	for _, t := range s.themes {
		if t.Slug == slug {
			copied := t
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeThemeNotFound, "theme %q not found", slug)
}
