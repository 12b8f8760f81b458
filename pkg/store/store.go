// Package store provides persistence for saved presentations and themes.
//
// This package defines storage interfaces with implementations for different
// backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// # Architecture
//
// Projects are saved presentations. Each project carries the full deck
// content (slides plus resolved theme) along with listing metadata: a
// title, a generated SVG cover image, and a soft-delete status. The
// ProjectStore interface supports:
//   - Save with duplicate detection on the client-supplied project ID
//   - Listing by status, sorted by most recently updated
//   - Trash/restore status flips and permanent deletion
//
// Themes are the curated visual presets offered to users. The ThemeStore
// interface is read-only from the application's perspective.
//
// # Usage
//
// Create a project store:
//
//	// Development
//	projects := store.NewMemoryProjectStore()
//
//	// Production
//	db, err := store.Connect(ctx, "mongodb://localhost:27017", "deckforge")
//	if err != nil {
//	    return err
//	}
//	projects := store.NewMongoProjectStore(db)
//
// Save a presentation:
//
//	p := &store.Project{
//	    ProjectID: "4821",
//	    Title:     "Q3 Review",
//	    Content:   store.ProjectContent{Slides: slides, Theme: th},
//	}
//	if err := projects.Save(ctx, p); err != nil {
//	    if errors.Is(err, errors.ErrCodeProjectExists) {
//	        // Already saved
//	    }
//	    return err
//	}
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// Status is the lifecycle state of a saved project.
type Status string

// Project lifecycle states. Trashed projects are recoverable until
// permanently deleted.
const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// ProjectContent is the full deck payload stored with a project.
type ProjectContent struct {
	Slides []slide.Slide `json:"slides" bson:"slides"`
	Theme  theme.Theme   `json:"theme" bson:"theme"`
}

// Project is a saved presentation.
//
// ID is the storage identifier assigned on save. ProjectID is the
// client-supplied identifier from the editing session and is unique
// among active projects.
type Project struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	ProjectID     string         `json:"projectId" bson:"project_id"`
	Title         string         `json:"title" bson:"title"`
	Description   string         `json:"description,omitempty" bson:"description,omitempty"`
	CoverImageURL string         `json:"cover_image_url,omitempty" bson:"cover_image_url,omitempty"`
	Content       ProjectContent `json:"content" bson:"content"`
	Status        Status         `json:"status" bson:"status"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updated_at"`
}

// ProjectStore is the interface for project storage backends.
type ProjectStore interface {
	// Save stores a new project. It assigns ID, Status, and timestamps.
	// Returns ErrCodeProjectExists if an active project with the same
	// ProjectID already exists.
	Save(ctx context.Context, p *Project) error

	// Get retrieves a project by its client-supplied ProjectID.
	// Returns ErrCodeProjectNotFound if no project matches.
	Get(ctx context.Context, projectID string) (*Project, error)

	// Update replaces the content and title of an active project
	// identified by ProjectID and bumps its UpdatedAt.
	Update(ctx context.Context, projectID string, content ProjectContent, title string) (*Project, error)

	// List returns projects with the given status, most recently
	// updated first.
	List(ctx context.Context, status Status) ([]Project, error)

	// Trash marks the project with the given storage ID as deleted.
	Trash(ctx context.Context, id string) (*Project, error)

	// Restore marks the project with the given storage ID as active.
	Restore(ctx context.Context, id string) (*Project, error)

	// Delete permanently removes the project with the given storage ID.
	Delete(ctx context.Context, id string) error

	// Exists reports whether an active project with the given
	// ProjectID is saved.
	Exists(ctx context.Context, projectID string) (bool, error)

	// Recent returns the n most recently updated projects regardless
	// of status.
	Recent(ctx context.Context, n int) ([]Project, error)
}

// ThemeStore is the interface for theme catalog backends.
type ThemeStore interface {
	// ListActive returns active themes ordered by sort order.
	ListActive(ctx context.Context) ([]theme.Theme, error)

	// Get retrieves a theme by slug.
	// Returns ErrCodeThemeNotFound if no theme matches.
	Get(ctx context.Context, slug string) (*theme.Theme, error)
}

// DateLabel formats an update time as a relative label for sidebar and
// listing views: "Today", "Yesterday", or "N days ago".
func DateLabel(updated, now time.Time) string {
	days := int(now.Sub(updated).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
