package store

import (
	"context"
	"testing"
	"time"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

func newTestProject(projectID, title string) *Project {
	return &Project{
		ProjectID: projectID,
		Title:     title,
		Content: ProjectContent{
			Slides: []slide.Slide{
				{SlideNumber: 1, Type: slide.TypeTitle, Title: title},
			},
			Theme: theme.Theme{Slug: "minimal", Name: "Minimal"},
		},
	}
}

func TestMemoryProjectStoreSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProjectStore()

	p := newTestProject("1001", "Q3 Review")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if p.ID == "" {
		t.Error("Save() did not assign an ID")
	}
	if p.Status != StatusActive {
		t.Errorf("Status = %q, want %q", p.Status, StatusActive)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("Save() did not assign timestamps")
	}

	// Same ProjectID again conflicts while active.
	err := s.Save(ctx, newTestProject("1001", "Duplicate"))
	if !errors.Is(err, errors.ErrCodeProjectExists) {
		t.Errorf("duplicate Save() error = %v, want PROJECT_EXISTS", err)
	}
}

func TestMemoryProjectStoreGetAndExists(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProjectStore()

	if err := s.Save(ctx, newTestProject("1001", "Q3 Review")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, "1001")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Q3 Review" {
		t.Errorf("Title = %q, want %q", got.Title, "Q3 Review")
	}

	if _, err := s.Get(ctx, "9999"); !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("Get(missing) error = %v, want PROJECT_NOT_FOUND", err)
	}

	exists, err := s.Exists(ctx, "1001")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v, want true, nil", exists, err)
	}
	exists, err = s.Exists(ctx, "9999")
	if err != nil || exists {
		t.Errorf("Exists(missing) = %v, %v, want false, nil", exists, err)
	}
}

func TestMemoryProjectStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProjectStore()

	if err := s.Save(ctx, newTestProject("1001", "Draft")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content := ProjectContent{
		Slides: []slide.Slide{
			{SlideNumber: 1, Type: slide.TypeTitle, Title: "Final"},
			{SlideNumber: 2, Type: slide.TypeContent, Title: "Details"},
		},
	}
	got, err := s.Update(ctx, "1001", content, "Final")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Title != "Final" {
		t.Errorf("Title = %q, want %q", got.Title, "Final")
	}
	if len(got.Content.Slides) != 2 {
		t.Errorf("len(Slides) = %d, want 2", len(got.Content.Slides))
	}

	// Empty title keeps the existing one.
	got, err = s.Update(ctx, "1001", content, "")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Title != "Final" {
		t.Errorf("Title after empty update = %q, want %q", got.Title, "Final")
	}

	if _, err := s.Update(ctx, "9999", content, "x"); !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("Update(missing) error = %v, want PROJECT_NOT_FOUND", err)
	}
}

func TestMemoryProjectStoreTrashRestoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProjectStore()

	p := newTestProject("1001", "Q3 Review")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	trashed, err := s.Trash(ctx, p.ID)
	if err != nil {
		t.Fatalf("Trash() error = %v", err)
	}
	if trashed.Status != StatusDeleted {
		t.Errorf("Status after Trash = %q, want %q", trashed.Status, StatusDeleted)
	}

	// Trashed projects no longer block saving the same ProjectID.
	exists, _ := s.Exists(ctx, "1001")
	if exists {
		t.Error("Exists() = true for trashed project, want false")
	}

	restored, err := s.Restore(ctx, p.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.Status != StatusActive {
		t.Errorf("Status after Restore = %q, want %q", restored.Status, StatusActive)
	}

	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, p.ID); !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("second Delete() error = %v, want PROJECT_NOT_FOUND", err)
	}
}

func TestMemoryProjectStoreListSortedByUpdated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProjectStore()

	for _, id := range []string{"1", "2", "3"} {
		if err := s.Save(ctx, newTestProject(id, "Deck "+id)); err != nil {
			t.Fatalf("Save(%s) error = %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	// Touch the oldest so it sorts first.
	if _, err := s.Update(ctx, "1", ProjectContent{}, ""); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	projects, err := s.List(ctx, StatusActive)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("len(projects) = %d, want 3", len(projects))
	}
	if projects[0].ProjectID != "1" {
		t.Errorf("projects[0].ProjectID = %q, want %q", projects[0].ProjectID, "1")
	}

	deleted, err := s.List(ctx, StatusDeleted)
	if err != nil {
		t.Fatalf("List(deleted) error = %v", err)
	}
	if len(deleted) != 0 {
		t.Errorf("len(deleted) = %d, want 0", len(deleted))
	}
}

func TestMemoryProjectStoreRecent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProjectStore()

	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		if err := s.Save(ctx, newTestProject(id, "Deck "+id)); err != nil {
			t.Fatalf("Save(%s) error = %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := s.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("len(recent) = %d, want 5", len(recent))
	}
	if recent[0].ProjectID != "7" {
		t.Errorf("recent[0].ProjectID = %q, want %q", recent[0].ProjectID, "7")
	}
}

func TestMemoryThemeStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryThemeStore(
		theme.Theme{Slug: "dark", Name: "Dark", IsActive: true, SortOrder: 2},
		theme.Theme{Slug: "minimal", Name: "Minimal", IsActive: true, SortOrder: 1},
		theme.Theme{Slug: "legacy", Name: "Legacy", IsActive: false, SortOrder: 0},
	)

	themes, err := s.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("len(themes) = %d, want 2", len(themes))
	}
	if themes[0].Slug != "minimal" || themes[1].Slug != "dark" {
		t.Errorf("order = [%s %s], want [minimal dark]", themes[0].Slug, themes[1].Slug)
	}

	got, err := s.Get(ctx, "legacy")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Legacy" {
		t.Errorf("Name = %q, want %q", got.Name, "Legacy")
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, errors.ErrCodeThemeNotFound) {
		t.Errorf("Get(missing) error = %v, want THEME_NOT_FOUND", err)
	}
}

func TestMemoryJobStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryJobStore()

	j := &Job{ThemeSlug: "minimal", Mode: "ai", SlideCount: 8, Prompt: "solar"}
	if err := s.Create(ctx, j); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if j.ID == "" || j.Status != JobPending {
		t.Errorf("Create() assigned ID %q status %q", j.ID, j.Status)
	}

	slides := []slide.Slide{{SlideNumber: 1, Type: slide.TypeTitle, Title: "Solar"}}
	if err := s.SetStatus(ctx, j.ID, JobCompleted, slides, ""); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	got, err := s.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != JobCompleted || len(got.Slides) != 1 {
		t.Errorf("job = %+v, want completed with slides", got)
	}

	if err := s.SetStatus(ctx, "missing", JobFailed, nil, "boom"); !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("SetStatus(missing) error = %v, want PROJECT_NOT_FOUND", err)
	}
}

func TestMemoryJobStoreFailure(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryJobStore()

	j := &Job{ThemeSlug: "minimal", Mode: "ai", SlideCount: 5}
	if err := s.Create(ctx, j); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.SetStatus(ctx, j.ID, JobFailed, nil, "model unavailable"); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	got, _ := s.Get(ctx, j.ID)
	if got.Status != JobFailed || got.Error != "model unavailable" {
		t.Errorf("job = %+v, want failed with error", got)
	}
}

func TestMemoryJobStoreLast(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryJobStore()

	if _, err := s.Last(ctx); !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("Last(empty) error = %v, want PROJECT_NOT_FOUND", err)
	}

	for _, p := range []string{"first", "second"} {
		if err := s.Create(ctx, &Job{Mode: "ai", Prompt: p, SlideCount: 5}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	last, err := s.Last(ctx)
	if err != nil {
		t.Fatalf("Last() error = %v", err)
	}
	if last.Prompt != "second" {
		t.Errorf("Last().Prompt = %q, want second", last.Prompt)
	}
}

func TestDateLabel(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		updated time.Time
		want    string
	}{
		{"same day", now.Add(-2 * time.Hour), "Today"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"last week", now.Add(-6 * 24 * time.Hour), "6 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateLabel(tt.updated, now); got != tt.want {
				t.Errorf("DateLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
