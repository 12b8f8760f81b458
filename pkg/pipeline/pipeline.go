// Package pipeline provides the core deck processing pipeline for Deckforge.
//
// This package implements the complete analyze → bake → render pipeline that
// can be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Analyze: Select a layout archetype per slide and generate its
//     fractional position map
//  2. Bake: Convert positions into absolute pixel canvas elements on the
//     2560x1440 reference canvas
//  3. Render: Generate output in various formats (HTML, SVG, PNG, PDF,
//     JSON, outline, PPTX coordinates)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Theme:   th,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, slides, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Slides[0].Artifacts["svg"]
//
// Run individual stages:
//
//	// Analyze only
//	layouts, err := runner.Analyze(ctx, slides, opts)
//
//	// Bake with existing layouts
//	elements := runner.Bake(ctx, slides, layouts, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/canvas"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultScale is the default PNG export scale factor relative to
	// the reference canvas.
	DefaultScale = 1.0

	// MaxSlides bounds deck size for a single pipeline run.
	MaxSlides = 100
)

// Format constants for output formats.
const (
	FormatHTML    = "html"
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatPDF     = "pdf"
	FormatJSON    = "json"
	FormatOutline = "outline"
	FormatPPTX    = "pptx"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML:    true,
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatJSON:    true,
	FormatOutline: true,
	FormatPPTX:    true,
}

// deckFormats are rendered once per deck rather than once per slide.
var deckFormats = map[string]bool{
	FormatJSON:    true,
	FormatOutline: true,
	FormatPPTX:    true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the deck pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Theme drives colors and fonts for baking and rendering.
	Theme theme.Theme `json:"theme,omitempty"`

	// ProjectID scopes deck-level cache entries. Optional.
	ProjectID string `json:"project_id,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`    // PNG scale factor
	Detailed bool     `json:"detailed,omitempty"` // Annotate outline nodes with layout info

	// ResolveImages fills missing slide image URLs from the image
	// provider chain before analysis.
	ResolveImages bool `json:"resolve_images,omitempty"`

	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Slides holds per-slide pipeline outputs in deck order.
	Slides []SlideResult

	// Deck contains deck-level artifacts keyed by format (json, outline).
	Deck map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// SlideResult is the pipeline output for one slide.
type SlideResult struct {
	Slide    slide.Slide      `json:"slide"`
	Layout   layout.Generated `json:"layout"`
	Elements []canvas.Element `json:"canvasElements"`

	// Artifacts contains per-slide rendered outputs keyed by format.
	Artifacts map[string][]byte `json:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlideCount   int
	ElementCount int
	AnalyzeTime  time.Duration
	BakeTime     time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHits int  // Number of slides whose layout came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: html, svg, png, pdf, json, outline, pptx)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SlideFormats returns the requested formats rendered per slide.
func (o *Options) SlideFormats() []string {
	var formats []string
	for _, f := range o.Formats {
		if !deckFormats[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

// DeckFormats returns the requested formats rendered once per deck.
func (o *Options) DeckFormats() []string {
	var formats []string
	for _, f := range o.Formats {
		if deckFormats[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

// LayoutKeyOpts returns cache key options for one slide's layout.
func (o *Options) LayoutKeyOpts(slideIndex int) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{SlideIndex: slideIndex}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Scale:     o.Scale,
		ThemeSlug: o.Theme.Slug,
	}
}
