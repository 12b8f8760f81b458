package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/canvas"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/images"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/observability"
	"github.com/deckforge/deckforge/pkg/slide"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, image chain, and logger -
// it doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Images *images.Chain
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The image chain is optional; without one, ResolveImages is a no-op.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete analyze → bake → render pipeline with caching.
// The slides slice is normalized in place.
func (r *Runner) Execute(ctx context.Context, slides []slide.Slide, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	if err := NormalizeSlides(slides); err != nil {
		return nil, err
	}

	if opts.ResolveImages {
		r.ResolveImages(ctx, slides)
	}

	result := &Result{Deck: make(map[string][]byte)}
	result.Stats.SlideCount = len(slides)

	// Stage 1: Analyze
	analyzeStart := time.Now()
	layouts, layoutHits, err := r.AnalyzeWithCacheInfo(ctx, slides, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	result.CacheInfo.LayoutHits = layoutHits

	r.Logger.Info("analyzed layouts",
		"slides", len(slides),
		"cache_hits", layoutHits,
		"duration", result.Stats.AnalyzeTime)

	// Stage 2: Bake
	bakeStart := time.Now()
	elements := r.Bake(ctx, slides, layouts, opts)
	result.Stats.BakeTime = time.Since(bakeStart)
	for _, els := range elements {
		result.Stats.ElementCount += len(els)
	}

	r.Logger.Info("baked canvas elements",
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.BakeTime)

	result.Slides = make([]SlideResult, len(slides))
	for i := range slides {
		result.Slides[i] = SlideResult{
			Slide:    slides[i],
			Layout:   layouts[i],
			Elements: elements[i],
		}
	}

	// Stage 3: Render
	renderStart := time.Now()
	renderHit, err := r.RenderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// AnalyzeWithCacheInfo generates a layout per slide with caching and
// returns how many layouts came from cache.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, slides []slide.Slide, opts Options) ([]layout.Generated, int, error) {
	r.applyLogger(&opts)
	observability.Pipeline().OnAnalyzeStart(ctx, len(slides))
	start := time.Now()

	layouts := make([]layout.Generated, len(slides))
	hits := 0

	for i, s := range slides {
		key := r.layoutKey(s, i, opts)

		if !opts.Refresh && key != "" {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				var cached layout.Generated
				if err := json.Unmarshal(data, &cached); err == nil {
					observability.Cache().OnCacheHit(ctx, "layout")
					layouts[i] = cached
					hits++
					continue
				}
			}
			observability.Cache().OnCacheMiss(ctx, "layout")
		}

		gen, err := s.AnalyzeLayout(i)
		if err != nil {
			observability.Pipeline().OnAnalyzeComplete(ctx, len(slides), time.Since(start), err)
			return nil, hits, errors.Wrap(errors.ErrCodeInvalidLayout, err, "analyze slide %d", i+1)
		}
		layouts[i] = gen

		if key != "" {
			if data, err := json.Marshal(gen); err == nil {
				_ = r.Cache.Set(ctx, key, data, cache.TTLLayout)
				observability.Cache().OnCacheSet(ctx, "layout", len(data))
			}
		}
	}

	observability.Pipeline().OnAnalyzeComplete(ctx, len(slides), time.Since(start), nil)
	return layouts, hits, nil
}

// Analyze is a convenience wrapper that discards the cache hit info.
func (r *Runner) Analyze(ctx context.Context, slides []slide.Slide, opts Options) ([]layout.Generated, error) {
	layouts, _, err := r.AnalyzeWithCacheInfo(ctx, slides, opts)
	return layouts, err
}

// Bake converts per-slide layouts into pixel canvas elements. Baking is
// pure computation and is not cached.
func (r *Runner) Bake(ctx context.Context, slides []slide.Slide, layouts []layout.Generated, opts Options) [][]canvas.Element {
	r.applyLogger(&opts)
	observability.Pipeline().OnBakeStart(ctx, len(slides))
	start := time.Now()

	elements := make([][]canvas.Element, len(slides))
	total := 0
	for i, s := range slides {
		elements[i] = canvas.BakeElements(s, layouts[i], opts.Theme)
		total += len(elements[i])
	}

	observability.Pipeline().OnBakeComplete(ctx, total, time.Since(start), nil)
	return elements
}

// ResolveImages fills missing image URLs from image suggestions using
// the runner's provider chain. Failures leave the slide without an
// image; the layout engine handles that case.
func (r *Runner) ResolveImages(ctx context.Context, slides []slide.Slide) {
	if r.Images == nil {
		return
	}
	for i := range slides {
		if slides[i].ImageURL != "" || slides[i].ImageSuggestion == "" {
			continue
		}
		url, err := r.Images.Resolve(ctx, images.Request{
			Prompt:      slides[i].ImageSuggestion,
			SlideNumber: slides[i].SlideNumber,
		})
		if err != nil {
			r.Logger.Warn("image resolution failed",
				"slide", slides[i].SlideNumber, "err", err)
			continue
		}
		slides[i].ImageURL = url
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// layoutKey computes the cache key for one slide's layout. Returns ""
// when the slide cannot be serialized.
func (r *Runner) layoutKey(s slide.Slide, index int, opts Options) string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return r.Keyer.LayoutKey(cache.Hash(data), opts.LayoutKeyOpts(index))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
