package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/observability"
	"github.com/deckforge/deckforge/pkg/render/deck"
	"github.com/deckforge/deckforge/pkg/render/dom"
	"github.com/deckforge/deckforge/pkg/render/outline"
	"github.com/deckforge/deckforge/pkg/render/pptx"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// RenderWithCacheInfo renders all requested formats into result and
// reports whether everything came from cache. Per-slide artifacts land
// in result.Slides[i].Artifacts, deck-level artifacts in result.Deck.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, opts Options) (bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	allCached := true
	styles := opts.Theme.Resolve()

	for i := range result.Slides {
		sr := &result.Slides[i]
		if sr.Artifacts == nil {
			sr.Artifacts = make(map[string][]byte)
		}

		hash := slideResultHash(sr)
		for _, format := range opts.SlideFormats() {
			key := ""
			if hash != "" {
				key = r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			}

			if !opts.Refresh && key != "" {
				if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
					observability.Cache().OnCacheHit(ctx, "artifact")
					sr.Artifacts[format] = data
					continue
				}
				observability.Cache().OnCacheMiss(ctx, "artifact")
			}
			allCached = false

			data, err := renderSlide(*sr, format, styles, opts.Scale)
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return false, errors.Wrap(errors.ErrCodeInvalidFormat, err,
					"render slide %d as %s", sr.Slide.SlideNumber, format)
			}
			sr.Artifacts[format] = data

			if key != "" {
				_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	for _, format := range opts.DeckFormats() {
		cached, err := r.renderDeck(ctx, result, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return false, err
		}
		if !cached {
			allCached = false
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return allCached, nil
}

// renderSlide produces one artifact for one slide.
func renderSlide(sr SlideResult, format string, styles theme.Styles, scale float64) ([]byte, error) {
	switch format {
	case FormatHTML:
		return dom.RenderHTML(sr.Slide, sr.Layout, styles), nil
	case FormatSVG:
		return deck.RenderSVG(sr.Elements, styles), nil
	case FormatPNG:
		return deck.RenderPNG(sr.Elements, styles, scale)
	case FormatPDF:
		return deck.RenderPDF(sr.Elements, styles)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown slide format %q", format)
	}
}

// renderDeck produces one deck-level artifact and stores it in
// result.Deck. The outline is cached; JSON is the result itself and is
// always marshaled fresh.
func (r *Runner) renderDeck(ctx context.Context, result *Result, format string, opts Options) (cached bool, err error) {
	switch format {
	case FormatJSON:
		payload := struct {
			Slides []SlideResult `json:"slides"`
			Theme  theme.Theme   `json:"theme"`
		}{Slides: result.Slides, Theme: opts.Theme}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return false, errors.Wrap(errors.ErrCodeInternal, err, "marshal deck")
		}
		result.Deck[FormatJSON] = data
		return true, nil

	case FormatPPTX:
		exports := make([]pptx.SlideExport, len(result.Slides))
		for i, sr := range result.Slides {
			exports[i] = pptx.ExportSlide(sr.Elements, opts.Theme)
		}
		data, err := json.MarshalIndent(exports, "", "  ")
		if err != nil {
			return false, errors.Wrap(errors.ErrCodeInternal, err, "marshal pptx export")
		}
		result.Deck[FormatPPTX] = data
		return true, nil

	case FormatOutline:
		slides := make([]slide.Slide, len(result.Slides))
		for i, sr := range result.Slides {
			slides[i] = sr.Slide
		}
		key := r.outlineKey(slides, opts)

		if !opts.Refresh && key != "" {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "deck")
				result.Deck[FormatOutline] = data
				return true, nil
			}
			observability.Cache().OnCacheMiss(ctx, "deck")
		}

		dot := outline.ToDOT(slides, outline.Options{Detailed: opts.Detailed})
		svg, err := outline.RenderSVG(dot)
		if err != nil {
			return false, errors.Wrap(errors.ErrCodeInternal, err, "render outline")
		}
		result.Deck[FormatOutline] = svg

		if key != "" {
			_ = r.Cache.Set(ctx, key, svg, cache.TTLArtifact)
			observability.Cache().OnCacheSet(ctx, "deck", len(svg))
		}
		return false, nil

	default:
		return false, errors.New(errors.ErrCodeInvalidFormat, "unknown deck format %q", format)
	}
}

// outlineKey computes the deck-level cache key for the outline artifact.
// The project ID scopes the entry when present; otherwise the deck
// content hash does.
func (r *Runner) outlineKey(slides []slide.Slide, opts Options) string {
	scope := opts.ProjectID
	if scope == "" {
		data, err := json.Marshal(slides)
		if err != nil {
			return ""
		}
		scope = cache.Hash(data)
	}
	if opts.Detailed {
		scope += ":detailed"
	}
	return r.Keyer.DeckKey(scope, cache.DeckKeyOpts{
		ThemeSlug:  opts.Theme.Slug,
		SlideCount: len(slides),
	})
}

// slideResultHash hashes the inputs that determine a slide's artifacts.
func slideResultHash(sr *SlideResult) string {
	data, err := json.Marshal(sr)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
