// Package gen generates slide decks with the Gemini API.
//
// Generation takes a user request (a free-form prompt or a prepared
// outline), a slide count, and a visual theme, and produces a full deck
// of typed slides: markdown bullet content, speaker notes, and image
// suggestions for downstream image resolution.
//
// # Architecture
//
// The package separates three concerns:
//   - Prompt construction ([BuildPrompt]): turns request parameters and
//     theme guidance into the model instruction.
//   - Model access ([Model], [GeminiModel]): a thin JSON-mode wrapper
//     around the official genai client.
//   - Response parsing ([ParseDeck]): strips code fences, validates the
//     deck shape, and normalizes slides.
//
// # Usage
//
//	model, err := gen.NewGeminiModel(ctx, apiKey, "gemini-2.0-flash")
//	if err != nil {
//	    return err
//	}
//	g := gen.NewGenerator(model, nil)
//	slides, err := g.Generate(ctx, gen.Params{
//	    Mode:       gen.ModeAI,
//	    Prompt:     "the future of renewable energy",
//	    SlideCount: 8,
//	    Theme:      th,
//	})
package gen

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/httputil"
	"github.com/deckforge/deckforge/pkg/observability"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// Mode selects how deck content is sourced.
type Mode string

// Generation modes. ModeAI expands a free-form prompt; ModeOutline
// fills in a user-provided slide outline.
const (
	ModeAI      Mode = "ai"
	ModeOutline Mode = "outline"
)

// Slide count bounds enforced on generation requests.
const (
	MinSlideCount = 3
	MaxSlideCount = 20
)

// Params describes a generation request.
type Params struct {
	Mode       Mode
	Prompt     string
	Outline    []string
	SlideCount int
	Theme      theme.Theme
}

// Validate checks the request parameters.
func (p Params) Validate() error {
	switch p.Mode {
	case ModeAI:
		if p.Prompt == "" {
			return errors.New(errors.ErrCodeInvalidInput, "prompt is required for ai mode")
		}
	case ModeOutline:
		if len(p.Outline) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "outline is required for outline mode")
		}
	default:
		return errors.New(errors.ErrCodeInvalidMode, "mode must be %q or %q", ModeAI, ModeOutline)
	}
	if p.SlideCount < MinSlideCount || p.SlideCount > MaxSlideCount {
		return errors.New(errors.ErrCodeInvalidInput,
			"slide count must be between %d and %d", MinSlideCount, MaxSlideCount)
	}
	return nil
}

// Model produces JSON responses from a prompt.
type Model interface {
	// Name identifies the model in logs.
	Name() string

	// GenerateJSON sends the prompt and returns the raw JSON response.
	GenerateJSON(ctx context.Context, prompt string) ([]byte, error)
}

// Generator generates decks through a Model.
type Generator struct {
	model  Model
	logger *log.Logger
}

// NewGenerator creates a Generator. A nil logger uses the package default.
func NewGenerator(model Model, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{model: model, logger: logger}
}

// Generate produces a deck for the given request. Transient model
// failures are retried with backoff; a malformed response fails the
// request once retries are exhausted.
func (g *Generator) Generate(ctx context.Context, p Params) ([]slide.Slide, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(p)
	g.logger.Debug("deck generation started",
		"model", g.model.Name(), "mode", p.Mode, "slides", p.SlideCount)

	observability.Pipeline().OnGenerateStart(ctx, string(p.Mode), p.SlideCount)
	start := time.Now()

	var slides []slide.Slide
	err := httputil.RetryWithBackoff(ctx, func() error {
		raw, err := g.model.GenerateJSON(ctx, prompt)
		if err != nil {
			return err
		}
		parsed, err := ParseDeck(raw)
		if err != nil {
			// Malformed output is usually transient; let the model try again.
			return &httputil.RetryableError{Err: err}
		}
		slides = parsed
		return nil
	})

	observability.Pipeline().OnGenerateComplete(ctx, string(p.Mode), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "generate deck")
	}

	g.logger.Debug("deck generation complete",
		"slides", len(slides), "duration", time.Since(start))
	return slides, nil
}
