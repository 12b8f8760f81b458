package gen

import (
	"context"

	genai "google.golang.org/genai"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/httputil"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiModel wraps the official genai client in JSON mode.
type GeminiModel struct {
	cli   *genai.Client
	model string
}

// Ensure GeminiModel implements Model.
var _ Model = (*GeminiModel)(nil)

// NewGeminiModel creates a Gemini-backed model. An empty model name
// uses DefaultModel.
func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if model == "" {
		model = DefaultModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "create gemini client")
	}
	return &GeminiModel{cli: cli, model: model}, nil
}

// Name implements Model.
func (g *GeminiModel) Name() string { return "gemini:" + g.model }

// GenerateJSON implements Model. The request forces an
// application/json response so the model skips prose preambles.
func (g *GeminiModel) GenerateJSON(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, &httputil.RetryableError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &httputil.RetryableError{
			Err: errors.New(errors.ErrCodeGenerationFailed, "model returned no candidates"),
		}
	}
	return []byte(resp.Candidates[0].Content.Parts[0].Text), nil
}
