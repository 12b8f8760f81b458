package gen

import (
	"context"
	"strings"
	"testing"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		wantCode errors.Code
	}{
		{"valid ai", Params{Mode: ModeAI, Prompt: "energy", SlideCount: 8}, ""},
		{"valid outline", Params{Mode: ModeOutline, Outline: []string{"intro", "close"}, SlideCount: 3}, ""},
		{"missing prompt", Params{Mode: ModeAI, SlideCount: 8}, errors.ErrCodeInvalidInput},
		{"missing outline", Params{Mode: ModeOutline, SlideCount: 8}, errors.ErrCodeInvalidInput},
		{"bad mode", Params{Mode: "freestyle", Prompt: "x", SlideCount: 8}, errors.ErrCodeInvalidMode},
		{"too few slides", Params{Mode: ModeAI, Prompt: "x", SlideCount: 2}, errors.ErrCodeInvalidInput},
		{"too many slides", Params{Mode: ModeAI, Prompt: "x", SlideCount: 21}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestBuildPromptAIMode(t *testing.T) {
	p := Params{
		Mode:       ModeAI,
		Prompt:     "the future of renewable energy",
		SlideCount: 8,
		Theme: theme.Theme{
			Name:            "Minimal",
			Description:     "clean and airy",
			PrimaryColor:    "#1f2937",
			SecondaryColor:  "#8B5CF6",
			BackgroundColor: "#FFFFFF",
		},
	}
	prompt := BuildPrompt(p)

	for _, want := range []string{
		`"the future of renewable energy"`,
		"Total Number of Slides: 8",
		`Theme Name: "Minimal"`,
		"Primary (#1f2937)",
		`"slides"`,
		"TitleSlide",
		"ConclusionSlide",
		"imageSuggestion",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptOutlineMode(t *testing.T) {
	p := Params{
		Mode:       ModeOutline,
		Outline:    []string{"Why solar", "Cost curves", "What comes next"},
		SlideCount: 5,
	}
	prompt := BuildPrompt(p)

	if !strings.Contains(prompt, "1. Why solar") {
		t.Error("prompt missing first outline entry")
	}
	if !strings.Contains(prompt, "3. What comes next") {
		t.Error("prompt missing last outline entry")
	}
	if strings.Contains(prompt, "Visual Theme Guidelines") {
		t.Error("prompt has theme section without a theme")
	}
}

const validDeck = `{
  "slides": [
    {"slideNumber": 1, "type": "TitleSlide", "title": "Solar Rising", "content": "", "footer": "Acme",
     "imageSuggestion": {"description": "sunrise over solar panels", "style": "photorealistic"}},
    {"slideNumber": 2, "type": "ContentSlide", "title": "Cost Curves",
     "content": "**Price**: Module costs fell 90 percent.\n**Scale**: Deployment doubled.",
     "imageSuggestion": "falling line chart"},
    {"slideNumber": 3, "type": "Q&A", "title": "Questions"}
  ]
}`

func TestParseDeck(t *testing.T) {
	slides, err := ParseDeck([]byte(validDeck))
	if err != nil {
		t.Fatalf("ParseDeck() error = %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("len(slides) = %d, want 3", len(slides))
	}
	if slides[0].Type != slide.TypeTitle {
		t.Errorf("slides[0].Type = %q, want TitleSlide", slides[0].Type)
	}
	if slides[0].ImageSuggestion != "sunrise over solar panels, photorealistic" {
		t.Errorf("ImageSuggestion = %q", slides[0].ImageSuggestion)
	}
	if slides[1].ImageSuggestion != "falling line chart" {
		t.Errorf("string ImageSuggestion = %q", slides[1].ImageSuggestion)
	}
	if slides[2].SlideNumber != 3 {
		t.Errorf("SlideNumber = %d, want 3", slides[2].SlideNumber)
	}
}

func TestParseDeckStripsFences(t *testing.T) {
	fenced := "```json\n" + validDeck + "\n```"
	slides, err := ParseDeck([]byte(fenced))
	if err != nil {
		t.Fatalf("ParseDeck() error = %v", err)
	}
	if len(slides) != 3 {
		t.Errorf("len(slides) = %d, want 3", len(slides))
	}
}

func TestParseDeckAssignsMissingNumbers(t *testing.T) {
	deck := `{"slides": [
      {"type": "TitleSlide", "title": "A"},
      {"type": "ConclusionSlide", "title": "B"}
    ]}`
	slides, err := ParseDeck([]byte(deck))
	if err != nil {
		t.Fatalf("ParseDeck() error = %v", err)
	}
	if slides[0].SlideNumber != 1 || slides[1].SlideNumber != 2 {
		t.Errorf("numbers = %d, %d, want 1, 2", slides[0].SlideNumber, slides[1].SlideNumber)
	}
}

func TestParseDeckRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "here are your slides!"},
		{"no slides key", `{"deck": []}`},
		{"empty slides", `{"slides": []}`},
		{"first not title", `{"slides": [{"type": "ContentSlide"}, {"type": "Q&A"}]}`},
		{"last not closing", `{"slides": [{"type": "TitleSlide"}, {"type": "ContentSlide"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDeck([]byte(tt.raw)); !errors.Is(err, errors.ErrCodeGenerationFailed) {
				t.Errorf("ParseDeck() error = %v, want GENERATION_FAILED", err)
			}
		})
	}
}

// fakeModel returns canned responses in order.
type fakeModel struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) GenerateJSON(_ context.Context, _ string) ([]byte, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return []byte(f.responses[i]), nil
}

func TestGeneratorGenerate(t *testing.T) {
	g := NewGenerator(&fakeModel{responses: []string{validDeck}}, nil)
	slides, err := g.Generate(context.Background(), Params{Mode: ModeAI, Prompt: "solar", SlideCount: 3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(slides) != 3 {
		t.Errorf("len(slides) = %d, want 3", len(slides))
	}
}

func TestGeneratorRetriesMalformedResponse(t *testing.T) {
	model := &fakeModel{responses: []string{"not json at all", validDeck}}
	g := NewGenerator(model, nil)

	slides, err := g.Generate(context.Background(), Params{Mode: ModeAI, Prompt: "solar", SlideCount: 3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if model.calls != 2 {
		t.Errorf("calls = %d, want 2", model.calls)
	}
	if len(slides) != 3 {
		t.Errorf("len(slides) = %d, want 3", len(slides))
	}
}

func TestGeneratorInvalidParams(t *testing.T) {
	g := NewGenerator(&fakeModel{}, nil)
	if _, err := g.Generate(context.Background(), Params{Mode: ModeAI, SlideCount: 8}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Generate() error = %v, want INVALID_INPUT", err)
	}
}
