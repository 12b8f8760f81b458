package gen

import (
	"encoding/json"
	"strings"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/slide"
)

// rawSlide matches the model's slide object. Content stays raw since
// models occasionally emit arrays or objects where a string was asked
// for, and the content parser handles all three.
type rawSlide struct {
	SlideNumber     int             `json:"slideNumber"`
	Type            string          `json:"type"`
	Header          string          `json:"header"`
	Title           string          `json:"title"`
	Content         json.RawMessage `json:"content"`
	SpeakerNotes    string          `json:"speakerNotes"`
	Footer          string          `json:"footer"`
	ImageSuggestion json.RawMessage `json:"imageSuggestion"`
}

type rawDeck struct {
	Slides []rawSlide `json:"slides"`
}

type imageSuggestion struct {
	Description string `json:"description"`
	Style       string `json:"style"`
}

// ParseDeck validates and normalizes a model response into slides.
// The requested slide count is not enforced; models occasionally drift
// by a slide and the deck is still usable. Empty or malformed decks
// are rejected.
func ParseDeck(raw []byte) ([]slide.Slide, error) {
	cleaned := stripFences(string(raw))

	var deck rawDeck
	if err := json.Unmarshal([]byte(cleaned), &deck); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "model returned invalid JSON")
	}
	if len(deck.Slides) == 0 {
		return nil, errors.New(errors.ErrCodeGenerationFailed, "model response has no slides array")
	}

	first := slide.Type(deck.Slides[0].Type)
	if first != slide.TypeTitle {
		return nil, errors.New(errors.ErrCodeGenerationFailed,
			"first slide must be a TitleSlide, got %q", deck.Slides[0].Type)
	}
	last := slide.Type(deck.Slides[len(deck.Slides)-1].Type)
	if last != slide.TypeConclusion && last != slide.TypeQA {
		return nil, errors.New(errors.ErrCodeGenerationFailed,
			"last slide must be a ConclusionSlide or Q&A, got %q", deck.Slides[len(deck.Slides)-1].Type)
	}

	slides := make([]slide.Slide, len(deck.Slides))
	for i, rs := range deck.Slides {
		number := rs.SlideNumber
		if number == 0 {
			number = i + 1
		}
		slides[i] = slide.Slide{
			SlideNumber:     number,
			Type:            slide.Type(rs.Type),
			Header:          rs.Header,
			Title:           rs.Title,
			Content:         rs.Content,
			SpeakerNotes:    rs.SpeakerNotes,
			Footer:          rs.Footer,
			ImageSuggestion: suggestionText(rs.ImageSuggestion),
		}
	}
	return slides, nil
}

// suggestionText flattens an image suggestion to a single prompt
// string. Models emit either a plain string or an object with
// description and style fields.
func suggestionText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj imageSuggestion
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	desc := strings.TrimSpace(obj.Description)
	style := strings.TrimSpace(obj.Style)
	switch {
	case desc == "":
		return style
	case style == "":
		return desc
	default:
		return desc + ", " + style
	}
}

// stripFences removes markdown code fences that models wrap around
// JSON despite instructions.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
