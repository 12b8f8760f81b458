package pipeline

import (
	"encoding/json"
	"io"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// Deck is the JSON document exchanged with the editor: the slides plus
// the theme they were authored with.
type Deck struct {
	Slides []slide.Slide `json:"slides"`
	Theme  theme.Theme   `json:"theme,omitempty"`
}

// ReadDeck parses and normalizes a deck document from r.
func ReadDeck(r io.Reader) (*Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read deck")
	}
	return UnmarshalDeck(data)
}

// UnmarshalDeck parses and normalizes a deck document.
func UnmarshalDeck(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse deck")
	}
	if err := NormalizeSlides(d.Slides); err != nil {
		return nil, err
	}
	return &d, nil
}

// NormalizeSlides validates a deck and repairs recoverable defects in
// place: missing slide numbers become sequential, and blank types
// default to ContentSlide. Unknown slide types are rejected.
func NormalizeSlides(slides []slide.Slide) error {
	if len(slides) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "deck has no slides")
	}
	if len(slides) > MaxSlides {
		return errors.New(errors.ErrCodeInvalidInput,
			"deck has %d slides, maximum is %d", len(slides), MaxSlides)
	}

	for i := range slides {
		if slides[i].SlideNumber == 0 {
			slides[i].SlideNumber = i + 1
		}
		if slides[i].Type == "" {
			slides[i].Type = slide.TypeContent
		}
		if !slides[i].Type.Valid() {
			return errors.New(errors.ErrCodeInvalidSlide,
				"slide %d has unknown type %q", i+1, slides[i].Type)
		}
	}
	return nil
}
