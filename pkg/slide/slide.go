// Package slide defines the presentation document model shared by the
// stores, the generator, and the render pipeline.
package slide

import (
	"encoding/json"

	"github.com/deckforge/deckforge/pkg/content"
	"github.com/deckforge/deckforge/pkg/layout"
)

// Type is the declared slide type. It drives layout selection before any
// content heuristics run.
type Type string

// Slide types.
const (
	TypeTitle      Type = "TitleSlide"
	TypeAgenda     Type = "AgendaSlide"
	TypeContent    Type = "ContentSlide"
	TypeConclusion Type = "ConclusionSlide"
	TypeQA         Type = "Q&A"
	TypeCoordinate Type = "Coordinate"
)

// Valid reports whether t is a known slide type. Unknown types are not an
// error anywhere in the pipeline; they just get content-heuristic layouts.
func (t Type) Valid() bool {
	switch t {
	case TypeTitle, TypeAgenda, TypeContent, TypeConclusion, TypeQA, TypeCoordinate:
		return true
	}
	return false
}

// Slide is one slide as generated, persisted, and edited. Content stays
// raw JSON until the layout engine normalizes it; the model never reshapes
// it, so whatever the generator or the editor wrote survives round trips
// untouched.
type Slide struct {
	SlideNumber     int                `json:"slideNumber" bson:"slideNumber"`
	Type            Type               `json:"type" bson:"type"`
	Header          string             `json:"header,omitempty" bson:"header,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Content         json.RawMessage    `json:"content,omitempty" bson:"content,omitempty"`
	SpeakerNotes    string             `json:"speakerNotes,omitempty" bson:"speakerNotes,omitempty"`
	Footer          string             `json:"footer,omitempty" bson:"footer,omitempty"`
	ImageURL        string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ImageSuggestion string             `json:"imageSuggestion,omitempty" bson:"imageSuggestion,omitempty"`
	Layout          layout.PositionMap `json:"layout,omitempty" bson:"layout,omitempty"`
}

// LayoutView projects the slide down to the layout engine's input shape.
func (s Slide) LayoutView() layout.Slide {
	var body any
	if len(s.Content) > 0 {
		body = s.Content
	}
	return layout.Slide{
		Type:     string(s.Type),
		Title:    s.Title,
		Content:  body,
		ImageURL: s.ImageURL,
		Layout:   s.Layout,
	}
}

// ParseContent normalizes the slide body into ordered items.
func (s Slide) ParseContent() content.Parsed {
	if len(s.Content) == 0 {
		return content.Parsed{}
	}
	return content.Parse(s.Content)
}

// ContentText returns the slide body flattened to a single display string.
func (s Slide) ContentText() string {
	if len(s.Content) == 0 {
		return ""
	}
	return content.Flatten(s.Content)
}

// AnalyzeLayout runs the layout engine for this slide at the given deck
// position and returns the generated positions.
func (s Slide) AnalyzeLayout(index int) (layout.Generated, error) {
	return layout.Generate(layout.Analyze(s.LayoutView(), index))
}
