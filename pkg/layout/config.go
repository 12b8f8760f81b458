package layout

// Name identifies a layout archetype. The set is closed: every slide
// resolves to exactly one of these, and the generator treats anything else
// as NameStandardText.
type Name string

// Layout archetypes.
const (
	// NameCoordinate passes caller-supplied positions through verbatim
	// (manual override escape hatch).
	NameCoordinate Name = "coordinate"

	// NameTitleSpecial is the centered-title layout for title and Q&A
	// slides.
	NameTitleSpecial Name = "title-special"

	// NameAlternatingSplit places text and image side by side, flipping
	// sides on alternating slides.
	NameAlternatingSplit Name = "alternating-split"

	// NameImageContentStack stacks title, image, and dense content
	// vertically.
	NameImageContentStack Name = "image-content-stack"

	// NameImageFocus gives a large image most of the slide with a narrow
	// text rail.
	NameImageFocus Name = "image-focus"

	// NameMultiColumn splits very dense content into equal columns.
	NameMultiColumn Name = "multi-column"

	// NameCompactList is a tight single-column list for dense content.
	NameCompactList Name = "compact-list"

	// NameZigzagTimeline alternates items left and right of a vertical
	// center line with connector circles.
	NameZigzagTimeline Name = "zigzag-timeline"

	// NamePyramid stacks items along a left rail of circles.
	NamePyramid Name = "pyramid"

	// NameStandardText is the default title-over-content layout and the
	// fallback for anything unrecognized.
	NameStandardText Name = "standard-text"
)

// Names lists every layout archetype.
var Names = []Name{
	NameCoordinate,
	NameTitleSpecial,
	NameAlternatingSplit,
	NameImageContentStack,
	NameImageFocus,
	NameMultiColumn,
	NameCompactList,
	NameZigzagTimeline,
	NamePyramid,
	NameStandardText,
}

// Valid reports whether n is a member of the closed archetype set.
func (n Name) Valid() bool {
	switch n {
	case NameCoordinate, NameTitleSpecial, NameAlternatingSplit,
		NameImageContentStack, NameImageFocus, NameMultiColumn,
		NameCompactList, NameZigzagTimeline, NamePyramid, NameStandardText:
		return true
	}
	return false
}

// Params is the parameter bag attached to a layout selection. Which fields
// are meaningful depends on the archetype:
//
//	title-special:     HasImage
//	alternating-split: IsImageLeft
//	image-focus:       IsImageLeft
//	multi-column:      Columns
//	zigzag-timeline:   ItemCount
//	pyramid:           ItemCount
//	standard-text:     TitleHeight
//	coordinate:        Positions
//
// Fields irrelevant to an archetype are ignored by the generator, so a
// Config round-tripped through JSON with extra fields set stays harmless.
type Params struct {
	HasImage    bool        `json:"hasImage,omitempty"`
	IsImageLeft bool        `json:"isImageLeft,omitempty"`
	Columns     int         `json:"columns,omitempty"`
	ItemCount   int         `json:"itemCount,omitempty"`
	TitleHeight float64     `json:"titleHeight,omitempty"`
	Positions   PositionMap `json:"positions,omitempty"`
}

// Config is the analyzer's verdict for one slide: the archetype to render
// and its parameters. It is the only contract between Analyze and Generate.
type Config struct {
	Name   Name   `json:"name"`
	Params Params `json:"params"`
}

// Generated is the final output of the engine for one slide.
type Generated struct {
	Name      Name        `json:"name"`
	Positions PositionMap `json:"positions"`
}
