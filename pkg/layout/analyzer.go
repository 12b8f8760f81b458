package layout

import "github.com/deckforge/deckforge/pkg/content"

// Slide is the analyzer's input view of a slide. It carries only the
// fields the decision tree looks at; the full document model lives
// elsewhere and converts down to this.
type Slide struct {
	// Type is the declared slide type, e.g. "TitleSlide", "ContentSlide",
	// "Q&A", "Conclusion", or "Coordinate".
	Type string

	// Title is the slide heading. Its length feeds the title height hint
	// for standard-text layouts.
	Title string

	// Content is the raw slide body in any of the shapes the normalizer
	// accepts (string, array, object, raw JSON).
	Content any

	// ImageURL is the slide image, empty when absent.
	ImageURL string

	// Layout is a caller-supplied absolute position map, honored only for
	// type "Coordinate".
	Layout PositionMap
}

// Density classifies how much normalized content a slide carries. Tiers
// are ordered: empty < sparse < normal < dense < very-dense.
type Density string

// Density tiers.
const (
	DensityEmpty     Density = "empty"
	DensitySparse    Density = "sparse"
	DensityNormal    Density = "normal"
	DensityDense     Density = "dense"
	DensityVeryDense Density = "very-dense"
)

// Classify maps item and character counts to a density tier. The cutoffs
// are tuned values that downstream visual designs depend on; do not adjust
// them.
func Classify(totalItems, totalChars int) Density {
	switch {
	case totalItems == 0:
		return DensityEmpty
	case totalItems <= 3 && totalChars < 200:
		return DensitySparse
	case totalItems <= 6 && totalChars < 500:
		return DensityNormal
	case totalItems <= 9 && totalChars < 800:
		return DensityDense
	default:
		return DensityVeryDense
	}
}

// Analyze selects a layout archetype for the slide. The rule order is a
// correctness invariant: special types first, explicit coordinates second,
// then the image branch, then the text branch. slideIndex parity is the
// sole source of left/right image flipping, so re-analyzing a slide in
// isolation stays stable as long as the same index is supplied.
//
// Analyze never fails; malformed or absent content degrades to
// standard-text with the minimal title height.
func Analyze(s Slide, slideIndex int) Config {
	if s.Type == "TitleSlide" || s.Type == "Q&A" {
		return Config{
			Name:   NameTitleSpecial,
			Params: Params{HasImage: s.ImageURL != ""},
		}
	}
	if s.Type == "Coordinate" && len(s.Layout) > 0 {
		return Config{
			Name:   NameCoordinate,
			Params: Params{Positions: s.Layout},
		}
	}

	parsed := content.Parse(s.Content)
	density := Classify(parsed.TotalItems, parsed.TotalChars())
	imageLeft := slideIndex%2 == 0

	if s.ImageURL != "" {
		switch density {
		case DensityVeryDense:
			return Config{Name: NameImageContentStack}
		case DensitySparse:
			return Config{
				Name:   NameImageFocus,
				Params: Params{IsImageLeft: imageLeft},
			}
		default:
			return Config{
				Name:   NameAlternatingSplit,
				Params: Params{IsImageLeft: imageLeft},
			}
		}
	}

	switch {
	case density == DensityVeryDense:
		if parsed.TotalItems > 12 {
			return Config{Name: NameMultiColumn, Params: Params{Columns: 2}}
		}
		return Config{Name: NameCompactList}
	case parsed.TotalItems >= 5 && parsed.TotalItems <= 9:
		return Config{
			Name:   NameZigzagTimeline,
			Params: Params{ItemCount: parsed.TotalItems},
		}
	case parsed.TotalItems >= 3 && parsed.TotalItems <= 4:
		return Config{
			Name:   NamePyramid,
			Params: Params{ItemCount: parsed.TotalItems},
		}
	default:
		return Config{
			Name:   NameStandardText,
			Params: Params{TitleHeight: titleHeightFor(s.Title)},
		}
	}
}

// titleHeightFor sizes the title slot for standard-text slides. Longer
// titles wrap, so they get a taller box.
func titleHeightFor(title string) float64 {
	switch {
	case len(title) > 100:
		return 0.25
	case len(title) > 50:
		return 0.2
	default:
		return 0.15
	}
}
