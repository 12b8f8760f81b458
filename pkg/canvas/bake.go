package canvas

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/pkg/content"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// palette is a theme resolved with the baking defaults, which carry the
// full font stacks the editor renders with.
type palette struct {
	primary string
	text    string
	heading string
	body    string
}

func resolvePalette(t theme.Theme) palette {
	return palette{
		primary: orDefault(t.PrimaryColor, "#1f2937"),
		text:    orDefault(t.TextColor, "#374151"),
		heading: orDefault(t.HeadingFont, "Inter, system-ui, sans-serif"),
		body:    orDefault(t.BodyFont, "Inter, system-ui, sans-serif"),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// GenerateElements runs the layout engine for the slide and bakes the
// resulting positions into pixel-valued elements at the reference canvas
// size. The layout analyzer takes the slide's 0-based deck position, the
// same convention the deck pipeline uses, so both paths place a given
// slide identically.
func GenerateElements(s slide.Slide, t theme.Theme) ([]Element, error) {
	idx := s.SlideNumber - 1
	if idx < 0 {
		idx = 0
	}
	gen, err := s.AnalyzeLayout(idx)
	if err != nil {
		return nil, err
	}
	return BakeElements(s, gen, t), nil
}

// BakeElements converts an already generated layout into canvas elements.
// Split out from [GenerateElements] so pipelines that cached the layout
// stage can bake without re-analyzing.
func BakeElements(s slide.Slide, gen layout.Generated, t theme.Theme) []Element {
	pal := resolvePalette(t)
	positions := gen.Positions
	var elements []Element

	if s.Title != "" && positions["title"] != nil {
		titleSize := 56
		align := "left"
		if gen.Name == layout.NameTitleSpecial {
			titleSize = 84
			align = "center"
		}
		elements = append(elements, Element{
			ID:            elementID("title", s.SlideNumber),
			Type:          KindText,
			Text:          s.Title,
			X:             pxW(positions["title"].X),
			Y:             pxH(positions["title"].Y),
			Width:         pxW(positions["title"].W),
			Height:        pxH(positions["title"].H),
			FontSize:      titleSize,
			FontFamily:    pal.heading,
			Fill:          pal.primary,
			FontStyle:     "bold",
			Align:         align,
			VerticalAlign: "middle",
			LineHeight:    1.1,
			Draggable:     true,
			ShadowColor:   "rgba(0, 0, 0, 0.1)",
			ShadowBlur:    2,
			ShadowOffsetX: 1,
			ShadowOffsetY: 1,
		})
	}

	if len(s.Content) > 0 && positions["content"] != nil {
		elements = append(elements, Element{
			ID:            elementID("content", s.SlideNumber),
			Type:          KindText,
			Text:          s.ContentText(),
			X:             pxW(positions["content"].X),
			Y:             pxH(positions["content"].Y),
			Width:         pxW(positions["content"].W),
			Height:        pxH(positions["content"].H),
			FontSize:      32,
			LineHeight:    1.6,
			FontFamily:    pal.body,
			Fill:          pal.text,
			Align:         "left",
			VerticalAlign: "top",
			Draggable:     true,
			Padding:       20,
		})
	}

	if s.ImageURL != "" && positions["image"] != nil {
		if src, ok := cleanImageURL(s.ImageURL); ok {
			elements = append(elements, Element{
				ID:            elementID("image", s.SlideNumber),
				Type:          KindImage,
				Src:           src,
				X:             pxW(positions["image"].X),
				Y:             pxH(positions["image"].Y),
				Width:         pxW(positions["image"].W),
				Height:        pxH(positions["image"].H),
				Draggable:     true,
				CornerRadius:  12,
				ShadowColor:   "rgba(0, 0, 0, 0.15)",
				ShadowBlur:    8,
				ShadowOffsetX: 2,
				ShadowOffsetY: 4,
			})
		}
	}

	if gen.Name == layout.NameMultiColumn {
		for i, item := range contentArray(s) {
			pos := positions[fmt.Sprintf("content%d", i)]
			if pos == nil {
				continue
			}
			elements = append(elements, Element{
				ID:            elementID(fmt.Sprintf("content%d", i), s.SlideNumber),
				Type:          KindText,
				Text:          content.Flatten(item),
				X:             pxW(pos.X),
				Y:             pxH(pos.Y),
				Width:         pxW(pos.W),
				Height:        pxH(pos.H),
				FontSize:      28,
				LineHeight:    1.5,
				FontFamily:    pal.body,
				Fill:          pal.text,
				Align:         "left",
				VerticalAlign: "top",
				Draggable:     true,
				Padding:       16,
			})
		}
	}

	if gen.Name == layout.NameZigzagTimeline || gen.Name == layout.NamePyramid {
		for i, item := range contentArray(s) {
			pos := positions[fmt.Sprintf("item%dT", i)]
			if pos == nil {
				continue
			}
			elements = append(elements, Element{
				ID:            elementID(fmt.Sprintf("timeline-%d", i), s.SlideNumber),
				Type:          KindText,
				Text:          content.Parse(item).Flatten(),
				X:             pxW(pos.X),
				Y:             pxH(pos.Y),
				Width:         pxW(pos.W),
				Height:        pxH(pos.H),
				FontSize:      24,
				LineHeight:    1.4,
				FontFamily:    pal.body,
				Fill:          pal.text,
				Align:         "left",
				VerticalAlign: "top",
				Draggable:     true,
				Padding:       12,
			})
		}
	}

	if line := positions["line"]; line != nil {
		elements = append(elements, Element{
			ID:        elementID("line", s.SlideNumber),
			Type:      KindShape,
			ShapeType: "line",
			X:         pxW(line.X),
			Y:         pxH(line.Y),
			Width:     pxW(line.W),
			Height:    pxH(line.H),
			Fill:      pal.primary,
			Draggable: true,
		})
	}

	return elements
}

// contentArray returns the slide body's top-level array elements, or nil
// when the body is not an array. Per-slot baking only applies to
// array-shaped content.
func contentArray(s slide.Slide) []any {
	if len(s.Content) == 0 {
		return nil
	}
	v, err := content.DecodeOrdered(s.Content)
	if err != nil {
		return nil
	}
	arr, _ := v.([]any)
	return arr
}

// cleanImageURL trims the URL, defaults a missing scheme to https, and
// validates the result. Unparseable URLs are skipped rather than baked.
func cleanImageURL(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}
	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		cleaned = "https://" + cleaned
	}
	u, err := url.Parse(cleaned)
	if err != nil || u.Host == "" {
		return "", false
	}
	return cleaned, true
}

// elementID keys elements by kind and slide number, falling back to a UUID
// when the slide has no number yet (unsaved drafts).
func elementID(kind string, slideNumber int) string {
	if slideNumber > 0 {
		return fmt.Sprintf("%s-%d", kind, slideNumber)
	}
	return kind + "-" + uuid.NewString()
}

func pxW(frac float64) int { return int(math.Round(frac * Width)) }
func pxH(frac float64) int { return int(math.Round(frac * Height)) }
