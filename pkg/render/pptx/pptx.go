// Package pptx maps canvas elements and web coordinates onto PowerPoint
// page geometry.
//
// It produces the coordinate and option records a slide-deck writer needs;
// the actual .pptx assembly happens client side against this contract, so
// both sides must agree on the page size and scaling rules here.
package pptx

import (
	"math"

	"github.com/deckforge/deckforge/pkg/canvas"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/theme"
)

// Page size in inches for the 16:9 layout.
const (
	PageWidth  = 10.0
	PageHeight = 5.625
)

// Box is a placement on the PowerPoint page, in inches.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// FromWeb converts a normalized web rectangle to page inches, clamping
// width and height at the page edge. Returns false for rectangles that
// fail web-coordinate validation.
func FromWeb(r layout.Rect) (Box, bool) {
	if !validWeb(r) {
		return Box{}, false
	}
	x := r.X * PageWidth
	y := r.Y * PageHeight
	return Box{
		X: x,
		Y: y,
		W: math.Min(r.W*PageWidth, PageWidth-x),
		H: math.Min(r.H*PageHeight, PageHeight-y),
	}, true
}

// validWeb mirrors the editor's coordinate check: finite values,
// non-negative size, origin inside the canvas. Unlike the engine's output
// validation there is no edge-overshoot allowance; clamping in [FromWeb]
// handles overshoot instead.
func validWeb(r layout.Rect) bool {
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.W >= 0 && r.H >= 0 && r.X >= 0 && r.X <= 1 && r.Y >= 0 && r.Y <= 1
}

// ValidateLayout filters a position map down to its valid rectangles.
// Returns nil when nothing survives, so callers can fall back to re-running
// the layout engine.
func ValidateLayout(m layout.PositionMap) layout.PositionMap {
	out := layout.PositionMap{}
	for key, r := range m {
		if r != nil && validWeb(*r) {
			out[key] = r
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FromCanvas converts a pixel-valued canvas element's bounds to page
// inches.
func FromCanvas(el canvas.Element) Box {
	scaleX := PageWidth / canvas.Width
	scaleY := PageHeight / canvas.Height
	return Box{
		X: float64(el.X) * scaleX,
		Y: float64(el.Y) * scaleY,
		W: float64(el.Width) * scaleX,
		H: float64(el.Height) * scaleY,
	}
}

// Text is the option record for one text placement.
type Text struct {
	Box      Box     `json:"box"`
	Text     string  `json:"text"`
	FontFace string  `json:"fontFace"`
	FontSize float64 `json:"fontSize"`
	Color    string  `json:"color"`
	Bold     bool    `json:"bold"`
	Italic   bool    `json:"italic"`
	Align    string  `json:"align"`
	VAlign   string  `json:"valign"`
}

// Image is the option record for one image placement. Data URLs and
// http(s) URLs are the only sources a writer accepts.
type Image struct {
	Box Box    `json:"box"`
	Src string `json:"src"`
}

// Shape is the option record for one shape placement.
type Shape struct {
	Box       Box    `json:"box"`
	ShapeType string `json:"shapeType"`
	Fill      string `json:"fill"`
}

// TextFromElement maps a baked text element to its page options. Font
// sizes scale by 720/canvasWidth so a 56pt canvas title lands at PowerPoint
// proportions.
func TextFromElement(el canvas.Element, th theme.Theme) Text {
	color := el.Fill
	if color == "" {
		color = th.TextColor
	}
	if color == "" {
		color = "#000000"
	}
	face := el.FontFamily
	if face == "" {
		face = th.BodyFont
	}
	if face == "" {
		face = "Arial"
	}
	size := el.FontSize
	if size == 0 {
		size = 18
	}
	align := el.Align
	if align == "" {
		align = "left"
	}
	valign := el.VerticalAlign
	if valign == "" {
		valign = "top"
	}
	return Text{
		Box:      FromCanvas(el),
		Text:     el.Text,
		FontFace: face,
		FontSize: float64(size) * 720 / canvas.Width,
		Color:    theme.ToHex(color),
		Bold:     el.FontStyle == "bold",
		Italic:   el.FontStyle == "italic",
		Align:    align,
		VAlign:   valign,
	}
}

// ImageFromElement maps a baked image element to its page options.
func ImageFromElement(el canvas.Element) Image {
	return Image{
		Box: FromCanvas(el),
		Src: el.Src,
	}
}

// SlideExport groups the option records for one slide, in page inches.
type SlideExport struct {
	Texts  []Text  `json:"texts"`
	Images []Image `json:"images"`
	Shapes []Shape `json:"shapes"`
}

// ExportSlide converts one slide's baked elements to their page option
// records. Unknown element kinds are skipped.
func ExportSlide(elements []canvas.Element, th theme.Theme) SlideExport {
	var out SlideExport
	for _, el := range elements {
		switch el.Type {
		case canvas.KindText:
			out.Texts = append(out.Texts, TextFromElement(el, th))
		case canvas.KindImage:
			out.Images = append(out.Images, ImageFromElement(el))
		case canvas.KindShape:
			out.Shapes = append(out.Shapes, ShapeFromElement(el, th))
		}
	}
	return out
}

// ShapeFromElement maps a baked shape element to its page options.
func ShapeFromElement(el canvas.Element, th theme.Theme) Shape {
	fill := el.Fill
	if fill == "" {
		fill = th.PrimaryColor
	}
	if fill == "" {
		fill = "#000000"
	}
	shapeType := el.ShapeType
	if shapeType == "" {
		shapeType = "rect"
	}
	return Shape{
		Box:       FromCanvas(el),
		ShapeType: shapeType,
		Fill:      theme.ToHex(fill),
	}
}
