package pptx

import (
	"math"
	"testing"

	"github.com/deckforge/deckforge/pkg/canvas"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/theme"
)

func TestFromWeb(t *testing.T) {
	box, ok := FromWeb(layout.Rect{X: 0.1, Y: 0.3, W: 0.8, H: 0.4})
	if !ok {
		t.Fatal("valid rect rejected")
	}
	want := Box{X: 1, Y: 1.6875, W: 8, H: 2.25}
	if !boxClose(box, want) {
		t.Errorf("FromWeb() = %+v, want %+v", box, want)
	}
}

func TestFromWebClampsAtPageEdge(t *testing.T) {
	box, ok := FromWeb(layout.Rect{X: 0.5, Y: 0.5, W: 0.6, H: 0.6})
	if !ok {
		t.Fatal("rect rejected")
	}
	if box.X+box.W > PageWidth+1e-9 {
		t.Errorf("width not clamped: x=%v w=%v", box.X, box.W)
	}
	if box.Y+box.H > PageHeight+1e-9 {
		t.Errorf("height not clamped: y=%v h=%v", box.Y, box.H)
	}
}

func TestFromWebRejectsInvalid(t *testing.T) {
	bad := []layout.Rect{
		{X: math.NaN(), Y: 0, W: 0.1, H: 0.1},
		{X: math.Inf(1), Y: 0, W: 0.1, H: 0.1},
		{X: -0.1, Y: 0, W: 0.1, H: 0.1},
		{X: 1.1, Y: 0, W: 0.1, H: 0.1},
		{X: 0, Y: 0, W: -0.1, H: 0.1},
	}
	for _, r := range bad {
		if _, ok := FromWeb(r); ok {
			t.Errorf("FromWeb(%+v) accepted invalid rect", r)
		}
	}
}

func TestValidateLayout(t *testing.T) {
	m := layout.PositionMap{
		"title": {X: 0.1, Y: 0.1, W: 0.8, H: 0.2},
		"bad":   {X: math.NaN(), Y: 0, W: 0, H: 0},
		"nil":   nil,
	}
	got := ValidateLayout(m)
	if len(got) != 1 || got["title"] == nil {
		t.Errorf("ValidateLayout() = %v", got)
	}
	if ValidateLayout(layout.PositionMap{"bad": {X: -1}}) != nil {
		t.Error("all-invalid map should return nil")
	}
}

func TestFromCanvas(t *testing.T) {
	box := FromCanvas(canvas.Element{X: 1280, Y: 720, Width: 256, Height: 144})
	want := Box{X: 5, Y: 2.8125, W: 1, H: 0.5625}
	if !boxClose(box, want) {
		t.Errorf("FromCanvas() = %+v, want %+v", box, want)
	}
}

func TestTextFromElement(t *testing.T) {
	el := canvas.Element{
		Type: canvas.KindText, Text: "Title",
		X: 256, Y: 432, Width: 2048, Height: 576,
		FontSize: 56, FontFamily: "Inter", Fill: "#1f2937",
		FontStyle: "bold", Align: "center", VerticalAlign: "middle",
	}
	got := TextFromElement(el, theme.Theme{})
	if got.FontSize != 56*720.0/2560.0 {
		t.Errorf("FontSize = %v, want %v", got.FontSize, 56*720.0/2560.0)
	}
	if got.Color != "1f2937" {
		t.Errorf("Color = %q, want bare hex", got.Color)
	}
	if !got.Bold || got.Align != "center" || got.VAlign != "middle" {
		t.Errorf("options = %+v", got)
	}
}

func TestTextFromElementDefaults(t *testing.T) {
	got := TextFromElement(canvas.Element{Type: canvas.KindText}, theme.Theme{})
	if got.FontFace != "Arial" || got.Color != "000000" {
		t.Errorf("defaults = %+v", got)
	}
	if got.FontSize != 18*720.0/2560.0 {
		t.Errorf("default font size = %v", got.FontSize)
	}
	if got.Align != "left" || got.VAlign != "top" {
		t.Errorf("alignment defaults = %+v", got)
	}
}

func TestShapeFromElement(t *testing.T) {
	got := ShapeFromElement(canvas.Element{Type: canvas.KindShape, ShapeType: "line", Fill: "#3b82f6"}, theme.Theme{})
	if got.ShapeType != "line" || got.Fill != "3b82f6" {
		t.Errorf("ShapeFromElement() = %+v", got)
	}
}

func TestExportSlide(t *testing.T) {
	elems := []canvas.Element{
		{Type: canvas.KindShape, ShapeType: "rect", Fill: "#3b82f6"},
		{Type: canvas.KindText, Text: "Title", FontSize: 56},
		{Type: canvas.KindImage, Src: "https://example.com/a.png", X: 256, Y: 432, Width: 1024, Height: 576},
		{Type: "unknown"},
	}
	got := ExportSlide(elems, theme.Theme{PrimaryColor: "#111111"})
	if len(got.Texts) != 1 || len(got.Images) != 1 || len(got.Shapes) != 1 {
		t.Fatalf("ExportSlide() = %+v", got)
	}
	if got.Texts[0].Text != "Title" {
		t.Errorf("text = %+v", got.Texts[0])
	}
	if got.Images[0].Src != "https://example.com/a.png" {
		t.Errorf("image = %+v", got.Images[0])
	}
	if got.Shapes[0].Fill != "3b82f6" {
		t.Errorf("shape = %+v", got.Shapes[0])
	}
}

func boxClose(a, b Box) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}
