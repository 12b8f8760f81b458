package deck

import (
	"strings"
	"testing"

	"github.com/deckforge/deckforge/pkg/canvas"
	"github.com/deckforge/deckforge/pkg/theme"
)

func TestRenderSVG(t *testing.T) {
	elements := []canvas.Element{
		{
			ID: "title-1", Type: canvas.KindText, Text: "Hello <World>",
			X: 256, Y: 432, Width: 2048, Height: 576,
			FontSize: 84, FontFamily: "Inter", Fill: "#1f2937",
			FontStyle: "bold", Align: "center", VerticalAlign: "middle", LineHeight: 1.1,
		},
		{
			ID: "image-1", Type: canvas.KindImage, Src: "https://img.test/a.png",
			X: 1024, Y: 1080, Width: 512, Height: 216,
		},
		{
			ID: "line-1", Type: canvas.KindShape, ShapeType: "line",
			X: 1273, Y: 288, Width: 13, Height: 1080, Fill: "#1f2937",
		},
	}

	out := string(RenderSVG(elements, theme.Theme{}.Resolve()))

	if !strings.Contains(out, `viewBox="0 0 2560 1440"`) {
		t.Errorf("wrong viewBox:\n%s", out)
	}
	if !strings.Contains(out, `fill="#FFFFFF"`) {
		t.Error("missing background rect")
	}
	if !strings.Contains(out, "Hello &lt;World&gt;") {
		t.Error("text not escaped")
	}
	if !strings.Contains(out, `text-anchor="middle"`) {
		t.Error("centered text should anchor middle")
	}
	if !strings.Contains(out, `href="https://img.test/a.png"`) {
		t.Error("missing image")
	}
	if !strings.Contains(out, `<rect x="1273"`) {
		t.Error("missing shape rect")
	}
}

func TestRenderSVGMultiline(t *testing.T) {
	elements := []canvas.Element{
		{
			ID: "content-1", Type: canvas.KindText, Text: "one\ntwo\nthree",
			X: 100, Y: 100, Width: 1000, Height: 600,
			FontSize: 32, FontFamily: "Inter", Fill: "#374151", LineHeight: 1.6,
		},
	}
	out := string(RenderSVG(elements, theme.Theme{}.Resolve()))
	if got := strings.Count(out, "<tspan"); got != 3 {
		t.Errorf("tspan count = %d, want 3:\n%s", got, out)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	elements := []canvas.Element{
		{ID: "a", Type: canvas.KindText, Text: "x", FontSize: 32},
		{ID: "b", Type: canvas.KindShape, Fill: "#000"},
	}
	st := theme.Theme{}.Resolve()
	first := string(RenderSVG(elements, st))
	for i := 0; i < 5; i++ {
		if got := string(RenderSVG(elements, st)); got != first {
			t.Fatal("output diverged between runs")
		}
	}
}
