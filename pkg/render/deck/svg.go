// Package deck renders baked canvas elements as SVG slides.
//
// One call renders one slide at the reference canvas resolution. The SVG
// output doubles as the source for PNG and PDF conversion via the parent
// render package.
package deck

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/canvas"
	"github.com/deckforge/deckforge/pkg/fonts"
	"github.com/deckforge/deckforge/pkg/render"
	"github.com/deckforge/deckforge/pkg/theme"
)

// RenderSVG renders one slide's elements as a standalone SVG document at
// canvas resolution.
func RenderSVG(elements []canvas.Element, st theme.Styles) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		canvas.Width, canvas.Height, canvas.Width, canvas.Height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill=%q/>`+"\n",
		canvas.Width, canvas.Height, st.Background)

	for _, el := range elements {
		switch el.Type {
		case canvas.KindText:
			renderText(&buf, el)
		case canvas.KindImage:
			renderImage(&buf, el)
		case canvas.KindShape:
			renderShape(&buf, el)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderPNG renders the slide as PNG via SVG conversion at the given scale.
func RenderPNG(elements []canvas.Element, st theme.Styles, scale float64) ([]byte, error) {
	return render.ToPNG(RenderSVG(elements, st), scale)
}

// RenderPDF renders the slide as a single-page PDF via SVG conversion.
func RenderPDF(elements []canvas.Element, st theme.Styles) ([]byte, error) {
	return render.ToPDF(RenderSVG(elements, st))
}

func renderText(buf *bytes.Buffer, el canvas.Element) {
	lines := strings.Split(el.Text, "\n")
	lineHeight := el.LineHeight
	if lineHeight == 0 {
		lineHeight = 1.2
	}
	step := float64(el.FontSize) * lineHeight

	anchor, x := "start", el.X+el.Padding
	if el.Align == "center" {
		anchor, x = "middle", el.X+el.Width/2
	}

	// First baseline sits one font size below the box top; middle vertical
	// alignment centers the block in the box instead.
	baseline := float64(el.Y+el.Padding) + float64(el.FontSize)
	if el.VerticalAlign == "middle" {
		block := step * float64(len(lines))
		baseline = float64(el.Y) + (float64(el.Height)-block)/2 + float64(el.FontSize)
	}

	weight := "normal"
	if el.FontStyle == "bold" {
		weight = "bold"
	}

	fmt.Fprintf(buf, `  <text x="%d" font-size="%d" font-family=%q fill=%q font-weight=%q text-anchor=%q>`+"\n",
		x, el.FontSize, fonts.Stack(el.FontFamily), el.Fill, weight, anchor)
	for i, line := range lines {
		fmt.Fprintf(buf, `    <tspan x="%d" y="%.1f">%s</tspan>`+"\n",
			x, baseline+float64(i)*step, escape(line))
	}
	buf.WriteString("  </text>\n")
}

func renderImage(buf *bytes.Buffer, el canvas.Element) {
	fmt.Fprintf(buf,
		`  <image x="%d" y="%d" width="%d" height="%d" href=%q preserveAspectRatio="xMidYMid slice"/>`+"\n",
		el.X, el.Y, el.Width, el.Height, el.Src)
}

func renderShape(buf *bytes.Buffer, el canvas.Element) {
	fmt.Fprintf(buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill=%q/>`+"\n",
		el.X, el.Y, el.Width, el.Height, el.Fill)
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
