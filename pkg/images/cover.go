package images

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/theme"
)

// Cover image geometry. 600x338 keeps the 16:9 deck aspect ratio at
// thumbnail size.
const (
	coverWidth       = 600
	coverHeight      = 338
	coverLineLimit   = 25
	coverLineSpacing = 50
	coverFirstLineY  = 120
)

// CoverSVG renders a theme-colored gradient cover for a saved project
// and returns it as a data URL. Covers are generated locally so saving
// never waits on an image service.
func CoverSVG(title string, th theme.Theme) string {
	color1 := th.PrimaryColor
	if color1 == "" {
		color1 = "#3B82F6"
	}
	color2 := th.SecondaryColor
	if color2 == "" {
		color2 = "#8B5CF6"
	}
	textColor := th.TextColor
	if textColor == "" {
		textColor = "#FFFFFF"
	}

	var spans strings.Builder
	for i, line := range wrapTitle(title, coverLineLimit) {
		fmt.Fprintf(&spans, `<tspan x="50" y="%d">%s</tspan>`,
			coverFirstLineY+i*coverLineSpacing, escapeXML(line))
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, coverWidth, coverHeight)
	svg.WriteString(`<defs><linearGradient id="grad" x1="0%" y1="0%" x2="100%" y2="100%">`)
	fmt.Fprintf(&svg, `<stop offset="0%%" style="stop-color:%s;stop-opacity:1" />`, color1)
	fmt.Fprintf(&svg, `<stop offset="100%%" style="stop-color:%s;stop-opacity:1" />`, color2)
	svg.WriteString(`</linearGradient></defs>`)
	svg.WriteString(`<rect width="100%" height="100%" fill="url(#grad)" />`)
	fmt.Fprintf(&svg, `<text fill="%s" font-family="Arial, sans-serif" font-size="36" font-weight="bold" text-anchor="start">%s</text>`,
		textColor, spans.String())
	fmt.Fprintf(&svg, `<text x="580" y="320" font-family="Arial, sans-serif" font-size="14" fill="%s" text-anchor="end" opacity="0.7">deckforge</text>`,
		textColor)
	svg.WriteString(`</svg>`)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg.String()))
}

// wrapTitle breaks a title into lines of at most limit characters,
// splitting on word boundaries.
func wrapTitle(title string, limit int) []string {
	lines := []string{""}
	for _, word := range strings.Fields(title) {
		cur := len(lines) - 1
		if lines[cur] != "" && len(lines[cur])+1+len(word) > limit {
			lines = append(lines, "")
			cur++
		}
		if lines[cur] != "" {
			lines[cur] += " "
		}
		lines[cur] += word
	}
	return lines
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
