// Package dom renders slides as live-preview HTML fragments.
//
// Positions map straight to percentage-based absolute CSS inside a
// fixed-aspect container, so the markup scales with its parent and needs
// no pixel constants. This is the same contract the interactive editor
// uses before a slide is baked.
package dom

import (
	"bytes"
	"fmt"
	"html"

	"github.com/deckforge/deckforge/pkg/content"
	"github.com/deckforge/deckforge/pkg/fonts"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/slide"
	"github.com/deckforge/deckforge/pkg/theme"
)

// RenderHTML renders one slide and its generated layout as an HTML
// fragment. The fragment is a single container div with one absolutely
// positioned child per layout slot.
func RenderHTML(s slide.Slide, gen layout.Generated, st theme.Styles) []byte {
	var buf bytes.Buffer

	if rule := fonts.ImportRule(st.HeadingFont, st.BodyFont); rule != "" {
		fmt.Fprintf(&buf, "<style>%s</style>\n", rule)
	}

	heading := fonts.Stack(st.HeadingFont)
	body := fonts.Stack(st.BodyFont)

	fmt.Fprintf(&buf,
		`<div class="slide" data-layout=%q style="position:relative;aspect-ratio:16/9;overflow:hidden;background:%s;">`+"\n",
		gen.Name, st.Background)

	if r := gen.Positions["title"]; r != nil && s.Title != "" {
		align := "left"
		if gen.Name == layout.NameTitleSpecial {
			align = "center"
		}
		writeBox(&buf, "slide-title", r,
			fmt.Sprintf("color:%s;font-family:%s;font-weight:bold;text-align:%s;", st.Primary, heading, align),
			html.EscapeString(s.Title))
	}

	if r := gen.Positions["content"]; r != nil && len(s.Content) > 0 {
		writeBox(&buf, "slide-content", r,
			fmt.Sprintf("color:%s;font-family:%s;white-space:pre-line;", st.Text, body),
			html.EscapeString(s.ContentText()))
	}

	if r := gen.Positions["image"]; r != nil && s.ImageURL != "" {
		writeBox(&buf, "slide-image", r, "",
			fmt.Sprintf(`<img src=%q alt="" style="width:100%%;height:100%%;object-fit:cover;border-radius:12px;"/>`,
				s.ImageURL))
	}

	for i := 0; ; i++ {
		r := gen.Positions[fmt.Sprintf("content%d", i)]
		if r == nil {
			break
		}
		writeBox(&buf, fmt.Sprintf("slide-column slide-column-%d", i), r,
			fmt.Sprintf("color:%s;font-family:%s;white-space:pre-line;", st.Text, body),
			html.EscapeString(columnText(s, i)))
	}

	for i := 0; ; i++ {
		circle := gen.Positions[fmt.Sprintf("item%dC", i)]
		text := gen.Positions[fmt.Sprintf("item%dT", i)]
		if circle == nil && text == nil {
			break
		}
		if circle != nil {
			writeBox(&buf, fmt.Sprintf("slide-marker slide-marker-%d", i), circle,
				fmt.Sprintf("background:%s;border-radius:50%%;", st.Primary), "")
		}
		if text != nil {
			writeBox(&buf, fmt.Sprintf("slide-item slide-item-%d", i), text,
				fmt.Sprintf("color:%s;font-family:%s;white-space:pre-line;", st.Text, body),
				html.EscapeString(itemText(s, i)))
		}
	}

	if r := gen.Positions["line"]; r != nil {
		writeBox(&buf, "slide-line", r, fmt.Sprintf("background:%s;", st.Primary), "")
	}

	buf.WriteString("</div>\n")
	return buf.Bytes()
}

// writeBox emits one absolutely positioned percentage box.
func writeBox(buf *bytes.Buffer, class string, r *layout.Rect, extra, inner string) {
	fmt.Fprintf(buf,
		`  <div class=%q style="position:absolute;left:%s;top:%s;width:%s;height:%s;%s">%s</div>`+"\n",
		class, pct(r.X), pct(r.Y), pct(r.W), pct(r.H), extra, inner)
}

func pct(frac float64) string {
	return fmt.Sprintf("%.4f%%", frac*100)
}

// columnText returns the flattened text for one multi-column slot.
func columnText(s slide.Slide, i int) string {
	arr := topLevelArray(s)
	if i >= len(arr) {
		return ""
	}
	return content.Flatten(arr[i])
}

// itemText returns the joined text for one timeline or pyramid item.
func itemText(s slide.Slide, i int) string {
	arr := topLevelArray(s)
	if i < len(arr) {
		return content.Parse(arr[i]).Flatten()
	}
	parsed := s.ParseContent()
	if i < len(parsed.Items) {
		return content.Parsed{Items: parsed.Items[i : i+1]}.Flatten()
	}
	return ""
}

func topLevelArray(s slide.Slide) []any {
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
