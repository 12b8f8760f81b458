// Package fonts maps theme font families to web font sources and
// fallback stacks for the HTML and SVG renderers.
package fonts

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultFamily is used when a theme names no fonts at all.
const DefaultFamily = "Inter"

// fallbacks pairs known families with CSS fallback stacks. Unknown
// families get the sans-serif stack.
var fallbacks = map[string]string{
	"Inter":            "'Inter', 'Helvetica Neue', Arial, sans-serif",
	"Poppins":          "'Poppins', 'Helvetica Neue', Arial, sans-serif",
	"Montserrat":       "'Montserrat', 'Helvetica Neue', Arial, sans-serif",
	"Playfair Display": "'Playfair Display', Georgia, 'Times New Roman', serif",
}

// Stack returns the CSS font-family stack for a theme font. The family
// itself always leads so locally installed fonts win.
func Stack(family string) string {
	if family == "" {
		family = DefaultFamily
	}
	if stack, ok := fallbacks[family]; ok {
		return stack
	}
	return fmt.Sprintf("'%s', 'Helvetica Neue', Arial, sans-serif", family)
}

// ImportURL returns the Google Fonts stylesheet URL covering the given
// families. Duplicates and empty names are dropped; an empty result
// means no import is needed.
func ImportURL(families ...string) string {
	seen := make(map[string]bool)
	var params []string
	for _, f := range families {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		params = append(params, "family="+url.QueryEscape(f)+":wght@400;700")
	}
	if len(params) == 0 {
		return ""
	}
	return "https://fonts.googleapis.com/css2?" + strings.Join(params, "&") + "&display=swap"
}

// ImportRule returns a CSS @import rule for the given families, or ""
// when nothing needs importing.
func ImportRule(families ...string) string {
	u := ImportURL(families...)
	if u == "" {
		return ""
	}
	return fmt.Sprintf("@import url('%s');", u)
}
