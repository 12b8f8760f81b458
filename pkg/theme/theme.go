// Package theme defines presentation themes and the color and font
// conventions every renderer shares.
package theme

import "regexp"

// Fixed font sizes in points for text baked at reference canvas scale.
// These are part of the visual contract with saved decks; changing them
// reflows existing presentations.
const (
	FontTitleSlide      = 44
	FontTitleNormal     = 28
	FontContentNormal   = 16
	FontContentTimeline = 14
)

// Theme is a presentation color and font scheme. The wire format uses
// snake_case keys in both the API and the store.
type Theme struct {
	Slug            string `json:"slug" bson:"slug"`
	Name            string `json:"name" bson:"name"`
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	PrimaryColor    string `json:"primary_color,omitempty" bson:"primary_color,omitempty"`
	SecondaryColor  string `json:"secondary_color,omitempty" bson:"secondary_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty" bson:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty" bson:"text_color,omitempty"`
	AccentColor     string `json:"accent_color,omitempty" bson:"accent_color,omitempty"`
	HeadingFont     string `json:"heading_font,omitempty" bson:"heading_font,omitempty"`
	BodyFont        string `json:"body_font,omitempty" bson:"body_font,omitempty"`
	IsActive        bool   `json:"is_active" bson:"is_active"`
	SortOrder       int    `json:"sort_order" bson:"sort_order"`
}

// Styles is a theme resolved against defaults, ready for rendering.
type Styles struct {
	Background  string
	Primary     string
	Text        string
	HeadingFont string
	BodyFont    string
}

// Resolve fills unset theme fields with the default palette.
func (t Theme) Resolve() Styles {
	return Styles{
		Background:  orDefault(t.BackgroundColor, "#FFFFFF"),
		Primary:     orDefault(t.PrimaryColor, "#1f2937"),
		Text:        orDefault(t.TextColor, "#374151"),
		HeadingFont: orDefault(t.HeadingFont, "Inter"),
		BodyFont:    orDefault(t.BodyFont, "Inter"),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var bareHexRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// EnsureHex normalizes a color to leading-# form. Bare six-digit hex gets
// the prefix added; named colors and anything else pass through untouched.
func EnsureHex(color string) string {
	if color == "" {
		return ""
	}
	if color[0] == '#' {
		return color
	}
	if bareHexRegex.MatchString(color) {
		return "#" + color
	}
	return color
}

// ToHex returns the color without a leading #, for sinks that want bare
// hex digits.
func ToHex(color string) string {
	hex := EnsureHex(color)
	if hex == "" {
		return ""
	}
	if hex[0] == '#' {
		return hex[1:]
	}
	return hex
}
