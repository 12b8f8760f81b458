package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Slide count limits for a generated presentation.
const (
	MinSlideCount = 3
	MaxSlideCount = 20
)

// EdgeTolerance is the permitted floating-point overshoot at the far canvas
// edge for externally supplied coordinates (x+w and y+h may reach 1.02).
const EdgeTolerance = 0.02

// ValidateSlideCount checks that a requested deck size is within bounds.
func ValidateSlideCount(n int) error {
	if n < MinSlideCount || n > MaxSlideCount {
		return New(ErrCodeInvalidInput, "invalid slide count %d (must be between %d and %d)", n, MinSlideCount, MaxSlideCount)
	}
	return nil
}

// ValidateGenerationMode checks the content generation mode.
func ValidateGenerationMode(mode string) error {
	if mode != "ai" && mode != "outline" {
		return New(ErrCodeInvalidMode, "invalid mode %q (must be 'ai' or 'outline')", mode)
	}
	return nil
}

// themeSlugRegex matches URL-safe theme slugs.
var themeSlugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateThemeSlug validates a theme slug for safety and correctness.
func ValidateThemeSlug(slug string) error {
	if slug == "" {
		return New(ErrCodeInvalidTheme, "theme slug cannot be empty")
	}
	if len(slug) > 64 {
		return New(ErrCodeInvalidTheme, "theme slug too long (max 64 characters)")
	}
	if !themeSlugRegex.MatchString(slug) {
		return New(ErrCodeInvalidTheme, "invalid theme slug: %q", slug)
	}
	return nil
}

// ValidateProjectID validates a client-supplied project identifier.
// It rejects IDs that could be used for injection or are obvious client bugs
// (the literal strings "undefined" and "null" show up when a buggy frontend
// stringifies a missing value).
func ValidateProjectID(id string) error {
	if id == "" || id == "undefined" || id == "null" {
		return New(ErrCodeInvalidProject, "project ID cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidProject, "project ID too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProject, "project ID contains invalid control characters")
		}
	}
	if strings.ContainsAny(id, "/\\\x00") {
		return New(ErrCodeInvalidProject, "project ID contains invalid characters")
	}
	return nil
}

// ValidateImageURL validates an image URL for safety.
// It ensures the URL has a safe scheme (http or https) or is a data URL.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "image URL cannot be empty")
	}
	if strings.HasPrefix(rawURL, "data:image/") {
		return nil
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "image URL must use http or https scheme")
	}
	return nil
}

// ValidCoordinate reports whether a normalized rectangle is acceptable as
// externally supplied layout data: all components finite, width and height
// non-negative, and the origin within the unit canvas. The far edge may
// overshoot 1.0 by up to EdgeTolerance to absorb float rounding from
// upstream editors.
func ValidCoordinate(x, y, w, h float64) bool {
	for _, v := range [4]float64{x, y, w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if w < 0 || h < 0 {
		return false
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return false
	}
	return x+w <= 1+EdgeTolerance && y+h <= 1+EdgeTolerance
}
