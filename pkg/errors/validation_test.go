package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateSlideCount(t *testing.T) {
	for _, n := range []int{3, 8, 20} {
		if err := ValidateSlideCount(n); err != nil {
			t.Errorf("ValidateSlideCount(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{0, 2, 21, -1} {
		err := ValidateSlideCount(n)
		if !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateSlideCount(%d) = %v, want INVALID_INPUT", n, err)
		}
	}
}

func TestValidateGenerationMode(t *testing.T) {
	if err := ValidateGenerationMode("ai"); err != nil {
		t.Errorf("mode ai rejected: %v", err)
	}
	if err := ValidateGenerationMode("outline"); err != nil {
		t.Errorf("mode outline rejected: %v", err)
	}
	if err := ValidateGenerationMode("magic"); !Is(err, ErrCodeInvalidMode) {
		t.Errorf("mode magic = %v, want INVALID_MODE", err)
	}
}

func TestValidateThemeSlug(t *testing.T) {
	valid := []string{"modern-business", "dark-mode", "a", "theme2"}
	for _, slug := range valid {
		if err := ValidateThemeSlug(slug); err != nil {
			t.Errorf("ValidateThemeSlug(%q) = %v, want nil", slug, err)
		}
	}

	invalid := []string{"", "-leading-dash", "Has Spaces", "UPPER", strings.Repeat("x", 65), "slash/y"}
	for _, slug := range invalid {
		if err := ValidateThemeSlug(slug); !Is(err, ErrCodeInvalidTheme) {
			t.Errorf("ValidateThemeSlug(%q) = %v, want INVALID_THEME", slug, err)
		}
	}
}

func TestValidateProjectID(t *testing.T) {
	valid := []string{"abc123", "550e8400-e29b-41d4-a716-446655440000", "My Deck"}
	for _, id := range valid {
		if err := ValidateProjectID(id); err != nil {
			t.Errorf("ValidateProjectID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{"", "undefined", "null", "a/b", "a\\b", "with\x00byte", "tab\tchar", strings.Repeat("x", 129)}
	for _, id := range invalid {
		if err := ValidateProjectID(id); !Is(err, ErrCodeInvalidProject) {
			t.Errorf("ValidateProjectID(%q) = %v, want INVALID_PROJECT", id, err)
		}
	}
}

func TestValidateImageURL(t *testing.T) {
	valid := []string{
		"https://images.example.com/a.png",
		"http://images.example.com/a.png",
		"data:image/svg+xml;base64,abcd",
	}
	for _, u := range valid {
		if err := ValidateImageURL(u); err != nil {
			t.Errorf("ValidateImageURL(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{"", "ftp://host/a.png", "javascript:alert(1)", "file:///etc/passwd"}
	for _, u := range invalid {
		if err := ValidateImageURL(u); !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateImageURL(%q) = %v, want INVALID_INPUT", u, err)
		}
	}
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"unit box", 0, 0, 1, 1, true},
		{"centered", 0.1, 0.3, 0.8, 0.4, true},
		{"zero size", 0.5, 0.5, 0, 0, true},
		{"edge overshoot within tolerance", 0.5, 0.5, 0.51, 0.51, true},
		{"edge overshoot beyond tolerance", 0.5, 0.5, 0.6, 0.1, false},
		{"negative width", 0.1, 0.1, -0.1, 0.1, false},
		{"negative origin", -0.1, 0, 0.1, 0.1, false},
		{"origin past canvas", 1.1, 0, 0.1, 0.1, false},
		{"NaN", math.NaN(), 0, 0.1, 0.1, false},
		{"Inf", 0, math.Inf(1), 0.1, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoordinate(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("ValidCoordinate(%v, %v, %v, %v) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}
