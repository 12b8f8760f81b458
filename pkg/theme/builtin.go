package theme

// Builtin returns the stock themes used when no theme store is
// configured. The slice is freshly allocated on each call so callers
// may modify it.
func Builtin() []Theme {
	return []Theme{
		{
			Slug:            "modern-business",
			Name:            "Modern Business",
			Description:     "Clean corporate look with a blue accent",
			PrimaryColor:    "#3B82F6",
			SecondaryColor:  "#8B5CF6",
			BackgroundColor: "#FFFFFF",
			TextColor:       "#1F2937",
			AccentColor:     "#2563EB",
			HeadingFont:     "Inter",
			BodyFont:        "Inter",
			IsActive:        true,
			SortOrder:       1,
		},
		{
			Slug:            "creative-gradient",
			Name:            "Creative Gradient",
			Description:     "Vivid purple-to-pink gradient for creative decks",
			PrimaryColor:    "#8B5CF6",
			SecondaryColor:  "#EC4899",
			BackgroundColor: "#FAF5FF",
			TextColor:       "#312E81",
			AccentColor:     "#A855F7",
			HeadingFont:     "Poppins",
			BodyFont:        "Inter",
			IsActive:        true,
			SortOrder:       2,
		},
		{
			Slug:            "minimal-elegant",
			Name:            "Minimal Elegant",
			Description:     "Understated monochrome with generous whitespace",
			PrimaryColor:    "#1F2937",
			SecondaryColor:  "#6B7280",
			BackgroundColor: "#FFFFFF",
			TextColor:       "#374151",
			AccentColor:     "#111827",
			HeadingFont:     "Playfair Display",
			BodyFont:        "Inter",
			IsActive:        true,
			SortOrder:       3,
		},
		{
			Slug:            "dark-mode",
			Name:            "Dark Mode",
			Description:     "High-contrast dark background with teal accents",
			PrimaryColor:    "#14B8A6",
			SecondaryColor:  "#0EA5E9",
			BackgroundColor: "#111827",
			TextColor:       "#F9FAFB",
			AccentColor:     "#2DD4BF",
			HeadingFont:     "Inter",
			BodyFont:        "Inter",
			IsActive:        true,
			SortOrder:       4,
		},
		{
			Slug:            "warm-sunset",
			Name:            "Warm Sunset",
			Description:     "Orange and amber tones for energetic presentations",
			PrimaryColor:    "#F97316",
			SecondaryColor:  "#F59E0B",
			BackgroundColor: "#FFFBEB",
			TextColor:       "#431407",
			AccentColor:     "#EA580C",
			HeadingFont:     "Montserrat",
			BodyFont:        "Inter",
			IsActive:        true,
			SortOrder:       5,
		},
	}
}

// BuiltinBySlug finds a builtin theme by slug. The second return value
// reports whether the slug matched.
func BuiltinBySlug(slug string) (Theme, bool) {
	for _, t := range Builtin() {
		if t.Slug == slug {
			return t, true
		}
	}
	return Theme{}, false
}
