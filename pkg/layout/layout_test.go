package layout

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		items int
		chars int
		want  Density
	}{
		{"no items", 0, 0, DensityEmpty},
		{"no items with chars", 0, 500, DensityEmpty},
		{"few short items", 2, 100, DensitySparse},
		{"three items at char boundary", 3, 199, DensitySparse},
		{"three items over char boundary", 3, 200, DensityNormal},
		{"five medium items", 5, 300, DensityNormal},
		{"six items at boundary", 6, 499, DensityNormal},
		{"seven items", 7, 100, DensityDense},
		{"nine items under limit", 9, 799, DensityDense},
		{"nine items over limit", 9, 800, DensityVeryDense},
		{"ten items", 10, 100, DensityVeryDense},
		{"fifteen items", 15, 2000, DensityVeryDense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.items, tt.chars); got != tt.want {
				t.Errorf("Classify(%d, %d) = %q, want %q", tt.items, tt.chars, got, tt.want)
			}
		})
	}
}

// Adding items while holding characters fixed must never lower the tier.
func TestClassifyMonotonicInItems(t *testing.T) {
	rank := map[Density]int{
		DensityEmpty:     0,
		DensitySparse:    1,
		DensityNormal:    2,
		DensityDense:     3,
		DensityVeryDense: 4,
	}
	for _, chars := range []int{0, 100, 199, 450, 799, 1200} {
		prev := -1
		for items := 0; items <= 20; items++ {
			got := rank[Classify(items, chars)]
			if got < prev {
				t.Fatalf("density tier dropped at items=%d chars=%d", items, chars)
			}
			prev = got
		}
	}
}

func TestAnalyzeSpecialTypes(t *testing.T) {
	tests := []struct {
		name     string
		slide    Slide
		wantName Name
		wantImg  bool
	}{
		{"title slide", Slide{Type: "TitleSlide", Title: "Intro"}, NameTitleSpecial, false},
		{"title slide with image", Slide{Type: "TitleSlide", ImageURL: "https://img.test/a.png"}, NameTitleSpecial, true},
		{"q&a slide", Slide{Type: "Q&A"}, NameTitleSpecial, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Analyze(tt.slide, 0)
			if cfg.Name != tt.wantName {
				t.Fatalf("Analyze() name = %q, want %q", cfg.Name, tt.wantName)
			}
			if cfg.Params.HasImage != tt.wantImg {
				t.Errorf("Analyze() hasImage = %v, want %v", cfg.Params.HasImage, tt.wantImg)
			}
		})
	}
}

func TestAnalyzeCoordinatePassthrough(t *testing.T) {
	supplied := PositionMap{"title": rect(0.1, 0.1, 0.5, 0.2)}
	cfg := Analyze(Slide{Type: "Coordinate", Layout: supplied}, 0)
	if cfg.Name != NameCoordinate {
		t.Fatalf("Analyze() name = %q, want %q", cfg.Name, NameCoordinate)
	}
	if !reflect.DeepEqual(cfg.Params.Positions, supplied) {
		t.Errorf("Analyze() positions = %v, want %v", cfg.Params.Positions, supplied)
	}

	// Without a supplied layout the type falls through to the heuristics.
	cfg = Analyze(Slide{Type: "Coordinate"}, 0)
	if cfg.Name != NameStandardText {
		t.Errorf("Analyze() without layout = %q, want %q", cfg.Name, NameStandardText)
	}
}

func TestAnalyzeImageBranch(t *testing.T) {
	longItem := func(n int) string { return fmt.Sprintf("**Item %d**: %s", n, strings.Repeat("x", 120)) }
	denseContent := ""
	for i := 0; i < 10; i++ {
		denseContent += "- " + longItem(i) + "\n"
	}

	tests := []struct {
		name     string
		slide    Slide
		index    int
		wantName Name
		wantLeft bool
	}{
		{
			"sparse even index",
			Slide{Type: "ContentSlide", Content: "short", ImageURL: "https://img.test/a.png"},
			0, NameImageFocus, true,
		},
		{
			"sparse odd index",
			Slide{Type: "ContentSlide", Content: "short", ImageURL: "https://img.test/a.png"},
			3, NameImageFocus, false,
		},
		{
			"normal density alternates",
			Slide{Type: "ContentSlide", Content: "- **A**: aaa\n- **B**: bbb\n- **C**: " + strings.Repeat("c", 200), ImageURL: "https://img.test/a.png"},
			2, NameAlternatingSplit, true,
		},
		{
			"empty content with image",
			Slide{Type: "ContentSlide", ImageURL: "https://img.test/a.png"},
			1, NameAlternatingSplit, false,
		},
		{
			"very dense stacks",
			Slide{Type: "ContentSlide", Content: denseContent, ImageURL: "https://img.test/a.png"},
			0, NameImageContentStack, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Analyze(tt.slide, tt.index)
			if cfg.Name != tt.wantName {
				t.Fatalf("Analyze() name = %q, want %q", cfg.Name, tt.wantName)
			}
			if cfg.Name != NameImageContentStack && cfg.Params.IsImageLeft != tt.wantLeft {
				t.Errorf("Analyze() isImageLeft = %v, want %v", cfg.Params.IsImageLeft, tt.wantLeft)
			}
		})
	}
}

func TestAnalyzeTextBranch(t *testing.T) {
	items := func(n, chars int) string {
		s := ""
		for i := 0; i < n; i++ {
			s += fmt.Sprintf("- **Item %d**: %s\n", i, strings.Repeat("x", chars))
		}
		return s
	}

	tests := []struct {
		name      string
		slide     Slide
		wantName  Name
		wantCount int
	}{
		{"five short items timeline", Slide{Type: "ContentSlide", Content: items(5, 10)}, NameZigzagTimeline, 5},
		{"nine items timeline", Slide{Type: "ContentSlide", Content: items(9, 20)}, NameZigzagTimeline, 9},
		{"three items pyramid", Slide{Type: "ContentSlide", Content: items(3, 10)}, NamePyramid, 3},
		{"four items pyramid", Slide{Type: "ContentSlide", Content: items(4, 10)}, NamePyramid, 4},
		{"two items standard", Slide{Type: "ContentSlide", Content: items(2, 10)}, NameStandardText, 0},
		{"eleven short items compact", Slide{Type: "ContentSlide", Content: items(11, 5)}, NameCompactList, 0},
		{"fifteen long items multi-column", Slide{Type: "ContentSlide", Content: items(15, 100)}, NameMultiColumn, 0},
		{"ten long items compact", Slide{Type: "ContentSlide", Content: items(10, 100)}, NameCompactList, 0},
		{"no content standard", Slide{Type: "ContentSlide"}, NameStandardText, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Analyze(tt.slide, 0)
			if cfg.Name != tt.wantName {
				t.Fatalf("Analyze() name = %q, want %q", cfg.Name, tt.wantName)
			}
			if tt.wantCount != 0 && cfg.Params.ItemCount != tt.wantCount {
				t.Errorf("Analyze() itemCount = %d, want %d", cfg.Params.ItemCount, tt.wantCount)
			}
		})
	}
}

func TestAnalyzeTitleHeight(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  float64
	}{
		{"short title", "Brief", 0.15},
		{"medium title", strings.Repeat("t", 60), 0.2},
		{"long title", strings.Repeat("t", 120), 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Analyze(Slide{Type: "ContentSlide", Title: tt.title}, 0)
			if cfg.Name != NameStandardText {
				t.Fatalf("Analyze() name = %q, want %q", cfg.Name, NameStandardText)
			}
			if cfg.Params.TitleHeight != tt.want {
				t.Errorf("Analyze() titleHeight = %v, want %v", cfg.Params.TitleHeight, tt.want)
			}
		})
	}
}

func TestGenerateMissingName(t *testing.T) {
	if _, err := Generate(Config{}); err == nil {
		t.Fatal("Generate() with empty name should fail")
	}
}

func TestGenerateUnknownNameFallsBack(t *testing.T) {
	got, err := Generate(Config{Name: "hexagon-burst"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Name != NameStandardText {
		t.Fatalf("Generate() name = %q, want %q", got.Name, NameStandardText)
	}
	title := got.Positions["title"]
	if title == nil || title.H != 0.15 {
		t.Errorf("fallback title height = %v, want 0.15", title)
	}
}

func TestGenerateTitleSpecial(t *testing.T) {
	got, err := Generate(Config{Name: NameTitleSpecial})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := Rect{X: 0.1, Y: 0.3, W: 0.8, H: 0.4}
	if *got.Positions["title"] != want {
		t.Errorf("title = %+v, want %+v", *got.Positions["title"], want)
	}
	if got.Positions["image"] != nil {
		t.Errorf("image = %+v, want nil", got.Positions["image"])
	}

	got, _ = Generate(Config{Name: NameTitleSpecial, Params: Params{HasImage: true}})
	img := got.Positions["image"]
	if img == nil || *img != (Rect{X: 0.4, Y: 0.75, W: 0.2, H: 0.15}) {
		t.Errorf("image with hasImage = %+v", img)
	}
}

func TestGenerateStandardText(t *testing.T) {
	got, err := Generate(Config{Name: NameStandardText, Params: Params{TitleHeight: 0.2}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	title := got.Positions["title"]
	if title.H != 0.2 {
		t.Errorf("title height = %v, want 0.2", title.H)
	}
	content := got.Positions["content"]
	wantY := 0.08 + 0.2 + 0.05
	if !approx(content.Y, wantY) || !approx(content.H, 1-wantY-0.08) {
		t.Errorf("content = %+v, want y=%v h=%v", content, wantY, 1-wantY-0.08)
	}
}

func TestGenerateAlternatingSplit(t *testing.T) {
	left, _ := Generate(Config{Name: NameAlternatingSplit, Params: Params{IsImageLeft: true}})
	if left.Positions["image"].X != 0.08 || left.Positions["title"].X != 0.55 {
		t.Errorf("image-left split: image.x=%v title.x=%v", left.Positions["image"].X, left.Positions["title"].X)
	}
	right, _ := Generate(Config{Name: NameAlternatingSplit})
	if right.Positions["image"].X != 0.55 || right.Positions["title"].X != 0.08 {
		t.Errorf("image-right split: image.x=%v title.x=%v", right.Positions["image"].X, right.Positions["title"].X)
	}
}

func TestGenerateImageFocus(t *testing.T) {
	got, _ := Generate(Config{Name: NameImageFocus})
	if got.Positions["image"].X != 0.32 || got.Positions["content"].X != 0.08 {
		t.Errorf("image-right focus: image.x=%v content.x=%v", got.Positions["image"].X, got.Positions["content"].X)
	}
	left, _ := Generate(Config{Name: NameImageFocus, Params: Params{IsImageLeft: true}})
	if left.Positions["image"].X != 0.08 || left.Positions["content"].X != 0.72 {
		t.Errorf("image-left focus: image.x=%v content.x=%v", left.Positions["image"].X, left.Positions["content"].X)
	}
}

func TestGenerateMultiColumn(t *testing.T) {
	got, err := Generate(Config{Name: NameMultiColumn, Params: Params{Columns: 2}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got.Positions) != 3 {
		t.Fatalf("position count = %d, want 3 (title + 2 columns)", len(got.Positions))
	}
	for i := 0; i < 2; i++ {
		col := got.Positions[fmt.Sprintf("content%d", i)]
		if col == nil {
			t.Fatalf("missing content%d", i)
		}
		if !approx(col.W, 0.45-0.02) {
			t.Errorf("content%d.w = %v, want 0.43", i, col.W)
		}
		if !approx(col.X, 0.05+float64(i)*0.45) {
			t.Errorf("content%d.x = %v", i, col.X)
		}
	}
}

func TestGenerateZigzagTimeline(t *testing.T) {
	got, err := Generate(Config{Name: NameZigzagTimeline, Params: Params{ItemCount: 5}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Positions["line"] == nil {
		t.Fatal("missing line")
	}
	itemHeight := 0.8 / 5.0
	circle := math.Min(0.06, itemHeight*0.6)
	for i := 0; i < 5; i++ {
		c := got.Positions[fmt.Sprintf("item%dC", i)]
		txt := got.Positions[fmt.Sprintf("item%dT", i)]
		if c == nil || txt == nil {
			t.Fatalf("missing item %d slots", i)
		}
		if !approx(c.W, circle) || !approx(c.H, circle) {
			t.Errorf("item%dC size = %v×%v, want %v", i, c.W, c.H, circle)
		}
		wantX := 0.05
		if i%2 == 1 {
			wantX = 0.53
		}
		if txt.X != wantX {
			t.Errorf("item%dT.x = %v, want %v", i, txt.X, wantX)
		}
		if !approx(txt.Y, 0.18+float64(i)*itemHeight) {
			t.Errorf("item%dT.y = %v", i, txt.Y)
		}
	}
}

func TestGeneratePyramid(t *testing.T) {
	got, err := Generate(Config{Name: NamePyramid, Params: Params{ItemCount: 3}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	itemHeight := 0.8 / 3.0
	for i := 0; i < 3; i++ {
		c := got.Positions[fmt.Sprintf("item%dC", i)]
		txt := got.Positions[fmt.Sprintf("item%dT", i)]
		if c == nil || txt == nil {
			t.Fatalf("missing item %d slots", i)
		}
		if c.X != 0.1 || txt.X != 0.2 {
			t.Errorf("item %d x = %v/%v, want 0.1/0.2", i, c.X, txt.X)
		}
		if !approx(txt.Y, 0.18+float64(i)*itemHeight) {
			t.Errorf("item%dT.y = %v", i, txt.Y)
		}
	}

	// Item height floors at 0.1 for large counts.
	many, _ := Generate(Config{Name: NamePyramid, Params: Params{ItemCount: 12}})
	if h := many.Positions["item0T"].H; h != 0.1 {
		t.Errorf("floored item height = %v, want 0.1", h)
	}
}

func TestGenerateCoordinateSanitizes(t *testing.T) {
	got, err := Generate(Config{Name: NameCoordinate, Params: Params{Positions: PositionMap{
		"title": rect(0.1, 0.1, 0.8, 0.2),
		"edge":  rect(0.5, 0.5, 0.51, 0.4),
		"bad":   rect(0.5, 0.5, 0.6, 0.4),
		"nan":   rect(math.NaN(), 0, 0.1, 0.1),
		"blank": nil,
	}}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Positions["title"] == nil {
		t.Error("valid rect dropped")
	}
	if got.Positions["edge"] == nil {
		t.Error("rect within edge tolerance dropped")
	}
	if _, ok := got.Positions["bad"]; ok {
		t.Error("overshooting rect kept")
	}
	if _, ok := got.Positions["nan"]; ok {
		t.Error("NaN rect kept")
	}
	if v, ok := got.Positions["blank"]; !ok || v != nil {
		t.Error("nil entry not preserved")
	}
}

// Every archetype's rects must stay inside the canvas (within the edge
// tolerance) so no renderer ever draws off-slide.
func TestGenerateAllWithinBounds(t *testing.T) {
	configs := []Config{
		{Name: NameTitleSpecial, Params: Params{HasImage: true}},
		{Name: NameStandardText, Params: Params{TitleHeight: 0.25}},
		{Name: NameAlternatingSplit, Params: Params{IsImageLeft: true}},
		{Name: NameImageContentStack},
		{Name: NameImageFocus},
		{Name: NameMultiColumn, Params: Params{Columns: 2}},
		{Name: NameMultiColumn, Params: Params{Columns: 3}},
		{Name: NameCompactList},
		{Name: NameZigzagTimeline, Params: Params{ItemCount: 9}},
		{Name: NamePyramid, Params: Params{ItemCount: 4}},
	}
	for _, cfg := range configs {
		got, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate(%s) error = %v", cfg.Name, err)
		}
		for key, r := range got.Positions {
			if r == nil {
				continue
			}
			if !r.Valid() {
				t.Errorf("%s: %s = %+v out of bounds", cfg.Name, key, *r)
			}
		}
	}
}

func TestPipelineDeterminism(t *testing.T) {
	slide := Slide{
		Type:     "ContentSlide",
		Title:    "Quarterly results",
		Content:  "- **Revenue**: up 12%\n- **Churn**: down 3%\n- **Hiring**: on plan\n- **Runway**: 18 months\n- **Outlook**: steady",
		ImageURL: "",
	}
	first := mustGenerate(t, Analyze(slide, 4))
	second := mustGenerate(t, Analyze(slide, 4))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs diverged:\n%+v\n%+v", first, second)
	}
	if first.Name != NameZigzagTimeline {
		t.Errorf("name = %q, want %q", first.Name, NameZigzagTimeline)
	}
}

func mustGenerate(t *testing.T, cfg Config) Generated {
	t.Helper()
	got, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate(%s) error = %v", cfg.Name, err)
	}
	return got
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

