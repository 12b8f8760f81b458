package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Item
	}{
		{
			"bold titles with descriptions",
			"- **Alpha**: first point\n- **Beta**: second point",
			[]Item{
				{Title: "Alpha", Description: "first point", HasTitle: true},
				{Title: "Beta", Description: "second point", HasTitle: true},
			},
		},
		{
			"bold title without colon",
			"**Standalone**",
			[]Item{{Title: "Standalone", HasTitle: true}},
		},
		{
			"continuation lines append to open item",
			"- **Topic**: intro\n  more detail\n  final detail",
			[]Item{{Title: "Topic", Description: "intro more detail final detail", HasTitle: true}},
		},
		{
			"continuation fills empty description",
			"**Topic**\ndetail line",
			[]Item{{Title: "Topic", Description: "detail line", HasTitle: true}},
		},
		{
			"titleless lines become items",
			"plain one\nplain two",
			[]Item{{Description: "plain one"}, {Description: "plain two"}},
		},
		{
			"unicode bullets stripped",
			"• **Dot**: yes\n▸ plain arrow",
			[]Item{{Title: "Dot", Description: "yes plain arrow", HasTitle: true}},
		},
		{
			"italic markers cleaned",
			"some *emphasized* text",
			[]Item{{Description: "some emphasized text"}},
		},
		{
			"blank lines skipped",
			"\n\n- **A**: one\n\n",
			[]Item{{Title: "A", Description: "one", HasTitle: true}},
		},
		{
			"whitespace collapsed",
			"spaced    out\ttext",
			[]Item{{Description: "spaced out text"}},
		},
		{"empty string", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got.Items, tt.want) {
				t.Errorf("Parse(%q).Items = %+v, want %+v", tt.input, got.Items, tt.want)
			}
			if got.TotalItems != len(tt.want) {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, len(tt.want))
			}
		})
	}
}

func TestParseArray(t *testing.T) {
	tests := []struct {
		name  string
		input []any
		want  []Item
	}{
		{
			"string elements",
			[]any{"- first", "**second**"},
			[]Item{{Description: "first"}, {Description: "second"}},
		},
		{
			"object with title and description",
			[]any{map[string]any{"title": "T", "description": "D"}},
			[]Item{{Title: "T", Description: "D", HasTitle: true}},
		},
		{
			"object with title only falls back to a plain line",
			[]any{map[string]any{"title": "Solo"}},
			[]Item{{Description: "Solo"}},
		},
		{
			"object with text field",
			[]any{map[string]any{"text": "body"}},
			[]Item{{Description: "body"}},
		},
		{
			"text outranks title when both are present",
			[]any{map[string]any{"title": "Heading", "text": "body wins"}},
			[]Item{{Description: "body wins"}},
		},
		{
			"content outranks title when text is absent",
			[]any{map[string]any{"title": "Heading", "content": "inner"}},
			[]Item{{Description: "inner"}},
		},
		{
			"unusable element yields empty item",
			[]any{42},
			[]Item{{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got.Items, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got.Items, tt.want)
			}
		})
	}
}

func TestParseObject(t *testing.T) {
	t.Run("title description pair", func(t *testing.T) {
		got := Parse(map[string]any{"title": "**T**", "description": "D"})
		want := []Item{{Title: "T", Description: "D", HasTitle: true}}
		if !reflect.DeepEqual(got.Items, want) {
			t.Errorf("Parse() = %+v, want %+v", got.Items, want)
		}
	})
	t.Run("content field recurses", func(t *testing.T) {
		got := Parse(map[string]any{"content": "- **A**: one\n- **B**: two"})
		if got.TotalItems != 2 || got.Items[0].Title != "A" {
			t.Errorf("Parse() = %+v", got.Items)
		}
	})
	t.Run("generic keys become items", func(t *testing.T) {
		got := Parse(map[string]any{"speed": "fast", "cost": "low"})
		// Plain maps fall back to sorted key order.
		want := []Item{
			{Title: "cost", Description: "low", HasTitle: true},
			{Title: "speed", Description: "fast", HasTitle: true},
		}
		if !reflect.DeepEqual(got.Items, want) {
			t.Errorf("Parse() = %+v, want %+v", got.Items, want)
		}
	})
}

func TestParseRawJSONKeyOrder(t *testing.T) {
	raw := json.RawMessage(`{"zeta":"last? no, first","alpha":"second"}`)
	got := Parse(raw)
	if got.TotalItems != 2 {
		t.Fatalf("TotalItems = %d, want 2", got.TotalItems)
	}
	if got.Items[0].Title != "zeta" || got.Items[1].Title != "alpha" {
		t.Errorf("document key order not preserved: %+v", got.Items)
	}
}

func TestParseRawJSONShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"json string", `"- **A**: one\n- **B**: two"`, 2},
		{"json array", `["one","two","three"]`, 3},
		{"json null", `null`, 0},
		{"invalid json", `{broken`, 0},
		{"json number", `42`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(json.RawMessage(tt.raw))
			if got.TotalItems != tt.want {
				t.Errorf("Parse(%s).TotalItems = %d, want %d", tt.raw, got.TotalItems, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, v := range []any{nil, 42, 3.14, true} {
		got := Parse(v)
		if got.TotalItems != 0 || len(got.Items) != 0 {
			t.Errorf("Parse(%v) = %+v, want empty", v, got)
		}
	}
}

func TestTotalChars(t *testing.T) {
	p := Parse("- **ab**: cde\n- **f**: ghij")
	if got := p.TotalChars(); got != 10 {
		t.Errorf("TotalChars() = %d, want 10", got)
	}
}

func TestParseDeterministic(t *testing.T) {
	input := map[string]any{"b": "two", "a": "one", "c": "three"}
	first := Parse(input)
	for i := 0; i < 10; i++ {
		if got := Parse(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestDecodeOrdered(t *testing.T) {
	v, err := DecodeOrdered([]byte(`{"b":1,"a":{"z":true,"y":[1,"x"]},"c":null}`))
	if err != nil {
		t.Fatalf("DecodeOrdered() error = %v", err)
	}
	obj, ok := v.(Object)
	if !ok {
		t.Fatalf("DecodeOrdered() = %T, want Object", v)
	}
	if !reflect.DeepEqual(obj.Keys, []string{"b", "a", "c"}) {
		t.Errorf("keys = %v, want [b a c]", obj.Keys)
	}
	inner, _ := obj.Get("a")
	innerObj, ok := inner.(Object)
	if !ok || !reflect.DeepEqual(innerObj.Keys, []string{"z", "y"}) {
		t.Errorf("nested keys = %+v", inner)
	}
}

func TestFlattenString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"bold stripped and bullets dotted", "- **A**: one\n- **B**: two", "• A: one\n• B: two"},
		{"plain text unchanged", "hello world", "hello world"},
		{"array of strings", []any{"one", "- two"}, "one\n• two"},
		{
			"array of objects",
			[]any{map[string]any{"title": "T", "description": "D"}, map[string]any{"text": "plain"}},
			"T: D\nplain",
		},
		{"object pair", map[string]any{"title": "T", "description": "D"}, "T: D"},
		{"object text field", map[string]any{"text": "body"}, "body"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.input); got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Flattening parsed items and re-parsing must preserve the item count, so
// the structured and flat views never drift apart.
func TestParsedFlattenRoundTrip(t *testing.T) {
	inputs := []any{
		"- **Alpha**: first\n- **Beta**: second\nloose line",
		[]any{"one", map[string]any{"title": "T", "description": "D"}},
		map[string]any{"speed": "fast", "cost": "low"},
	}
	for _, in := range inputs {
		parsed := Parse(in)
		again := Parse(parsed.Flatten())
		if again.TotalItems != parsed.TotalItems {
			t.Errorf("round trip changed item count for %v: %d -> %d", in, parsed.TotalItems, again.TotalItems)
		}
	}
}
