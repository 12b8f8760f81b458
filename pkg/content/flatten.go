package content

import (
	"encoding/json"
	"strings"
)

// Flatten renders arbitrary slide content as a single joined string, one
// line per logical entry. It is the text-flattening companion to [Parse],
// used where a renderer needs one string (canvas text elements, exports).
// Bold markers are stripped, leading dash bullets become dot bullets, and
// object entries render as "Title: Description" lines.
func Flatten(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return flattenString(c)
	case json.RawMessage:
		return flattenRaw(c)
	case []byte:
		return flattenRaw(c)
	case []any:
		lines := make([]string, 0, len(c))
		for _, el := range c {
			lines = append(lines, flattenElement(el))
		}
		return strings.Join(lines, "\n")
	case Object:
		return flattenObject(c)
	case map[string]any:
		return flattenObject(sortedObject(c))
	default:
		return ""
	}
}

func flattenRaw(data []byte) string {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	v, err := DecodeOrdered(data)
	if err != nil {
		return ""
	}
	return Flatten(v)
}


func flattenString(s string) string {
	out := markdownRegex.ReplaceAllString(s, "$1$2")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "- "); ok {
			lines[i] = "• " + rest
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func flattenElement(el any) string {
	switch e := el.(type) {
	case string:
		return flattenString(e)
	case Object:
		title := stringField(e, "title")
		desc := stringField(e, "description")
		if title != "" && desc != "" {
			return title + ": " + desc
		}
		for _, key := range [...]string{"text", "content", "title", "description"} {
			if s := stringField(e, key); s != "" {
				return s
			}
		}
		return ""
	case map[string]any:
		return flattenElement(sortedObject(e))
	default:
		return ""
	}
}

func flattenObject(obj Object) string {
	title := stringField(obj, "title")
	desc := stringField(obj, "description")
	if title != "" && desc != "" {
		return title + ": " + desc
	}
	if text := stringField(obj, "text"); text != "" {
		return text
	}
	if inner, ok := obj.Get("content"); ok && inner != nil {
		return Flatten(inner)
	}

	lines := make([]string, 0, len(obj.Keys))
	for _, key := range obj.Keys {
		val, _ := obj.Get(key)
		lines = append(lines, key+": "+stringify(val))
	}
	return strings.Join(lines, "\n")
}

// Flatten joins an already-parsed item sequence back into display text, one
// line per item. Re-parsing this output preserves the item count: every
// item contributes exactly one line and no line opens a continuation.
func (p Parsed) Flatten() string {
	lines := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		switch {
		case it.HasTitle && it.Description != "":
			lines = append(lines, it.Title+": "+it.Description)
		case it.Title != "":
			lines = append(lines, it.Title)
		default:
			lines = append(lines, it.Description)
		}
	}
	return strings.Join(lines, "\n")
}
