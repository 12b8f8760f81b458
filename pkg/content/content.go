// Package content normalizes heterogeneous slide content into a uniform
// ordered item sequence.
//
// Slide content arrives in three shapes: a free-form (possibly
// markdown-bulleted) string, an array of strings and objects, or a nested
// object. [Parse] reduces all of them to an ordered list of
// title/description items; [Flatten] produces the equivalent joined text
// form used when a single string is needed (canvas baking, exports). The two
// share the same extraction logic so the editor and the exporters can never
// disagree about what a slide says.
//
// Parsing is purely functional: the input is never mutated, the same input
// always yields the same output, and malformed input degrades to an empty
// result rather than an error.
package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Item is a single normalized content entry. Ordering among items is
// significant and preserved from the input. HasTitle is false for plain
// prose that carried no bold-title marker.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HasTitle    bool   `json:"hasTitle"`
}

// Parsed is the result of normalizing one slide's content.
type Parsed struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
}

// TotalChars returns the summed title and description length over all items.
// The layout analyzer uses this together with TotalItems to classify
// content density.
func (p Parsed) TotalChars() int {
	total := 0
	for _, it := range p.Items {
		total += len(it.Title) + len(it.Description)
	}
	return total
}

var (
	// boldTitleRegex matches "- **Title**: description" style lines: an
	// optional bullet marker, a bold span, and an optional colon-separated
	// remainder.
	boldTitleRegex = regexp.MustCompile(`^(?:[-*•▪▫▸▹◦‣⁃]\s*)?\*\*(.*?)\*\*(?::\s*(.*))?$`)

	// bulletRegex strips a leading bullet marker from continuation lines.
	bulletRegex = regexp.MustCompile(`^[-*•▪▫▸▹◦‣⁃]\s*`)

	// markdownRegex matches bold and italic spans, capturing the inner text.
	markdownRegex = regexp.MustCompile(`\*\*(.*?)\*\*|\*(.*?)\*`)

	// whitespaceRegex collapses runs of whitespace.
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// clean strips markdown bold/italic markers (keeping the inner text),
// collapses whitespace runs to single spaces, and trims.
func clean(text string) string {
	out := markdownRegex.ReplaceAllString(text, "$1$2")
	out = whitespaceRegex.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Parse normalizes arbitrary slide content into an ordered item sequence.
//
// Accepted inputs: nil, string, []any (strings and objects mixed),
// map-shaped objects, json.RawMessage / []byte holding any of those, and
// [Object] values (objects with preserved key order). Anything else, a
// number, a bool, yields an empty result. Parse never fails.
func Parse(v any) Parsed {
	items := parseValue(v)
	return Parsed{Items: items, TotalItems: len(items)}
}

func parseValue(v any) []Item {
	switch c := v.(type) {
	case nil:
		return nil
	case string:
		return parseString(c)
	case json.RawMessage:
		return parseRaw(c)
	case []byte:
		return parseRaw(c)
	case []any:
		return parseArray(c)
	case Object:
		return parseObject(c)
	case map[string]any:
		// Plain Go maps have no stable iteration order; fall back to sorted
		// keys so the result stays deterministic.
		return parseObject(sortedObject(c))
	default:
		return nil
	}
}

// parseRaw decodes JSON bytes with object key order preserved, then parses
// the decoded value. Invalid JSON is treated as empty content.
func parseRaw(data []byte) []Item {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	v, err := DecodeOrdered(data)
	if err != nil {
		return nil
	}
	return parseValue(v)
}

// parseString splits multi-line text into items. A line matching the bold
// title pattern opens a new item; other lines either continue the open
// item's description or become a titleless item of their own.
func parseString(s string) []Item {
	var items []Item
	var current *Item

	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := boldTitleRegex.FindStringSubmatch(trimmed); m != nil {
			if current != nil {
				items = append(items, *current)
			}
			current = &Item{
				Title:       clean(m[1]),
				Description: clean(m[2]),
				HasTitle:    true,
			}
			continue
		}

		cleaned := clean(bulletRegex.ReplaceAllString(trimmed, ""))
		if current != nil {
			if current.Description != "" {
				current.Description += " " + cleaned
			} else {
				current.Description = cleaned
			}
		} else {
			items = append(items, Item{Description: cleaned})
		}
	}
	if current != nil {
		items = append(items, *current)
	}
	return items
}

// parseArray converts a pre-segmented list. String elements get markdown
// cleaning but no multi-line splitting; object elements map their fields.
func parseArray(arr []any) []Item {
	items := make([]Item, 0, len(arr))
	for _, el := range arr {
		switch e := el.(type) {
		case string:
			items = append(items, Item{Description: clean(bulletRegex.ReplaceAllString(strings.TrimSpace(e), ""))})
		case Object:
			items = append(items, arrayObjectItem(e))
		case map[string]any:
			items = append(items, arrayObjectItem(sortedObject(e)))
		default:
			items = append(items, Item{})
		}
	}
	return items
}

// arrayObjectItem maps one object element of a content array to an item.
// title+description take precedence; otherwise the first non-empty of
// text, content, title, description becomes the item body.
func arrayObjectItem(obj Object) Item {
	title := stringField(obj, "title")
	desc := stringField(obj, "description")
	if title != "" && desc != "" {
		return Item{Title: clean(title), Description: clean(desc), HasTitle: true}
	}
	for _, key := range [...]string{"text", "content", "title", "description"} {
		if s := stringField(obj, key); s != "" {
			return Item{Description: clean(s)}
		}
	}
	return Item{}
}

// parseObject converts a single (non-array) object. A title/description
// pair is one item; a text field is one titleless item; a content field
// recurses; otherwise each key becomes an item in document order.
func parseObject(obj Object) []Item {
	title := stringField(obj, "title")
	desc := stringField(obj, "description")
	if title != "" && desc != "" {
		return []Item{{Title: clean(title), Description: clean(desc), HasTitle: true}}
	}
	if text := stringField(obj, "text"); text != "" {
		return []Item{{Description: clean(text)}}
	}
	if inner, ok := obj.Get("content"); ok && inner != nil {
		return parseValue(inner)
	}

	items := make([]Item, 0, len(obj.Keys))
	for _, key := range obj.Keys {
		val, _ := obj.Get(key)
		items = append(items, Item{Title: key, Description: clean(stringify(val)), HasTitle: true})
	}
	return items
}

// stringField returns obj[key] when it is a non-empty string.
func stringField(obj Object, key string) string {
	if v, ok := obj.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// stringify renders a nested value as display text.
func stringify(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case Object:
		parts := make([]string, 0, len(c.Keys))
		for _, key := range c.Keys {
			val, _ := c.Get(key)
			parts = append(parts, key+": "+stringify(val))
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, 0, len(c))
		for _, el := range c {
			parts = append(parts, stringify(el))
		}
		return strings.Join(parts, ", ")
	case json.Number:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// sortedObject builds an Object from a plain map with keys in sorted order.
func sortedObject(m map[string]any) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	obj := Object{Keys: keys, Values: make(map[string]any, len(m))}
	for k, v := range m {
		obj.Values[k] = v
	}
	return obj
}
