// Package outline renders a deck overview as a node-link diagram.
//
// Each slide becomes a labeled node, connected in presentation order, with
// the selected layout archetype annotated. Useful for reviewing deck
// structure without rendering every slide.
package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/slide"
)

// Options configures outline rendering.
type Options struct {
	// Detailed includes the layout archetype and item counts in node
	// labels. When false, only slide number and title are shown.
	Detailed bool
}

// ToDOT converts a slide sequence to Graphviz DOT format. The resulting
// DOT string can be rendered with [RenderSVG] or converted further via the
// parent render package.
func ToDOT(slides []slide.Slide, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deck {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, s := range slides {
		label := fmtLabel(s, i, opts.Detailed)
		attrs := fmtAttrs(s, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(slides); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(i-1), nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("slide%d", i+1)
}

func fmtLabel(s slide.Slide, index int, detailed bool) string {
	title := s.Title
	if title == "" {
		title = string(s.Type)
	}
	label := fmt.Sprintf("%d. %s", index+1, title)
	if !detailed {
		return label
	}

	cfg := layout.Analyze(s.LayoutView(), index)
	parts := []string{fmt.Sprintf("layout: %s", cfg.Name)}
	if n := s.ParseContent().TotalItems; n > 0 {
		parts = append(parts, fmt.Sprintf("items: %d", n))
	}
	if s.ImageURL != "" {
		parts = append(parts, "image: yes")
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(s slide.Slide, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch s.Type {
	case slide.TypeTitle, slide.TypeQA:
		attrs = append(attrs, "fillcolor=lightblue")
	case slide.TypeConclusion:
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz. The SVG is ready
// for display or conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the diagram always
// starts at origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
