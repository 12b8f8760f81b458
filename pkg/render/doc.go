// Package render provides output rendering for presentations.
//
// # Overview
//
// This package contains the sinks that turn baked slides into viewable or
// exportable artifacts:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Live preview markup (in [dom] subpackage)
//   - Full-deck SVG rendering (in [deck] subpackage)
//   - PPTX coordinate mapping (in [pptx] subpackage)
//   - Deck outline diagrams (in [outline] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The deck and outline
// renderers both go through them.
//
//	svg := deck.RenderSVG(elements, styles)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Every sink consumes the same baked canvas elements; none of them re-run
// the layout engine, so a manually edited deck exports exactly as edited.
//
// [dom]: github.com/deckforge/deckforge/pkg/render/dom
// [deck]: github.com/deckforge/deckforge/pkg/render/deck
// [pptx]: github.com/deckforge/deckforge/pkg/render/pptx
// [outline]: github.com/deckforge/deckforge/pkg/render/outline
package render
