// Package pkg provides the core libraries for deckforge slide layout.
//
// # Overview
//
// Deckforge turns structured slide content into fully laid-out
// presentations. The pkg directory is organized into five main areas:
//
//  1. Core layout (content, layout, canvas, slide, theme) - parsing slide
//     content, picking a layout per slide, and baking absolute positions
//  2. Rendering (render/dom, render/deck, render/outline, render/pptx) -
//     HTML fragments, SVG/PNG/PDF slides, deck overview graphs, and the
//     PPTX coordinate contract
//  3. Infrastructure (cache, httputil, config, errors, observability) -
//     caching, HTTP access, configuration, and structured errors
//  4. Services (store, gen, images) - persistence, LLM deck generation,
//     and image sourcing
//  5. Orchestration (pipeline) - analyze, bake, and render per deck
//
// # Architecture
//
// The typical data flow through deckforge:
//
//	Slide content (JSON)
//	         ↓
//	content.Parse → layout.Analyze        (one layout per slide)
//	         ↓
//	layout.Generate → canvas.BakeElements (absolute pixel positions)
//	         ↓
//	render/dom | render/deck | render/outline
//	         ↓
//	HTML fragment | SVG/PNG/PDF | overview graph
//
// The pipeline package ties the stages together with caching, and the
// store, gen, and images packages supply the editor API with saved
// projects, generated decks, and slide imagery.
package pkg
