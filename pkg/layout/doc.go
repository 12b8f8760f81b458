// Package layout is the automatic slide layout engine.
//
// Given one slide's declared type, content, and image presence, the engine
// deterministically selects a named layout archetype and computes a full set
// of normalized bounding boxes for every visual region of the slide. The
// same engine backs the content-generation pipeline (which bakes the boxes
// into absolute-pixel canvas elements) and the live preview renderer (which
// maps them straight to percentage CSS). The two consumers must never
// diverge, because a slide authored once has to look the same everywhere.
//
// # Pipeline
//
// Evaluation happens in two stages per slide:
//
//  1. Analyze: a decision-tree classifier over the slide type, image
//     presence, and normalized content density selects a [Config]: an
//     archetype [Name] plus its parameter bag.
//  2. Generate: a pure formula maps the [Config] to a [PositionMap] of
//     normalized rectangles keyed by semantic region (title, content,
//     image, line, per-column and per-item slots).
//
// All coordinates are fractions of the canvas in [0,1]; pixel conversion is
// entirely a consumer concern (see package canvas). Both stages are pure
// and safe for concurrent per-slide fan-out.
//
// # Stability
//
// The density cutoffs and item-count bands in the analyzer are empirically
// tuned values that downstream visual designs were validated against. They
// are load-bearing; do not adjust them without re-validating every
// archetype.
package layout
