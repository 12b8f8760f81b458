package layout

import (
	"github.com/deckforge/deckforge/pkg/errors"
)

// Rect is a normalized rectangle: position and size as fractions of the
// canvas, each axis independently in [0,1]. The reference canvas (see
// package canvas) fixes the aspect ratio; the engine itself never deals in
// pixels.
type Rect struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	W float64 `json:"w" bson:"w"`
	H float64 `json:"h" bson:"h"`
}

// Valid reports whether the rectangle is acceptable as externally supplied
// layout data (finite, non-negative size, origin inside the unit canvas,
// far edge within tolerance).
func (r Rect) Valid() bool {
	return errors.ValidCoordinate(r.X, r.Y, r.W, r.H)
}

// PositionMap maps semantic region keys to rectangles. Standard keys are
// "title", "content", "image", and "line"; multi-column layouts add
// "content0".."contentN-1"; timeline and pyramid layouts add "item{i}C"
// (circle) and "item{i}T" (text) pairs. A nil value means the region is
// deliberately absent for this slide (for example no image on a
// title-special layout); consumers must treat nil and missing identically.
type PositionMap map[string]*Rect

// Clone returns a deep copy. Generated maps are handed to concurrent
// consumers, so pass-through positions are always copied rather than
// aliased.
func (m PositionMap) Clone() PositionMap {
	if m == nil {
		return nil
	}
	out := make(PositionMap, len(m))
	for k, r := range m {
		if r == nil {
			out[k] = nil
			continue
		}
		c := *r
		out[k] = &c
	}
	return out
}

// Sanitize returns a copy with invalid rectangles removed. Nil entries are
// kept: an absent region is legitimate, a malformed one is not. Used on the
// coordinate pass-through path, where positions come from outside the
// engine (a saved manual layout) and cannot be trusted by construction.
func (m PositionMap) Sanitize() PositionMap {
	out := make(PositionMap, len(m))
	for k, r := range m {
		if r == nil {
			out[k] = nil
			continue
		}
		if !r.Valid() {
			continue
		}
		c := *r
		out[k] = &c
	}
	return out
}

// rect is shorthand for building position map entries.
func rect(x, y, w, h float64) *Rect {
	return &Rect{X: x, Y: y, W: w, H: h}
}
