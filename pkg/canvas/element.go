// Package canvas bakes generated layouts into absolute-pixel canvas
// elements at the shared reference resolution.
//
// The editor and every exporter read these element records; the layout
// engine itself is never re-run over a baked slide, so manual edits stay
// sticky. Both sides of the wire must use the same reference canvas size
// or exported coordinates drift.
package canvas

// Reference canvas size in pixels. Must match the editor exactly.
const (
	Width  = 2560
	Height = 1440
)

// Element kinds.
const (
	KindText  = "text"
	KindImage = "image"
	KindShape = "shape"
)

// Element is one absolutely positioned canvas record. The flat shape with
// optional fields mirrors the editor's wire format; which fields are set
// depends on Type.
type Element struct {
	ID   string `json:"id" bson:"id"`
	Type string `json:"type" bson:"type"`

	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`

	// Text fields.
	Text          string  `json:"text,omitempty" bson:"text,omitempty"`
	FontSize      int     `json:"fontSize,omitempty" bson:"fontSize,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty" bson:"fontFamily,omitempty"`
	FontStyle     string  `json:"fontStyle,omitempty" bson:"fontStyle,omitempty"`
	Align         string  `json:"align,omitempty" bson:"align,omitempty"`
	VerticalAlign string  `json:"verticalAlign,omitempty" bson:"verticalAlign,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty" bson:"lineHeight,omitempty"`
	Padding       int     `json:"padding,omitempty" bson:"padding,omitempty"`

	// Image fields.
	Src          string `json:"src,omitempty" bson:"src,omitempty"`
	CornerRadius int    `json:"cornerRadius,omitempty" bson:"cornerRadius,omitempty"`

	// Shape fields.
	ShapeType string `json:"shapeType,omitempty" bson:"shapeType,omitempty"`

	Fill      string `json:"fill,omitempty" bson:"fill,omitempty"`
	Draggable bool   `json:"draggable" bson:"draggable"`

	ShadowColor   string `json:"shadowColor,omitempty" bson:"shadowColor,omitempty"`
	ShadowBlur    int    `json:"shadowBlur,omitempty" bson:"shadowBlur,omitempty"`
	ShadowOffsetX int    `json:"shadowOffsetX,omitempty" bson:"shadowOffsetX,omitempty"`
	ShadowOffsetY int    `json:"shadowOffsetY,omitempty" bson:"shadowOffsetY,omitempty"`
}
