package layout

import (
	"fmt"
	"math"

	"github.com/deckforge/deckforge/pkg/errors"
)

// Generate maps a layout config to its position map. Each archetype is a
// pure formula over the params; identical input yields a byte-identical
// map every time.
//
// An unrecognized name degrades to standard-text with whatever params were
// given. Only a config missing its name entirely is an error.
func Generate(cfg Config) (Generated, error) {
	if cfg.Name == "" {
		return Generated{}, errors.New(errors.ErrCodeInvalidLayout, "layout config has no name")
	}

	name := cfg.Name
	if !name.Valid() {
		name = NameStandardText
	}

	var positions PositionMap
	switch name {
	case NameCoordinate:
		positions = cfg.Params.Positions.Clone().Sanitize()
	case NameTitleSpecial:
		positions = titleSpecialPositions(cfg.Params.HasImage)
	case NameAlternatingSplit:
		positions = alternatingSplitPositions(cfg.Params.IsImageLeft)
	case NameImageContentStack:
		positions = imageContentStackPositions()
	case NameImageFocus:
		positions = imageFocusPositions(cfg.Params.IsImageLeft)
	case NameMultiColumn:
		positions = multiColumnPositions(cfg.Params.Columns)
	case NameCompactList:
		positions = compactListPositions()
	case NameZigzagTimeline:
		positions = zigzagTimelinePositions(cfg.Params.ItemCount)
	case NamePyramid:
		positions = pyramidPositions(cfg.Params.ItemCount)
	case NameStandardText:
		positions = standardTextPositions(cfg.Params.TitleHeight)
	}

	return Generated{Name: name, Positions: positions}, nil
}

// === Archetype formulas ===

func titleSpecialPositions(hasImage bool) PositionMap {
	m := PositionMap{
		"title": rect(0.1, 0.3, 0.8, 0.4),
		"image": nil,
	}
	if hasImage {
		m["image"] = rect(0.4, 0.75, 0.2, 0.15)
	}
	return m
}

func standardTextPositions(titleHeight float64) PositionMap {
	if titleHeight <= 0 {
		titleHeight = 0.15
	}
	contentY := 0.08 + titleHeight + 0.05
	return PositionMap{
		"title":   rect(0.08, 0.08, 0.84, titleHeight),
		"content": rect(0.08, contentY, 0.84, 1-contentY-0.08),
	}
}

func alternatingSplitPositions(isImageLeft bool) PositionMap {
	textX, imageX := 0.08, 0.55
	if isImageLeft {
		textX, imageX = 0.55, 0.08
	}
	return PositionMap{
		"title":   rect(textX, 0.1, 0.37, 0.15),
		"content": rect(textX, 0.3, 0.37, 0.6),
		"image":   rect(imageX, 0.15, 0.37, 0.7),
	}
}

func imageContentStackPositions() PositionMap {
	return PositionMap{
		"title":   rect(0.08, 0.05, 0.84, 0.12),
		"image":   rect(0.1, 0.2, 0.8, 0.4),
		"content": rect(0.08, 0.65, 0.84, 0.3),
	}
}

func imageFocusPositions(isImageLeft bool) PositionMap {
	textX, imageX := 0.08, 0.32
	if isImageLeft {
		textX, imageX = 0.72, 0.08
	}
	return PositionMap{
		"title":   rect(textX, 0.25, 0.2, 0.15),
		"content": rect(textX, 0.43, 0.2, 0.32),
		"image":   rect(imageX, 0.15, 0.6, 0.7),
	}
}

func compactListPositions() PositionMap {
	return PositionMap{
		"title":   rect(0.08, 0.08, 0.84, 0.1),
		"content": rect(0.08, 0.22, 0.84, 0.7),
	}
}

func multiColumnPositions(columns int) PositionMap {
	if columns < 1 {
		columns = 2
	}
	colWidth := 0.9 / float64(columns)
	m := PositionMap{
		"title": rect(0.05, 0.05, 0.9, 0.1),
	}
	for i := 0; i < columns; i++ {
		key := fmt.Sprintf("content%d", i)
		m[key] = rect(0.05+float64(i)*colWidth, 0.18, colWidth-0.02, 0.77)
	}
	return m
}

func zigzagTimelinePositions(itemCount int) PositionMap {
	if itemCount < 1 {
		itemCount = 1
	}
	itemHeight := 0.8 / float64(itemCount)
	circleSize := math.Min(0.06, itemHeight*0.6)
	m := PositionMap{
		"title": rect(0.05, 0.02, 0.9, 0.13),
		"line":  rect(0.5-0.0025, 0.2, 0.005, 0.75),
	}
	for i := 0; i < itemCount; i++ {
		y := 0.18 + float64(i)*itemHeight
		m[fmt.Sprintf("item%dC", i)] = rect(0.5-circleSize/2, y+itemHeight/2-circleSize/2, circleSize, circleSize)
		textX := 0.05
		if i%2 == 1 {
			textX = 0.53
		}
		m[fmt.Sprintf("item%dT", i)] = rect(textX, y, 0.42, itemHeight)
	}
	return m
}

func pyramidPositions(itemCount int) PositionMap {
	if itemCount < 1 {
		itemCount = 1
	}
	itemHeight := math.Max(0.1, 0.8/float64(itemCount))
	const circleSize = 0.06
	m := PositionMap{
		"title": rect(0.05, 0.02, 0.9, 0.13),
	}
	for i := 0; i < itemCount; i++ {
		y := 0.18 + float64(i)*itemHeight
		m[fmt.Sprintf("item%dC", i)] = rect(0.1, y+itemHeight/2-circleSize/2, circleSize, circleSize)
		m[fmt.Sprintf("item%dT", i)] = rect(0.2, y, 0.7, itemHeight)
	}
	return m
}
