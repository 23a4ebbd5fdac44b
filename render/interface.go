package render

import (
	"image/color"

	"github.com/lixenwraith/tint-arena/vmath"
)

// Target is a drawing surface in screen coordinates, implemented by each front-end
// Radii are given per axis since terminal cells are not square
type Target interface {
	Clear(bg color.RGBA)
	FillRect(topLeft, bottomRight vmath.Vec2, a Appearance)
	FillEllipse(center vmath.Vec2, rx, ry float64, a Appearance)
	Ship(center vmath.Vec2, rx, ry, angle float64, a Appearance)
	Text(col, row int, s string)
}

// Appearance is the resolved look of a drawable
type Appearance struct {
	Color color.RGBA
	Glyph rune
}
