package render

import (
	"math"

	"github.com/lixenwraith/tint-arena/vmath"
)

// Viewport maps world coordinates (y-up, origin at the arena center) to screen coordinates (y-down)
// Scaling is "auto-min": the MinWidth × MinHeight world region always fits the screen
type Viewport struct {
	Width, Height int // Screen size in pixels or cells

	MinWidth, MinHeight float64 // World region that must stay visible

	// CellAspect is screen unit height over width: 1 for pixels, about 2 for terminal cells
	CellAspect float64

	scale float64 // Horizontal screen units per world unit
}

// NewViewport creates a viewport; call Resize before use
func NewViewport(minWidth, minHeight, cellAspect float64) *Viewport {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return &Viewport{
		MinWidth:   minWidth,
		MinHeight:  minHeight,
		CellAspect: cellAspect,
	}
}

// Resize updates the logical resolution; returns true when the size changed
func (v *Viewport) Resize(width, height int) bool {
	if width == v.Width && height == v.Height && v.scale != 0 {
		return false
	}
	v.Width, v.Height = width, height

	sx := float64(width) / v.MinWidth
	sy := float64(height) * v.CellAspect / v.MinHeight
	v.scale = math.Max(math.Min(sx, sy), 0)
	return true
}

// Scale returns horizontal and vertical screen units per world unit
func (v *Viewport) Scale() (sx, sy float64) {
	return v.scale, v.scale / v.CellAspect
}

// WorldToScreen converts a world point to screen coordinates
func (v *Viewport) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	sx, sy := v.Scale()
	return vmath.V(
		float64(v.Width)/2+p.X*sx,
		float64(v.Height)/2-p.Y*sy,
	)
}

// ScreenToWorld is the inverse of WorldToScreen
func (v *Viewport) ScreenToWorld(p vmath.Vec2) vmath.Vec2 {
	sx, sy := v.Scale()
	if sx == 0 || sy == 0 {
		return vmath.Zero
	}
	return vmath.V(
		(p.X-float64(v.Width)/2)/sx,
		(float64(v.Height)/2-p.Y)/sy,
	)
}

// RectToScreen converts a world rectangle to its screen-space top-left and bottom-right corners
func (v *Viewport) RectToScreen(r vmath.Rect) (topLeft, bottomRight vmath.Vec2) {
	lo, hi := r.Min(), r.Max()
	return v.WorldToScreen(vmath.V(lo.X, hi.Y)), v.WorldToScreen(vmath.V(hi.X, lo.Y))
}
