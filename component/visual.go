package component

import (
	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/vmath"
)

// VisualComponent is the drawable description consumed by the renderers
// Handle is swapped by the collision reactor for tagged bodies
type VisualComponent struct {
	Handle asset.Handle
	Layer  int

	// Outline in body-local coordinates: a circle when Radius > 0, otherwise Rects
	Radius float64
	Rects  []vmath.Rect
}
