package component

import "github.com/lixenwraith/tint-arena/vmath"

// BoundaryComponent records the static wall segments of the arena
type BoundaryComponent struct {
	Segments    [4]vmath.Rect // Top, bottom, left, right
	Restitution float64
}
