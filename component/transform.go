package component

import "github.com/lixenwraith/tint-arena/vmath"

// TransformComponent mirrors the physics body pose after each step
type TransformComponent struct {
	Position vmath.Vec2
	Angle    float64 // Radians, counter-clockwise
}
