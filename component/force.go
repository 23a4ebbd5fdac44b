package component

import "github.com/lixenwraith/tint-arena/vmath"

// ForceComponent is the external force and torque applied on the next physics step
// Written by the force controller every tick; values are in configured units, the physics layer converts
type ForceComponent struct {
	Force  vmath.Vec2
	Torque float64
}
