package parameter

// System Execution Priorities (lower runs first within a phase)
const (
	// Tick phase
	PriorityForce   = 10
	PriorityPhysics = 20 // After Force, consumes the written force/torque

	// Frame phase
	PriorityTint = 10
)
