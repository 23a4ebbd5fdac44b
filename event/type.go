package event

import "github.com/lixenwraith/tint-arena/core"

// EventType represents the type of collision event
type EventType int

const (
	// EventCollisionStarted signals first contact between two bodies
	// Trigger: physics step begin callback
	// Consumer: TintSystem
	EventCollisionStarted EventType = iota

	// EventCollisionEnded signals two bodies stopped touching
	// Trigger: physics step separate callback
	// Consumer: none, counted only
	EventCollisionEnded
)

func (t EventType) String() string {
	switch t {
	case EventCollisionStarted:
		return "collision_started"
	case EventCollisionEnded:
		return "collision_ended"
	default:
		return "unknown"
	}
}

// CollisionEvent carries the two participant entities
// Order of A and B is engine-defined and carries no meaning
type CollisionEvent struct {
	Type EventType
	A, B core.Entity
	Tick int64 // Simulation tick that produced the event
}

// Involves reports whether e is one of the participants
func (ev CollisionEvent) Involves(e core.Entity) bool {
	return ev.A == e || ev.B == e
}
