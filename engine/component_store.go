package engine

import (
	"github.com/lixenwraith/tint-arena/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Tagging
	Body *Store[component.BodyComponent]

	// Tagged state
	Player   *Store[component.PlayerComponent]
	Ball     *Store[component.BallComponent]
	Boundary *Store[component.BoundaryComponent]

	// Physics bridge
	Force     *Store[component.ForceComponent]
	Transform *Store[component.TransformComponent]

	// Presentation
	Visual *Store[component.VisualComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Body:      NewStore[component.BodyComponent](),
		Player:    NewStore[component.PlayerComponent](),
		Ball:      NewStore[component.BallComponent](),
		Boundary:  NewStore[component.BoundaryComponent](),
		Force:     NewStore[component.ForceComponent](),
		Transform: NewStore[component.TransformComponent](),
		Visual:    NewStore[component.VisualComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Body,
		cs.Player,
		cs.Ball,
		cs.Boundary,
		cs.Force,
		cs.Transform,
		cs.Visual,
	}
}
