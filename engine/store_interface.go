package engine

import (
	"github.com/lixenwraith/tint-arena/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across every store without knowing concrete types
type AnyStore interface {
	// RemoveEntity deletes the entity's component if present
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}
