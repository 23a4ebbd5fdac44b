// Package arena populates a world with the walled playfield, the player and the ball ring
package arena

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/physics"
)

// Layout lists every entity created at startup
type Layout struct {
	Scenery
	Bodies
}

// Build runs the arena builder then the body registry
// Called once at startup; errors are physics insertion failures
func Build(w *engine.World, space *physics.Space, assets *asset.VisualAssetSet) (Layout, error) {
	scenery, err := BuildScenery(w, space, assets, parameter.ArenaSize, parameter.ArenaMargin)
	if err != nil {
		return Layout{}, fmt.Errorf("build arena: %w", err)
	}

	bodies, err := SpawnBodies(w, space, assets)
	if err != nil {
		return Layout{}, fmt.Errorf("build arena: %w", err)
	}

	log.Info("arena built",
		"size", parameter.ArenaSize,
		"margin", parameter.ArenaMargin,
		"balls", len(bodies.Balls),
		"bodies", space.BodyCount(),
	)

	return Layout{Scenery: scenery, Bodies: bodies}, nil
}
