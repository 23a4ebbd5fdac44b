package arena

import (
	"fmt"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/physics"
	"github.com/lixenwraith/tint-arena/vmath"
)

// Bodies holds the tagged dynamic entities
type Bodies struct {
	Player core.Entity
	Balls  []core.Entity
}

// BallPositions returns the ring lattice: every step along each of the four edges at BallOffset
func BallPositions() []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, parameter.BallCount)
	for step := parameter.BallStepMin; step <= parameter.BallStepMax; step += parameter.BallSpacing {
		s := float64(step)
		out = append(out,
			vmath.V(s, parameter.BallOffset),
			vmath.V(s, -parameter.BallOffset),
			vmath.V(parameter.BallOffset, s),
			vmath.V(-parameter.BallOffset, s),
		)
	}
	return out
}

// SpawnPlayer creates the player at the origin, untinted, with zero external force
func SpawnPlayer(w *engine.World, space *physics.Space, assets *asset.VisualAssetSet) (core.Entity, error) {
	eb := w.NewEntity()
	err := space.AddBody(eb.Entity(), physics.BodyDef{
		Type:        physics.BodyDynamic,
		Position:    vmath.Zero,
		Shapes:      []physics.ShapeDef{physics.Circle(parameter.PlayerRadius)},
		Restitution: parameter.PlayerRestitution,
		Friction:    parameter.BodyFriction,
		NeverSleep:  true,
	})
	if err != nil {
		return 0, fmt.Errorf("spawn player: %w", err)
	}

	engine.With(eb, w.Components.Body, component.BodyComponent{Kind: component.BodyPlayer})
	engine.With(eb, w.Components.Player, component.PlayerComponent{
		ForwardForce: parameter.PlayerForwardForce,
		MaxTorque:    parameter.PlayerMaxTorque,
	})
	engine.With(eb, w.Components.Force, component.ForceComponent{})
	engine.With(eb, w.Components.Transform, component.TransformComponent{})
	engine.With(eb, w.Components.Visual, component.VisualComponent{
		Handle: assets.PlayerTexture(false),
		Layer:  parameter.LayerGameplay,
		Radius: parameter.PlayerRadius,
	})
	return eb.Build(), nil
}

// SpawnBall creates one untinted collision-reporting ball
func SpawnBall(w *engine.World, space *physics.Space, assets *asset.VisualAssetSet, pos vmath.Vec2) (core.Entity, error) {
	eb := w.NewEntity()
	err := space.AddBody(eb.Entity(), physics.BodyDef{
		Type:             physics.BodyDynamic,
		Position:         pos,
		Shapes:           []physics.ShapeDef{physics.Circle(parameter.BallRadius)},
		Restitution:      parameter.BallRestitution,
		Friction:         parameter.BodyFriction,
		NeverSleep:       true,
		ReportCollisions: true,
	})
	if err != nil {
		return 0, fmt.Errorf("spawn ball at %v: %w", pos, err)
	}

	engine.With(eb, w.Components.Body, component.BodyComponent{Kind: component.BodyBall})
	engine.With(eb, w.Components.Ball, component.BallComponent{})
	engine.With(eb, w.Components.Transform, component.TransformComponent{Position: pos})
	engine.With(eb, w.Components.Visual, component.VisualComponent{
		Handle: assets.BallMaterial(false),
		Layer:  parameter.LayerGameplay,
		Radius: parameter.BallRadius,
	})
	return eb.Build(), nil
}

// SpawnBodies creates the player and the full ball ring
func SpawnBodies(w *engine.World, space *physics.Space, assets *asset.VisualAssetSet) (Bodies, error) {
	player, err := SpawnPlayer(w, space, assets)
	if err != nil {
		return Bodies{}, err
	}

	positions := BallPositions()
	balls := make([]core.Entity, 0, len(positions))
	for _, pos := range positions {
		ball, err := SpawnBall(w, space, assets, pos)
		if err != nil {
			return Bodies{}, err
		}
		balls = append(balls, ball)
	}

	return Bodies{Player: player, Balls: balls}, nil
}
