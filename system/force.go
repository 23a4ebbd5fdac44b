package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/vmath"
)

// ForceSystem converts held keys into the player's thrust and steering torque every tick
type ForceSystem struct {
	world *engine.World
	input *engine.InputResource
}

func NewForceSystem(world *engine.World) engine.System {
	return &ForceSystem{
		world: world,
		input: engine.MustGetResource[*engine.InputResource](world.Resources),
	}
}

// Name returns system's name
func (s *ForceSystem) Name() string {
	return "force"
}

func (s *ForceSystem) Phase() engine.Phase {
	return engine.PhaseTick
}

func (s *ForceSystem) Priority() int {
	return parameter.PriorityForce
}

// Update writes the force component of the single player
// Panics when the world does not hold exactly one player
func (s *ForceSystem) Update(dt time.Duration) {
	players := s.world.Components.Player.GetAllEntities()
	if len(players) != 1 {
		panic(fmt.Sprintf("force system: expected exactly one player, found %d", len(players)))
	}
	entity := players[0]

	player, _ := s.world.Components.Player.GetComponent(entity)
	transform, _ := s.world.Components.Transform.GetComponent(entity)

	var rotation, forward float64
	if s.input.State != nil {
		rotation = input.RotationFactor(s.input.State)
		forward = input.ForwardFactor(s.input.State)
	}

	force, torque := PlayerForce(player, transform.Angle, rotation, forward)
	s.world.Components.Force.SetComponent(entity, component.ForceComponent{
		Force:  force,
		Torque: torque,
	})
}

// PlayerForce is the thrust along the rotated nose and the signed steering torque
// Factors are expected in {-1, 0, 1}; no smoothing is applied
func PlayerForce(p component.PlayerComponent, angle, rotation, forward float64) (vmath.Vec2, float64) {
	force := vmath.Facing(angle).Scale(forward * p.ForwardForce)
	torque := rotation * p.MaxTorque
	return force, torque
}
