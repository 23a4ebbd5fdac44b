package system

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/physics"
)

// PhysicsSystem applies pending forces, steps the space and mirrors body poses into transforms
type PhysicsSystem struct {
	world *engine.World
	space *physics.Space
}

func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{
		world: world,
		space: engine.MustGetResource[*engine.PhysicsResource](world.Resources).Space,
	}
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Phase() engine.Phase {
	return engine.PhaseTick
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update(dt time.Duration) {
	forces := s.world.Components.Force
	for _, entity := range forces.GetAllEntities() {
		f, _ := forces.GetComponent(entity)
		if err := s.space.SetExternalForce(entity, f.Force, f.Torque); err != nil {
			log.Warn("force dropped", "entity", entity, "err", err)
		}
	}

	s.space.Step(dt.Seconds())

	transforms := s.world.Components.Transform
	for _, entity := range transforms.GetAllEntities() {
		pose, ok := s.space.Transform(entity)
		if !ok {
			continue
		}
		transforms.Update(entity, func(t *component.TransformComponent) {
			t.Position = pose.Position
			t.Angle = pose.Angle
		})
	}
}
