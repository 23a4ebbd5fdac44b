package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/event"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/vmath"
)

var (
	ErrDuplicateEntity = errors.New("entity already has a body")
	ErrNoShapes        = errors.New("body has no shapes")
	ErrBadShape        = errors.New("invalid shape dimensions")
	ErrUnknownEntity   = errors.New("entity has no body")
)

// Config holds engine tuning; world units are converted to meters by PixelsPerMeter
type Config struct {
	PixelsPerMeter     float64
	Density            float64
	SleepTimeThreshold float64
	CollisionSlop      float64
	ForceScale         float64
	TorqueScale        float64
}

// DefaultConfig returns the arena's physics tuning
func DefaultConfig() Config {
	return Config{
		PixelsPerMeter:     parameter.PixelsPerMeter,
		Density:            parameter.BodyDensity,
		SleepTimeThreshold: parameter.SleepTimeThreshold,
		CollisionSlop:      parameter.CollisionSlop,
		ForceScale:         parameter.ForceScale,
		TorqueScale:        parameter.TorqueScale,
	}
}

// Space owns the rigid-body simulation and maps entities to engine bodies
// Not thread-safe, callers serialize through the world update lock
type Space struct {
	cfg    Config
	space  *cp.Space
	queue  *event.Queue
	bodies map[core.Entity]*cp.Body
	awake  []*cp.Body // NeverSleep bodies, re-activated before each step
	tick   int64

	contacts map[[2]core.Entity]int // Touching shape pairs per body pair
}

// NewSpace creates a zero-gravity space publishing collision events to queue
func NewSpace(cfg Config, queue *event.Queue) *Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	space.Iterations = parameter.SolverIterations
	space.SleepTimeThreshold = cfg.SleepTimeThreshold
	space.SetCollisionSlop(cfg.CollisionSlop)

	s := &Space{
		cfg:    cfg,
		space:  space,
		queue:  queue,
		bodies: make(map[core.Entity]*cp.Body),

		contacts: make(map[[2]core.Entity]int),
	}
	s.registerHandlers()
	return s
}

// AddBody inserts a body for entity built from def
func (s *Space) AddBody(entity core.Entity, def BodyDef) error {
	if _, ok := s.bodies[entity]; ok {
		return fmt.Errorf("add body %d: %w", entity, ErrDuplicateEntity)
	}
	if len(def.Shapes) == 0 {
		return fmt.Errorf("add body %d: %w", entity, ErrNoShapes)
	}
	for i, sd := range def.Shapes {
		if !validShape(sd) {
			return fmt.Errorf("add body %d shape %d: %w", entity, i, ErrBadShape)
		}
	}

	var body *cp.Body
	switch def.Type {
	case BodyStatic:
		body = cp.NewStaticBody()
	default:
		mass, moment := s.massProperties(def.Shapes)
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(s.toSpace(def.Position))
	body.UserData = entity
	s.space.AddBody(body)

	collisionType := collisionSilent
	if def.ReportCollisions {
		collisionType = collisionReporting
	}
	for _, sd := range def.Shapes {
		shape := s.space.AddShape(s.newShape(body, sd))
		shape.SetElasticity(def.Restitution)
		shape.SetFriction(def.Friction)
		shape.SetCollisionType(collisionType)
	}

	s.bodies[entity] = body
	if def.NeverSleep && def.Type == BodyDynamic {
		s.awake = append(s.awake, body)
	}
	return nil
}

// SetExternalForce sets force and torque applied at the next step, in world units
// The engine clears them after every step
func (s *Space) SetExternalForce(entity core.Entity, force vmath.Vec2, torque float64) error {
	body, ok := s.bodies[entity]
	if !ok {
		return fmt.Errorf("set force %d: %w", entity, ErrUnknownEntity)
	}
	body.SetForce(cp.Vector{X: force.X * s.cfg.ForceScale, Y: force.Y * s.cfg.ForceScale})
	body.SetTorque(torque * s.cfg.TorqueScale)
	return nil
}

// Transform returns the body pose in world units
func (s *Space) Transform(entity core.Entity) (Transform, bool) {
	body, ok := s.bodies[entity]
	if !ok {
		return Transform{}, false
	}
	return Transform{Position: s.fromSpace(body.Position()), Angle: body.Angle()}, true
}

// Velocity returns linear velocity in world units per second
func (s *Space) Velocity(entity core.Entity) (vmath.Vec2, bool) {
	body, ok := s.bodies[entity]
	if !ok {
		return vmath.Zero, false
	}
	return s.fromSpace(body.Velocity()), true
}

// SetVelocity overrides linear velocity, world units per second
func (s *Space) SetVelocity(entity core.Entity, v vmath.Vec2) error {
	body, ok := s.bodies[entity]
	if !ok {
		return fmt.Errorf("set velocity %d: %w", entity, ErrUnknownEntity)
	}
	body.SetVelocityVector(s.toSpace(v))
	body.Activate()
	return nil
}

// IsSleeping reports whether the engine has put the body to sleep
func (s *Space) IsSleeping(entity core.Entity) bool {
	body, ok := s.bodies[entity]
	return ok && body.IsSleeping()
}

// Step advances the simulation by dt seconds, publishing collision events raised during the step
func (s *Space) Step(dt float64) {
	s.tick++
	for _, body := range s.awake {
		body.Activate()
	}
	s.space.Step(dt)
}

// ContactCount returns the number of body pairs currently touching
func (s *Space) ContactCount() int {
	return len(s.contacts)
}

// BodyCount returns the number of bodies owned by the space
func (s *Space) BodyCount() int {
	return len(s.bodies)
}

// StepCount returns the number of completed steps
func (s *Space) StepCount() int64 {
	return s.tick
}

func (s *Space) toSpace(v vmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X / s.cfg.PixelsPerMeter, Y: v.Y / s.cfg.PixelsPerMeter}
}

func (s *Space) fromSpace(v cp.Vector) vmath.Vec2 {
	return vmath.V(v.X*s.cfg.PixelsPerMeter, v.Y*s.cfg.PixelsPerMeter)
}

func (s *Space) newShape(body *cp.Body, sd ShapeDef) *cp.Shape {
	ppm := s.cfg.PixelsPerMeter
	offset := s.toSpace(sd.Offset)
	switch sd.Kind {
	case ShapeBox:
		bb := cp.NewBBForExtents(offset, sd.Half.X/ppm, sd.Half.Y/ppm)
		return cp.NewBox2(body, bb, 0)
	default:
		return cp.NewCircle(body, sd.Radius/ppm, offset)
	}
}

// massProperties sums density-scaled mass and moment over all shapes
func (s *Space) massProperties(shapes []ShapeDef) (mass, moment float64) {
	ppm := s.cfg.PixelsPerMeter
	for _, sd := range shapes {
		offset := s.toSpace(sd.Offset)
		switch sd.Kind {
		case ShapeBox:
			w, h := 2*sd.Half.X/ppm, 2*sd.Half.Y/ppm
			m := s.cfg.Density * w * h
			mass += m
			moment += cp.MomentForBox(m, w, h) + m*offset.LengthSq()
		default:
			r := sd.Radius / ppm
			m := s.cfg.Density * math.Pi * r * r
			mass += m
			moment += cp.MomentForCircle(m, 0, r, offset)
		}
	}
	return mass, moment
}

func validShape(sd ShapeDef) bool {
	switch sd.Kind {
	case ShapeCircle:
		return sd.Radius > 0
	case ShapeBox:
		return sd.Half.X > 0 && sd.Half.Y > 0
	default:
		return false
	}
}
