package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/event"
)

// Shape collision types; a pair produces events only when at least one side reports
// Events are per body pair: a compound body touching through several shapes counts as one contact
const (
	collisionReporting cp.CollisionType = iota + 1
	collisionSilent
)

func (s *Space) registerHandlers() {
	for _, other := range []cp.CollisionType{collisionReporting, collisionSilent} {
		h := s.space.NewCollisionHandler(collisionReporting, other)
		h.BeginFunc = s.onBegin
		h.SeparateFunc = s.onSeparate
	}
}

func (s *Space) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	s.publish(event.EventCollisionStarted, arb)
	return true
}

func (s *Space) onSeparate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	s.publish(event.EventCollisionEnded, arb)
}

func (s *Space) publish(t event.EventType, arb *cp.Arbiter) {
	a, b := arb.Bodies()
	ea, eb := entityOf(a), entityOf(b)
	if !s.trackContact(t, pairKey(ea, eb)) {
		return
	}
	if s.queue == nil {
		return
	}
	s.queue.Push(event.CollisionEvent{
		Type: t,
		A:    ea,
		B:    eb,
		Tick: s.tick,
	})
}

// trackContact refcounts shape contacts per body pair
// Returns true on the first begin and on the last separate of the pair
func (s *Space) trackContact(t event.EventType, key [2]core.Entity) bool {
	n := s.contacts[key]
	switch t {
	case event.EventCollisionStarted:
		s.contacts[key] = n + 1
		return n == 0
	case event.EventCollisionEnded:
		if n == 0 {
			return false
		}
		if n > 1 {
			s.contacts[key] = n - 1
			return false
		}
		delete(s.contacts, key)
		return true
	default:
		return false
	}
}

func pairKey(a, b core.Entity) [2]core.Entity {
	if a > b {
		a, b = b, a
	}
	return [2]core.Entity{a, b}
}

// entityOf resolves the entity stored on a body; bodies without one map to 0
func entityOf(body *cp.Body) core.Entity {
	if body == nil {
		return 0
	}
	e, _ := body.UserData.(core.Entity)
	return e
}
