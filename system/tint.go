package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/event"
	"github.com/lixenwraith/tint-arena/parameter"
)

// TintSystem drains collision events once per frame and flips the tint of every tagged participant
type TintSystem struct {
	world  *engine.World
	queue  *event.Queue
	assets *asset.VisualAssetSet
	audio  engine.AudioPlayer

	statStarted *atomic.Int64
	statEnded   *atomic.Int64
	statFlips   *atomic.Int64
}

// NewTintSystem creates the collision reactor
// Audio is optional; without an AudioResource flips are silent
func NewTintSystem(world *engine.World) engine.System {
	s := &TintSystem{
		world:  world,
		queue:  engine.MustGetResource[*engine.EventQueueResource](world.Resources).Queue,
		assets: engine.MustGetResource[*engine.AssetResource](world.Resources).Set,
	}
	if res, ok := engine.GetResource[*engine.AudioResource](world.Resources); ok && res != nil {
		s.audio = res.Player
	}

	reg := world.Status()
	s.statStarted = reg.Ints.Get("collision.started")
	s.statEnded = reg.Ints.Get("collision.ended")
	s.statFlips = reg.Ints.Get("tint.flips")
	return s
}

// Name returns system's name
func (s *TintSystem) Name() string {
	return "tint"
}

func (s *TintSystem) Phase() engine.Phase {
	return engine.PhaseFrame
}

func (s *TintSystem) Priority() int {
	return parameter.PriorityTint
}

func (s *TintSystem) Update(dt time.Duration) {
	for _, ev := range s.queue.Consume() {
		if ev.Type != event.EventCollisionStarted {
			s.statEnded.Add(1)
			continue
		}
		s.statStarted.Add(1)
		s.toggle(ev.A)
		s.toggle(ev.B)
	}
}

// toggle flips one participant; boundary, backdrop and unknown entities are left alone
func (s *TintSystem) toggle(e core.Entity) {
	tag, ok := s.world.Components.Body.GetComponent(e)
	if !ok {
		return
	}

	switch tag.Kind {
	case component.BodyBall:
		var tinted bool
		if !s.world.Components.Ball.Update(e, func(b *component.BallComponent) {
			b.Tinted = !b.Tinted
			tinted = b.Tinted
		}) {
			return
		}
		s.setHandle(e, s.assets.BallMaterial(tinted))

	case component.BodyPlayer:
		var tinted bool
		if !s.world.Components.Player.Update(e, func(p *component.PlayerComponent) {
			p.Tinted = !p.Tinted
			tinted = p.Tinted
		}) {
			return
		}
		s.setHandle(e, s.assets.PlayerTexture(tinted))
		s.chime(tinted)
	}
}

func (s *TintSystem) setHandle(e core.Entity, h asset.Handle) {
	s.world.Components.Visual.Update(e, func(v *component.VisualComponent) {
		v.Handle = h
	})
	s.statFlips.Add(1)
}

func (s *TintSystem) chime(tinted bool) {
	if s.audio == nil || s.audio.IsMuted() {
		return
	}
	if tinted {
		s.audio.Play(core.SoundPlayerTint)
	} else {
		s.audio.Play(core.SoundPlayerClear)
	}
}
