// Package game wires the world, physics space, arena and systems into a runnable session
// Front-ends drive it with Tick at the fixed rate and Frame at presentation rate
package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tint-arena/arena"
	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/event"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/physics"
	"github.com/lixenwraith/tint-arena/system"
)

// Options configures a session; zero values select defaults
type Options struct {
	Input   input.State        // Required, held-key predicate sampled every tick
	Audio   engine.AudioPlayer // Optional, nil disables the tint chime
	Catalog *asset.Catalog     // Optional, embedded manifest when nil
}

// Session holds all simulation state for one run
type Session struct {
	// ===== Immutable After Init =====

	World   *engine.World
	Space   *physics.Space
	Queue   *event.Queue
	Catalog *asset.Catalog
	Assets  *asset.VisualAssetSet
	Layout  arena.Layout

	input input.State

	// ===== Atomic =====

	quit atomic.Bool
}

// NewSession builds the world, registers resources and systems, and populates the arena
func NewSession(opts Options) (*Session, error) {
	if opts.Input == nil {
		return nil, fmt.Errorf("new session: input state is required")
	}

	catalog := opts.Catalog
	if catalog == nil {
		var err error
		catalog, err = asset.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("new session: %w", err)
		}
	}
	assets, err := asset.NewVisualAssetSet(catalog)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	world := engine.NewWorld()
	queue := event.NewQueue()
	space := physics.NewSpace(physics.DefaultConfig(), queue)

	// -- Resources --
	res := world.Resources
	engine.AddResource(res, &engine.EventQueueResource{Queue: queue})
	engine.AddResource(res, &engine.InputResource{State: opts.Input})
	engine.AddResource(res, &engine.AssetResource{Set: assets})
	engine.AddResource(res, &engine.PhysicsResource{Space: space})
	if opts.Audio != nil {
		engine.AddResource(res, &engine.AudioResource{Player: opts.Audio})
	}

	layout, err := arena.Build(world, space, assets)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	// -- Systems --
	world.AddSystem(system.NewForceSystem(world))
	world.AddSystem(system.NewPhysicsSystem(world))
	world.AddSystem(system.NewTintSystem(world))

	log.Info("session ready", "entities", world.Components.Body.CountEntities(), "assets", catalog.Len())

	return &Session{
		World:   world,
		Space:   space,
		Queue:   queue,
		Catalog: catalog,
		Assets:  assets,
		Layout:  layout,
		input:   opts.Input,
	}, nil
}

// Tick runs one fixed simulation step unless quit is held
// Returns true once quit has been requested; the step is skipped in that case
func (s *Session) Tick() bool {
	if s.quit.Load() {
		return true
	}
	if input.QuitRequested(s.input) {
		s.RequestQuit()
		return true
	}
	s.World.Tick(parameter.TickInterval)
	return false
}

// Frame runs the presentation-rate systems
func (s *Session) Frame(dt time.Duration) {
	s.World.Frame(dt)
}

// RequestQuit marks the session finished; safe from any goroutine
func (s *Session) RequestQuit() {
	if !s.quit.Swap(true) {
		log.Info("quit requested", "ticks", s.World.TickNumber())
	}
}

// QuitRequested reports whether the session should end
func (s *Session) QuitRequested() bool {
	return s.quit.Load()
}
