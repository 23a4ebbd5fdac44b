package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/status"
)

// World contains all entities, their components, resources and systems
// Tick and Frame hold the update mutex, so the two cadences never overlap
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *ResourceStore
	Components ComponentStore
	stores     []AnyStore

	systems     [phaseCount][]System
	updateMutex sync.Mutex

	timeRes    *TimeResource
	statTicks  *atomic.Int64
	statFrames *atomic.Int64
}

// NewWorld creates a world with every component store, a TimeResource and a status registry
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Components:   newComponentStore(),
		timeRes:      &TimeResource{},
	}
	w.stores = w.Components.all()

	reg := status.NewRegistry()
	w.statTicks = reg.Ints.Get("engine.ticks")
	w.statFrames = reg.Ints.Get("engine.frames")

	AddResource(w.Resources, w.timeRes)
	AddResource(w.Resources, reg)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.stores {
		s.ClearAllComponents()
	}
}

// AddSystem registers a system under its phase, keeping priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := system.Phase()
	list := append(w.systems[p], system)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority() < list[j].Priority()
	})
	w.systems[p] = list
}

// Systems returns a copy of the systems registered for a phase, in run order
func (w *World) Systems(p Phase) []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems[p]))
	copy(result, w.systems[p])
	return result
}

// RunSafe executes a function while holding the world's update lock
// Front-ends use it to read component state between phases
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Tick advances the simulation by one fixed step
func (w *World) Tick(dt time.Duration) {
	w.RunSafe(func() {
		w.timeRes.TickNumber++
		w.timeRes.TickDelta = dt
		w.statTicks.Add(1)
		w.runPhase(PhaseTick, dt)
	})
}

// Frame runs the presentation-rate systems
func (w *World) Frame(dt time.Duration) {
	w.RunSafe(func() {
		w.timeRes.FrameNumber++
		w.timeRes.FrameDelta = dt
		w.statFrames.Add(1)
		w.runPhase(PhaseFrame, dt)
	})
}

func (w *World) runPhase(p Phase, dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems[p]))
	copy(systems, w.systems[p])
	w.mu.RUnlock()

	for _, s := range systems {
		s.Update(dt)
	}
}

// TickNumber returns the number of completed ticks
func (w *World) TickNumber() int64 {
	var n int64
	w.RunSafe(func() { n = w.timeRes.TickNumber })
	return n
}

// Status returns the world's metrics registry
func (w *World) Status() *status.Registry {
	return MustGetResource[*status.Registry](w.Resources)
}
