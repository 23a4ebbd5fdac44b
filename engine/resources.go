package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/event"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/physics"
)

// ResourceStore is a thread-safe container for global resources
// Systems reach shared data (time, queue, input, assets) without coupling to the front-end
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Use pointer types so systems observe in-place updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for setup invariants: a system built without its inputs is a programming error
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource is updated by the world at the start of every tick and frame
type TimeResource struct {
	// TickNumber counts fixed simulation ticks
	TickNumber int64
	// FrameNumber counts presentation frames
	FrameNumber int64

	// TickDelta is the fixed simulation step
	TickDelta time.Duration
	// FrameDelta is the wall-clock time since the previous frame
	FrameDelta time.Duration
}

// EventQueueResource wraps the collision event queue
type EventQueueResource struct {
	Queue *event.Queue
}

// InputResource exposes the held-key predicate to the tick phase
type InputResource struct {
	State input.State
}

// AssetResource wraps the read-only visual asset set
type AssetResource struct {
	Set *asset.VisualAssetSet
}

// AudioPlayer defines the minimal audio interface used by systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	IsMuted() bool
}

// AudioResource wraps the audio player, absent when audio failed to start
type AudioResource struct {
	Player AudioPlayer
}

// PhysicsResource wraps the rigid-body space shared by the tick-phase systems
type PhysicsResource struct {
	Space *physics.Space
}
