package input

import (
	"sync"
	"time"
)

// State is the "is key currently held" predicate consumed by the simulation
type State interface {
	Held(k Key) bool
}

// KeySet is a snapshot of held keys, filled by front-ends that can poll key state directly
type KeySet struct {
	held [keyCount]bool
}

// Set marks a key held or released
func (s *KeySet) Set(k Key, held bool) {
	if k < keyCount {
		s.held[k] = held
	}
}

// Held implements State
func (s *KeySet) Held(k Key) bool {
	return k < keyCount && s.held[k]
}

// Reset releases all keys
func (s *KeySet) Reset() {
	s.held = [keyCount]bool{}
}

// HoldTracker emulates held keys for terminals, which report presses and auto-repeats only
// A key counts as held until window elapses without a new press
type HoldTracker struct {
	mu       sync.Mutex
	window   time.Duration
	now      func() time.Time
	lastSeen [keyCount]time.Time
}

// NewHoldTracker creates a tracker; now is injectable for tests
func NewHoldTracker(window time.Duration, now func() time.Time) *HoldTracker {
	if now == nil {
		now = time.Now
	}
	return &HoldTracker{
		window: window,
		now:    now,
	}
}

// Press records a press or repeat of k
func (h *HoldTracker) Press(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	h.mu.Lock()
	h.lastSeen[k] = h.now()
	h.mu.Unlock()
}

// Release forgets k immediately, for terminals that do report key-up
func (h *HoldTracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	h.mu.Lock()
	h.lastSeen[k] = time.Time{}
	h.mu.Unlock()
}

// ReleaseAll forgets every key, used on focus loss and resize
func (h *HoldTracker) ReleaseAll() {
	h.mu.Lock()
	h.lastSeen = [keyCount]time.Time{}
	h.mu.Unlock()
}

// Held implements State
func (h *HoldTracker) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := h.lastSeen[k]
	if seen.IsZero() {
		return false
	}
	return h.now().Sub(seen) < h.window
}
