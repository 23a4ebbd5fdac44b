package event

import (
	"sync"

	"github.com/lixenwraith/tint-arena/parameter"
)

// Queue is an unbounded FIFO of collision events
// Thread-Safety:
//   - Push: mutex guarded, multiple producers OK
//   - Consume: single consumer (frame phase)
//
// Overflow: none, the backing slice grows; every pushed event is returned by exactly one Consume
type Queue struct {
	mu      sync.Mutex
	pending []CollisionEvent
	spare   []CollisionEvent // Recycled backing array of the previous drain
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		pending: make([]CollisionEvent, 0, parameter.EventQueueInitialCapacity),
		spare:   make([]CollisionEvent, 0, parameter.EventQueueInitialCapacity),
	}
}

// Push appends an event
func (q *Queue) Push(ev CollisionEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
// Returned slice is valid until the next Consume call
func (q *Queue) Consume() []CollisionEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len returns pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
