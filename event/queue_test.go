package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/tint-arena/core"
)

func TestQueueFIFOExactlyOnce(t *testing.T) {
	q := NewQueue()

	for i := 1; i <= 5; i++ {
		q.Push(CollisionEvent{Type: EventCollisionStarted, A: core.Entity(i), B: core.Entity(i + 100)})
	}
	if q.Len() != 5 {
		t.Fatalf("Expected 5 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.A != core.Entity(i+1) {
			t.Errorf("Expected event %d to have A=%d, got %d", i, i+1, ev.A)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("Expected nil on second consume, got %d events", len(again))
	}
}

func TestQueueGrowsBeyondInitialCapacity(t *testing.T) {
	q := NewQueue()
	const n = 5000

	for i := 0; i < n; i++ {
		q.Push(CollisionEvent{A: core.Entity(i)})
	}

	got := q.Consume()
	if len(got) != n {
		t.Fatalf("Expected %d events without loss, got %d", n, len(got))
	}
	if got[n-1].A != core.Entity(n-1) {
		t.Errorf("Expected last event A=%d, got %d", n-1, got[n-1].A)
	}
}

func TestQueueDrainDoesNotClobberPreviousBatch(t *testing.T) {
	q := NewQueue()
	q.Push(CollisionEvent{A: 1})
	first := q.Consume()

	q.Push(CollisionEvent{A: 2})
	if first[0].A != 1 {
		t.Errorf("Expected previous batch intact until next consume, got A=%d", first[0].A)
	}
	second := q.Consume()
	if len(second) != 1 || second[0].A != 2 {
		t.Errorf("Expected second batch [A=2], got %+v", second)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup

	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(CollisionEvent{Type: EventCollisionStarted})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 800 {
		t.Errorf("Expected 800 events, got %d", got)
	}
}

func TestInvolves(t *testing.T) {
	ev := CollisionEvent{A: 3, B: 7}
	if !ev.Involves(3) || !ev.Involves(7) {
		t.Error("Expected both participants to be involved")
	}
	if ev.Involves(5) {
		t.Error("Expected non-participant to be excluded")
	}
}
