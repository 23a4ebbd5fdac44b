package engine

import (
	"testing"
	"time"
)

func newTestScheduler(maxCatchUp int) (*ClockScheduler, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	cs := NewClockScheduler(clock, 10*time.Millisecond, maxCatchUp)
	cs.Start()
	return cs, clock
}

func TestClockSchedulerWholeTicks(t *testing.T) {
	cs, clock := newTestScheduler(8)

	clock.Advance(5 * time.Millisecond)
	if n, _ := cs.Advance(); n != 0 {
		t.Errorf("Expected 0 ticks before the first deadline, got %d", n)
	}

	clock.Advance(5 * time.Millisecond)
	if n, _ := cs.Advance(); n != 1 {
		t.Errorf("Expected 1 tick at the deadline, got %d", n)
	}

	clock.Advance(35 * time.Millisecond)
	n, elapsed := cs.Advance()
	if n != 3 {
		t.Errorf("Expected 3 ticks after 35ms, got %d", n)
	}
	if elapsed != 35*time.Millisecond {
		t.Errorf("Expected elapsed 35ms, got %v", elapsed)
	}

	if until := cs.UntilNext(); until != 5*time.Millisecond {
		t.Errorf("Expected 5ms until next tick, got %v", until)
	}
	if cs.TickCount() != 4 {
		t.Errorf("Expected 4 total ticks, got %d", cs.TickCount())
	}
}

func TestClockSchedulerDropsBacklog(t *testing.T) {
	cs, clock := newTestScheduler(2)

	clock.Advance(100 * time.Millisecond)
	n, _ := cs.Advance()
	if n != 2 {
		t.Errorf("Expected catch-up capped at 2, got %d", n)
	}
	if cs.DroppedTicks() == 0 {
		t.Error("Expected dropped ticks to be recorded")
	}

	// Schedule re-anchors after dropping
	clock.Advance(10 * time.Millisecond)
	if n, _ := cs.Advance(); n != 1 {
		t.Errorf("Expected 1 tick after re-anchor, got %d", n)
	}
}

func TestClockSchedulerLazyStart(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	cs := NewClockScheduler(clock, time.Second, 0)

	if cs.UntilNext() != 0 {
		t.Error("Expected zero wait before start")
	}
	if n, _ := cs.Advance(); n != 0 {
		t.Errorf("Expected first Advance to only anchor, got %d ticks", n)
	}
	clock.Advance(time.Second)
	if n, _ := cs.Advance(); n != 1 {
		t.Errorf("Expected 1 tick after one interval, got %d", n)
	}
}
