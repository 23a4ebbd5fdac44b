package engine

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// ClockScheduler converts wall-clock progress into a whole number of fixed ticks
// Simulation advances in exact TickInterval steps independent of the render cadence
// Falling further behind than maxCatchUp ticks drops the backlog instead of spiraling
type ClockScheduler struct {
	clock      TimeProvider
	interval   time.Duration
	maxCatchUp int

	started     bool
	nextTick    time.Time // Deadline of the next tick, drift-free
	lastAdvance time.Time

	tickCount    atomic.Uint64
	droppedTicks atomic.Uint64
}

// NewClockScheduler creates a scheduler for the given tick interval
func NewClockScheduler(clock TimeProvider, interval time.Duration, maxCatchUp int) *ClockScheduler {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &ClockScheduler{
		clock:      clock,
		interval:   interval,
		maxCatchUp: maxCatchUp,
	}
}

// Start anchors the schedule at the current time; the first tick is due one interval later
func (cs *ClockScheduler) Start() {
	now := cs.clock.Now()
	cs.nextTick = now.Add(cs.interval)
	cs.lastAdvance = now
	cs.started = true
}

// Advance returns how many ticks are due now and how much wall time passed since the last call
// Caller runs exactly that many World.Tick calls
func (cs *ClockScheduler) Advance() (ticks int, elapsed time.Duration) {
	if !cs.started {
		cs.Start()
		return 0, 0
	}

	now := cs.clock.Now()
	elapsed = now.Sub(cs.lastAdvance)
	cs.lastAdvance = now

	for !now.Before(cs.nextTick) {
		if ticks == cs.maxCatchUp {
			// Drop backlog and re-anchor
			behind := now.Sub(cs.nextTick)/cs.interval + 1
			cs.droppedTicks.Add(uint64(behind))
			cs.nextTick = now.Add(cs.interval)
			log.Debug("clock scheduler dropped ticks", "count", int64(behind))
			break
		}
		ticks++
		cs.nextTick = cs.nextTick.Add(cs.interval)
	}

	cs.tickCount.Add(uint64(ticks))
	return ticks, elapsed
}

// UntilNext returns the wait until the next tick is due, zero if already due
func (cs *ClockScheduler) UntilNext() time.Duration {
	if !cs.started {
		return 0
	}
	d := cs.nextTick.Sub(cs.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

// Interval returns the fixed tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.interval
}

// TickCount returns the total ticks handed out
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// DroppedTicks returns ticks skipped by catch-up limiting
func (cs *ClockScheduler) DroppedTicks() uint64 {
	return cs.droppedTicks.Load()
}
