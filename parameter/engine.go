package parameter

import "time"

// Simulation & Frame Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60

	// TickInterval is the fixed simulation step
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the terminal front-end render cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpTicks bounds ticks executed for one wall-clock advance after a stall
	MaxCatchUpTicks = 5
)

// Event queue
const (
	// EventQueueInitialCapacity is the preallocated slot count of the collision event queue
	EventQueueInitialCapacity = 256
)
