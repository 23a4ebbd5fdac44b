package engine

import "time"

// Phase selects the cadence a system runs on
type Phase uint8

const (
	// PhaseTick runs at the fixed simulation rate
	PhaseTick Phase = iota
	// PhaseFrame runs once per presented frame
	PhaseFrame

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseTick:
		return "tick"
	case PhaseFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// System is implemented by every simulation system
type System interface {
	Name() string
	Phase() Phase
	Priority() int // Lower values run first within the phase
	Update(dt time.Duration)
}
