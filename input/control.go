package input

// Axis folds two opposing inputs into a signed unit factor
// Both or neither held cancel to zero
func Axis(positive, negative bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	default:
		return 0
	}
}

// RotationFactor is +1 for rotate-left (counter-clockwise), -1 for rotate-right
func RotationFactor(s State) float64 {
	return Axis(Pressed(s, ActionRotateLeft), Pressed(s, ActionRotateRight))
}

// ForwardFactor is +1 for forward, -1 for backward
func ForwardFactor(s State) float64 {
	return Axis(Pressed(s, ActionForward), Pressed(s, ActionBackward))
}

// QuitRequested reports whether the quit binding is held
func QuitRequested(s State) bool {
	return Pressed(s, ActionQuit)
}
