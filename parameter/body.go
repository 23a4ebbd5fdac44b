package parameter

// Player
const (
	// PlayerForwardForce is the thrust along the nose, N
	PlayerForwardForce = 50.0

	// PlayerMaxTorque is the steering torque, N·m
	PlayerMaxTorque = 0.02

	PlayerRadius      = 64.0
	PlayerRestitution = 1.0
)

// Ball ring
const (
	BallRadius      = 16.0
	BallRestitution = 1.0

	// Ring lattice: steps BallStepMin..BallStepMax inclusive at BallSpacing, mirrored onto four edges
	BallSpacing = 36
	BallStepMin = -360
	BallStepMax = 360
	BallOffset  = 384.0

	// BallCount is 21 lattice steps times 4 edges
	BallCount = ((BallStepMax-BallStepMin)/BallSpacing + 1) * 4
)
