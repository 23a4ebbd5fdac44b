package parameter

// Physics engine configuration
const (
	// PixelsPerMeter converts world units to the engine's SI space
	PixelsPerMeter = 256.0

	// BodyDensity is the areal density used for circle mass, kg/m²
	BodyDensity = 1.0

	// SolverIterations is the Chipmunk constraint solver iteration count
	SolverIterations = 10

	// SleepTimeThreshold enables the engine's sleeping heuristic, seconds idle before sleep
	// Bodies flagged NeverSleep are exempt
	SleepTimeThreshold = 0.5

	// BodyFriction applies to every shape; contacts are frictionless
	BodyFriction = 0.0
)

// Force unit conversion into SI space
const (
	// ForceScale maps configured force (world units) to Newtons in the engine
	ForceScale = 1.0 / PixelsPerMeter

	// TorqueScale maps configured torque to N·m in the engine
	// Torque is already expressed in SI
	TorqueScale = 1.0
)

// CollisionSlop is the allowed shape overlap in engine meters, half a pixel
const CollisionSlop = 0.5 / PixelsPerMeter
