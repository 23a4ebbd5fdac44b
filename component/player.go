package component

// PlayerComponent holds the thrust model and tint state of the controllable body
type PlayerComponent struct {
	// ForwardForce is the thrust applied along the nose, N
	ForwardForce float64
	// MaxTorque is the steering torque, N·m
	MaxTorque float64
	Tinted    bool
}
