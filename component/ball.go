package component

// BallComponent marks a reactive ball
type BallComponent struct {
	Tinted bool
}
