package component

// BodyKind tags what a physics-backed entity is
// Player and Ball are the tagged kinds reacting to collisions; tag sets are mutually exclusive
type BodyKind uint8

const (
	BodyBoundary BodyKind = iota
	BodyPlayer
	BodyBall
	BodyBackdrop
)

func (k BodyKind) String() string {
	switch k {
	case BodyBoundary:
		return "boundary"
	case BodyPlayer:
		return "player"
	case BodyBall:
		return "ball"
	case BodyBackdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}

// BodyComponent is the tag of every spawned arena entity
type BodyComponent struct {
	Kind BodyKind
}
