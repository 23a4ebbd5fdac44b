package physics

import "github.com/lixenwraith/tint-arena/vmath"

// BodyType selects how the engine integrates a body
type BodyType uint8

const (
	BodyDynamic BodyType = iota
	BodyStatic
)

// ShapeKind identifies a collider primitive
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// ShapeDef is one collider attached to a body, in world units relative to the body origin
type ShapeDef struct {
	Kind   ShapeKind
	Offset vmath.Vec2 // Center relative to body position
	Radius float64    // ShapeCircle
	Half   vmath.Vec2 // ShapeBox half-extents
}

// Circle builds a centered circle collider
func Circle(radius float64) ShapeDef {
	return ShapeDef{Kind: ShapeCircle, Radius: radius}
}

// Box builds an axis-aligned box collider from a world rectangle
func Box(r vmath.Rect) ShapeDef {
	return ShapeDef{Kind: ShapeBox, Offset: r.Center, Half: r.Half}
}

// BodyDef describes a body to insert into the space
// Several Shapes on one body form a compound collider
type BodyDef struct {
	Type        BodyType
	Position    vmath.Vec2
	Shapes      []ShapeDef
	Restitution float64
	Friction    float64

	// NeverSleep keeps the body active regardless of velocity
	NeverSleep bool

	// ReportCollisions makes contacts involving this body produce events
	ReportCollisions bool
}

// Transform is a body pose in world units
type Transform struct {
	Position vmath.Vec2
	Angle    float64 // Radians, counter-clockwise
}
