package vmath

import "math"

// Vec2 is a 2D vector in world units, Y axis up
type Vec2 struct {
	X, Y float64
}

var (
	// Zero is the origin
	Zero = Vec2{}
	// Up is the local "nose" axis of every body
	Up = Vec2{X: 0, Y: 1}
)

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) MirrorX() Vec2        { return Vec2{-v.X, v.Y} }
func (v Vec2) MirrorY() Vec2        { return Vec2{v.X, -v.Y} }
func (v Vec2) Equal(o Vec2) bool    { return v.X == o.X && v.Y == o.Y }

func (v Vec2) Near(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Rotate returns v rotated counter-clockwise by angle radians
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Facing returns the body's nose direction for a given orientation
func Facing(angle float64) Vec2 {
	return Up.Rotate(angle)
}
