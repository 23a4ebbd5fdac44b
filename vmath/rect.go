package vmath

// Rect is an axis-aligned rectangle described by center and half-extents
type Rect struct {
	Center Vec2
	Half   Vec2
}

// Min returns the bottom-left corner
func (r Rect) Min() Vec2 { return r.Center.Sub(r.Half) }

// Max returns the top-right corner
func (r Rect) Max() Vec2 { return r.Center.Add(r.Half) }

// Contains reports whether p lies inside or on the edge of r
func (r Rect) Contains(p Vec2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Overlaps reports whether the interiors of r and o intersect
func (r Rect) Overlaps(o Rect) bool {
	alo, ahi := r.Min(), r.Max()
	blo, bhi := o.Min(), o.Max()
	return alo.X < bhi.X && blo.X < ahi.X && alo.Y < bhi.Y && blo.Y < ahi.Y
}
