package vmath

import (
	"math"
	"testing"
)

func TestFacingFollowsOrientation(t *testing.T) {
	tests := []struct {
		angle float64
		want  Vec2
	}{
		{0, V(0, 1)},
		{math.Pi / 2, V(-1, 0)},
		{math.Pi, V(0, -1)},
		{-math.Pi / 2, V(1, 0)},
	}

	for _, tt := range tests {
		got := Facing(tt.angle)
		if !got.Near(tt.want, 1e-12) {
			t.Errorf("Facing(%v): expected %v, got %v", tt.angle, tt.want, got)
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V(3, 4)
	for _, angle := range []float64{0.1, 1, 2.5, -4} {
		if got := v.Rotate(angle).Len(); math.Abs(got-5) > 1e-12 {
			t.Errorf("Expected length 5 after rotating by %v, got %v", angle, got)
		}
	}
}

func TestRectContainsAndOverlaps(t *testing.T) {
	r := Rect{Center: V(0, 0), Half: V(2, 1)}
	if !r.Contains(V(2, 1)) {
		t.Error("Expected corner to be contained")
	}
	if r.Contains(V(2.1, 0)) {
		t.Error("Expected point outside half-extent to be excluded")
	}

	touching := Rect{Center: V(4, 0), Half: V(2, 1)}
	if r.Overlaps(touching) {
		t.Error("Expected edge-touching rects not to overlap")
	}
	crossing := Rect{Center: V(3.9, 0), Half: V(2, 1)}
	if !r.Overlaps(crossing) {
		t.Error("Expected crossing rects to overlap")
	}
}
