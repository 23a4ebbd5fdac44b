package status

import "testing"

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("engine.ticks")
	b := r.Ints.Get("engine.ticks")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3 through cached pointer, got %d", b.Load())
	}
}

func TestSnapshotOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("tint.flips").Store(4)
	r.Ints.Get("collision.started").Store(9)
	r.Floats.Get("frame.ms").Set(16.5)

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Expected 3 metrics, got %d", len(snap))
	}

	want := []Metric{
		{Key: "collision.started", Value: 9},
		{Key: "tint.flips", Value: 4},
		{Key: "frame.ms", Value: 16.5},
	}
	for i, m := range want {
		if snap[i] != m {
			t.Errorf("Expected metric %d to be %+v, got %+v", i, m, snap[i])
		}
	}
}
