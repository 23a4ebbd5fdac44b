package engine

import (
	"testing"

	"github.com/lixenwraith/tint-arena/core"
)

func TestStoreSwapRemoveKeepsIndex(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 4; i++ {
		s.SetComponent(core.Entity(i), i*10)
	}

	s.RemoveEntity(2)

	if s.CountEntities() != 3 {
		t.Fatalf("Expected 3 entities, got %d", s.CountEntities())
	}
	for _, e := range []core.Entity{1, 3, 4} {
		v, ok := s.GetComponent(e)
		if !ok || v != int(e)*10 {
			t.Errorf("Expected entity %d to hold %d, got %d (ok=%v)", e, int(e)*10, v, ok)
		}
	}
	if s.HasEntity(2) {
		t.Error("Expected entity 2 to be gone")
	}
}

func TestStoreUpdateInPlace(t *testing.T) {
	s := NewStore[bool]()
	s.SetComponent(7, false)

	if !s.Update(7, func(v *bool) { *v = !*v }) {
		t.Fatal("Expected Update to find entity 7")
	}
	if v, _ := s.GetComponent(7); !v {
		t.Error("Expected flipped value true")
	}
	if s.Update(8, func(*bool) {}) {
		t.Error("Expected Update on a missing entity to return false")
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	s := NewStore[string]()
	s.SetComponent(1, "a")
	s.SetComponent(1, "b")

	if s.CountEntities() != 1 {
		t.Errorf("Expected 1 entity after overwrite, got %d", s.CountEntities())
	}
	if v, _ := s.GetComponent(1); v != "b" {
		t.Errorf("Expected b, got %s", v)
	}

	s.ClearAllComponents()
	if len(s.GetAllEntities()) != 0 {
		t.Error("Expected empty store after clear")
	}
}
