package arena

import (
	"testing"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/event"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/physics"
	"github.com/lixenwraith/tint-arena/vmath"
)

func newTestArena(t *testing.T) (*engine.World, *physics.Space, *asset.VisualAssetSet, Layout) {
	t.Helper()
	c, err := asset.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	assets, err := asset.NewVisualAssetSet(c)
	if err != nil {
		t.Fatalf("NewVisualAssetSet: %v", err)
	}
	w := engine.NewWorld()
	space := physics.NewSpace(physics.DefaultConfig(), event.NewQueue())
	layout, err := Build(w, space, assets)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return w, space, assets, layout
}

func TestBoundarySegmentsGeometry(t *testing.T) {
	segs := BoundarySegments(1024, 128)

	top, bottom, left, right := segs[0], segs[1], segs[2], segs[3]
	if !top.Center.Equal(vmath.V(0, 576)) || !top.Half.Equal(vmath.V(512, 64)) {
		t.Errorf("Unexpected top wall %+v", top)
	}
	if !left.Center.Equal(vmath.V(-576, 0)) || !left.Half.Equal(vmath.V(64, 640)) {
		t.Errorf("Unexpected left wall %+v", left)
	}

	// Reflection symmetry about both axes
	if !bottom.Center.Equal(top.Center.MirrorY()) || !bottom.Half.Equal(top.Half) {
		t.Errorf("Expected bottom to mirror top, got %+v vs %+v", bottom, top)
	}
	if !right.Center.Equal(left.Center.MirrorX()) || !right.Half.Equal(left.Half) {
		t.Errorf("Expected right to mirror left, got %+v vs %+v", right, left)
	}
}

func TestBoundaryEnclosesPlayfield(t *testing.T) {
	segs := BoundarySegments(1024, 128)
	playfield := vmath.Rect{Half: vmath.V(512, 512)}

	for i, s := range segs {
		if s.Overlaps(playfield) {
			t.Errorf("Wall %d intrudes into playfield: %+v", i, s)
		}
	}
	// Corners are covered by the side walls
	for _, corner := range []vmath.Vec2{vmath.V(-560, 560), vmath.V(560, 560), vmath.V(-560, -560), vmath.V(560, -560)} {
		covered := false
		for _, s := range segs {
			if s.Contains(corner) {
				covered = true
			}
		}
		if !covered {
			t.Errorf("Expected corner %v to be walled", corner)
		}
	}
}

func TestBallPositionsRing(t *testing.T) {
	pos := BallPositions()
	if len(pos) != 84 || len(pos) != parameter.BallCount {
		t.Fatalf("Expected 84 balls, got %d", len(pos))
	}

	seen := make(map[vmath.Vec2]bool)
	for _, p := range pos {
		if seen[p] {
			t.Errorf("Duplicate ball position %v", p)
		}
		seen[p] = true
		onEdge := p.X == 384 || p.X == -384 || p.Y == 384 || p.Y == -384
		if !onEdge {
			t.Errorf("Ball %v not on the ring", p)
		}
	}

	// Ring is symmetric under both mirrors
	for _, p := range pos {
		if !seen[p.MirrorX()] || !seen[p.MirrorY()] {
			t.Errorf("Expected mirrors of %v in ring", p)
		}
	}

	// Balls along an edge keep a gap between them
	if !seen[vmath.V(-360, 384)] || !seen[vmath.V(360, 384)] || !seen[vmath.V(0, 384)] {
		t.Error("Expected inclusive lattice endpoints and center")
	}
}

func TestBuildPopulatesWorld(t *testing.T) {
	w, space, assets, layout := newTestArena(t)

	if len(layout.Balls) != 84 {
		t.Errorf("Expected 84 balls, got %d", len(layout.Balls))
	}
	if got := w.Components.Player.CountEntities(); got != 1 {
		t.Errorf("Expected exactly one player, got %d", got)
	}
	if got := w.Components.Ball.CountEntities(); got != 84 {
		t.Errorf("Expected 84 ball components, got %d", got)
	}
	// Player, balls, boundary; backdrop has no body
	if got := space.BodyCount(); got != 86 {
		t.Errorf("Expected 86 physics bodies, got %d", got)
	}

	p, ok := w.Components.Player.GetComponent(layout.Player)
	if !ok {
		t.Fatal("Expected player component")
	}
	if p.ForwardForce != 50 || p.MaxTorque != 0.02 || p.Tinted {
		t.Errorf("Unexpected player %+v", p)
	}
	f, _ := w.Components.Force.GetComponent(layout.Player)
	if !f.Force.Equal(vmath.Zero) || f.Torque != 0 {
		t.Errorf("Expected zero initial force, got %+v", f)
	}
	v, _ := w.Components.Visual.GetComponent(layout.Player)
	if v.Handle != assets.PlayerUntinted || v.Radius != 64 {
		t.Errorf("Unexpected player visual %+v", v)
	}

	for _, b := range layout.Balls {
		bc, _ := w.Components.Ball.GetComponent(b)
		vis, _ := w.Components.Visual.GetComponent(b)
		if bc.Tinted || vis.Handle != assets.BallUntinted || vis.Radius != 16 {
			t.Errorf("Unexpected ball %d: %+v %+v", b, bc, vis)
		}
		if space.IsSleeping(b) {
			t.Errorf("Ball %d starts asleep", b)
		}
	}

	tag, _ := w.Components.Body.GetComponent(layout.Boundary)
	if tag.Kind != component.BodyBoundary {
		t.Errorf("Expected boundary tag, got %v", tag.Kind)
	}
	bnd, _ := w.Components.Boundary.GetComponent(layout.Boundary)
	if bnd.Restitution != 0.9 {
		t.Errorf("Expected wall restitution 0.9, got %v", bnd.Restitution)
	}
	bg, _ := w.Components.Visual.GetComponent(layout.Background)
	if bg.Layer >= parameter.LayerGameplay || bg.Handle != assets.Background {
		t.Errorf("Expected background below gameplay, got %+v", bg)
	}
}

func TestTagsAreExclusive(t *testing.T) {
	w, _, _, _ := newTestArena(t)

	for _, e := range w.Components.Body.GetAllEntities() {
		if w.Components.Player.HasEntity(e) && w.Components.Ball.HasEntity(e) {
			t.Errorf("Entity %d tagged as both player and ball", e)
		}
	}
}
