package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/game"
	"github.com/lixenwraith/tint-arena/input"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/vmath"
)

type call struct {
	op    string
	look  Appearance
	a, b  vmath.Vec2
	angle float64
}

type recordingTarget struct {
	calls []call
	text  []string
}

func (r *recordingTarget) Clear(bg color.RGBA) {
	r.calls = append(r.calls, call{op: "clear", look: Appearance{Color: bg}})
}

func (r *recordingTarget) FillRect(tl, br vmath.Vec2, a Appearance) {
	r.calls = append(r.calls, call{op: "rect", look: a, a: tl, b: br})
}

func (r *recordingTarget) FillEllipse(c vmath.Vec2, rx, ry float64, a Appearance) {
	r.calls = append(r.calls, call{op: "ellipse", look: a, a: c, b: vmath.V(rx, ry)})
}

func (r *recordingTarget) Ship(c vmath.Vec2, rx, ry, angle float64, a Appearance) {
	r.calls = append(r.calls, call{op: "ship", look: a, a: c, b: vmath.V(rx, ry), angle: angle})
}

func (r *recordingTarget) Text(col, row int, s string) {
	r.text = append(r.text, s)
}

func (r *recordingTarget) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.Options{Input: &input.KeySet{}})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestRenderFrameDrawsWholeArena(t *testing.T) {
	s := newTestSession(t)
	vp := NewViewport(parameter.ArenaSize, parameter.ArenaSize, 1)
	vp.Resize(1024, 1024)
	o := NewOrchestrator(s.Catalog, vp, color.RGBA{A: 255})

	target := &recordingTarget{}
	o.RenderFrame(s.World, target)

	if target.calls[0].op != "clear" {
		t.Fatalf("Expected clear first, got %s", target.calls[0].op)
	}
	if got := target.count("rect"); got != 5 {
		t.Errorf("Expected backdrop plus 4 walls, got %d rects", got)
	}
	if got := target.count("ellipse"); got != parameter.BallCount {
		t.Errorf("Expected %d balls, got %d", parameter.BallCount, got)
	}
	if got := target.count("ship"); got != 1 {
		t.Errorf("Expected one player ship, got %d", got)
	}

	// Backdrop is drawn before anything on the gameplay layer
	if target.calls[1].op != "rect" {
		t.Errorf("Expected backdrop drawn right after clear, got %s", target.calls[1].op)
	}

	for _, c := range target.calls {
		if c.op == "ship" {
			if !c.a.Equal(vmath.V(512, 512)) || c.b.X != 64 {
				t.Errorf("Expected player centered with radius 64, got %v r=%v", c.a, c.b)
			}
		}
	}

	if len(target.text) != 1 || !strings.Contains(target.text[0], "hits 0") {
		t.Errorf("Expected HUD line, got %v", target.text)
	}
}

func TestRenderFrameReflectsTint(t *testing.T) {
	s := newTestSession(t)
	vp := NewViewport(parameter.ArenaSize, parameter.ArenaSize, 1)
	vp.Resize(1024, 1024)
	o := NewOrchestrator(s.Catalog, vp, color.RGBA{})
	o.ShowHUD = false

	ball := s.Layout.Balls[0]
	s.World.Components.Visual.Update(ball, func(v *component.VisualComponent) {
		v.Handle = s.Assets.BallTinted
	})

	target := &recordingTarget{}
	o.RenderFrame(s.World, target)

	red := 0
	for _, c := range target.calls {
		if c.op == "ellipse" && c.look.Color == (color.RGBA{R: 255, A: 255}) {
			red++
		}
	}
	if red != 1 {
		t.Errorf("Expected exactly one red ball, got %d", red)
	}
	if len(target.text) != 0 {
		t.Error("Expected HUD hidden")
	}
}
