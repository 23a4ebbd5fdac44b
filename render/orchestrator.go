package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/status"
	"github.com/lixenwraith/tint-arena/vmath"
)

// hudMetrics lists the status keys shown on the HUD, in display order
var hudMetrics = []struct {
	key   string
	label string
}{
	{"engine.ticks", "tick"},
	{"engine.frames", "frame"},
	{"collision.started", "hits"},
	{"tint.flips", "flips"},
}

// Orchestrator turns a world snapshot into draw calls on a Target
type Orchestrator struct {
	catalog  *asset.Catalog
	viewport *Viewport
	clear    color.RGBA

	ShowHUD bool
}

// NewOrchestrator creates an orchestrator drawing through viewport
func NewOrchestrator(catalog *asset.Catalog, viewport *Viewport, clear color.RGBA) *Orchestrator {
	return &Orchestrator{
		catalog:  catalog,
		viewport: viewport,
		clear:    clear,
		ShowHUD:  true,
	}
}

// Viewport returns the camera used for projection
func (o *Orchestrator) Viewport() *Viewport {
	return o.viewport
}

// RenderFrame snapshots the world under its update lock, then draws without holding it
func (o *Orchestrator) RenderFrame(w *engine.World, t Target) {
	var drawables []Drawable
	w.RunSafe(func() {
		drawables = Collect(w, o.catalog)
	})

	t.Clear(o.clear)
	for i := range drawables {
		o.draw(t, &drawables[i])
	}

	if o.ShowHUD {
		t.Text(0, 0, HUDLine(w.Status()))
	}
}

func (o *Orchestrator) draw(t Target, d *Drawable) {
	vp := o.viewport
	look := Appearance{Color: d.Asset.Color, Glyph: d.Asset.Glyph}

	if d.Radius > 0 {
		center := vp.WorldToScreen(d.Position)
		sx, sy := vp.Scale()
		rx, ry := d.Radius*sx, d.Radius*sy
		if d.Asset.Shape == ShapeShip {
			t.Ship(center, rx, ry, d.Angle, look)
			return
		}
		t.FillEllipse(center, rx, ry, look)
		return
	}

	for _, r := range d.Rects {
		world := vmath.Rect{Center: r.Center.Add(d.Position), Half: r.Half}
		tl, br := vp.RectToScreen(world)
		t.FillRect(tl, br, look)
	}
}

// HUDLine formats the metrics shown in the corner of both front-ends
func HUDLine(reg *status.Registry) string {
	var sb strings.Builder
	for i, m := range hudMetrics {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%s %d", m.label, reg.Ints.Get(m.key).Load())
	}
	sb.WriteString("  [esc] quit")
	return sb.String()
}
