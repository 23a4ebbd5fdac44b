package render

import (
	"sort"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/vmath"
)

// ShapeShip is the manifest shape name of oriented sprite textures
const ShapeShip = "ship"

// Drawable is one entity's visual state copied out of the world
type Drawable struct {
	Entity   core.Entity
	Layer    int
	Position vmath.Vec2
	Angle    float64
	Radius   float64
	Rects    []vmath.Rect // Body-local, used when Radius is 0
	Asset    asset.Asset
}

// Collect snapshots every visual entity in draw order: layer ascending, then entity ID
// Callers hold the world update lock
func Collect(w *engine.World, catalog *asset.Catalog) []Drawable {
	visuals := w.Components.Visual
	entities := visuals.GetAllEntities()
	out := make([]Drawable, 0, len(entities))

	for _, e := range entities {
		v, ok := visuals.GetComponent(e)
		if !ok {
			continue
		}
		a, ok := catalog.Lookup(v.Handle)
		if !ok {
			continue
		}
		tr, _ := w.Components.Transform.GetComponent(e)
		out = append(out, Drawable{
			Entity:   e,
			Layer:    v.Layer,
			Position: tr.Position,
			Angle:    tr.Angle,
			Radius:   v.Radius,
			Rects:    v.Rects,
			Asset:    a,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		return out[i].Entity < out[j].Entity
	})
	return out
}
