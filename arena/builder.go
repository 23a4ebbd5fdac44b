package arena

import (
	"fmt"

	"github.com/lixenwraith/tint-arena/asset"
	"github.com/lixenwraith/tint-arena/component"
	"github.com/lixenwraith/tint-arena/core"
	"github.com/lixenwraith/tint-arena/engine"
	"github.com/lixenwraith/tint-arena/parameter"
	"github.com/lixenwraith/tint-arena/physics"
	"github.com/lixenwraith/tint-arena/vmath"
)

// Scenery holds the static entities of the arena
type Scenery struct {
	Boundary   core.Entity
	Background core.Entity
}

// BoundarySegments returns the top, bottom, left and right walls enclosing a size×size square
// Side walls extend by margin past the playfield so the corners are closed
func BoundarySegments(size, margin float64) [4]vmath.Rect {
	half := size / 2
	center := half + margin/2
	return [4]vmath.Rect{
		{Center: vmath.V(0, center), Half: vmath.V(half, margin/2)},
		{Center: vmath.V(0, -center), Half: vmath.V(half, margin/2)},
		{Center: vmath.V(-center, 0), Half: vmath.V(margin/2, half+margin)},
		{Center: vmath.V(center, 0), Half: vmath.V(margin/2, half+margin)},
	}
}

// BuildScenery creates the compound wall body and the background plane
func BuildScenery(w *engine.World, space *physics.Space, assets *asset.VisualAssetSet, size, margin float64) (Scenery, error) {
	segments := BoundarySegments(size, margin)

	shapes := make([]physics.ShapeDef, 0, len(segments))
	for _, seg := range segments {
		shapes = append(shapes, physics.Box(seg))
	}

	eb := w.NewEntity()
	err := space.AddBody(eb.Entity(), physics.BodyDef{
		Type:        physics.BodyStatic,
		Shapes:      shapes,
		Restitution: parameter.WallRestitution,
		Friction:    parameter.BodyFriction,
	})
	if err != nil {
		return Scenery{}, fmt.Errorf("arena boundary: %w", err)
	}

	engine.With(eb, w.Components.Body, component.BodyComponent{Kind: component.BodyBoundary})
	engine.With(eb, w.Components.Boundary, component.BoundaryComponent{
		Segments:    segments,
		Restitution: parameter.WallRestitution,
	})
	engine.With(eb, w.Components.Transform, component.TransformComponent{})
	engine.With(eb, w.Components.Visual, component.VisualComponent{
		Handle: assets.Wall,
		Layer:  parameter.LayerWall,
		Rects:  segments[:],
	})
	boundary := eb.Build()

	// Backdrop is visual only, no physics body
	bb := w.NewEntity()
	engine.With(bb, w.Components.Body, component.BodyComponent{Kind: component.BodyBackdrop})
	engine.With(bb, w.Components.Transform, component.TransformComponent{})
	engine.With(bb, w.Components.Visual, component.VisualComponent{
		Handle: assets.Background,
		Layer:  parameter.LayerBackdrop,
		Rects:  []vmath.Rect{{Half: vmath.V(size/2, size/2)}},
	})
	background := bb.Build()

	return Scenery{Boundary: boundary, Background: background}, nil
}
