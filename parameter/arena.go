package parameter

// Arena geometry in world units (pixels)
const (
	// ArenaSize is the side length of the square playfield
	ArenaSize = 1024.0

	// ArenaMargin is the wall thickness around the playfield
	ArenaMargin = 128.0

	// WallRestitution makes the boundary absorb 10% of kinetic energy per bounce
	WallRestitution = 0.9
)

// Render layers, higher draws on top
const (
	LayerBackdrop = -1
	LayerWall     = 0
	LayerGameplay = 1
)
