package asset

import "fmt"

// Manifest names of the tint assets
const (
	PlayerUntintedName = "player_white.png"
	PlayerTintedName   = "player_red.png"
	BallUntintedName   = "ball_white"
	BallTintedName     = "ball_red"
	BackgroundName     = "background"
	WallName           = "wall"
)

// VisualAssetSet holds the handles swapped by tint changes plus the static scenery
// Built once at startup and shared read-only
type VisualAssetSet struct {
	PlayerUntinted Handle
	PlayerTinted   Handle
	BallUntinted   Handle
	BallTinted     Handle

	Background Handle
	Wall       Handle
}

// NewVisualAssetSet resolves every handle from the catalog
func NewVisualAssetSet(c *Catalog) (*VisualAssetSet, error) {
	set := &VisualAssetSet{}

	loads := []struct {
		dst  *Handle
		name string
		kind Kind
	}{
		{&set.PlayerUntinted, PlayerUntintedName, KindTexture},
		{&set.PlayerTinted, PlayerTintedName, KindTexture},
		{&set.BallUntinted, BallUntintedName, KindMaterial},
		{&set.BallTinted, BallTintedName, KindMaterial},
		{&set.Background, BackgroundName, KindMaterial},
		{&set.Wall, WallName, KindMaterial},
	}

	for _, l := range loads {
		h, err := c.Load(l.name, l.kind)
		if err != nil {
			return nil, fmt.Errorf("visual asset set: %w", err)
		}
		*l.dst = h
	}

	return set, nil
}

// PlayerTexture returns the player texture for a tint state
func (s *VisualAssetSet) PlayerTexture(tinted bool) Handle {
	if tinted {
		return s.PlayerTinted
	}
	return s.PlayerUntinted
}

// BallMaterial returns the ball material for a tint state
func (s *VisualAssetSet) BallMaterial(tinted bool) Handle {
	if tinted {
		return s.BallTinted
	}
	return s.BallUntinted
}
