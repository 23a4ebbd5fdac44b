package asset

import (
	"image/color"
	"testing"
)

func TestDefaultCatalogResolvesTintSet(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("Expected embedded manifest to load, got %v", err)
	}

	set, err := NewVisualAssetSet(c)
	if err != nil {
		t.Fatalf("Expected visual asset set, got %v", err)
	}

	handles := []Handle{set.PlayerUntinted, set.PlayerTinted, set.BallUntinted, set.BallTinted, set.Background, set.Wall}
	seen := make(map[Handle]bool)
	for _, h := range handles {
		if h == 0 {
			t.Error("Expected non-zero handle")
		}
		if seen[h] {
			t.Errorf("Expected distinct handles, %d repeated", h)
		}
		seen[h] = true
	}

	red, _ := c.Lookup(set.BallTinted)
	if red.Color != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected tinted ball material to be red, got %v", red.Color)
	}
	white, _ := c.Lookup(set.PlayerUntinted)
	if white.Kind != KindTexture || white.Shape != "ship" {
		t.Errorf("Expected player texture with ship shape, got %+v", white)
	}
}

func TestTintAccessors(t *testing.T) {
	set := &VisualAssetSet{PlayerUntinted: 1, PlayerTinted: 2, BallUntinted: 3, BallTinted: 4}

	if set.PlayerTexture(false) != 1 || set.PlayerTexture(true) != 2 {
		t.Error("Expected player texture to follow tint state")
	}
	if set.BallMaterial(false) != 3 || set.BallMaterial(true) != 4 {
		t.Error("Expected ball material to follow tint state")
	}
}

func TestLoadRejectsUnknownAndWrongKind(t *testing.T) {
	c := NewCatalog()
	if _, err := c.Register(Asset{Name: "ball_white", Kind: KindMaterial}); err != nil {
		t.Fatalf("Expected register to succeed, got %v", err)
	}

	if _, err := c.Load("missing", KindMaterial); err == nil {
		t.Error("Expected error for unknown asset")
	}
	if _, err := c.Load("ball_white", KindTexture); err == nil {
		t.Error("Expected error for kind mismatch")
	}
	if _, err := c.Register(Asset{Name: "ball_white"}); err == nil {
		t.Error("Expected error for duplicate registration")
	}
	if _, ok := c.Lookup(0); ok {
		t.Error("Expected zero handle to be unresolvable")
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#2b2c2f")
	if err != nil {
		t.Fatalf("Expected valid color, got %v", err)
	}
	if got != (color.RGBA{43, 44, 47, 255}) {
		t.Errorf("Expected {43 44 47 255}, got %v", got)
	}

	for _, bad := range []string{"", "#fff", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestLoadManifestRejectsBadColor(t *testing.T) {
	c := NewCatalog()
	err := c.LoadManifest(`
[[material]]
name = "broken"
color = "red"
`)
	if err == nil {
		t.Error("Expected error for invalid manifest color")
	}
}
