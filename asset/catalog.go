package asset

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

//go:embed assets.toml
var defaultManifest string

type manifestEntry struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
	Glyph string `toml:"glyph"`
	Shape string `toml:"shape"`
}

type manifest struct {
	Textures  []manifestEntry `toml:"texture"`
	Materials []manifestEntry `toml:"material"`
}

// Catalog resolves asset names to handles
// Registration happens at startup; lookups are safe from any goroutine afterwards
type Catalog struct {
	mu      sync.RWMutex
	byName  map[string]Handle
	entries []Asset // index = handle - 1
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]Handle),
	}
}

// DefaultCatalog returns a catalog populated from the embedded manifest
func DefaultCatalog() (*Catalog, error) {
	c := NewCatalog()
	if err := c.LoadManifest(defaultManifest); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadManifest decodes a TOML manifest and registers every entry
func (c *Catalog) LoadManifest(data string) error {
	var m manifest
	if _, err := toml.Decode(data, &m); err != nil {
		return fmt.Errorf("decode asset manifest: %w", err)
	}

	for _, e := range m.Textures {
		if err := c.registerEntry(e, KindTexture); err != nil {
			return err
		}
	}
	for _, e := range m.Materials {
		if err := c.registerEntry(e, KindMaterial); err != nil {
			return err
		}
	}

	log.Debug("asset manifest loaded", "textures", len(m.Textures), "materials", len(m.Materials))
	return nil
}

func (c *Catalog) registerEntry(e manifestEntry, kind Kind) error {
	rgba, err := ParseColor(e.Color)
	if err != nil {
		return fmt.Errorf("asset %q: %w", e.Name, err)
	}

	glyph := ' '
	if e.Glyph != "" {
		glyph, _ = utf8.DecodeRuneInString(e.Glyph)
	}

	_, err = c.Register(Asset{
		Name:  e.Name,
		Kind:  kind,
		Color: rgba,
		Glyph: glyph,
		Shape: e.Shape,
	})
	return err
}

// Register adds an asset and returns its handle
func (c *Catalog) Register(a Asset) (Handle, error) {
	if a.Name == "" {
		return 0, fmt.Errorf("asset name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byName[a.Name]; exists {
		return 0, fmt.Errorf("asset %q already registered", a.Name)
	}

	c.entries = append(c.entries, a)
	h := Handle(len(c.entries))
	c.byName[a.Name] = h
	return h, nil
}

// Load returns the handle registered under name with the expected kind
func (c *Catalog) Load(name string, kind Kind) (Handle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("asset %q not found", name)
	}
	if got := c.entries[h-1].Kind; got != kind {
		return 0, fmt.Errorf("asset %q is a %s, expected %s", name, got, kind)
	}
	return h, nil
}

// Lookup resolves a handle
func (c *Catalog) Lookup(h Handle) (Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if h == 0 || int(h) > len(c.entries) {
		return Asset{}, false
	}
	return c.entries[h-1], true
}

// Len returns the number of registered assets
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
