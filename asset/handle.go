package asset

import "image/color"

// Handle is an opaque reference to a loaded visual asset
// Zero is never issued
type Handle uint32

// Kind separates sprite textures from flat-color materials
type Kind uint8

const (
	KindTexture Kind = iota
	KindMaterial
)

func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindMaterial:
		return "material"
	default:
		return "unknown"
	}
}

// Asset is the resolved description of a handle
type Asset struct {
	Name  string
	Kind  Kind
	Color color.RGBA
	Glyph rune   // Terminal representation
	Shape string // Texture outline, empty for materials
}
