package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/tint-arena/render"
	"github.com/lixenwraith/tint-arena/vmath"
)

// Debug font cell size used to place HUD text
const (
	textCellWidth  = 6
	textCellHeight = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenTarget draws onto an ebiten frame
type screenTarget struct {
	dst *ebiten.Image
}

func (s screenTarget) Clear(bg color.RGBA) {
	s.dst.Fill(bg)
}

func (s screenTarget) FillRect(tl, br vmath.Vec2, a render.Appearance) {
	vector.DrawFilledRect(s.dst, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), a.Color, false)
}

func (s screenTarget) FillEllipse(c vmath.Vec2, rx, _ float64, a render.Appearance) {
	vector.DrawFilledCircle(s.dst, float32(c.X), float32(c.Y), float32(rx), a.Color, true)
}

// Ship draws a hull outline and a nose triangle pointing along the body's facing
func (s screenTarget) Ship(c vmath.Vec2, rx, ry, angle float64, a render.Appearance) {
	vector.StrokeCircle(s.dst, float32(c.X), float32(c.Y), float32(rx), 2, a.Color, true)

	// Local hull points in world orientation, y-up
	local := [3]vmath.Vec2{
		vmath.V(0, 0.9),
		vmath.V(-0.6, -0.6),
		vmath.V(0.6, -0.6),
	}

	cr, cg, cb, ca := float32(a.Color.R)/255, float32(a.Color.G)/255, float32(a.Color.B)/255, float32(a.Color.A)/255
	vs := make([]ebiten.Vertex, 0, len(local))
	for _, p := range local {
		r := p.Rotate(angle)
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(c.X + r.X*rx),
			DstY:   float32(c.Y - r.Y*ry),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (s screenTarget) Text(col, row int, str string) {
	ebitenutil.DebugPrintAt(s.dst, str, col*textCellWidth, row*textCellHeight)
}
