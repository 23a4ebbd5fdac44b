package tui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tint-arena/render"
	"github.com/lixenwraith/tint-arena/vmath"
)

// hullGlyph fills the player body around the nose arrow
const hullGlyph = '·'

// screenTarget draws into tcell cells; one screen unit is one cell
type screenTarget struct {
	screen tcell.Screen
	bg     tcell.Color
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *screenTarget) Clear(bg color.RGBA) {
	s.bg = rgb(bg)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

func (s *screenTarget) FillRect(tl, br vmath.Vec2, a render.Appearance) {
	w, h := s.screen.Size()
	x0, x1 := clampSpan(tl.X, br.X, w)
	y0, y1 := clampSpan(tl.Y, br.Y, h)

	fill := rgb(a.Color)
	style := tcell.StyleDefault.Foreground(fill).Background(fill)
	glyph := a.Glyph
	if glyph == 0 {
		glyph = ' '
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	// Later layers draw over this color
	if glyph == ' ' {
		s.bg = fill
	}
}

func (s *screenTarget) FillEllipse(c vmath.Vec2, rx, ry float64, a render.Appearance) {
	style := tcell.StyleDefault.Foreground(rgb(a.Color)).Background(s.bg)
	s.ellipse(c, rx, ry, a.Glyph, style)
}

// Ship fills the hull and marks the nose with an arrow pointing along the facing
func (s *screenTarget) Ship(c vmath.Vec2, rx, ry, angle float64, a render.Appearance) {
	style := tcell.StyleDefault.Foreground(rgb(a.Color)).Background(s.bg)
	s.ellipse(c, rx, ry, hullGlyph, style)

	arrow := ArrowGlyph(angle)
	s.set(int(math.Floor(c.X)), int(math.Floor(c.Y)), arrow, style.Bold(true))

	nose := vmath.Facing(angle)
	nx := c.X + nose.X*rx*0.7
	ny := c.Y - nose.Y*ry*0.7
	s.set(int(math.Floor(nx)), int(math.Floor(ny)), arrow, style.Bold(true))
}

func (s *screenTarget) Text(col, row int, str string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := col
	for _, r := range str {
		s.set(x, row, r, style)
		x++
	}
}

func (s *screenTarget) ellipse(c vmath.Vec2, rx, ry float64, glyph rune, style tcell.Style) {
	drawn := false
	if rx > 0 && ry > 0 {
		for y := int(math.Floor(c.Y - ry)); y <= int(math.Ceil(c.Y+ry)); y++ {
			for x := int(math.Floor(c.X - rx)); x <= int(math.Ceil(c.X+rx)); x++ {
				dx := (float64(x) + 0.5 - c.X) / rx
				dy := (float64(y) + 0.5 - c.Y) / ry
				if dx*dx+dy*dy <= 1 {
					s.set(x, y, glyph, style)
					drawn = true
				}
			}
		}
	}
	// Bodies smaller than a cell still show up
	if !drawn {
		s.set(int(math.Floor(c.X)), int(math.Floor(c.Y)), glyph, style)
	}
}

func (s *screenTarget) set(x, y int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// clampSpan converts a screen-space interval to cell indices [lo, hi) within [0, limit)
func clampSpan(a, b float64, limit int) (int, int) {
	lo := int(math.Floor(math.Min(a, b)))
	hi := int(math.Ceil(math.Max(a, b)))
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

// ArrowGlyph picks the four-way arrow closest to the facing of angle
func ArrowGlyph(angle float64) rune {
	f := vmath.Facing(angle)
	if math.Abs(f.Y) >= math.Abs(f.X) {
		if f.Y >= 0 {
			return '▲'
		}
		return '▼'
	}
	if f.X < 0 {
		return '◀'
	}
	return '▶'
}
