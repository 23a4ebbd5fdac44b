package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tint-arena/input"
)

// translateKey maps a tcell key event to a device-independent key
func translateKey(k tcell.Key, r rune) input.Key {
	switch k {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyRune:
		return input.KeyFromRune(r)
	default:
		return input.KeyNone
	}
}
