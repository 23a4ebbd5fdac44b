package input

// Action is a logical intent derived from held keys
type Action uint8

const (
	ActionRotateLeft Action = iota
	ActionRotateRight
	ActionForward
	ActionBackward
	ActionQuit

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionRotateLeft:
		return "rotate_left"
	case ActionRotateRight:
		return "rotate_right"
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// bindings is the fixed key-to-intent map: arrows and WASD for movement, Escape to quit
var bindings = [actionCount][]Key{
	ActionRotateLeft:  {KeyLeft, KeyA},
	ActionRotateRight: {KeyRight, KeyD},
	ActionForward:     {KeyUp, KeyW},
	ActionBackward:    {KeyDown, KeyS},
	ActionQuit:        {KeyEscape},
}

// Bindings returns the keys bound to an action
func Bindings(a Action) []Key {
	if a >= actionCount {
		return nil
	}
	out := make([]Key, len(bindings[a]))
	copy(out, bindings[a])
	return out
}

// Pressed reports whether any key bound to the action is held
func Pressed(s State, a Action) bool {
	if a >= actionCount {
		return false
	}
	for _, k := range bindings[a] {
		if s.Held(k) {
			return true
		}
	}
	return false
}
