package input

// Key is a device-independent physical key
// Front-ends translate their native key codes into Key values
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "none",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyA:      "a",
	KeyD:      "d",
	KeyW:      "w",
	KeyS:      "s",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// KeyFromRune maps a letter (either case) to its Key
func KeyFromRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyA
	case 'd', 'D':
		return KeyD
	case 'w', 'W':
		return KeyW
	case 's', 'S':
		return KeyS
	default:
		return KeyNone
	}
}

// AllKeys lists every bindable key
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
