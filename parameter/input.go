package parameter

import "time"

// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
// Terminals report presses only; the window must exceed the typical auto-repeat delay
const KeyHoldWindow = 550 * time.Millisecond
