package core

import "time"

// Key is a logical game key, abstracted from physical key presses.
type Key int

const (
	KeyNone      Key = iota
	KeyLeftUp        // W - left racket up
	KeyLeftDown      // S - left racket down
	KeyRightUp       // Up arrow - right racket up
	KeyRightDown     // Down arrow - right racket down
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeftUp:
		return "LeftUp"
	case KeyLeftDown:
		return "LeftDown"
	case KeyRightUp:
		return "RightUp"
	case KeyRightDown:
		return "RightDown"
	default:
		return "Unknown"
	}
}

// KeyState answers "is key X currently held" for terminals, which only report
// presses. A key counts as held for the hold window after its last press;
// keyboard auto-repeat keeps refreshing it while the key is down.
type KeyState struct {
	hold time.Duration
	last map[Key]time.Time
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold: hold,
		last: make(map[Key]time.Time),
	}
}

// Press records a press of k at the given time.
func (s *KeyState) Press(k Key, at time.Time) {
	if k == KeyNone {
		return
	}
	s.last[k] = at
}

// Held returns true if k was pressed within the hold window before now.
func (s *KeyState) Held(k Key, now time.Time) bool {
	at, ok := s.last[k]
	if !ok {
		return false
	}
	return now.Sub(at) < s.hold
}

// Reset forgets every press.
func (s *KeyState) Reset() {
	for k := range s.last {
		delete(s.last, k)
	}
}
