package core

// Controls is the held state of the four racket keys for one frame.
type Controls struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// ControlsFrom samples a KeyState into Controls.
func ControlsFrom(held func(Key) bool) Controls {
	return Controls{
		LeftUp:    held(KeyLeftUp),
		LeftDown:  held(KeyLeftDown),
		RightUp:   held(KeyRightUp),
		RightDown: held(KeyRightDown),
	}
}

// Canvas is a drawing surface measured in logical pixels.
// Every call may fail; a failure aborts the frame being drawn.
type Canvas interface {
	// Size returns the drawable width and height.
	Size() (w, h float64)

	// Clear fills the whole surface with a solid color.
	Clear(col Color) error

	// FillRect draws a filled rectangle.
	FillRect(r RectF, col Color) error

	// DrawText draws text with its top-left corner at the given position.
	DrawText(at Vec2, text string, col Color) error

	// Present completes the frame.
	Present() error
}
