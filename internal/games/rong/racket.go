package rong

import "github.com/vovakirdan/rong/internal/core"

// MoveRacket moves a racket by its speed for every held direction key and
// keeps it fully on screen. Holding both keys cancels out.
func MoveRacket(pos *core.Vec2, up, down bool, dt, screenH float64, p Params) {
	step := p.RacketSpeed * dt
	if up {
		pos.Y -= step
	}
	if down {
		pos.Y += step
	}

	half := p.RacketHeight / 2
	pos.Y = core.ClampF(pos.Y, half, screenH-half)
}
