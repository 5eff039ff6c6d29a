package rong

import (
	"math/rand"

	"github.com/vovakirdan/rong/internal/config"
	"github.com/vovakirdan/rong/internal/core"
)

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// RandomizeVelocity returns a velocity whose components are each +speed or
// -speed, decided by an independent fair coin per axis.
func RandomizeVelocity(rng *rand.Rand, speed float64) core.Vec2 {
	v := core.V(speed, speed)
	if rng.Intn(2) == 0 {
		v.X = -v.X
	}
	if rng.Intn(2) == 0 {
		v.Y = -v.Y
	}
	return v
}

// StepBall integrates the ball over dt and handles scoring.
// A ball past the left edge scores for the right player and one past the
// right bound scores for the left player; either way the ball is served again
// from the screen center. Returns the side that scored, if any.
func StepBall(s *State, dt, screenW, screenH float64, p Params) Side {
	s.Ball = s.Ball.Add(s.BallVel.Scale(dt))

	if s.Ball.X < 0 {
		s.serve(screenW, screenH, p)
		s.Score.Right++
		return SideRight
	}
	if s.Ball.X > rightBound(screenW, screenH, p.RightBound) {
		s.serve(screenW, screenH, p)
		s.Score.Left++
		return SideLeft
	}
	return SideNone
}

// rightBound returns the x coordinate past which the ball leaves on the right.
func rightBound(screenW, screenH float64, b config.RightBound) float64 {
	if b == config.BoundHeight {
		return screenH
	}
	return screenW
}
