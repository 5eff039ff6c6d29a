// Package rong implements Rong, a two-player Pong.
// The left player moves with W/S, the right player with the arrow keys.
// The ball passes through rackets; a ball leaving the screen sideways scores
// for the opposite player.
package rong

import (
	"math/rand"

	"github.com/vovakirdan/rong/internal/core"
)

// Score holds both players' points.
type Score struct {
	Left  int
	Right int
}

// State is the complete game state for one session.
type State struct {
	Left    core.Vec2 // Left racket center
	Right   core.Vec2 // Right racket center
	Ball    core.Vec2 // Ball center
	BallVel core.Vec2 // Pixels per second
	Score   Score

	rng *rand.Rand
}

// NewState lays out a game on a w×h screen: rackets on the side edges,
// vertically centered, and the ball served from the center.
func NewState(w, h float64, p Params, rng *rand.Rand) *State {
	s := &State{
		Left:  core.V(p.RacketWidth/2, h/2),
		Right: core.V(w-p.RacketWidth/2, h/2),
		rng:   rng,
	}
	s.serve(w, h, p)
	return s
}

// serve recenters the ball with a fresh random direction.
func (s *State) serve(w, h float64, p Params) {
	s.Ball = core.V(w/2, h/2)
	s.BallVel = RandomizeVelocity(s.rng, p.BallSpeed)
}

// Update advances the state by dt seconds: left racket, right racket, then ball.
// Negative dt is treated as zero. Rackets follow the side edges when the
// screen width changes.
func Update(s *State, in core.Controls, dt, w, h float64, p Params) Side {
	if dt < 0 {
		dt = 0
	}

	s.Left.X = p.RacketWidth / 2
	s.Right.X = w - p.RacketWidth/2

	MoveRacket(&s.Left, in.LeftUp, in.LeftDown, dt, h, p)
	MoveRacket(&s.Right, in.RightUp, in.RightDown, dt, h, p)

	if !p.Ball {
		return SideNone
	}
	return StepBall(s, dt, w, h, p)
}
