package rong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/rong/internal/config"
	"github.com/vovakirdan/rong/internal/core"
)

func newTestState(t *testing.T, p Params) *State {
	t.Helper()
	return NewState(800, 600, p, rand.New(rand.NewSource(7)))
}

func TestStepBallIntegratesLinearly(t *testing.T) {
	p := DefaultParams()
	s := newTestState(t, p)

	s.Ball = core.V(400, 300)
	s.BallVel = core.V(200, -200)
	dt := 0.016

	expected := core.V(400+200*dt, 300+(-200)*dt)
	if scored := StepBall(s, dt, 800, 600, p); scored != SideNone {
		t.Fatalf("unexpected score by %v", scored)
	}
	if s.Ball != expected {
		t.Errorf("ball = %v, expected %v", s.Ball, expected)
	}
	if s.BallVel != core.V(200, -200) {
		t.Errorf("velocity changed without scoring: %v", s.BallVel)
	}
}

func TestStepBallLeftExit(t *testing.T) {
	p := DefaultParams()
	s := newTestState(t, p)

	// Position test, not a motion test: dt=0 with the ball already outside
	s.Ball = core.V(-5, 123)
	s.BallVel = core.V(-200, 200)
	s.Score = Score{Left: 2, Right: 4}

	scored := StepBall(s, 0, 800, 600, p)

	if scored != SideRight {
		t.Errorf("scored = %v, expected right", scored)
	}
	if s.Ball != core.V(400, 300) {
		t.Errorf("ball = %v, expected recentered (400, 300)", s.Ball)
	}
	if s.Score != (Score{Left: 2, Right: 5}) {
		t.Errorf("score = %+v, expected right +1 only", s.Score)
	}
	if math.Abs(s.BallVel.X) != p.BallSpeed || math.Abs(s.BallVel.Y) != p.BallSpeed {
		t.Errorf("served velocity %v should have magnitude %v per axis", s.BallVel, p.BallSpeed)
	}
}

func TestStepBallRightExitAgainstWidth(t *testing.T) {
	p := DefaultParams()
	s := newTestState(t, p)

	s.Ball = core.V(795, 300)
	s.BallVel = core.V(200, 0)

	scored := StepBall(s, 0.1, 800, 600, p)

	if scored != SideLeft {
		t.Fatalf("scored = %v, expected left", scored)
	}
	if s.Score != (Score{Left: 1}) {
		t.Errorf("score = %+v, expected left +1 only", s.Score)
	}
	if s.Ball != core.V(400, 300) {
		t.Errorf("ball = %v, expected recentered", s.Ball)
	}
}

// The first release compared the ball x against the screen height. The
// "height" bound keeps that behavior; "width" is the default.
func TestRightBoundModes(t *testing.T) {
	tests := []struct {
		name     string
		bound    config.RightBound
		ballX    float64
		expected Side
	}{
		{"width mode, between height and width", config.BoundWidth, 650, SideNone},
		{"width mode, past width", config.BoundWidth, 801, SideLeft},
		{"height mode, between height and width", config.BoundHeight, 650, SideLeft},
		{"height mode, at height", config.BoundHeight, 600, SideNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			p.RightBound = tc.bound
			s := newTestState(t, p)
			s.Ball = core.V(tc.ballX, 300)

			if scored := StepBall(s, 0, 800, 600, p); scored != tc.expected {
				t.Errorf("scored = %v, expected %v", scored, tc.expected)
			}
		})
	}
}

func TestBallHasNoVerticalClamp(t *testing.T) {
	p := DefaultParams()
	s := newTestState(t, p)

	s.Ball = core.V(400, 5)
	s.BallVel = core.V(200, -200)
	StepBall(s, 0.5, 800, 600, p)

	if s.Ball.Y != -95 {
		t.Errorf("ball y = %v, expected -95 (no top bounce)", s.Ball.Y)
	}
}

func TestRandomizeVelocity(t *testing.T) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))

	var posX, posY, bothPos int
	for i := 0; i < n; i++ {
		v := RandomizeVelocity(rng, 210)
		if math.Abs(v.X) != 210 || math.Abs(v.Y) != 210 {
			t.Fatalf("velocity %v should be ±210 on both axes", v)
		}
		if v.X > 0 {
			posX++
		}
		if v.Y > 0 {
			posY++
		}
		if v.X > 0 && v.Y > 0 {
			bothPos++
		}
	}

	// Each sign within 3 standard deviations of a fair coin
	within := func(name string, count int, p float64) {
		mean := n * p
		sigma := math.Sqrt(n * p * (1 - p))
		if math.Abs(float64(count)-mean) > 3*sigma {
			t.Errorf("%s: %d of %d, expected %.0f ± %.0f", name, count, n, mean, 3*sigma)
		}
	}
	within("positive x", posX, 0.5)
	within("positive y", posY, 0.5)
	within("positive x and y", bothPos, 0.25)
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" || SideNone.String() != "none" {
		t.Error("unexpected Side names")
	}
}
