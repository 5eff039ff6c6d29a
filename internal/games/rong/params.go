package rong

import "github.com/vovakirdan/rong/internal/config"

// Default game settings, in logical pixels and pixels per second.
const (
	DefaultRacketWidth  = 30.0
	DefaultRacketHeight = 150.0
	DefaultRacketSpeed  = 600.0
	DefaultBallSize     = 30.0
	DefaultBallSpeed    = 200.0
)

// Params are the resolved settings a game runs with.
type Params struct {
	RacketWidth  float64
	RacketHeight float64
	RacketSpeed  float64
	BallSize     float64
	BallSpeed    float64 // Per-axis speed; the ball always moves diagonally
	RightBound   config.RightBound

	Ball       bool // Ball is simulated and drawn
	ScoreLabel bool // Score label is drawn
}

// DefaultParams returns the settings of the complete game.
func DefaultParams() Params {
	return Params{
		RacketWidth:  DefaultRacketWidth,
		RacketHeight: DefaultRacketHeight,
		RacketSpeed:  DefaultRacketSpeed,
		BallSize:     DefaultBallSize,
		BallSpeed:    DefaultBallSpeed,
		RightBound:   config.BoundWidth,
		Ball:         true,
		ScoreLabel:   true,
	}
}

// ParamsFrom builds Params from a loaded configuration.
func ParamsFrom(cfg config.Config) Params {
	p := DefaultParams()
	p.RacketWidth = cfg.Racket.Width
	p.RacketHeight = cfg.Racket.Height
	p.RacketSpeed = cfg.Racket.Speed
	p.BallSize = cfg.Ball.Size
	p.BallSpeed = cfg.Ball.Speed
	if cfg.Ball.RightBound != "" {
		p.RightBound = cfg.Ball.RightBound
	}
	return p
}
