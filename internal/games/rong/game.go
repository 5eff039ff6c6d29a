package rong

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/rong/internal/config"
	"github.com/vovakirdan/rong/internal/core"
	"github.com/vovakirdan/rong/internal/registry"
)

// ErrNotStarted is returned when drawing a game that was never Reset.
var ErrNotStarted = errors.New("rong: game not started")

// Variant describes one playable iteration of the game.
type Variant struct {
	ID         string
	Title      string
	Ball       bool
	ScoreLabel bool
	BallSpeed  float64 // Overrides the configured ball speed when non-zero
}

// Variants lists every registered iteration, most complete first.
var Variants = []Variant{
	{ID: "rong", Title: "Rong", Ball: true, ScoreLabel: true},
	{ID: "rong-ball", Title: "Rong (ball iteration)", Ball: true, BallSpeed: 210},
	{ID: "rong-rackets", Title: "Rong (rackets iteration)"},
}

// Game binds a variant and its settings to a State.
type Game struct {
	variant Variant
	params  Params
	state   *State
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant, cfg config.Config) *Game {
	p := ParamsFrom(cfg)
	p.Ball = v.Ball
	p.ScoreLabel = v.ScoreLabel
	if v.BallSpeed > 0 {
		p.BallSpeed = v.BallSpeed
	}
	return &Game{variant: v, params: p}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Params returns the resolved settings.
func (g *Game) Params() Params {
	return g.params
}

// State returns the current state, or nil before Reset.
func (g *Game) State() *State {
	return g.state
}

// Reset starts a new game on a w×h screen.
func (g *Game) Reset(w, h float64, seed int64) {
	g.state = NewState(w, h, g.params, rand.New(rand.NewSource(seed)))
}

// Update advances the game by dt seconds.
func (g *Game) Update(in core.Controls, dt, w, h float64) {
	if g.state == nil {
		return
	}
	Update(g.state, in, dt, w, h, g.params)
}

// Draw renders the current frame.
func (g *Game) Draw(dst core.Canvas) error {
	if g.state == nil {
		return ErrNotStarted
	}
	return Draw(g.state, dst, g.params)
}

// Score returns the left and right player scores.
func (g *Game) Score() (left, right int) {
	if g.state == nil {
		return 0, 0
	}
	return g.state.Score.Left, g.state.Score.Right
}

// Register every variant with the registry
func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func(cfg config.Config) registry.Game {
			return New(v, cfg)
		})
	}
}
