// Package config provides YAML/TOML-based configuration loading for Rong.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RightBound selects which screen dimension the ball's x position is
// compared against when testing for a right-edge exit.
type RightBound string

const (
	// BoundWidth compares against the screen width.
	BoundWidth RightBound = "width"
	// BoundHeight compares against the screen height, matching the
	// behavior of the first Rong release.
	BoundHeight RightBound = "height"
)

// Config contains all configuration for a Rong session.
type Config struct {
	Racket  RacketConfig  `yaml:"racket" toml:"racket"`
	Ball    BallConfig    `yaml:"ball" toml:"ball"`
	Display DisplayConfig `yaml:"display" toml:"display"`
	Input   InputConfig   `yaml:"input" toml:"input"`
}

// RacketConfig defines racket size and speed.
type RacketConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Pixels per second
}

// BallConfig defines ball size, speed and the right-edge scoring test.
type BallConfig struct {
	Size       float64    `yaml:"size" toml:"size"`
	Speed      float64    `yaml:"speed" toml:"speed"` // Pixels per second, per axis
	RightBound RightBound `yaml:"right_bound" toml:"right_bound"`
}

// DisplayConfig defines how logical pixels map onto terminal cells.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width" toml:"cell_width"`
	CellHeight int `yaml:"cell_height" toml:"cell_height"`
	FPS        int `yaml:"fps" toml:"fps"`
}

// InputConfig defines held-key emulation.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
}

// HoldDuration returns the held-key window as a duration.
func (c Config) HoldDuration() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("racket.width", c.Racket.Width)
	positive("racket.height", c.Racket.Height)
	positive("racket.speed", c.Racket.Speed)
	positive("ball.size", c.Ball.Size)
	positive("ball.speed", c.Ball.Speed)
	positive("display.cell_width", float64(c.Display.CellWidth))
	positive("display.cell_height", float64(c.Display.CellHeight))
	positive("display.fps", float64(c.Display.FPS))
	positive("input.hold_ms", float64(c.Input.HoldMS))

	switch c.Ball.RightBound {
	case BoundWidth, BoundHeight:
	default:
		errs = append(errs, fmt.Errorf("ball.right_bound must be %q or %q, got %q",
			BoundWidth, BoundHeight, c.Ball.RightBound))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return nil
}
