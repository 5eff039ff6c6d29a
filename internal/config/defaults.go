package config

import (
	_ "embed"
)

//go:embed defaults/rong.yaml
var defaultYAML []byte

// Default returns the built-in Rong configuration.
func Default() Config {
	return Config{
		Racket: RacketConfig{
			Width:  30,
			Height: 150,
			Speed:  600,
		},
		Ball: BallConfig{
			Size:       30,
			Speed:      200,
			RightBound: BoundWidth,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
			FPS:        60,
		},
		Input: InputConfig{
			HoldMS: 500,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
