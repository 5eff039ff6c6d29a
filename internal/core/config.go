package core

// RuntimeConfig contains configuration passed to the game host at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  31, // 80x30 playfield plus the status row
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
