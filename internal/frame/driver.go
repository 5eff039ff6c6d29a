// Package frame provides the explicit frame loop for Rong: each frame the
// driver updates the game it owns with the frame's elapsed time and held keys,
// then has it draw itself.
package frame

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/rong/internal/core"
	"github.com/vovakirdan/rong/internal/registry"
)

// Frame is what the host supplies for one frame.
type Frame struct {
	DT       time.Duration // Time elapsed since the previous frame
	Width    float64       // Drawable width in logical pixels
	Height   float64       // Drawable height in logical pixels
	Controls core.Controls // Held keys
}

// Source produces frames. Next returns io.EOF when the host closes.
type Source interface {
	Next(ctx context.Context) (Frame, error)
}

// Driver owns a game and runs it one frame at a time.
type Driver struct {
	game   registry.Game
	width  float64
	height float64
	paused bool
	frames uint64
}

// NewDriver starts game on a w×h drawable surface.
func NewDriver(game registry.Game, w, h float64, seed int64) *Driver {
	d := &Driver{game: game, width: w, height: h}
	game.Reset(w, h, seed)
	return d
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Frames returns the number of frames stepped so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Size returns the drawable size of the last frame.
func (d *Driver) Size() (w, h float64) {
	return d.width, d.height
}

// Paused reports whether the game is paused.
func (d *Driver) Paused() bool {
	return d.paused
}

// SetPaused pauses or resumes the game. Paused frames are stepped with dt = 0.
func (d *Driver) SetPaused(paused bool) {
	d.paused = paused
}

// Restart starts a fresh game on the current drawable surface.
func (d *Driver) Restart(seed int64) {
	d.game.Reset(d.width, d.height, seed)
	d.frames = 0
}

// Step runs the update half of a frame.
func (d *Driver) Step(f Frame) {
	d.width, d.height = f.Width, f.Height

	dt := f.DT.Seconds()
	if dt < 0 || d.paused {
		dt = 0
	}

	d.game.Update(f.Controls, dt, d.width, d.height)
	d.frames++
}

// Render runs the draw half of a frame.
func (d *Driver) Render(c core.Canvas) error {
	return d.game.Draw(c)
}

// Run steps and renders frames from src until it ends, the context is
// cancelled, or a frame fails to render. The end of src is not an error.
func (d *Driver) Run(ctx context.Context, src Source, c core.Canvas) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame: next frame: %w", err)
		}

		d.Step(f)
		if err := d.Render(c); err != nil {
			return fmt.Errorf("frame: render frame %d: %w", d.frames, err)
		}
	}
}
