package tui

import (
	"errors"

	"github.com/vovakirdan/rong/internal/core"
)

// ErrZeroSize is returned when drawing on a terminal with no cells.
var ErrZeroSize = errors.New("tui: zero-sized drawing surface")

// Glyphs used for filled shapes
const (
	FillRune = '█'
)

// Canvas implements core.Canvas on a pair of terminal cell buffers.
// Logical pixels are scaled down by the cell size; drawing goes to a back
// buffer that becomes visible on Present.
type Canvas struct {
	cellW float64
	cellH float64
	back  *core.Screen
	front *core.Screen
}

// NewCanvas creates a canvas of cols×rows cells, each cellW×cellH logical pixels.
func NewCanvas(cols, rows, cellW, cellH int) *Canvas {
	return &Canvas{
		cellW: float64(core.Max(cellW, 1)),
		cellH: float64(core.Max(cellH, 1)),
		back:  core.NewScreen(cols, rows),
		front: core.NewScreen(cols, rows),
	}
}

// Resize changes the canvas to cols×rows cells.
func (c *Canvas) Resize(cols, rows int) {
	c.back.Resize(cols, rows)
	c.front.Resize(cols, rows)
}

// Front returns the last presented frame.
func (c *Canvas) Front() *core.Screen {
	return c.front
}

// Size returns the drawable size in logical pixels.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.back.Width()) * c.cellW, float64(c.back.Height()) * c.cellH
}

// Bounds returns the canvas area in cells.
func (c *Canvas) Bounds() core.Rect {
	return core.NewRect(0, 0, c.back.Width(), c.back.Height())
}

func (c *Canvas) check() error {
	if c.Bounds().Empty() {
		return ErrZeroSize
	}
	return nil
}

// Clear fills the back buffer with a solid background color.
func (c *Canvas) Clear(col core.Color) error {
	if err := c.check(); err != nil {
		return err
	}
	c.back.Fill(core.Cell{Rune: ' ', Background: col})
	return nil
}

// FillRect fills the cells covered by r. A non-empty rectangle always covers
// at least one cell.
func (c *Canvas) FillRect(r core.RectF, col core.Color) error {
	if err := c.check(); err != nil {
		return err
	}
	if r.W <= 0 || r.H <= 0 {
		return nil
	}

	lo, hi := r.Min(), r.Max()
	x0, y0 := core.Round(lo.X/c.cellW), core.Round(lo.Y/c.cellH)
	x1, y1 := core.Round(hi.X/c.cellW), core.Round(hi.Y/c.cellH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	c.back.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), FillRune, col)
	return nil
}

// DrawText writes text starting in the cell that contains at.
func (c *Canvas) DrawText(at core.Vec2, text string, col core.Color) error {
	if err := c.check(); err != nil {
		return err
	}
	c.back.DrawText(int(at.X/c.cellW), int(at.Y/c.cellH), text, col)
	return nil
}

// Present makes the back buffer the visible frame.
func (c *Canvas) Present() error {
	if err := c.check(); err != nil {
		return err
	}
	c.back, c.front = c.front, c.back
	return nil
}
