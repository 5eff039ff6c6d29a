// Package core provides fundamental types and utilities for Rong.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or vector in logical pixels.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// RectF is an axis-aligned rectangle described by its center and size.
type RectF struct {
	Center Vec2
	W, H   float64
}

// CenteredRect creates a RectF of size w×h centered on c.
func CenteredRect(c Vec2, w, h float64) RectF {
	return RectF{Center: c, W: w, H: h}
}

// Min returns the top-left corner.
func (r RectF) Min() Vec2 {
	return Vec2{X: r.Center.X - r.W/2, Y: r.Center.Y - r.H/2}
}

// Max returns the bottom-right corner.
func (r RectF) Max() Vec2 {
	return Vec2{X: r.Center.X + r.W/2, Y: r.Center.Y + r.H/2}
}

// Rect represents an integer axis-aligned box, used for cell-space drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clip returns the part of r inside the box [0, w) × [0, h).
func (r Rect) Clip(w, h int) Rect {
	x0 := Clamp(r.X, 0, w)
	y0 := Clamp(r.Y, 0, h)
	x1 := Clamp(r.Right(), 0, w)
	y1 := Clamp(r.Bottom(), 0, h)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// A value already in range is returned unchanged.
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round converts a logical coordinate to the nearest integer.
func Round(v float64) int {
	return int(math.Round(v))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
