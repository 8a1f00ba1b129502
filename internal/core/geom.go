// Package core provides fundamental types and utilities for the game platform.
// It contains no terminal or window dependencies to keep game logic pure and
// testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// Span is a one-dimensional open interval (Lo, Hi) in playfield units.
type Span struct {
	Lo, Hi float64
}

// StrictlyInside reports whether s lies entirely between the edges of outer,
// touching neither of them.
func (s Span) StrictlyInside(outer Span) bool {
	return s.Lo > outer.Lo && s.Hi < outer.Hi
}

// Overlaps reports whether the two intervals share any interior points.
func (s Span) Overlaps(other Span) bool {
	return s.Hi > other.Lo && s.Lo < other.Hi
}

// Box is an axis-aligned rectangle in playfield (pixel) units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Horizontal returns the box's horizontal extent.
func (b Box) Horizontal() Span {
	return Span{Lo: b.X, Hi: b.X + b.W}
}

// Vertical returns the box's vertical extent.
func (b Box) Vertical() Span {
	return Span{Lo: b.Y, Hi: b.Y + b.H}
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min, min wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Round converts a float coordinate to the nearest integer cell.
func Round(v float64) int {
	return int(math.Round(v))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
