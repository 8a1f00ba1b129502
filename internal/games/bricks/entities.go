// Package bricks implements a single-screen paddle-and-ball brick breaker.
//
// The simulation is a plain State value advanced one fixed tick at a time by
// State.Step; it knows nothing about terminals, windows or timers. Game wraps
// it for the platform registry and Loop drives it frame by frame.
package bricks

import (
	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

// Ball is the ball, positioned by its centre.
type Ball struct {
	X, Y   float64 // Centre position
	Radius float64
	DX, DY float64 // Velocity per tick
	Speed  float64 // Base speed restored by paddle bounces
}

// Horizontal returns the ball's horizontal extent.
func (b Ball) Horizontal() core.Span {
	return core.Span{Lo: b.X - b.Radius, Hi: b.X + b.Radius}
}

// Vertical returns the ball's vertical extent.
func (b Ball) Vertical() core.Span {
	return core.Span{Lo: b.Y - b.Radius, Hi: b.Y + b.Radius}
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle is the player's paddle, positioned by its top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Magnitude of DX while a direction is held
	DX            float64 // Horizontal intent: -Speed, 0 or +Speed
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Brick is one cell of the brick grid.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Padding       float64
	Visible       bool
}

// Box returns the brick rectangle.
func (b Brick) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Grid is the fixed rows x columns brick layout. Its topology never changes
// after construction; only visibility flags do.
type Grid struct {
	rows   int
	cols   int
	bricks []Brick // row-major: index = row*cols + col
}

// NewGrid lays out every brick, all visible. Row i is placed at
// x = i*(w+padding)+offsetX and column j at y = j*(h+padding)+offsetY.
func NewGrid(cfg config.BrickGrid) Grid {
	g := Grid{
		rows:   cfg.Rows,
		cols:   cfg.Columns,
		bricks: make([]Brick, cfg.Rows*cfg.Columns),
	}
	for i := 0; i < cfg.Rows; i++ {
		for j := 0; j < cfg.Columns; j++ {
			g.bricks[i*cfg.Columns+j] = Brick{
				X:       float64(i)*(cfg.Width+cfg.Padding) + cfg.OffsetX,
				Y:       float64(j)*(cfg.Height+cfg.Padding) + cfg.OffsetY,
				Width:   cfg.Width,
				Height:  cfg.Height,
				Padding: cfg.Padding,
				Visible: true,
			}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g Grid) Columns() int { return g.cols }

// Len returns the total number of bricks.
func (g Grid) Len() int { return len(g.bricks) }

// At returns the brick at (row, col).
func (g Grid) At(row, col int) Brick {
	return g.bricks[row*g.cols+col]
}

// Hide makes the brick at (row, col) invisible.
func (g Grid) Hide(row, col int) {
	g.bricks[row*g.cols+col].Visible = false
}

// ShowAll makes every brick visible again.
func (g Grid) ShowAll() {
	for i := range g.bricks {
		g.bricks[i].Visible = true
	}
}

// Hidden returns the number of invisible bricks.
func (g Grid) Hidden() int {
	n := 0
	for _, b := range g.bricks {
		if !b.Visible {
			n++
		}
	}
	return n
}

// Each calls fn for every brick in row-major order.
func (g Grid) Each(fn func(row, col int, b Brick)) {
	for i, b := range g.bricks {
		fn(i/g.cols, i%g.cols, b)
	}
}

// Clone returns a grid that shares no storage with g.
func (g Grid) Clone() Grid {
	c := g
	c.bricks = append([]Brick(nil), g.bricks...)
	return c
}
