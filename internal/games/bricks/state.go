package bricks

import "github.com/vovakirdan/bricks/internal/config"

// State is the complete simulation state.
type State struct {
	Width, Height float64 // Playfield size

	Ball   Ball
	Paddle Paddle
	Bricks Grid

	Score int
	Tick  int

	destroyed int // Bricks destroyed since the last miss
}

// NewState builds the starting layout: ball centred on the surface, paddle
// centred near the bottom edge, every brick visible.
func NewState(cfg config.BricksConfig) *State {
	w, h := cfg.Surface.Width, cfg.Surface.Height
	return &State{
		Width:  w,
		Height: h,
		Ball: Ball{
			X:      w / 2,
			Y:      h / 2,
			Radius: cfg.Ball.Radius,
			DX:     cfg.Ball.DX,
			DY:     cfg.Ball.DY,
			Speed:  cfg.Ball.Speed,
		},
		Paddle: Paddle{
			X:      w/2 - cfg.Paddle.Width/2,
			Y:      h - cfg.Paddle.BottomOffset,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Speed:  cfg.Paddle.Speed,
		},
		Bricks: NewGrid(cfg.Bricks),
	}
}

// Destroyed returns the number of bricks destroyed since the last miss.
func (s *State) Destroyed() int {
	return s.destroyed
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Bricks = s.Bricks.Clone()
	return &c
}
