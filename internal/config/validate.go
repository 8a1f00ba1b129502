package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable layout.
// All problems are reported together.
func (c BricksConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		bad("surface: size must be positive, got %gx%g", c.Surface.Width, c.Surface.Height)
	}
	if c.Ball.Radius <= 0 {
		bad("ball: radius must be positive, got %g", c.Ball.Radius)
	}
	if c.Ball.Speed <= 0 {
		bad("ball: speed must be positive, got %g", c.Ball.Speed)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		bad("paddle: size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > c.Surface.Width {
		bad("paddle: width %g exceeds surface width %g", c.Paddle.Width, c.Surface.Width)
	}
	if c.Paddle.Speed < 0 {
		bad("paddle: speed must not be negative, got %g", c.Paddle.Speed)
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0 {
		bad("bricks: grid must have at least one row and column, got %dx%d", c.Bricks.Rows, c.Bricks.Columns)
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		bad("bricks: size must be positive, got %gx%g", c.Bricks.Width, c.Bricks.Height)
	}
	if c.Bricks.Padding < 0 {
		bad("bricks: padding must not be negative, got %g", c.Bricks.Padding)
	}
	if c.Scoring.PointsPerBrick <= 0 {
		bad("scoring: points_per_brick must be positive, got %d", c.Scoring.PointsPerBrick)
	}
	if c.Scoring.MilestoneEvery < 0 {
		bad("scoring: milestone_every must not be negative, got %d", c.Scoring.MilestoneEvery)
	}
	switch c.Collision.Policy {
	case PolicyStrict, PolicyOverlap:
	default:
		bad("collision: unknown policy %q", c.Collision.Policy)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
