package bricks

import (
	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

// Rules are the tunable parts of a physics step.
type Rules struct {
	Policy         CollisionPolicy
	PointsPerBrick int
	Milestone      int // Reveal all bricks when the score is a multiple of this
}

// RulesFromConfig derives step rules from a validated config.
func RulesFromConfig(cfg config.BricksConfig) (Rules, error) {
	policy, err := ParsePolicy(cfg.Collision.Policy)
	if err != nil {
		return Rules{}, err
	}
	return Rules{
		Policy:         policy,
		PointsPerBrick: cfg.Scoring.PointsPerBrick,
		Milestone:      cfg.Scoring.Milestone(cfg.Bricks.Rows),
	}, nil
}

// Report describes what happened during one Step.
type Report struct {
	SideBounce   bool  // dx was negated by a side wall
	EndBounce    bool  // dy was negated by the top or bottom wall
	PaddleBounce bool  // dy was reset to -speed by the paddle
	Hits         []Hit // Bricks destroyed, in the order they were applied
	Milestones   []int // Scores at which every brick was revealed
	Missed       bool  // The ball passed the bottom edge
	LostScore    int   // Score before the miss reset
	LostBricks   int   // Bricks destroyed during the run that ended
}

// Step advances the simulation by one tick. The order is fixed: paddle move,
// ball move, side walls, top/bottom walls, paddle, bricks (with milestone
// checks after each increment), and finally the miss check.
func (s *State) Step(r Rules) Report {
	var rep Report
	s.Tick++

	s.movePaddle()
	s.Ball.Move()

	if s.Ball.X+s.Ball.Radius > s.Width || s.Ball.X-s.Ball.Radius < 0 {
		s.Ball.BounceX()
		rep.SideBounce = true
	}

	if s.Ball.Y+s.Ball.Radius > s.Height || s.Ball.Y-s.Ball.Radius < 0 {
		s.Ball.BounceY()
		rep.EndBounce = true
	}

	if r.Policy.HitsPaddle(s.Ball, s.Paddle) {
		s.Ball.DY = -s.Ball.Speed
		rep.PaddleBounce = true
	}

	// Detect against the pre-hit grid, then apply
	rep.Hits = DetectBrickHits(s.Ball, s.Bricks, r.Policy)
	for _, h := range rep.Hits {
		s.Ball.BounceY()
		s.Bricks.Hide(h.Row, h.Col)
		s.destroyed++
		s.Score += r.PointsPerBrick
		if r.Milestone > 0 && s.Score%r.Milestone == 0 {
			s.Bricks.ShowAll()
			rep.Milestones = append(rep.Milestones, s.Score)
		}
	}

	if s.Ball.Y+s.Ball.Radius > s.Height {
		rep.Missed = true
		rep.LostScore = s.Score
		rep.LostBricks = s.destroyed
		s.Bricks.ShowAll()
		s.Score = 0
		s.destroyed = 0
	}

	return rep
}

// movePaddle applies the intent and clamps the paddle onto the surface.
func (s *State) movePaddle() {
	s.Paddle.X = core.ClampF(s.Paddle.X+s.Paddle.DX, 0, s.Width-s.Paddle.Width)
}
