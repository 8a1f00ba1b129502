package bricks

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

// CollisionPolicy decides how the ball's horizontal extent is tested against
// the paddle and bricks. Vertical tests are the same for both policies.
type CollisionPolicy int

const (
	// PolicyStrict registers a hit only when the ball lies entirely between
	// the target's left and right edges. Glancing hits on an edge are missed.
	PolicyStrict CollisionPolicy = iota

	// PolicyOverlap registers a hit whenever the horizontal extents overlap.
	PolicyOverlap
)

// ParsePolicy maps a config policy name to a CollisionPolicy.
func ParsePolicy(name string) (CollisionPolicy, error) {
	switch name {
	case config.PolicyStrict, "":
		return PolicyStrict, nil
	case config.PolicyOverlap:
		return PolicyOverlap, nil
	default:
		return PolicyStrict, fmt.Errorf("bricks: unknown collision policy %q", name)
	}
}

// String returns the config name of the policy.
func (p CollisionPolicy) String() string {
	if p == PolicyOverlap {
		return config.PolicyOverlap
	}
	return config.PolicyStrict
}

func (p CollisionPolicy) horizontal(ball, target core.Span) bool {
	if p == PolicyOverlap {
		return ball.Overlaps(target)
	}
	return ball.StrictlyInside(target)
}

// HitsPaddle reports whether the ball is over the paddle with its bottom edge
// past the paddle's top edge.
func (p CollisionPolicy) HitsPaddle(ball Ball, paddle Paddle) bool {
	return p.horizontal(ball.Horizontal(), paddle.Box().Horizontal()) &&
		ball.Vertical().Hi > paddle.Y
}

// HitsBrick reports whether the ball touches a brick. Visibility is not
// considered.
func (p CollisionPolicy) HitsBrick(ball Ball, brick Brick) bool {
	box := brick.Box()
	return p.horizontal(ball.Horizontal(), box.Horizontal()) &&
		ball.Vertical().Overlaps(box.Vertical())
}

// Hit locates a brick struck by the ball.
type Hit struct {
	Row, Col int
}

// DetectBrickHits returns every visible brick the ball touches, in row-major
// order. It does not modify the grid.
func DetectBrickHits(ball Ball, grid Grid, policy CollisionPolicy) []Hit {
	var hits []Hit
	grid.Each(func(row, col int, b Brick) {
		if b.Visible && policy.HitsBrick(ball, b) {
			hits = append(hits, Hit{Row: row, Col: col})
		}
	})
	return hits
}
