// Package config provides YAML-based game configuration loading for the
// brick breaker.
package config

// BricksConfig contains all configuration for the brick breaker.
type BricksConfig struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BrickGrid       `yaml:"bricks"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Collision CollisionConfig `yaml:"collision"`
	Render    RenderConfig    `yaml:"render"`
}

// SurfaceConfig is the size of the playfield in pixels.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball. It starts centred on the surface.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Base speed, used for paddle bounces
	DX     float64 `yaml:"dx"`    // Initial horizontal velocity per tick
	DY     float64 `yaml:"dy"`    // Initial vertical velocity per tick
}

// PaddleConfig defines the paddle. It starts horizontally centred.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per tick while a direction is held
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the paddle top to the bottom edge
}

// BrickGrid defines the fixed brick layout.
//
// Rows index the horizontal position and Columns the vertical one:
// brick[row][col] sits at x = row*(Width+Padding)+OffsetX,
// y = col*(Height+Padding)+OffsetY.
type BrickGrid struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// ScoringConfig defines scoring rules.
type ScoringConfig struct {
	PointsPerBrick int `yaml:"points_per_brick"`

	// MilestoneEvery reveals every brick whenever the score is a multiple of
	// it. Zero means Rows*Rows.
	MilestoneEvery int `yaml:"milestone_every"`
}

// CollisionConfig selects the hit test used for paddle and bricks.
type CollisionConfig struct {
	Policy string `yaml:"policy"` // "strict" or "overlap"
}

// RenderConfig defines colors and the score label.
type RenderConfig struct {
	BallColor   string  `yaml:"ball_color"`
	PaddleColor string  `yaml:"paddle_color"`
	BrickColor  string  `yaml:"brick_color"`
	TextColor   string  `yaml:"text_color"`
	FontFamily  string  `yaml:"font_family"`
	FontSize    float64 `yaml:"font_size"`
	ScoreX      float64 `yaml:"score_x"` // Offset of the score label from the right edge
	ScoreY      float64 `yaml:"score_y"` // Baseline of the score label
}

// Collision policy names.
const (
	PolicyStrict  = "strict"
	PolicyOverlap = "overlap"
)

// Milestone returns the score interval at which all bricks are revealed.
func (s ScoringConfig) Milestone(rows int) int {
	if s.MilestoneEvery > 0 {
		return s.MilestoneEvery
	}
	return rows * rows
}
