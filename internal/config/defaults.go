package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the built-in brick breaker configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  4,
			DX:     4,
			DY:     -4,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       10,
			Speed:        8,
			BottomOffset: 20,
		},
		Bricks: BrickGrid{
			Rows:    9,
			Columns: 5,
			Width:   70,
			Height:  20,
			Padding: 10,
			OffsetX: 45,
			OffsetY: 60,
		},
		Scoring: ScoringConfig{
			PointsPerBrick: 1,
		},
		Collision: CollisionConfig{
			Policy: PolicyStrict,
		},
		Render: RenderConfig{
			BallColor:   "azure",
			PaddleColor: "azure",
			BrickColor:  "azure",
			TextColor:   "white",
			FontFamily:  "Arial",
			FontSize:    20,
			ScoreX:      100,
			ScoreY:      30,
		},
	}
}
