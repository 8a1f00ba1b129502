package bricks

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

// Style holds colors and the score label placement.
type Style struct {
	Ball   core.Color
	Paddle core.Color
	Brick  core.Color
	Text   core.Color
	Font   core.Font
	ScoreX float64 // Distance of the label from the right edge
	ScoreY float64 // Label baseline
}

// StyleFromConfig converts render config to a Style.
func StyleFromConfig(cfg config.RenderConfig) Style {
	return Style{
		Ball:   core.ParseColor(cfg.BallColor),
		Paddle: core.ParseColor(cfg.PaddleColor),
		Brick:  core.ParseColor(cfg.BrickColor),
		Text:   core.ParseColor(cfg.TextColor),
		Font:   core.Font{Family: cfg.FontFamily, Size: cfg.FontSize},
		ScoreX: cfg.ScoreX,
		ScoreY: cfg.ScoreY,
	}
}

// ScoreText is the label drawn for a score.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw clears dst and draws the ball, paddle, score and bricks, in that
// order. Hidden bricks are filled with a transparent color so their space is
// still visited but nothing appears.
func Draw(dst core.Surface, s *State, st Style) {
	dst.ClearRect(0, 0, s.Width, s.Height)

	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, st.Ball)

	p := s.Paddle
	dst.FillRect(p.X, p.Y, p.Width, p.Height, st.Paddle)

	dst.DrawText(s.Width-st.ScoreX, st.ScoreY, ScoreText(s.Score), st.Font, st.Text)

	s.Bricks.Each(func(_, _ int, b Brick) {
		c := st.Brick
		if !b.Visible {
			c = core.ColorTransparent
		}
		dst.FillRect(b.X, b.Y, b.Width, b.Height, c)
	})
}
