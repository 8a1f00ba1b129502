package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

func TestDrawOrder(t *testing.T) {
	s := newTestState(t)
	s.Score = 12
	s.Bricks.Hide(0, 0)
	st := StyleFromConfig(config.DefaultBricksConfig().Render)
	dl := core.NewDrawList()

	Draw(dl, s, st)

	ops := dl.Ops()
	require.Len(t, ops, 4+45)

	assert.Equal(t, core.DrawOp{Kind: core.DrawClear, W: 800, H: 600}, ops[0])
	assert.Equal(t, core.DrawOp{Kind: core.DrawCircle, X: 400, Y: 300, R: 10, Color: core.ColorAzure}, ops[1])
	assert.Equal(t, core.DrawOp{Kind: core.DrawRect, X: 360, Y: 580, W: 80, H: 10, Color: core.ColorAzure}, ops[2])
	assert.Equal(t, core.DrawOp{
		Kind:  core.DrawText,
		X:     700,
		Y:     30,
		Text:  "Score: 12",
		Font:  core.Font{Family: "Arial", Size: 20},
		Color: core.ColorWhite,
	}, ops[3])

	// Every brick is visited; the hidden one gets a transparent fill.
	assert.Equal(t, core.DrawOp{Kind: core.DrawRect, X: 45, Y: 60, W: 70, H: 20, Color: core.ColorTransparent}, ops[4])
	assert.Equal(t, core.DrawOp{Kind: core.DrawRect, X: 45, Y: 90, W: 70, H: 20, Color: core.ColorAzure}, ops[5])
	for _, op := range ops[5:] {
		assert.Equal(t, core.DrawRect, op.Kind)
		assert.Equal(t, core.ColorAzure, op.Color)
	}
}

func TestDrawOntoScreen(t *testing.T) {
	s := newTestState(t)
	st := StyleFromConfig(config.DefaultBricksConfig().Render)
	scr := core.NewScreen(80, 24)
	surf := core.NewScreenSurface(scr, s.Width, s.Height)

	Draw(surf, s, st)

	// Brick [0][0] covers cells x 5..11 on row 2.
	assert.Equal(t, core.Cell{Rune: core.FillGlyph, Color: core.ColorAzure}, scr.GetCell(5, 2))
	assert.Contains(t, scr.Row(0), "Score: 0")

	s.Bricks.Hide(0, 0)
	Draw(surf, s, st)
	assert.Equal(t, ' ', scr.GetCell(5, 2).Rune, "hidden bricks leave the cleared cell")
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Score: 0", ScoreText(0))
	assert.Equal(t, "Score: 81", ScoreText(81))
}
