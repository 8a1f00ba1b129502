package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricks/internal/config"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(config.DefaultBricksConfig())
}

func defaultRules(t *testing.T) Rules {
	t.Helper()
	r, err := RulesFromConfig(config.DefaultBricksConfig())
	require.NoError(t, err)
	return r
}

func TestNewStateLayout(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t, 800.0, s.Width)
	assert.Equal(t, 600.0, s.Height)

	assert.Equal(t, Ball{X: 400, Y: 300, Radius: 10, DX: 4, DY: -4, Speed: 4}, s.Ball)
	assert.Equal(t, Paddle{X: 360, Y: 580, Width: 80, Height: 10, Speed: 8}, s.Paddle)

	require.Equal(t, 9, s.Bricks.Rows())
	require.Equal(t, 5, s.Bricks.Columns())
	assert.Equal(t, 45, s.Bricks.Len())
	assert.Zero(t, s.Bricks.Hidden())
	assert.Zero(t, s.Score)
}

func TestGridPositions(t *testing.T) {
	s := newTestState(t)

	tests := []struct {
		row, col int
		x, y     float64
	}{
		{0, 0, 45, 60},
		{1, 0, 125, 60},
		{0, 1, 45, 90},
		{8, 4, 685, 180},
	}
	for _, tc := range tests {
		b := s.Bricks.At(tc.row, tc.col)
		assert.Equal(t, tc.x, b.X, "brick[%d][%d].x", tc.row, tc.col)
		assert.Equal(t, tc.y, b.Y, "brick[%d][%d].y", tc.row, tc.col)
		assert.Equal(t, 70.0, b.Width)
		assert.Equal(t, 20.0, b.Height)
		assert.Equal(t, 10.0, b.Padding)
		assert.True(t, b.Visible)
	}
}

func TestGridVisibility(t *testing.T) {
	s := newTestState(t)

	s.Bricks.Hide(2, 3)
	s.Bricks.Hide(2, 3)
	s.Bricks.Hide(0, 0)
	assert.Equal(t, 2, s.Bricks.Hidden())
	assert.False(t, s.Bricks.At(2, 3).Visible)

	s.Bricks.ShowAll()
	assert.Zero(t, s.Bricks.Hidden())
}

func TestCloneIsIndependent(t *testing.T) {
	s := newTestState(t)
	c := s.Clone()

	c.Bricks.Hide(1, 1)
	c.Ball.X = 0
	c.Score = 5

	assert.True(t, s.Bricks.At(1, 1).Visible)
	assert.Equal(t, 400.0, s.Ball.X)
	assert.Zero(t, s.Score)
}
