package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    CollisionPolicy
		wantErr bool
	}{
		{"strict", PolicyStrict, false},
		{"", PolicyStrict, false},
		{"overlap", PolicyOverlap, false},
		{"fuzzy", PolicyStrict, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePolicy(tc.name)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, "strict", PolicyStrict.String())
	assert.Equal(t, "overlap", PolicyOverlap.String())
}

func TestHitsBrick(t *testing.T) {
	brick := Brick{X: 45, Y: 60, Width: 70, Height: 20, Visible: true}

	tests := []struct {
		name          string
		x, y          float64
		strict, loose bool
	}{
		{"centred", 80, 70, true, true},
		{"left edge overhang", 50, 70, false, true},
		{"right edge overhang", 110, 70, false, true},
		{"touching left edge only", 35, 70, false, false},
		{"just inside left edge", 55.5, 70, true, true},
		{"above", 80, 40, false, false},
		{"touching top", 80, 50, false, false},
		{"grazing top", 80, 51, true, true},
		{"below", 80, 95, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := Ball{X: tc.x, Y: tc.y, Radius: 10}
			assert.Equal(t, tc.strict, PolicyStrict.HitsBrick(ball, brick), "strict")
			assert.Equal(t, tc.loose, PolicyOverlap.HitsBrick(ball, brick), "overlap")
		})
	}
}

func TestHitsPaddle(t *testing.T) {
	paddle := Paddle{X: 360, Y: 580, Width: 80, Height: 10}

	tests := []struct {
		name          string
		x, y          float64
		strict, loose bool
	}{
		{"above paddle", 400, 560, false, false},
		{"bottom edge on paddle top", 400, 570, false, false},
		{"bottom edge past paddle top", 400, 571, true, true},
		{"below paddle still counts", 400, 598, true, true},
		{"overhanging left end", 365, 575, false, true},
		{"beside paddle", 300, 575, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := Ball{X: tc.x, Y: tc.y, Radius: 10}
			assert.Equal(t, tc.strict, PolicyStrict.HitsPaddle(ball, paddle), "strict")
			assert.Equal(t, tc.loose, PolicyOverlap.HitsPaddle(ball, paddle), "overlap")
		})
	}
}

func TestDetectBrickHitsDoesNotModifyGrid(t *testing.T) {
	s := newTestState(t)
	ball := Ball{X: 80, Y: 85, Radius: 10}

	hits := DetectBrickHits(ball, s.Bricks, PolicyStrict)

	assert.Equal(t, []Hit{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, hits)
	assert.Zero(t, s.Bricks.Hidden())
}
