package bricks

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the simulation for comparisons and reports.
type Snapshot struct {
	Tick    int
	Score   int
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	PaddleX float64
	Intent  float64
	Hidden  int
	Visible []bool // Row-major brick visibility
}

// Snapshot returns the current game state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	visible := make([]bool, 0, s.Bricks.Len())
	s.Bricks.Each(func(_, _ int, b Brick) {
		visible = append(visible, b.Visible)
	})

	return Snapshot{
		Tick:    s.Tick,
		Score:   s.Score,
		BallX:   s.Ball.X,
		BallY:   s.Ball.Y,
		BallDX:  s.Ball.DX,
		BallDY:  s.Ball.DY,
		PaddleX: s.Paddle.X,
		Intent:  s.Paddle.DX,
		Hidden:  s.Bricks.Hidden(),
		Visible: visible,
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	putInt(snap.Tick)
	putInt(snap.Score)
	putFloat(snap.BallX)
	putFloat(snap.BallY)
	putFloat(snap.BallDX)
	putFloat(snap.BallDY)
	putFloat(snap.PaddleX)
	putFloat(snap.Intent)
	for _, v := range snap.Visible {
		if v {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}
