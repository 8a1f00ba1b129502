package storage

import (
	"testing"

	"github.com/vovakirdan/bricks/internal/core"
)

func TestRecorderRecordsMissesOnly(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "alice", "bricks", nil)

	rec.Observe(core.Event{Kind: core.EventBrickHit, Score: 1})
	rec.Observe(core.Event{Kind: core.EventMilestone, Score: 81})
	rec.Observe(core.Event{Kind: core.EventMiss, Tick: 420, Score: 37, Bricks: 6})

	runs, err := store.TopRuns("bricks", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Session != "alice" || r.Score != 37 || r.Bricks != 6 || r.Ticks != 420 {
		t.Errorf("unexpected run: %+v", r)
	}
	if rec.Best() != 37 {
		t.Errorf("Best() = %d, expected 37", rec.Best())
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, "alice", "bricks", nil)
	if rec.Enabled() {
		t.Error("Expected recorder without store to be disabled")
	}
	rec.Observe(core.Event{Kind: core.EventMiss, Score: 5})
	if rec.Best() != 0 {
		t.Errorf("Best() = %d, expected 0", rec.Best())
	}
}
