package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenIsEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("bricks")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0 for empty log, got %d", best)
	}

	runs, err := store.TopRuns("bricks", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestStoreStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.RecordRun(RunEntry{Session: "s1", Variant: "bricks", Score: 9}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	best, err := b.BestScore("bricks")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected separate in-memory databases, second store has best %d", best)
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Session: "alice", Variant: "bricks", Score: 12, Bricks: 12, Ticks: 900},
		{Session: "alice", Variant: "bricks", Score: 40, Bricks: 40, Ticks: 3100},
		{Session: "bob", Variant: "bricks", Score: 25, Bricks: 25, Ticks: 2000},
		{Session: "bob", Variant: "bricks_overlap", Score: 99, Bricks: 99, Ticks: 7000},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("bricks", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	want := []int{40, 25, 12}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("run %d: expected score %d, got %d", i, w, top[i].Score)
		}
	}
	if top[0].Session != "alice" || top[0].Bricks != 40 || top[0].Ticks != 3100 {
		t.Errorf("unexpected top run: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.RecordRun(RunEntry{Session: "s", Variant: "bricks", Score: i}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("bricks", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 14 {
		t.Errorf("Expected highest score 14, got %d", top[0].Score)
	}

	// Non-positive limits fall back to 10
	top, err = store.TopRuns("bricks", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreBestScoreAndRunCount(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunEntry{
		{Session: "alice", Variant: "bricks", Score: 3},
		{Session: "alice", Variant: "bricks", Score: 17},
		{Session: "bob", Variant: "bricks", Score: 8},
	} {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	best, err := store.BestScore("bricks")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 17 {
		t.Errorf("Expected best score 17, got %d", best)
	}

	n, err := store.RunCount("alice")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 runs for alice, got %d", n)
	}

	n, err = store.RunCount("carol")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 runs for carol, got %d", n)
	}
}

func TestStoreClosed(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if _, err := store.RecordRun(RunEntry{Session: "s", Variant: "bricks"}); err == nil {
		t.Error("Expected RecordRun on a closed store to fail")
	}
}
