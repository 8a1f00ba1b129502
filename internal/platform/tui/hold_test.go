package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/bricks/internal/core"
)

func TestHoldTrackerPressOnce(t *testing.T) {
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(0, 0)

	evs := h.Press(core.KeyArrowRight, t0)
	if len(evs) != 1 || evs[0] != core.Press(core.KeyArrowRight) {
		t.Fatalf("first press: got %v", evs)
	}

	// Auto-repeats post nothing
	if evs := h.Press(core.KeyArrowRight, t0.Add(500*time.Millisecond)); len(evs) != 0 {
		t.Errorf("repeat press: expected no events, got %v", evs)
	}

	if k, ok := h.Held(); !ok || k != core.KeyArrowRight {
		t.Errorf("Held() = %q, %v", k, ok)
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	tests := []struct {
		name    string
		repeats []time.Duration // Offsets of auto-repeats after the press
		at      time.Duration
		release bool
	}{
		{"within initial hold", nil, 400 * time.Millisecond, false},
		{"past initial hold", nil, 501 * time.Millisecond, true},
		{"repeating within window", []time.Duration{500 * time.Millisecond}, 600 * time.Millisecond, false},
		{"repeats stopped", []time.Duration{500 * time.Millisecond}, 621 * time.Millisecond, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHoldTracker(DefaultInitialHold, DefaultRepeatHold)
			t0 := time.Unix(100, 0)
			h.Press(core.KeyLeft, t0)
			for _, d := range tc.repeats {
				h.Press(core.KeyLeft, t0.Add(d))
			}

			evs := h.Expire(t0.Add(tc.at))
			if tc.release {
				if len(evs) != 1 || evs[0] != core.Release(core.KeyLeft) {
					t.Fatalf("expected release, got %v", evs)
				}
				if _, ok := h.Held(); ok {
					t.Error("key still held after release")
				}
				return
			}
			if len(evs) != 0 {
				t.Errorf("expected no events, got %v", evs)
			}
		})
	}
}

func TestHoldTrackerSwitchDirection(t *testing.T) {
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(0, 0)

	h.Press(core.KeyLeft, t0)
	evs := h.Press(core.KeyRight, t0.Add(50*time.Millisecond))

	// The new press wins; no release is emitted for the old key
	if len(evs) != 1 || evs[0] != core.Press(core.KeyRight) {
		t.Fatalf("switch: got %v", evs)
	}

	evs = h.Expire(t0.Add(time.Second))
	if len(evs) != 1 || evs[0] != core.Release(core.KeyRight) {
		t.Errorf("expected release of the new key, got %v", evs)
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(0, 0)
	if evs := h.ReleaseAll(); len(evs) != 0 {
		t.Errorf("nothing held: got %v", evs)
	}

	h.Press(core.KeyArrowLeft, time.Unix(0, 0))
	evs := h.ReleaseAll()
	if len(evs) != 1 || evs[0] != core.Release(core.KeyArrowLeft) {
		t.Errorf("expected release, got %v", evs)
	}
	if evs := h.Expire(time.Unix(10, 0)); len(evs) != 0 {
		t.Errorf("released key expired again: %v", evs)
	}
}
