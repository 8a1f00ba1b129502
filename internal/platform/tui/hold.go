package tui

import (
	"time"

	"github.com/vovakirdan/bricks/internal/core"
)

// Default hold timings. The first auto-repeat of a held key arrives after
// the terminal's repeat delay, later ones at the repeat rate.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// HoldTracker synthesises key releases for terminals, which only report
// presses and their auto-repeats.
//
// A direction is considered released once its repeats stop arriving. Only one
// key is tracked: pressing another key replaces it without a release, which
// matches the game's last-pressed-wins intent.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration

	held      core.Key
	last      time.Time
	repeating bool
}

// NewHoldTracker creates a tracker with the given hold windows.
// Non-positive values use the defaults.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{initial: initial, repeat: repeat}
}

// Held returns the key currently considered down, if any.
func (h *HoldTracker) Held() (core.Key, bool) {
	return h.held, h.held != ""
}

// Press records a press of k at now and returns the events to post.
// Auto-repeats of the held key post nothing.
func (h *HoldTracker) Press(k core.Key, now time.Time) []core.KeyEvent {
	if k == h.held {
		h.last = now
		h.repeating = true
		return nil
	}
	h.held = k
	h.last = now
	h.repeating = false
	return []core.KeyEvent{core.Press(k)}
}

// Expire returns a release for the held key if it has not repeated in time.
func (h *HoldTracker) Expire(now time.Time) []core.KeyEvent {
	if h.held == "" {
		return nil
	}
	window := h.initial
	if h.repeating {
		window = h.repeat
	}
	if now.Sub(h.last) <= window {
		return nil
	}
	return h.ReleaseAll()
}

// ReleaseAll releases the held key immediately.
func (h *HoldTracker) ReleaseAll() []core.KeyEvent {
	if h.held == "" {
		return nil
	}
	ev := core.Release(h.held)
	h.held = ""
	h.repeating = false
	return []core.KeyEvent{ev}
}
