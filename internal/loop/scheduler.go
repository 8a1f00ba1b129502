package loop

import (
	"context"
	"time"
)

// Scheduler decides when the next frame runs.
type Scheduler interface {
	// Wait blocks until the next frame is due or ctx is done.
	Wait(ctx context.Context) error
}

// TickerScheduler paces frames at a fixed rate.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler creates a scheduler firing rate times per second.
// Non-positive rates default to 60.
func NewTickerScheduler(rate int) *TickerScheduler {
	if rate <= 0 {
		rate = 60
	}
	return &TickerScheduler{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks until the next tick.
func (t *TickerScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (t *TickerScheduler) Stop() {
	t.ticker.Stop()
}

// Unthrottled runs frames as fast as possible.
type Unthrottled struct{}

// Wait returns immediately unless ctx is done.
func (Unthrottled) Wait(ctx context.Context) error {
	return ctx.Err()
}
