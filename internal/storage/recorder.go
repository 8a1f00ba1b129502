package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/core"
)

// Recorder turns a game's miss events into run log entries for one session.
// A Recorder with a nil store does nothing.
type Recorder struct {
	store   *Store
	session string
	variant string
	logger  *log.Logger
}

// NewRecorder creates a recorder for session playing variant.
func NewRecorder(store *Store, session, variant string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:   store,
		session: session,
		variant: variant,
		logger:  logger,
	}
}

// Enabled reports whether runs are being recorded.
func (r *Recorder) Enabled() bool {
	return r.store != nil
}

// Observe records a run for every miss event. Failures are logged and
// otherwise ignored so play continues.
func (r *Recorder) Observe(ev core.Event) {
	if ev.Kind != core.EventMiss || r.store == nil {
		return
	}
	_, err := r.store.RecordRun(RunEntry{
		Session: r.session,
		Variant: r.variant,
		Score:   ev.Score,
		Bricks:  ev.Bricks,
		Ticks:   ev.Tick,
	})
	if err != nil {
		r.logger.Warn("could not record run", "session", r.session, "error", err)
		return
	}
	r.logger.Debug("run recorded", "session", r.session, "score", ev.Score, "bricks", ev.Bricks)
}

// Best returns the best recorded score for the variant, or 0.
func (r *Recorder) Best() int {
	if r.store == nil {
		return 0
	}
	best, err := r.store.BestScore(r.variant)
	if err != nil {
		r.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}
