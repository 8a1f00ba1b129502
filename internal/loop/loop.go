// Package loop drives a registry.Game frame by frame: apply queued input,
// step the simulation, render, then wait for the next frame.
package loop

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
)

// State is the driver's run state.
type State int

const (
	Running State = iota // Ticks step and render
	Paused               // Ticks render only; input stays queued
	Stopped              // Ticks do nothing
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Loop owns the frame ordering for one game.
//
// Tick must be called from a single goroutine. Post, PostAction and the
// state controls may be called from any goroutine; queued input is applied at
// the start of the next running tick.
type Loop struct {
	game    registry.Game
	surface core.Surface
	logger  *log.Logger

	mu        sync.Mutex
	pending   core.InputFrame
	state     State
	listeners []func(core.Event)

	last   core.StepResult
	frames int
}

// frameResetter is implemented by surfaces that record draw calls, such as
// core.DrawList. They are reset before every render so they hold one frame.
type frameResetter interface {
	Reset()
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for simulation events.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// New creates a running loop that draws game onto surface.
func New(game registry.Game, surface core.Surface, opts ...Option) *Loop {
	l := &Loop{
		game:    game,
		surface: surface,
		pending: core.NewInputFrame(),
		state:   Running,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Post queues a key event for the next tick.
func (l *Loop) Post(ev core.KeyEvent) {
	l.mu.Lock()
	l.pending.AddKey(ev)
	l.mu.Unlock()
}

// PostAction queues a platform action for the next tick.
func (l *Loop) PostAction(a core.Action) {
	l.mu.Lock()
	l.pending.Set(a)
	l.mu.Unlock()
}

// OnEvent registers fn to receive every simulation event.
func (l *Loop) OnEvent(fn func(core.Event)) {
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	l.mu.Unlock()
}

// State returns the current run state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Pause stops stepping but keeps rendering.
func (l *Loop) Pause() {
	l.transition(Running, Paused)
}

// Resume continues a paused loop.
func (l *Loop) Resume() {
	l.transition(Paused, Running)
}

// TogglePause flips between running and paused.
func (l *Loop) TogglePause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.state {
	case Running:
		l.state = Paused
	case Paused:
		l.state = Running
	}
}

// Stop ends the loop. A stopped loop cannot be restarted.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.state = Stopped
	l.mu.Unlock()
}

func (l *Loop) transition(from, to State) {
	l.mu.Lock()
	if l.state == from {
		l.state = to
	}
	l.mu.Unlock()
}

// Last returns the result of the most recent step.
func (l *Loop) Last() core.StepResult {
	return l.last
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() int {
	return l.frames
}

// Tick runs one frame: step (unless paused) then render. It returns false
// once the loop is stopped.
func (l *Loop) Tick() bool {
	l.mu.Lock()
	state := l.state
	var in core.InputFrame
	var listeners []func(core.Event)
	if state == Running {
		in = l.pending.Clone()
		l.pending.Clear()
		listeners = l.listeners
	}
	l.mu.Unlock()

	switch state {
	case Stopped:
		return false
	case Running:
		l.last = l.game.Step(in)
		l.publish(l.last.Events, listeners)
	}

	if r, ok := l.surface.(frameResetter); ok {
		r.Reset()
	}
	l.game.Render(l.surface)
	l.frames++
	return true
}

func (l *Loop) publish(events []core.Event, listeners []func(core.Event)) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventMiss:
			l.logger.Debug("ball missed", "game", l.game.ID(), "tick", ev.Tick, "score", ev.Score, "bricks", ev.Bricks)
		case core.EventMilestone:
			l.logger.Debug("milestone reached", "game", l.game.ID(), "tick", ev.Tick, "score", ev.Score)
		}
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// RunTicks runs up to n frames back to back and returns how many ran.
func (l *Loop) RunTicks(n int) int {
	for i := 0; i < n; i++ {
		if !l.Tick() {
			return i
		}
	}
	return n
}

// Run ticks until the loop is stopped or ctx is done, waiting on sched
// between frames. It returns nil when stopped and ctx.Err() when cancelled.
func (l *Loop) Run(ctx context.Context, sched Scheduler) error {
	for {
		if !l.Tick() {
			return nil
		}
		if err := sched.Wait(ctx); err != nil {
			return err
		}
	}
}
