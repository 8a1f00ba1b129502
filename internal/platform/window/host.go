package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/loop"
	"github.com/vovakirdan/bricks/internal/registry"
	"github.com/vovakirdan/bricks/internal/storage"
)

// paddleKeys maps window keys to game key identifiers. Arrow keys use the
// modern spelling and letter keys the legacy one.
var paddleKeys = []struct {
	key  ebiten.Key
	name core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyArrowLeft},
	{ebiten.KeyArrowRight, core.KeyArrowRight},
	{ebiten.KeyA, core.KeyLeft},
	{ebiten.KeyD, core.KeyRight},
}

// Options configures a Host.
type Options struct {
	Scale    float64 // Window size multiplier; 0 means 1
	TickRate int     // Frames per second; 0 means 60
	Store    *storage.Store
	Session  string
	Logger   *log.Logger
}

// Host runs a game inside an ebiten window. It implements ebiten.Game.
//
// Ticks happen in Update and drawing in Draw, so each tick renders into a
// draw list that Draw replays onto the window.
type Host struct {
	game   registry.Game
	loop   *loop.Loop
	frame  *core.DrawList
	runLog *storage.Recorder
	width  int
	height int
	best   int
}

// NewHost creates a host for game.
func NewHost(game registry.Game, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := core.NewDrawList()
	w, h := game.Playfield()
	host := &Host{
		game:   game,
		loop:   loop.New(game, frame, loop.WithLogger(logger)),
		frame:  frame,
		runLog: storage.NewRecorder(opts.Store, opts.Session, game.ID(), logger),
		width:  int(w),
		height: int(h),
	}
	host.loop.OnEvent(host.observe)
	return host
}

func (h *Host) observe(ev core.Event) {
	h.runLog.Observe(ev)
	if ev.Kind == core.EventMiss {
		h.best = h.runLog.Best()
	}
}

// Update posts key edges and runs one loop frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.loop.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.loop.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.loop.PostAction(core.ActionRestart)
	}

	for _, pk := range paddleKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			h.loop.Post(core.Press(pk.name))
		}
		if inpututil.IsKeyJustReleased(pk.key) {
			h.loop.Post(core.Release(pk.name))
		}
	}

	if !h.loop.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last frame and the status line.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	h.frame.Replay(NewImageSurface(screen))

	st := h.loop.Last().State
	status := fmt.Sprintf("Best %d  Misses %d", st.Best, st.Misses)
	if h.runLog.Enabled() {
		status += fmt.Sprintf("  Top %d", max(h.best, st.Best))
	}
	if h.loop.State() == loop.Paused {
		status += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 4)
}

// Layout keeps the playfield's logical size regardless of the window size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}

	game.Reset(core.RuntimeConfig{TickRate: rate, Variant: game.ID()})
	host := NewHost(game, opts)

	ebiten.SetWindowSize(int(float64(host.width)*scale), int(float64(host.height)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rate)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
