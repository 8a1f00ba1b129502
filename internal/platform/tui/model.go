package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/loop"
	"github.com/vovakirdan/bricks/internal/registry"
	"github.com/vovakirdan/bricks/internal/storage"
)

// chromeRows is the number of terminal rows used by the status and help
// lines below the playfield.
const chromeRows = 2

// rulesText is shown by the rules panel.
const rulesText = `Use the left and right arrow keys (or a/d) to move the
paddle and bounce the ball into the bricks.

Every brick destroyed scores a point. When the score
reaches a multiple of the milestone, every brick comes
back.

If the ball drops past the bottom edge the score resets
to zero and the bricks are rebuilt.`

// Options configures a Model.
type Options struct {
	Store       *storage.Store // Session run log; nil disables recording
	Logger      *log.Logger
	Session     string // Name recorded with each run
	InitialHold time.Duration
	RepeatHold  time.Duration
	AllowBack   bool // esc with no overlay open returns to the caller
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game   registry.Game
	loop   *loop.Loop
	screen *core.Screen
	runLog *storage.Recorder
	logger *log.Logger
	config core.RuntimeConfig

	keys KeyMap
	help help.Model
	hold *HoldTracker
	runs RunsTable

	gameState  core.GameState
	serverBest int // Best run in the shared log, refreshed after each miss
	showRules  bool
	showRuns   bool
	allowBack  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a model that plays game on a terminal of cfg's size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 1))
	w, h := game.Playfield()
	surface := core.NewScreenSurface(screen, w, h)

	m := Model{
		game:      game,
		loop:      loop.New(game, surface, loop.WithLogger(logger)),
		screen:    screen,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		hold:      NewHoldTracker(opts.InitialHold, opts.RepeatHold),
		runs:      NewRunsTable(opts.Store, game.ID(), opts.Session, cfg.ScreenW, cfg.ScreenH),
		allowBack: opts.AllowBack,
	}
	m.help.Width = cfg.ScreenW
	m.runLog = storage.NewRecorder(opts.Store, opts.Session, game.ID(), logger)
	m.loop.OnEvent(m.runLog.Observe)
	m.serverBest = m.runLog.Best()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch m.keys.MapAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case core.ActionRules:
		m.showRules = !m.showRules
		m.showRuns = false
		return m, nil

	case core.ActionRuns:
		m.showRuns = !m.showRuns
		m.showRules = false
		if m.showRuns {
			m.runs.Refresh(m.logger)
		}
		return m, nil

	case core.ActionBack:
		switch {
		case m.showRules || m.showRuns:
			m.showRules, m.showRuns = false, false
		case m.allowBack:
			m.backToMenu = true
			m.loop.Stop()
		}
		return m, nil

	case core.ActionPause:
		m.loop.TogglePause()
		for _, ev := range m.hold.ReleaseAll() {
			m.loop.Post(ev)
		}
		return m, nil

	case core.ActionRestart:
		// The new layout starts with a still paddle; forget the held key
		// so its next auto-repeat counts as a fresh press.
		m.loop.PostAction(core.ActionRestart)
		for _, ev := range m.hold.ReleaseAll() {
			m.loop.Post(ev)
		}
		return m, nil
	}

	if m.showRuns {
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		return m, cmd
	}

	if k, ok := PaddleKey(msg); ok && m.loop.State() == loop.Running {
		for _, ev := range m.hold.Press(k, now) {
			m.loop.Post(ev)
		}
	}
	return m, nil
}

// handleResize refits the playfield to the terminal. The simulation keeps
// its logical size, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 1))
	m.runs.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick synthesises releases, then runs one loop frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.loop.State() == loop.Stopped {
		return m, nil
	}

	for _, ev := range m.hold.Expire(now) {
		m.loop.Post(ev)
	}

	missesBefore := m.gameState.Misses
	m.loop.Tick()
	if m.loop.State() == loop.Running {
		m.gameState = m.loop.Last().State
	}
	if m.gameState.Misses != missesBefore {
		m.serverBest = m.runLog.Best()
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var body string
	switch {
	case m.showRules:
		body = m.overlay(panelStyle.Render(titleStyle.Render("HOW TO PLAY") + "\n" + rulesText))
	case m.showRuns:
		body = m.overlay(m.runs.View())
	default:
		body = RenderScreen(m.screen)
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// overlay centres content over the playfield area.
func (m Model) overlay(content string) string {
	return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, content)
}

// statusLine renders the HUD below the playfield.
func (m Model) statusLine() string {
	status := fmt.Sprintf("%s  Score %d  Best %d  Misses %d",
		m.game.Title(), m.gameState.Score, m.gameState.Best, m.gameState.Misses)
	if m.runLog.Enabled() {
		status += fmt.Sprintf("  Top %d", max(m.serverBest, m.gameState.Best))
	}
	line := statusStyle.Render(status)
	if m.loop.State() == loop.Paused {
		line += " " + pausedStyle.Render("PAUSED")
	}
	return line
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Paused reports whether the loop is paused.
func (m Model) Paused() bool {
	return m.loop.State() == loop.Paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
