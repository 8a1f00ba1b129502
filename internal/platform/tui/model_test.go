package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/bricks"
	"github.com/vovakirdan/bricks/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *bricks.Game) {
	t.Helper()
	g := bricks.NewWithConfig(config.DefaultBricksConfig())
	cfg := core.DefaultConfig()
	return NewModel(g, cfg, opts), g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelKeyMovesPaddleOnNextTick(t *testing.T) {
	m, g := newTestModel(t, Options{})
	t0 := time.Now()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, t0)
	m = next.(Model)
	assert.Equal(t, 360.0, g.Sim().Paddle.X, "input waits for the tick")

	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	assert.Equal(t, 368.0, g.Sim().Paddle.X)
	assert.Equal(t, 1, m.GameState().Tick)
}

func TestModelSynthesisesRelease(t *testing.T) {
	m, g := newTestModel(t, Options{})
	t0 := time.Now()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = next.(Model)
	m = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	assert.Equal(t, -8.0, g.Sim().Paddle.DX)

	// No repeat arrived within the initial hold
	update(t, m, TickMsg(t0.Add(700*time.Millisecond)))
	assert.Equal(t, 0.0, g.Sim().Paddle.DX)
	assert.Equal(t, 352.0, g.Sim().Paddle.X)
}

func TestModelRestartWhileHoldingKey(t *testing.T) {
	m, g := newTestModel(t, Options{})
	t0 := time.Now()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, t0)
	m = next.(Model)
	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	require.Equal(t, 368.0, g.Sim().Paddle.X)

	next, _ = m.handleKey(runeKey('r'), t0.Add(20*time.Millisecond))
	m = next.(Model)
	_, held := m.hold.Held()
	assert.False(t, held)

	// Auto-repeat of the same key right after the restart
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, t0.Add(30*time.Millisecond))
	m = next.(Model)
	update(t, m, TickMsg(t0.Add(40*time.Millisecond)))

	assert.Equal(t, 1, g.State().Tick)
	assert.Equal(t, 8.0, g.Sim().Paddle.DX)
	assert.Equal(t, 368.0, g.Sim().Paddle.X)
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel(t, Options{})
	now := time.Now()

	m = update(t, m, runeKey('p'))
	require.True(t, m.Paused())

	m = update(t, m, TickMsg(now))
	assert.Zero(t, g.Sim().Tick, "paused loop does not step")
	assert.Contains(t, m.View(), "PAUSED")

	m = update(t, m, runeKey('p'))
	update(t, m, TickMsg(now))
	assert.Equal(t, 1, g.Sim().Tick)
}

func TestModelRulesPanel(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = update(t, m, runeKey('?'))
	assert.Contains(t, m.View(), "HOW TO PLAY")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "HOW TO PLAY")
	assert.False(t, m.BackToMenu(), "esc closes the panel first")
}

func TestModelBackToMenu(t *testing.T) {
	m, _ := newTestModel(t, Options{AllowBack: true})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.View())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(Model).IsQuitting())
}

func TestModelRecordsRunOnMiss(t *testing.T) {
	store, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m, g := newTestModel(t, Options{Store: store, Session: "alice"})
	s := g.Sim()
	s.Score = 12
	s.Ball.X, s.Ball.Y = 100, 595
	s.Ball.DX, s.Ball.DY = 4, 4

	m = update(t, m, TickMsg(time.Now()))

	n, err := store.RunCount("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	best, err := store.BestScore(bricks.VariantClassic)
	require.NoError(t, err)
	assert.Equal(t, 12, best)
	assert.Contains(t, m.View(), "Top 12")

	m = update(t, m, runeKey('t'))
	assert.Contains(t, m.View(), "RUNS THIS SESSION")
	assert.Contains(t, m.View(), "you")
	assert.Contains(t, m.View(), "Your runs: 1")
}
