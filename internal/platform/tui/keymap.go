package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricks/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Rules   key.Binding
	Runs    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Rules, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart},
		{k.Rules, k.Runs, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Rules: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "rules"),
		),
		Runs: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "close/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PaddleKey translates a key message to the key identifier the game
// understands. Arrow keys use the modern spelling and letter keys the
// legacy one.
func PaddleKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case "left":
		return core.KeyArrowLeft, true
	case "right":
		return core.KeyArrowRight, true
	case "a", "h":
		return core.KeyLeft, true
	case "d", "l":
		return core.KeyRight, true
	}
	return "", false
}

// MapAction translates a key message to a platform action.
func (k KeyMap) MapAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Rules):
		return core.ActionRules
	case key.Matches(msg, k.Runs):
		return core.ActionRuns
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
