package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem // Set when user selects a variant
}

// NewMenuModel creates a menu listing every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	cursor := 0
	for i, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
		if g.ID == cfg.Variant {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.config.Variant = selected.GameID
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  B R I C K S  "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.GameID = m.Selected().GameID
	return result, nil
}
