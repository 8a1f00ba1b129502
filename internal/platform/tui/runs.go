package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/storage"
)

// Runs table layout constants
const (
	maxRuns        = 20 // Max runs to load
	runsMinHeight  = 5  // Minimum table height
	runsChromeRows = 8  // Title, borders and help around the table
)

// RunsTable shows the best runs of one variant from the session run log.
type RunsTable struct {
	store   *storage.Store
	variant string
	session string
	runs    []storage.RunEntry
	mine    int // Runs finished by session, all variants
	table   table.Model
	width   int
	height  int
}

// NewRunsTable creates a runs table for variant. session marks the caller's
// own runs.
func NewRunsTable(store *storage.Store, variant, session string, width, height int) RunsTable {
	m := RunsTable{
		store:   store,
		variant: variant,
		session: session,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with columns sized to the terminal.
func (m *RunsTable) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Bricks", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Player", Width: 14},
		{Title: "Time", Width: 10},
	}

	// Give spare width to the player column
	tableWidth := m.width - 8
	if extra := tableWidth - 54 - 12; extra > 0 {
		columns[4].Width += min(extra, 16)
	}

	height := m.height - runsChromeRows
	if height < runsMinHeight {
		height = runsMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the runs from the store. Errors are logged and leave the
// table empty.
func (m *RunsTable) Refresh(logger *log.Logger) {
	m.runs = nil
	m.mine = 0
	if m.store != nil {
		runs, err := m.store.TopRuns(m.variant, maxRuns)
		if err != nil {
			logger.Warn("could not load runs", "variant", m.variant, "error", err)
		} else {
			m.runs = runs
		}
		if n, err := m.store.RunCount(m.session); err != nil {
			logger.Warn("could not count runs", "session", m.session, "error", err)
		} else {
			m.mine = n
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsTable) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Session
		if r.Session == m.session {
			player = "you"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Bricks),
			fmt.Sprintf("%d", r.Ticks),
			player,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Resize fits the table to a new terminal size.
func (m *RunsTable) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
}

// Len returns the number of loaded runs.
func (m RunsTable) Len() int {
	return len(m.runs)
}

// Update passes scrolling keys to the table.
func (m RunsTable) Update(msg tea.Msg) (RunsTable, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table or an empty message.
func (m RunsTable) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("RUNS THIS SESSION"))
	b.WriteString("\n")

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No runs finished yet.\nA run ends when the ball is missed."))
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("Your runs: %d", m.mine)))
	}

	return panelStyle.Render(b.String())
}
