package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/levels"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// Progress layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the player sidebar
	sidebarWidth       = 22 // Width of player sidebar
)

// ProgressKeyMap defines the key bindings for the progress table.
type ProgressKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model listing every level and whether
// the player solved it.
type ProgressModel struct {
	catalog     *levels.Catalog
	store       *storage.Store
	player      string
	solved      []storage.SolvedLevel
	stats       []storage.PlayerStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a progress table for one player. store may be
// nil when progress is not persisted.
func NewProgressModel(store *storage.Store, catalog *levels.Catalog, player string, theme Theme, width, height int) ProgressModel {
	if player == "" {
		player = storage.DefaultPlayer
	}
	if theme.Palette == nil {
		theme = DefaultTheme()
	}
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		catalog:     catalog,
		store:       store,
		player:      player,
		help:        h,
		keys:        DefaultProgressKeyMap(),
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 12},
		{Title: "Size", Width: 6},
		{Title: "Name", Width: 18},
		{Title: "Solved", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if extra := tableWidth - 60; extra > 0 {
		columns[2].Width += min(extra, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

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

// load reads the player's progress and fills the table.
func (m *ProgressModel) load() {
	m.solved, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.solved, m.loadErr = m.store.SolvedLevels(m.player)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.AllPlayerStats()
		}
	}
	m.updateTableRows()
}

// updateTableRows lists catalog levels in order with their solve date.
func (m *ProgressModel) updateTableRows() {
	when := make(map[string]string, len(m.solved))
	for _, s := range m.solved {
		when[s.LevelID] = s.SolvedAt.Format("Jan 02 15:04")
	}

	var rows []table.Row
	if m.catalog != nil {
		for _, lvl := range m.catalog.Levels() {
			solved, ok := when[lvl.ID]
			if !ok {
				solved = "-"
			}
			rows = append(rows, table.Row{
				lvl.ID,
				fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols),
				lvl.Title(),
				solved,
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress table.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress table.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("PROGRESS - %s (%d/%d solved)", m.player, len(m.solved), m.Total())
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(centerText(m.renderTableContent(), m.width))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the table with the player sidebar.
func (m ProgressModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Players\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for _, ps := range m.stats {
		style := lipgloss.NewStyle()
		if ps.Player == m.player {
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := ps.Player
		maxLen := sidebarWidth - 10
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%-*s %3d", maxLen, name, ps.Solved)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderTableContent renders the table or a notice.
func (m ProgressModel) renderTableContent() string {
	notice := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return notice.Render("Progress is unavailable:\n" + m.loadErr.Error())
	case m.Total() == 0:
		return notice.Render("No levels found.")
	}

	view := m.table.View()
	if m.store == nil {
		view += "\n" + notice.Padding(0).Render("Progress is not saved in this session.")
	}
	return view
}

// Total returns the number of levels listed.
func (m ProgressModel) Total() int {
	if m.catalog == nil {
		return 0
	}
	return m.catalog.Len()
}

// Rows returns the table rows.
func (m ProgressModel) Rows() []table.Row {
	return m.table.Rows()
}

// IsGoingBack returns true if user wants to go back to the level picker.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}
