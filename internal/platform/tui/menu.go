package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/levels"
)

// MenuModel is the level picker: one row per board size, one button per
// level. Solved levels are shown in green, the others in red.
type MenuModel struct {
	catalog      *levels.Catalog
	solved       map[string]bool
	group        int // selected size row
	index        int // selected level inside the row
	scrollOffset int
	width        int
	height       int
	theme        Theme
	keys         MenuKeyMap
	help         help.Model
	selected     *levels.Level
	quitting     bool
	openProgress bool
}

// NewMenuModel creates a level picker over the catalog. solved holds the
// IDs of levels already solved and may be nil.
func NewMenuModel(catalog *levels.Catalog, solved map[string]bool, theme Theme, width, height int) MenuModel {
	if solved == nil {
		solved = map[string]bool{}
	}
	if theme.Palette == nil {
		theme = DefaultTheme()
	}
	h := help.New()
	h.Width = width
	m := MenuModel{
		catalog: catalog,
		solved:  solved,
		width:   width,
		height:  height,
		theme:   theme,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
	m.focusFirstUnsolved()
	return m
}

func (m *MenuModel) groups() []levels.SizeGroup {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.Groups()
}

func (m *MenuModel) focusFirstUnsolved() {
	for gi, g := range m.groups() {
		for li, lvl := range g.Levels {
			if !m.solved[lvl.ID] {
				m.group, m.index = gi, li
				m.updateScroll()
				return
			}
		}
	}
}

// Focus moves the cursor onto a level.
func (m *MenuModel) Focus(id string) {
	for gi, g := range m.groups() {
		for li, lvl := range g.Levels {
			if lvl.ID == id {
				m.group, m.index = gi, li
				m.updateScroll()
				return
			}
		}
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.groups()

	switch MapKeyToMenuAction(m.keys, msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionProgress:
		m.openProgress = true
		return m, nil
	case MenuActionUp:
		if m.group > 0 {
			m.group--
			m.index = core.Min(m.index, len(groups[m.group].Levels)-1)
			m.updateScroll()
		}
	case MenuActionDown:
		if m.group < len(groups)-1 {
			m.group++
			m.index = core.Min(m.index, len(groups[m.group].Levels)-1)
			m.updateScroll()
		}
	case MenuActionLeft:
		if m.index > 0 {
			m.index--
		}
	case MenuActionRight:
		if len(groups) > 0 && m.index < len(groups[m.group].Levels)-1 {
			m.index++
		}
	case MenuActionSelect:
		if lvl, ok := m.Current(); ok {
			m.selected = &lvl
		}
	}
	return m, nil
}

// visibleGroups returns how many size rows fit between header and footer.
func (m *MenuModel) visibleGroups() int {
	return core.Max(3, m.height-12)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleGroups()
	if m.group < m.scrollOffset {
		m.scrollOffset = m.group
	} else if m.group >= m.scrollOffset+visible {
		m.scrollOffset = m.group - visible + 1
	}
}

// View renders the level picker.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	t := m.theme

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("F  L  O  W"), m.width))
	b.WriteString("\n\n")

	groups := m.groups()
	if len(groups) == 0 {
		b.WriteString(centerText(t.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	total, solved := 0, 0
	for _, g := range groups {
		for _, lvl := range g.Levels {
			total++
			if m.solved[lvl.ID] {
				solved++
			}
		}
	}
	subtitle := fmt.Sprintf("Select a level  (%d/%d solved)", solved, total)
	b.WriteString(centerText(t.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if m.scrollOffset > 0 {
		b.WriteString(centerText(t.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	end := core.Min(len(groups), m.scrollOffset+m.visibleGroups())
	for gi := m.scrollOffset; gi < end; gi++ {
		b.WriteString(centerText(m.renderGroup(gi, groups[gi]), m.width))
		b.WriteString("\n")
	}

	if end < len(groups) {
		b.WriteString(centerText(t.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	if lvl, ok := m.Current(); ok {
		state := "not solved"
		if m.solved[lvl.ID] {
			state = "solved"
		}
		desc := fmt.Sprintf("%s  ·  %s  ·  %d colors  ·  %s", lvl.Title(), lvl.ID, len(lvl.Anchors), state)
		b.WriteString("\n")
		b.WriteString(centerText(t.MenuDescription.Render(desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(t.HUDControls.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderGroup(gi int, g levels.SizeGroup) string {
	t := m.theme
	parts := []string{t.MenuGroup.Render(fmt.Sprintf("%-6s", g.Label()))}
	for li, lvl := range g.Levels {
		label := fmt.Sprintf(" %02d ", li+1)
		style := t.MenuUnsolved
		if m.solved[lvl.ID] {
			style = t.MenuSolved
		}
		if gi == m.group && li == m.index {
			style = t.MenuActive
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

// Current returns the level under the cursor.
func (m MenuModel) Current() (levels.Level, bool) {
	groups := m.groups()
	if m.group >= len(groups) || m.index >= len(groups[m.group].Levels) {
		return levels.Level{}, false
	}
	return groups[m.group].Levels[m.index], true
}

// Selected returns the chosen level, or nil if still choosing.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsProgress returns true if user asked for the progress table.
func (m MenuModel) WantsProgress() bool {
	return m.openProgress
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
