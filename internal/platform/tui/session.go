package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flow/internal/levels"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// Options configures a play session.
type Options struct {
	Store      *storage.Store // nil disables saved progress
	Catalog    *levels.Catalog
	Player     string
	Theme      Theme
	Logger     *log.Logger
	StartLevel string // level to open directly; empty opens the picker
	Width      int
	Height     int
}

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeProgress
)

// SessionModel manages the full session flow: picker -> puzzle -> picker,
// with the progress table reachable from the picker.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	opts     Options
	progress *storage.PlayerProgress
	mode     sessionMode
	menu     MenuModel
	game     *GameModel
	table    ProgressModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Theme.Palette == nil {
		opts.Theme = DefaultTheme()
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}

	m := SessionModel{opts: opts}
	if opts.Store != nil {
		m.progress = opts.Store.ForPlayer(opts.Player)
	}
	m.menu = m.newMenu("")

	if opts.StartLevel != "" && opts.Catalog != nil {
		if lvl, ok := opts.Catalog.Get(opts.StartLevel); ok {
			m.startGame(lvl)
		} else {
			opts.Logger.Warn("unknown level", "level", opts.StartLevel)
		}
	}
	return m
}

func (m *SessionModel) solvedSet() map[string]bool {
	if m.progress == nil {
		return nil
	}
	set, err := m.progress.Solved()
	if err != nil {
		m.opts.Logger.Warn("cannot read progress", "player", m.opts.Player, "err", err)
		return nil
	}
	return set
}

func (m *SessionModel) newMenu(focus string) MenuModel {
	menu := NewMenuModel(m.opts.Catalog, m.solvedSet(), m.opts.Theme, m.opts.Width, m.opts.Height)
	if focus != "" {
		menu.Focus(focus)
	}
	return menu
}

func (m *SessionModel) startGame(lvl levels.Level) {
	cfg := GameConfig{
		Catalog: m.opts.Catalog,
		Level:   lvl,
		Logger:  m.opts.Logger,
		Theme:   m.opts.Theme,
		Width:   m.opts.Width,
		Height:  m.opts.Height,
	}
	if m.progress != nil {
		cfg.Tracker = m.progress
	}
	game, err := NewGameModel(cfg)
	if err != nil {
		m.opts.Logger.Error("cannot start level", "level", lvl.ID, "err", err)
		return
	}
	m.game = &game
	m.mode = modeGame
	m.opts.Logger.Info("level started", "player", m.opts.Player, "level", lvl.ID)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeProgress:
		return m.updateProgress(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsProgress() {
		m.table = NewProgressModel(m.opts.Store, m.opts.Catalog, m.opts.Player,
			m.opts.Theme, m.opts.Width, m.opts.Height)
		m.mode = modeProgress
		return m, m.table.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.startGame(*selected)
		if m.game == nil {
			// Reset menu state
			m.menu = m.newMenu(selected.ID)
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		focus := m.game.Level().ID
		m.game = nil
		m.mode = modeMenu
		m.menu = m.newMenu(focus)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateProgress handles updates when the progress table is shown.
func (m SessionModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.table.Update(msg)
	if table, ok := newModel.(ProgressModel); ok {
		m.table = table
	}

	if m.table.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.table.IsGoingBack() {
		m.mode = modeMenu
		m.menu = m.newMenu("")
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeProgress:
		return m.table.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a puzzle is on screen.
func (m SessionModel) InGame() bool {
	return m.mode == modeGame
}

// Game returns the puzzle screen, or nil outside a puzzle.
func (m SessionModel) Game() *GameModel {
	return m.game
}

// InProgress reports whether the progress table is on screen.
func (m SessionModel) InProgress() bool {
	return m.mode == modeProgress
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks pick anchors
	)

	_, err := p.Run()
	return err
}
