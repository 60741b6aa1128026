package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/engine"
	"github.com/vovakirdan/tui-flow/internal/levels"
)

// rulesText is shown by the help overlay.
const rulesText = `Goal: connect the anchors of the same color with pipes!

Move the cursor onto an anchor and press Enter (or click it),
then use the arrow keys to build the pipe.
Step back over the pipe to undo a move, or pick one of the
color's anchors again to start that pipe over.

Every cell must be filled by an anchor or a pipe.`

// Screen rows used around the board.
const (
	hudRows     = 2 // title and counters above the board
	flashFrames = 6
	flashRate   = 4 // banner blinks per second
)

// GameConfig holds what a puzzle screen is built from.
type GameConfig struct {
	Catalog *levels.Catalog
	Level   levels.Level
	Tracker engine.ProgressTracker
	Logger  *log.Logger
	Theme   Theme
	Width   int
	Height  int
}

// GameModel is the Bubble Tea model of one puzzle.
type GameModel struct {
	session   *engine.Session
	catalog   *levels.Catalog
	level     levels.Level
	logger    *log.Logger
	theme     Theme
	keyMapper *KeyMapper
	help      help.Model

	screen *core.Screen
	layout core.BoardLayout
	fits   bool
	width  int
	height int

	cursor     engine.Coord
	status     string
	showHelp   bool
	won        bool
	flash      int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a puzzle screen with the level loaded.
func NewGameModel(cfg GameConfig) (GameModel, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts := []engine.SessionOption{engine.WithLogger(logger)}
	if cfg.Tracker != nil {
		opts = append(opts, engine.WithTracker(cfg.Tracker))
	}
	if cfg.Theme.Palette == nil {
		cfg.Theme = DefaultTheme()
	}

	m := GameModel{
		session:   engine.NewSession(opts...),
		catalog:   cfg.Catalog,
		logger:    logger,
		theme:     cfg.Theme,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	if err := m.load(cfg.Level); err != nil {
		return GameModel{}, err
	}
	m.resize(cfg.Width, cfg.Height)
	return m, nil
}

// load replaces the puzzle with a new level.
func (m *GameModel) load(lvl levels.Level) error {
	if err := m.session.ResetForNewLevel(lvl.ToEngine()); err != nil {
		return err
	}
	m.level = lvl
	m.cursor = engine.Coord{}
	m.won = false
	m.flash = 0
	m.status = ""
	m.relayout()
	return nil
}

func (m *GameModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	if m.screen == nil {
		m.screen = core.NewScreen(w, core.Max(0, h-1))
	} else {
		m.screen.Resize(w, core.Max(0, h-1))
	}
	m.relayout()
}

func (m *GameModel) relayout() {
	if m.screen == nil {
		return
	}
	m.layout, m.fits = core.FitBoard(m.level.Rows, m.level.Cols,
		m.screen.Width(), m.screen.Height()-1, hudRows)
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if m.flash > 0 {
			m.flash--
			return m, tickCmd(flashRate)
		}
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if m.showHelp {
		switch action {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionNone:
		default:
			m.showHelp = false
		}
		return m, nil
	}

	m.status = ""
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, nil
	case action == core.ActionHelp:
		m.showHelp = true
	case action == core.ActionRestart:
		m.restart()
	case action == core.ActionNext:
		m.nextLevel()
	case action == core.ActionSelect:
		m.selectAt(m.cursor)
	case action.IsCursor():
		dr, dc := action.Delta()
		m.cursor = engine.At(
			core.Clamp(m.cursor.Row+dr, 0, m.level.Rows-1),
			core.Clamp(m.cursor.Col+dc, 0, m.level.Cols-1),
		)
	case action.IsGrowth():
		return m.grow(action)
	}
	return m, nil
}

// handleMouse starts a pipe from a clicked anchor.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || !m.fits {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row, col, ok := m.layout.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = engine.At(row, col)
	m.status = ""
	m.selectAt(m.cursor)
	return m, nil
}

func (m *GameModel) selectAt(at engine.Coord) {
	if !m.session.Select(at.Row, at.Col) {
		m.status = "Pick an anchor to start a pipe"
	}
}

func (m GameModel) grow(action core.Action) (tea.Model, tea.Cmd) {
	d, _ := actionDirection(action)
	if _, ok := m.session.Current(); !ok {
		m.status = "Pick an anchor first"
		return m, nil
	}

	won := m.session.Act(d)
	if head, ok := m.session.Head(); ok {
		m.cursor = head
	}
	if won && !m.won {
		m.won = true
		m.flash = flashFrames
		return m, tickCmd(flashRate)
	}
	m.won = won
	return m, nil
}

func (m *GameModel) restart() {
	if err := m.session.Restart(); err != nil {
		m.logger.Error("cannot restart level", "level", m.level.ID, "err", err)
		return
	}
	m.won = false
	m.flash = 0
}

func (m *GameModel) nextLevel() {
	if m.catalog == nil {
		return
	}
	next, ok := m.catalog.Next(m.level.ID)
	if !ok {
		m.status = "This is the last level"
		return
	}
	if err := m.load(next); err != nil {
		m.logger.Error("cannot load level", "level", next.ID, "err", err)
		m.status = "Level " + next.ID + " is broken"
	}
}

// View renders the puzzle.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.viewHelp()
	}

	keys := m.keyMapper.Keys()
	helpLine := m.theme.HUDControls.Render(m.help.View(keys))
	if !m.fits {
		msg := fmt.Sprintf("Terminal too small for a %dx%d board", m.level.Rows, m.level.Cols)
		return lipgloss.Place(m.width, core.Max(1, m.height-1), lipgloss.Center, lipgloss.Center, msg) +
			"\n" + helpLine
	}

	snap := m.session.Snapshot()
	m.screen.Clear()
	m.drawHUD(snap)
	RenderBoard(m.screen, snap, BoardView{Layout: m.layout, Cursor: m.cursor, ShowCursor: true}, m.theme)
	m.drawStatus(snap)

	return RenderScreen(m.screen, m.theme) + "\n" + helpLine
}

func (m GameModel) drawHUD(snap engine.Snapshot) {
	title := fmt.Sprintf("FLOW  %s (%s)", m.level.Title(), m.level.ID)
	m.screen.DrawTextCentered(0, title, core.ColorBrightCyan)

	counters := fmt.Sprintf("Connected %d/%d  |  Filled %d/%d",
		snap.Connected, len(snap.Colors), snap.Occupied, snap.Rows*snap.Cols)
	if snap.Solved {
		counters += "  |  solved"
	}
	m.screen.DrawTextCentered(1, counters, core.ColorGray)
}

func (m GameModel) drawStatus(snap engine.Snapshot) {
	y := m.layout.Frame.Bottom()
	switch {
	case snap.Won:
		color := core.ColorBrightYellow
		if m.flash%2 == 1 {
			color = core.ColorBrightGreen
		}
		banner := "LEVEL COMPLETE!  n: next level  esc: levels"
		if len([]rune(banner)) > m.screen.Width() {
			banner = "LEVEL COMPLETE!"
		}
		m.screen.DrawTextCentered(y, banner, color)
	case m.status != "":
		m.screen.DrawTextCentered(y, m.status, core.ColorGray)
	case snap.HasCurrent:
		m.screen.DrawTextCentered(y, "Drawing "+snap.Current.String(), screenColor(snap.Current))
	}
}

func (m GameModel) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.OverlayText.Render(rulesText))
	b.WriteString("\n\n")

	full := help.New()
	full.ShowAll = true
	b.WriteString(full.View(m.keyMapper.Keys()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.HUDControls.Render("Press any key to return"))

	box := m.theme.OverlayBorder.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Snapshot returns the puzzle state.
func (m GameModel) Snapshot() engine.Snapshot {
	return m.session.Snapshot()
}

// Level returns the level being played.
func (m GameModel) Level() levels.Level {
	return m.level
}

// Cursor returns the selection cursor position.
func (m GameModel) Cursor() engine.Coord {
	return m.cursor
}

// Status returns the hint line shown under the board.
func (m GameModel) Status() string {
	return m.status
}

// IsWon reports whether the puzzle is solved.
func (m GameModel) IsWon() bool {
	return m.won
}

// ShowingHelp reports whether the rules overlay is open.
func (m GameModel) ShowingHelp() bool {
	return m.showHelp
}

// Layout returns the board placement on screen.
func (m GameModel) Layout() (core.BoardLayout, bool) {
	return m.layout, m.fits
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
