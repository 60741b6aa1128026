package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flow/internal/engine"
)

func TestGameModelSolvesLevel(t *testing.T) {
	tracker := newMemTracker()
	m := newTestGame(t, "line-01", tracker)

	m, _ = pressGame(m, "enter", "right")
	if m.IsWon() {
		t.Fatal("won after one move")
	}
	if got := m.Cursor(); got != engine.At(0, 1) {
		t.Errorf("cursor = %v, want it to follow the head to (0,1)", got)
	}

	m, cmd := pressGame(m, "right")
	if !m.IsWon() {
		t.Fatal("IsWon() = false after connecting the only color")
	}
	if cmd == nil {
		t.Error("winning move should start the banner animation")
	}
	if !tracker.solved["line-01"] {
		t.Error("tracker was not told the level is solved")
	}
	if view := m.View(); !strings.Contains(view, "LEVEL COMPLETE!") {
		t.Errorf("view does not announce the win:\n%s", view)
	}
}

func TestGameModelBannerFitsScreen(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	m, _ = pressGame(m, "enter", "right", "right")

	narrow := m.View()
	if !strings.Contains(narrow, "LEVEL COMPLETE!") {
		t.Errorf("40 columns: banner clipped:\n%s", narrow)
	}
	if strings.Contains(narrow, "esc: levels") {
		t.Errorf("40 columns: key hints should be dropped:\n%s", narrow)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(GameModel)
	if wide := m.View(); !strings.Contains(wide, "LEVEL COMPLETE!  n: next level  esc: levels") {
		t.Errorf("80 columns: full banner missing:\n%s", wide)
	}
}

func TestGameModelBannerAnimationStops(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	m, cmd := pressGame(m, "enter", "right", "right")

	for i := 0; cmd != nil; i++ {
		if i > flashFrames {
			t.Fatal("banner animation does not stop")
		}
		var next tea.Model
		next, cmd = m.Update(TickMsg{})
		m = next.(GameModel)
	}
	if !m.IsWon() {
		t.Error("win lost after animation")
	}
}

func TestGameModelGrowthNeedsPipe(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	m, _ = pressGame(m, "right")

	if m.Status() != "Pick an anchor first" {
		t.Errorf("status = %q", m.Status())
	}
	if m.Snapshot().HasCurrent {
		t.Error("a pipe was started without selecting an anchor")
	}
}

func TestGameModelCursorStaysOnBoard(t *testing.T) {
	m := newTestGame(t, "line-01", nil)

	m, _ = pressGame(m, "l", "l", "l", "l")
	if got := m.Cursor(); got != engine.At(0, 2) {
		t.Errorf("cursor = %v, want (0,2)", got)
	}
	m, _ = pressGame(m, "j", "h", "h", "h")
	if got := m.Cursor(); got != engine.At(0, 0) {
		t.Errorf("cursor = %v, want (0,0)", got)
	}
}

func TestGameModelSelectWithoutAnchor(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	m, _ = pressGame(m, "l", "enter")

	if m.Status() != "Pick an anchor to start a pipe" {
		t.Errorf("status = %q", m.Status())
	}
	if m.Snapshot().HasCurrent {
		t.Error("empty cell started a pipe")
	}
}

func TestGameModelMouseSelectsAnchor(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	layout, ok := m.Layout()
	if !ok {
		t.Fatal("board does not fit the test terminal")
	}

	r := layout.CellRect(0, 2)
	next, _ := m.Update(tea.MouseMsg{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(GameModel)

	snap := m.Snapshot()
	if !snap.HasCurrent || snap.Current != engine.ColorRed {
		t.Fatalf("click did not select red: %+v", snap)
	}
	pipe, _ := snap.Pipe(engine.ColorRed)
	if pipe.Start != engine.At(0, 2) {
		t.Errorf("pipe start = %v, want (0,2)", pipe.Start)
	}
	if m.Cursor() != engine.At(0, 2) {
		t.Errorf("cursor = %v, want (0,2)", m.Cursor())
	}

	// Clicks outside the board are ignored.
	next, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if next.(GameModel).Cursor() != engine.At(0, 2) {
		t.Error("click outside the board moved the cursor")
	}
}

func TestGameModelNextLevel(t *testing.T) {
	m := newTestGame(t, "line-01", nil)

	m, _ = pressGame(m, "enter", "right", "n")
	if m.Level().ID != "square-01" {
		t.Fatalf("level = %s, want square-01", m.Level().ID)
	}
	if snap := m.Snapshot(); len(snap.Pipes) != 0 || snap.Rows != 2 {
		t.Errorf("next level did not start clean: %+v", snap)
	}

	m, _ = pressGame(m, "n")
	if m.Level().ID != "square-01" || m.Status() != "This is the last level" {
		t.Errorf("level = %s, status = %q", m.Level().ID, m.Status())
	}
}

func TestGameModelHelpOverlay(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	m, _ = pressGame(m, "enter", "right", "?")

	if !m.ShowingHelp() {
		t.Fatal("? did not open the rules")
	}
	if view := m.View(); !strings.Contains(view, "Goal: connect the anchors") {
		t.Errorf("help view missing rules:\n%s", view)
	}

	m, _ = pressGame(m, "x")
	if !m.ShowingHelp() {
		t.Error("unbound key closed the rules")
	}

	// The key closing the overlay is not applied to the board.
	m, _ = pressGame(m, "r")
	if m.ShowingHelp() {
		t.Error("r did not close the rules")
	}
	if pipe, ok := m.Snapshot().Pipe(engine.ColorRed); !ok || len(pipe.Cells) != 2 {
		t.Errorf("closing the rules changed the board: %+v", pipe)
	}
}

func TestGameModelRestart(t *testing.T) {
	tracker := newMemTracker()
	m := newTestGame(t, "line-01", tracker)
	m, _ = pressGame(m, "enter", "right", "right", "r")

	if m.IsWon() {
		t.Error("restart kept the win")
	}
	snap := m.Snapshot()
	if len(snap.Pipes) != 0 {
		t.Errorf("restart kept %d pipes", len(snap.Pipes))
	}
	if !snap.Solved {
		t.Error("restart forgot the level was solved")
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestGame(t, "line-01", nil)
	back, _ := pressGame(m, "esc")
	if !back.BackToMenu() || back.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v", back.BackToMenu(), back.IsQuitting())
	}

	quit, cmd := pressGame(m, "q")
	if !quit.IsQuitting() || cmd == nil {
		t.Errorf("q: quit=%v cmd=%v", quit.IsQuitting(), cmd)
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelTerminalTooSmall(t *testing.T) {
	m := newTestGame(t, "line-01", nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = next.(GameModel)
	if _, ok := m.Layout(); ok {
		t.Fatal("1x3 board should not fit 10x5")
	}
	if view := m.View(); !strings.Contains(view, "Terminal too small") {
		t.Errorf("view = %q", view)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = next.(GameModel)
	if _, ok := m.Layout(); !ok {
		t.Error("board should fit again after growing the terminal")
	}
}
