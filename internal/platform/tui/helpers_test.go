package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flow/internal/engine"
	"github.com/vovakirdan/tui-flow/internal/levels"
)

// testCatalog holds a 1x3 level with one color and a 2x2 level with two.
func testCatalog() *levels.Catalog {
	return levels.NewCatalog([]levels.Level{
		{
			ID: "line-01", Name: "Line", Rows: 1, Cols: 3,
			Anchors: engine.AnchorLayout{
				engine.ColorRed: {Start: engine.At(0, 0), End: engine.At(0, 2)},
			},
		},
		{
			ID: "square-01", Name: "Square", Rows: 2, Cols: 2,
			Anchors: engine.AnchorLayout{
				engine.ColorRed:  {Start: engine.At(0, 0), End: engine.At(1, 0)},
				engine.ColorBlue: {Start: engine.At(0, 1), End: engine.At(1, 1)},
			},
		},
	})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

type memTracker struct {
	solved map[string]bool
}

func newMemTracker() *memTracker {
	return &memTracker{solved: map[string]bool{}}
}

func (t *memTracker) IsSolved(id string) (bool, error) {
	return t.solved[id], nil
}

func (t *memTracker) MarkSolved(id string) error {
	t.solved[id] = true
	return nil
}

func newTestGame(t *testing.T, id string, tracker engine.ProgressTracker) GameModel {
	t.Helper()
	cat := testCatalog()
	lvl, ok := cat.Get(id)
	if !ok {
		t.Fatalf("level %s not in catalog", id)
	}
	m, err := NewGameModel(GameConfig{
		Catalog: cat,
		Level:   lvl,
		Tracker: tracker,
		Width:   40,
		Height:  12,
	})
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	return m
}

func pressGame(m GameModel, keys ...string) (GameModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(GameModel)
	}
	return m, cmd
}
