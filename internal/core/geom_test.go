package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 10, false},
		{10, 15, false},
		{9, 10, false},
		{10, 9, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}
	if small := NewRect(0, 0, 1, 1).Inset(2); small.W != 0 || small.H != 0 {
		t.Errorf("inset past zero should clamp, got %+v", small)
	}
}

func TestClampMinMax(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp failed")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max failed")
	}
}

func TestFitBoard(t *testing.T) {
	l, ok := FitBoard(5, 5, 80, 24, 2)
	if !ok {
		t.Fatal("5x5 should fit an 80x24 terminal")
	}
	if l.CellW != 8 || l.CellH != 4 {
		t.Errorf("cell size = %dx%d, expected 8x4", l.CellW, l.CellH)
	}
	if l.Frame != NewRect(19, 2, 42, 22) {
		t.Errorf("frame = %+v", l.Frame)
	}

	small, ok := FitBoard(6, 6, 40, 12, 2)
	if !ok {
		t.Fatal("6x6 should fit at minimum cell size")
	}
	if small.CellW != MinCellW || small.CellH != MinCellH {
		t.Errorf("small cell size = %dx%d", small.CellW, small.CellH)
	}

	if _, ok := FitBoard(9, 9, 20, 8, 0); ok {
		t.Error("9x9 cannot fit a 20x8 terminal")
	}
	if _, ok := FitBoard(0, 3, 80, 24, 0); ok {
		t.Error("empty board has no layout")
	}
}

func TestBoardLayoutCellAt(t *testing.T) {
	l, _ := FitBoard(5, 5, 80, 24, 2)

	r := l.CellRect(2, 3)
	row, col, ok := l.CellAt(r.X, r.Y)
	if !ok || row != 2 || col != 3 {
		t.Errorf("top-left of cell (2,3) maps to %d,%d,%v", row, col, ok)
	}
	row, col, ok = l.CellAt(r.Right()-1, r.Bottom()-1)
	if !ok || row != 2 || col != 3 {
		t.Errorf("bottom-right of cell (2,3) maps to %d,%d,%v", row, col, ok)
	}

	if _, _, ok := l.CellAt(l.Frame.X, l.Frame.Y); ok {
		t.Error("the frame border is not a cell")
	}
	if _, _, ok := l.CellAt(0, 0); ok {
		t.Error("outside the board is not a cell")
	}
}

func TestActionDelta(t *testing.T) {
	if dr, dc := ActionCursorLeft.Delta(); dr != 0 || dc != -1 {
		t.Errorf("CursorLeft delta = %d,%d", dr, dc)
	}
	if !ActionRight.IsGrowth() || ActionRight.IsCursor() {
		t.Error("Right is a growth action")
	}
	if !ActionCursorDown.IsCursor() || ActionSelect.IsGrowth() {
		t.Error("action classification wrong")
	}
}
