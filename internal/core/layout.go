package core

// BoardLayout places a rows x cols board on a screen and maps screen
// positions back to board cells.
// Each board cell is CellW x CellH characters; the frame adds one character
// on every side.
type BoardLayout struct {
	Rows, Cols   int
	CellW, CellH int
	Frame        Rect // outer rectangle including the border
}

// Cell size limits. Terminal characters are about twice as tall as wide.
const (
	MaxCellW = 8
	MaxCellH = 4
	MinCellW = 2
	MinCellH = 1
)

// FitBoard computes the largest layout of the board that fits in w x h,
// centered horizontally with top at y0. ok is false when even the minimum
// cell size does not fit.
func FitBoard(rows, cols, w, h, y0 int) (BoardLayout, bool) {
	if rows <= 0 || cols <= 0 {
		return BoardLayout{}, false
	}
	availW := w - 2
	availH := h - y0 - 2

	cellH := Min(availH/rows, MaxCellH)
	cellW := Min(availW/cols, MaxCellW)
	if cellH < MinCellH || cellW < MinCellW {
		return BoardLayout{}, false
	}
	// Keep cells roughly square on screen.
	cellW = Min(cellW, cellH*2)
	cellH = Min(cellH, Max(MinCellH, cellW/2))

	frameW := cellW*cols + 2
	frameH := cellH*rows + 2
	return BoardLayout{
		Rows:  rows,
		Cols:  cols,
		CellW: cellW,
		CellH: cellH,
		Frame: NewRect((w-frameW)/2, y0, frameW, frameH),
	}, true
}

// CellRect returns the screen area of a board cell.
func (l BoardLayout) CellRect(row, col int) Rect {
	return NewRect(l.Frame.X+1+col*l.CellW, l.Frame.Y+1+row*l.CellH, l.CellW, l.CellH)
}

// CellAt maps a screen position to a board cell.
func (l BoardLayout) CellAt(x, y int) (row, col int, ok bool) {
	inner := l.Frame.Inset(1)
	if l.CellW <= 0 || l.CellH <= 0 || !inner.Contains(x, y) {
		return 0, 0, false
	}
	return (y - inner.Y) / l.CellH, (x - inner.X) / l.CellW, true
}
