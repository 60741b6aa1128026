package engine

// Board is the grid of cells of one level.
// Cells are stored in row-major order: index = row*Cols + col.
type Board struct {
	Rows  int
	Cols  int
	cells []Cell

	anchors  AnchorLayout
	occupied int // cells holding an anchor or a pipe
}

// NewBoard builds a board from a level and places its anchors.
// Malformed levels are rejected with a LevelError.
func NewBoard(level Level) (*Board, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	g := level.Geometry
	b := &Board{
		Rows:    g.Rows,
		Cols:    g.Cols,
		cells:   make([]Cell, g.Cells()),
		anchors: make(AnchorLayout, len(level.Anchors)),
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			b.cells[b.index(At(row, col))].at = At(row, col)
		}
	}

	for color, pair := range level.Anchors {
		b.anchors[color] = pair
		b.placeAnchor(Anchor{Color: color, At: pair.Start, Order: AnchorStart})
		b.placeAnchor(Anchor{Color: color, At: pair.End, Order: AnchorEnd})
	}
	return b, nil
}

func (b *Board) placeAnchor(a Anchor) {
	cell := &b.cells[b.index(a.At)]
	cell.anchor = &a
	b.occupied++
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Row*b.Cols + c.Col
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// CellAt returns the cell at the given coordinate.
// Returns false if out of bounds.
func (b *Board) CellAt(c Coord) (*Cell, bool) {
	if !b.InBounds(c) {
		return nil, false
	}
	return &b.cells[b.index(c)], true
}

// Neighbor returns the coordinate adjacent to c in direction d.
// Returns false past the board edge.
func (b *Board) Neighbor(c Coord, d Direction) (Coord, bool) {
	next := c.Step(d)
	if !b.InBounds(next) {
		return Coord{}, false
	}
	return next, true
}

// Colors returns the colors placed on the board in ascending order.
func (b *Board) Colors() []Color {
	return b.anchors.Colors()
}

// Anchors returns the anchor pair of a color.
func (b *Board) Anchors(c Color) (AnchorPair, bool) {
	pair, ok := b.anchors[c]
	return pair, ok
}

// IsFullyCovered returns true if every cell holds an anchor or a pipe.
func (b *Board) IsFullyCovered() bool {
	return b.occupied == len(b.cells)
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	return b.occupied
}

// countOccupied scans every cell. It must always agree with OccupiedCount.
func (b *Board) countOccupied() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].IsOccupied() {
			n++
		}
	}
	return n
}

// join asks the cell at c to accept a pipe segment of the given color.
func (b *Board) join(c Coord, color Color, start Coord) bool {
	cell, ok := b.CellAt(c)
	if !ok {
		return false
	}
	wasOccupied := cell.IsOccupied()
	if !cell.tryJoin(color, start) {
		return false
	}
	if !wasOccupied {
		b.occupied++
	}
	return true
}

// claim roots a pipe of the given color on the anchor cell at c.
func (b *Board) claim(c Coord, color Color) {
	cell, ok := b.CellAt(c)
	if !ok {
		return
	}
	if !cell.IsOccupied() {
		b.occupied++
	}
	cell.claim(color)
}

// release clears the pipe segment at c.
func (b *Board) release(c Coord) {
	cell, ok := b.CellAt(c)
	if !ok || !cell.HasPipe() {
		return
	}
	cell.release()
	if !cell.IsOccupied() {
		b.occupied--
	}
}
