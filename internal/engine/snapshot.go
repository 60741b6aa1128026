package engine

// CellView is the render state of one cell.
type CellView struct {
	At          Coord
	HasAnchor   bool
	AnchorColor Color
	HasPipe     bool
	PipeColor   Color
}

// PipeView is the render state of one active pipe.
type PipeView struct {
	Color    Color
	Start    Coord
	Cells    []Coord
	Path     []Direction
	Complete bool
}

// Snapshot captures everything a front end needs to draw the puzzle.
// It shares no memory with the session.
type Snapshot struct {
	LevelID    string
	LevelName  string
	Rows       int
	Cols       int
	Cells      []CellView // row-major
	Pipes      []PipeView // ordered by color
	Colors     []Color
	Current    Color
	HasCurrent bool
	Connected  int // colors with a complete pipe
	Occupied   int
	Covered    bool
	Won        bool
	Solved     bool // level marked solved by the progress tracker
}

// Cell returns the view of the cell at c.
func (s Snapshot) Cell(c Coord) (CellView, bool) {
	if c.Row < 0 || c.Row >= s.Rows || c.Col < 0 || c.Col >= s.Cols {
		return CellView{}, false
	}
	return s.Cells[c.Row*s.Cols+c.Col], true
}

// Pipe returns the view of a color's pipe.
func (s Snapshot) Pipe(c Color) (PipeView, bool) {
	for _, p := range s.Pipes {
		if p.Color == c {
			return p, true
		}
	}
	return PipeView{}, false
}
