package engine

// Pipe is the ordered run of cells drawn from an anchor.
// dirs[k] leads from cells[k] to cells[k+1].
type Pipe struct {
	board *Board
	color Color
	cells []Coord
	dirs  []Direction
}

func newPipe(b *Board, color Color, start Coord) *Pipe {
	b.claim(start, color)
	return &Pipe{
		board: b,
		color: color,
		cells: []Coord{start},
	}
}

// Color returns the pipe color.
func (p *Pipe) Color() Color {
	return p.color
}

// Start returns the anchor cell the pipe was drawn from.
func (p *Pipe) Start() Coord {
	return p.cells[0]
}

// Head returns the last cell of the pipe.
func (p *Pipe) Head() Coord {
	return p.cells[len(p.cells)-1]
}

// Len returns the number of cells in the pipe.
func (p *Pipe) Len() int {
	return len(p.cells)
}

// Cells returns a copy of the cell sequence.
func (p *Pipe) Cells() []Coord {
	out := make([]Coord, len(p.cells))
	copy(out, p.cells)
	return out
}

// Path returns a copy of the step directions.
func (p *Pipe) Path() []Direction {
	out := make([]Direction, len(p.dirs))
	copy(out, p.dirs)
	return out
}

// Extend grows the pipe one cell in direction d, or retreats one cell when d
// exactly retraces the previous step. Extending a complete pipe, running off
// the board and entering a cell that refuses the pipe are all no-ops.
func (p *Pipe) Extend(d Direction) {
	last := p.Head()
	next, ok := p.board.Neighbor(last, d)
	if !ok {
		return
	}

	n := len(p.cells)
	if n >= 2 && next == p.cells[n-2] {
		p.board.release(last)
		p.cells = p.cells[:n-1]
		p.dirs = p.dirs[:n-2]
		return
	}

	if p.IsComplete() {
		return
	}
	if !p.board.join(next, p.color, p.Start()) {
		return
	}
	p.cells = append(p.cells, next)
	p.dirs = append(p.dirs, d)
}

// IsComplete is true once the pipe has left its start and ends on an anchor.
// The acceptance rule guarantees that anchor is the other one of its color.
func (p *Pipe) IsComplete() bool {
	if len(p.cells) < 2 {
		return false
	}
	cell, ok := p.board.CellAt(p.Head())
	return ok && cell.HasAnchor()
}

// Teardown releases every cell of the pipe.
func (p *Pipe) Teardown() {
	for _, c := range p.cells {
		p.board.release(c)
	}
}
