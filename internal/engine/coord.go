package engine

import "fmt"

// Coord addresses a cell on the board.
// Row 0 is the top row, column 0 the leftmost column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate one step away in the given direction.
// The result may lie outside any board.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// DirectionTo returns the direction leading from c to an adjacent coordinate.
func (c Coord) DirectionTo(other Coord) (Direction, bool) {
	for _, d := range Directions() {
		if c.Step(d) == other {
			return d, true
		}
	}
	return Up, false
}
