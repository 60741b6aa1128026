// Package engine holds the puzzle rules: cell occupancy, pipe growth and
// retraction, and win evaluation.
// This package is UI-agnostic and deterministic.
package engine

// Direction is one of the four growth directions of a pipe.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions returns the four directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (drow, dcol) offset for one step in this direction.
// Up decreases the row, Right increases the column.
func (d Direction) Delta() (drow, dcol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Glyph returns the arrow used by the ASCII board dump.
func (d Direction) Glyph() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	default:
		return '?'
	}
}
