package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// String renders the board as ASCII for debugging, logs and golden tests.
//
// Format:
//   - header line with size and occupancy
//   - anchors as uppercase color letters, pipe segments in lowercase
//   - empty cells as '.'
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Board %dx%d | Occupied: %d/%d\n",
		b.Rows, b.Cols, b.occupied, len(b.cells)))
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			sb.WriteRune(b.cells[b.index(At(row, col))].glyph())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (c *Cell) glyph() rune {
	switch {
	case c.anchor != nil:
		return c.anchor.Color.Char()
	case c.hasPipe:
		return unicode.ToLower(c.owner.Char())
	default:
		return '.'
	}
}

// PathString renders a direction sequence as arrows, e.g. "vv>".
func PathString(dirs []Direction) string {
	var sb strings.Builder
	for _, d := range dirs {
		sb.WriteRune(d.Glyph())
	}
	return sb.String()
}
