package engine

// AnchorOrder tells the first-listed anchor of a color from the second.
type AnchorOrder uint8

const (
	AnchorStart AnchorOrder = iota
	AnchorEnd
)

// Anchor is a fixed endpoint placed when the board is built.
type Anchor struct {
	Color Color
	At    Coord
	Order AnchorOrder
}

// Cell is one board location. It may hold an anchor, a pipe segment or both.
// Cells carry no reference to their board; neighbors are resolved by the
// Board from coordinates.
type Cell struct {
	at      Coord
	anchor  *Anchor
	owner   Color
	hasPipe bool
}

// Coord returns the cell position.
func (c *Cell) Coord() Coord {
	return c.at
}

// HasAnchor reports whether an anchor sits on this cell.
func (c *Cell) HasAnchor() bool {
	return c.anchor != nil
}

// Anchor returns the anchor on this cell, if any.
func (c *Cell) Anchor() (Anchor, bool) {
	if c.anchor == nil {
		return Anchor{}, false
	}
	return *c.anchor, true
}

// HasPipe reports whether a pipe currently runs through this cell.
func (c *Cell) HasPipe() bool {
	return c.hasPipe
}

// PipeColor returns the color of the pipe running through this cell.
func (c *Cell) PipeColor() (Color, bool) {
	return c.owner, c.hasPipe
}

// IsOccupied is true when the cell holds an anchor or a pipe.
func (c *Cell) IsOccupied() bool {
	return c.anchor != nil || c.hasPipe
}

// tryJoin accepts the pipe when the cell is completely empty, or when it holds
// an anchor of the pipe's color other than the pipe's start cell.
// A rejected join leaves the cell untouched.
func (c *Cell) tryJoin(color Color, start Coord) bool {
	empty := c.anchor == nil && !c.hasPipe
	terminal := c.anchor != nil && c.anchor.Color == color && c.at != start
	if !empty && !terminal {
		return false
	}
	c.owner = color
	c.hasPipe = true
	return true
}

// claim records the pipe rooted on this anchor cell.
func (c *Cell) claim(color Color) {
	c.owner = color
	c.hasPipe = true
}

// release forgets the pipe. Anchors stay.
func (c *Cell) release() {
	c.owner = 0
	c.hasPipe = false
}
