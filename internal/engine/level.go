package engine

import "sort"

// Geometry is the fixed size of a board.
type Geometry struct {
	Rows int
	Cols int
}

// Cells returns the number of cells on a board of this size.
func (g Geometry) Cells() int {
	return g.Rows * g.Cols
}

// AnchorPair holds the two anchor positions of one color.
// Start is the first-listed anchor of the level file.
type AnchorPair struct {
	Start Coord
	End   Coord
}

// AnchorLayout maps every color used by a level to its anchor pair.
type AnchorLayout map[Color]AnchorPair

// Colors returns the colors of the layout in ascending order.
func (l AnchorLayout) Colors() []Color {
	colors := make([]Color, 0, len(l))
	for c := range l {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		return colors[i] < colors[j]
	})
	return colors
}

// Level is everything the engine needs to build a board.
type Level struct {
	ID       string
	Name     string
	Geometry Geometry
	Anchors  AnchorLayout
}

// Validate checks the level geometry and anchor layout without building a board.
func (l Level) Validate() error {
	g := l.Geometry
	if g.Rows <= 0 || g.Cols <= 0 {
		return levelErrorf(CodeInvalidGeometry, "board size %dx%d must be positive", g.Rows, g.Cols)
	}
	if len(l.Anchors) == 0 {
		return levelErrorf(CodeNoColors, "level %q has no anchors", l.ID)
	}

	inBounds := func(c Coord) bool {
		return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
	}

	seen := make(map[Coord]Color, 2*len(l.Anchors))
	for _, color := range l.Anchors.Colors() {
		pair := l.Anchors[color]
		if pair.Start == pair.End {
			return levelErrorf(CodeDegeneratePair, "color %s: both anchors at %s", color, pair.Start)
		}
		for _, at := range []Coord{pair.Start, pair.End} {
			if !inBounds(at) {
				return levelErrorf(CodeAnchorOutOfBounds, "color %s: anchor %s outside %dx%d board",
					color, at, g.Rows, g.Cols)
			}
			if other, dup := seen[at]; dup {
				return levelErrorf(CodeAnchorOverlap, "color %s: anchor %s already holds %s",
					color, at, other)
			}
			seen[at] = color
		}
	}
	return nil
}
