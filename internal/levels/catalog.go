package levels

import (
	"fmt"
	"sort"
)

// SizeGroup holds the levels of one board size.
type SizeGroup struct {
	Rows   int
	Cols   int
	Levels []Level
}

// Label returns the group heading, e.g. "5x6".
func (g SizeGroup) Label() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}

// Catalog indexes levels by board size.
// Groups are ordered by rows then cols; levels inside a group by ID.
type Catalog struct {
	groups []SizeGroup
	order  []Level
	byID   map[string]int
}

// NewCatalog builds a catalog from loaded levels.
func NewCatalog(levels []Level) *Catalog {
	sorted := make([]Level, len(levels))
	copy(sorted, levels)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Rows != b.Rows {
			return a.Rows < b.Rows
		}
		if a.Cols != b.Cols {
			return a.Cols < b.Cols
		}
		return a.ID < b.ID
	})

	c := &Catalog{
		order: sorted,
		byID:  make(map[string]int, len(sorted)),
	}
	for i, lvl := range sorted {
		c.byID[lvl.ID] = i
		n := len(c.groups)
		if n == 0 || c.groups[n-1].Rows != lvl.Rows || c.groups[n-1].Cols != lvl.Cols {
			c.groups = append(c.groups, SizeGroup{Rows: lvl.Rows, Cols: lvl.Cols})
			n++
		}
		c.groups[n-1].Levels = append(c.groups[n-1].Levels, lvl)
	}
	return c
}

// Groups returns the size groups in order.
func (c *Catalog) Groups() []SizeGroup {
	return c.groups
}

// Levels returns every level in catalog order.
func (c *Catalog) Levels() []Level {
	return c.order
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get looks a level up by ID.
func (c *Catalog) Get(id string) (Level, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Level{}, false
	}
	return c.order[i], true
}

// Index returns the catalog position of a level.
func (c *Catalog) Index(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Next returns the level following id in catalog order.
// Returns false for the last level or an unknown ID.
func (c *Catalog) Next(id string) (Level, bool) {
	i, ok := c.byID[id]
	if !ok || i+1 >= len(c.order) {
		return Level{}, false
	}
	return c.order[i+1], true
}
