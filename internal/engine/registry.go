package engine

// Registry tracks the single active pipe of each color.
type Registry struct {
	pipes map[Color]*Pipe
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pipes: make(map[Color]*Pipe)}
}

// HasPipe reports whether the color has an active pipe.
func (r *Registry) HasPipe(c Color) bool {
	_, ok := r.pipes[c]
	return ok
}

// Pipe returns the active pipe of a color.
func (r *Registry) Pipe(c Color) (*Pipe, bool) {
	p, ok := r.pipes[c]
	return p, ok
}

// StartPipe tears down the color's current pipe, if any, and registers a new
// one-cell pipe rooted at the given anchor cell.
func (r *Registry) StartPipe(b *Board, c Color, at Coord) *Pipe {
	if old, ok := r.pipes[c]; ok {
		old.Teardown()
	}
	p := newPipe(b, c, at)
	r.pipes[c] = p
	return p
}

// Clear forgets the color's pipe without touching any cell.
// Only used when the board itself is being replaced.
func (r *Registry) Clear(c Color) {
	delete(r.pipes, c)
}

// ClearAll forgets every pipe.
func (r *Registry) ClearAll() {
	for c := range r.pipes {
		delete(r.pipes, c)
	}
}

// IsComplete is true iff the color has an active, complete pipe.
func (r *Registry) IsComplete(c Color) bool {
	p, ok := r.pipes[c]
	return ok && p.IsComplete()
}
