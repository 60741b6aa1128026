package engine

import (
	"reflect"
	"testing"
)

func newTestBoard(t *testing.T, level Level) *Board {
	t.Helper()
	b, err := NewBoard(level)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	return b
}

func assertCounter(t *testing.T, b *Board) {
	t.Helper()
	if b.OccupiedCount() != b.countOccupied() {
		t.Fatalf("occupied counter %d disagrees with scan %d", b.OccupiedCount(), b.countOccupied())
	}
}

func TestPipeExtendAndRetreat(t *testing.T) {
	b := newTestBoard(t, classicLevel())
	p := newPipe(b, ColorRed, At(0, 0))

	if p.Len() != 1 || p.IsComplete() {
		t.Fatalf("new pipe: len=%d complete=%v", p.Len(), p.IsComplete())
	}

	p.Extend(Down)
	p.Extend(Down)
	if got := p.Cells(); !reflect.DeepEqual(got, []Coord{At(0, 0), At(1, 0), At(2, 0)}) {
		t.Fatalf("unexpected cells %v", got)
	}
	if got := p.Path(); !reflect.DeepEqual(got, []Direction{Down, Down}) {
		t.Fatalf("unexpected path %v", got)
	}
	assertCounter(t, b)

	p.Extend(Up)
	if p.Len() != 2 || p.Head() != At(1, 0) {
		t.Fatalf("retreat: len=%d head=%v", p.Len(), p.Head())
	}
	if cell, _ := b.CellAt(At(2, 0)); cell.IsOccupied() {
		t.Error("retreated cell should be released")
	}
	assertCounter(t, b)
}

func TestPipeRetreatIsOneStep(t *testing.T) {
	b := newTestBoard(t, classicLevel())
	p := newPipe(b, ColorRed, At(0, 0))
	for _, d := range []Direction{Down, Down, Right, Right} {
		p.Extend(d)
	}
	if p.Len() != 5 {
		t.Fatalf("expected 5 cells, got %d", p.Len())
	}

	for want := 4; want >= 1; want-- {
		var back Direction
		if dirs := p.Path(); len(dirs) > 0 {
			back = dirs[len(dirs)-1].Opposite()
		}
		p.Extend(back)
		if p.Len() != want {
			t.Fatalf("expected %d cells after retreat, got %d", want, p.Len())
		}
		assertCounter(t, b)
	}

	// Single-cell pipes have nothing to retreat into.
	p.Extend(Right)
	if p.Len() != 2 {
		t.Fatalf("single-cell pipe should extend, len=%d", p.Len())
	}
}

func TestPipeRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup []Direction
		try   Direction
	}{
		{name: "edge of board", setup: nil, try: Up},
		{name: "left edge", setup: []Direction{Down}, try: Left},
		{name: "other color anchor", setup: []Direction{Right}, try: Right},
		{name: "own pipe body", setup: []Direction{Down, Down, Right, Up}, try: Left},
		{name: "own start anchor", setup: []Direction{Down, Right, Up}, try: Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, classicLevel())
			p := newPipe(b, ColorRed, At(0, 0))
			for _, d := range tt.setup {
				p.Extend(d)
			}
			before := p.Cells()
			occupied := b.OccupiedCount()

			for i := 0; i < 3; i++ {
				p.Extend(tt.try)
				if got := p.Cells(); !reflect.DeepEqual(got, before) {
					t.Fatalf("attempt %d changed pipe: %v -> %v", i, before, got)
				}
				if b.OccupiedCount() != occupied {
					t.Fatalf("attempt %d changed occupancy", i)
				}
			}
			assertCounter(t, b)
		})
	}
}

func TestPipeRefusesOwnStartAnchor(t *testing.T) {
	b := newTestBoard(t, Level{Geometry: Geometry{Rows: 3, Cols: 3}, Anchors: AnchorLayout{
		ColorRed: {Start: At(0, 0), End: At(2, 2)},
	}})
	p := newPipe(b, ColorRed, At(0, 0))
	for _, d := range []Direction{Down, Right, Up} {
		p.Extend(d)
	}
	if p.Head() != At(0, 1) {
		t.Fatalf("unexpected head %v", p.Head())
	}

	p.Extend(Left)
	if p.Len() != 4 || p.IsComplete() {
		t.Fatalf("pipe must not join its own start anchor: len=%d complete=%v", p.Len(), p.IsComplete())
	}
}

func TestPipeCompletion(t *testing.T) {
	b := newTestBoard(t, Level{Geometry: Geometry{Rows: 1, Cols: 4}, Anchors: AnchorLayout{
		ColorRed: {Start: At(0, 0), End: At(0, 2)},
	}})
	p := newPipe(b, ColorRed, At(0, 0))

	p.Extend(Right)
	if p.IsComplete() {
		t.Fatal("pipe not yet on the end anchor")
	}
	p.Extend(Right)
	if !p.IsComplete() {
		t.Fatal("pipe on the end anchor should be complete")
	}

	// Complete pipes do not grow past their anchor.
	p.Extend(Right)
	if p.Len() != 3 {
		t.Fatalf("complete pipe grew to %d cells", p.Len())
	}
	if cell, _ := b.CellAt(At(0, 3)); cell.IsOccupied() {
		t.Error("cell past the end anchor should stay empty")
	}

	// Retreating off the end anchor keeps the anchor occupied.
	p.Extend(Left)
	if p.IsComplete() || p.Len() != 2 {
		t.Fatalf("retreat from end anchor: len=%d complete=%v", p.Len(), p.IsComplete())
	}
	cell, _ := b.CellAt(At(0, 2))
	if cell.HasPipe() || !cell.IsOccupied() {
		t.Errorf("end anchor after retreat: pipe=%v occupied=%v", cell.HasPipe(), cell.IsOccupied())
	}
	assertCounter(t, b)
}

func TestPipeTeardown(t *testing.T) {
	b := newTestBoard(t, classicLevel())
	p := newPipe(b, ColorRed, At(0, 0))
	for _, d := range []Direction{Down, Down, Down, Down, Right} {
		p.Extend(d)
	}
	if !p.IsComplete() {
		t.Fatal("red pipe should be complete")
	}

	p.Teardown()
	for _, c := range p.Cells() {
		cell, _ := b.CellAt(c)
		if cell.HasPipe() {
			t.Errorf("cell %v still holds a pipe", c)
		}
	}
	if b.OccupiedCount() != 10 {
		t.Errorf("only anchors should remain, occupied=%d", b.OccupiedCount())
	}
	assertCounter(t, b)
}

func TestRegistryStartPipeReplaces(t *testing.T) {
	b := newTestBoard(t, classicLevel())
	r := NewRegistry()

	first := r.StartPipe(b, ColorRed, At(0, 0))
	first.Extend(Down)
	first.Extend(Down)

	second := r.StartPipe(b, ColorRed, At(4, 1))
	if got, _ := r.Pipe(ColorRed); got != second {
		t.Fatal("registry should hold the new pipe")
	}
	for _, c := range []Coord{At(1, 0), At(2, 0)} {
		if cell, _ := b.CellAt(c); cell.IsOccupied() {
			t.Errorf("old pipe cell %v not released", c)
		}
	}
	if second.Start() != At(4, 1) || second.Len() != 1 {
		t.Errorf("new pipe start=%v len=%d", second.Start(), second.Len())
	}
	assertCounter(t, b)

	r.Clear(ColorRed)
	if r.HasPipe(ColorRed) {
		t.Error("Clear should forget the pipe")
	}
	if cell, _ := b.CellAt(At(4, 1)); !cell.HasPipe() {
		t.Error("Clear must not touch cells")
	}
}

func TestCompletePipeIgnoresNonRetreatMoves(t *testing.T) {
	b := newTestBoard(t, Level{Geometry: Geometry{Rows: 3, Cols: 3}, Anchors: AnchorLayout{
		ColorRed: {Start: At(1, 0), End: At(1, 1)},
	}})
	p := newPipe(b, ColorRed, At(1, 0))
	p.Extend(Right)
	if !p.IsComplete() {
		t.Fatal("pipe on the end anchor should be complete")
	}

	for _, d := range []Direction{Up, Down, Right} {
		t.Run(d.String(), func(t *testing.T) {
			for i := 0; i < 2; i++ {
				p.Extend(d)
				if p.Len() != 2 || p.Head() != At(1, 1) || !p.IsComplete() {
					t.Fatalf("complete pipe moved: len=%d head=%v", p.Len(), p.Head())
				}
			}
			if cell, _ := b.CellAt(At(1, 1).Step(d)); cell.IsOccupied() {
				t.Errorf("neighbor %v taken by a complete pipe", d)
			}
			assertCounter(t, b)
		})
	}

	p.Extend(Left)
	if p.Len() != 1 || p.IsComplete() {
		t.Fatalf("retreat from complete pipe: len=%d complete=%v", p.Len(), p.IsComplete())
	}
}

func TestRegistryClearKeepsCells(t *testing.T) {
	b := newTestBoard(t, classicLevel())
	r := NewRegistry()

	p := r.StartPipe(b, ColorRed, At(0, 0))
	p.Extend(Down)
	p.Extend(Down)
	before := b.OccupiedCount()

	r.Clear(ColorRed)

	if r.HasPipe(ColorRed) || r.IsComplete(ColorRed) {
		t.Error("Clear should forget the pipe")
	}
	if _, ok := r.Pipe(ColorRed); ok {
		t.Error("Pipe() still returns a cleared pipe")
	}
	for _, c := range []Coord{At(0, 0), At(1, 0), At(2, 0)} {
		cell, _ := b.CellAt(c)
		if owner, ok := cell.PipeColor(); !ok || owner != ColorRed {
			t.Errorf("cell %v lost its pipe after Clear", c)
		}
	}
	if b.OccupiedCount() != before {
		t.Errorf("occupied changed from %d to %d", before, b.OccupiedCount())
	}
	assertCounter(t, b)
}

func TestPathString(t *testing.T) {
	tests := []struct {
		dirs []Direction
		want string
	}{
		{nil, ""},
		{[]Direction{Down, Down, Right}, "vv>"},
		{[]Direction{Up, Left}, "^<"},
	}
	for _, tt := range tests {
		if got := PathString(tt.dirs); got != tt.want {
			t.Errorf("PathString(%v) = %q, want %q", tt.dirs, got, tt.want)
		}
	}
}
