package tui

import (
	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/engine"
)

// pipeColors maps puzzle colors to screen buffer colors.
var pipeColors = [engine.ColorCount]core.Color{
	engine.ColorRed:       core.ColorRed,
	engine.ColorOrange:    core.ColorOrange,
	engine.ColorBlue:      core.ColorBlue,
	engine.ColorGreen:     core.ColorGreen,
	engine.ColorYellow:    core.ColorYellow,
	engine.ColorTurquoise: core.ColorCyan,
	engine.ColorPink:      core.ColorPink,
	engine.ColorViolet:    core.ColorMagenta,
	engine.ColorMaroon:    core.ColorMaroon,
}

func screenColor(c engine.Color) core.Color {
	if c < engine.ColorCount {
		return pipeColors[c]
	}
	return core.ColorWhite
}

// Connection bits of a pipe cell.
const (
	linkUp = 1 << iota
	linkDown
	linkLeft
	linkRight
)

var linkGlyphs = map[int]rune{
	linkUp | linkDown:    '┃',
	linkLeft | linkRight: '━',
	linkDown | linkRight: '┏',
	linkDown | linkLeft:  '┓',
	linkUp | linkRight:   '┗',
	linkUp | linkLeft:    '┛',
	linkUp:               '┃',
	linkDown:             '┃',
	linkLeft:             '━',
	linkRight:            '━',
}

func linkBit(d engine.Direction) int {
	switch d {
	case engine.Up:
		return linkUp
	case engine.Down:
		return linkDown
	case engine.Left:
		return linkLeft
	default:
		return linkRight
	}
}

// joinGlyph returns the box-drawing rune of a pipe cell entered from `in`
// and left towards `out`. Either may be absent at the pipe ends.
func joinGlyph(in, out engine.Direction, hasIn, hasOut bool) rune {
	mask := 0
	if hasIn {
		mask |= linkBit(in.Opposite())
	}
	if hasOut {
		mask |= linkBit(out)
	}
	if r, ok := linkGlyphs[mask]; ok {
		return r
	}
	return '●'
}

// BoardView holds what RenderBoard needs besides the puzzle state.
type BoardView struct {
	Layout     core.BoardLayout
	Cursor     engine.Coord
	ShowCursor bool
}

func cellCenter(l core.BoardLayout, c engine.Coord) (x, y int) {
	r := l.CellRect(c.Row, c.Col)
	return r.X + r.W/2, r.Y + r.H/2
}

// RenderBoard draws the frame, pipes, anchors and cursor of a snapshot.
func RenderBoard(s *core.Screen, snap engine.Snapshot, view BoardView, theme Theme) {
	l := view.Layout
	s.DrawBox(l.Frame, theme.Frame)

	for _, cell := range snap.Cells {
		x, y := cellCenter(l, cell.At)
		s.SetWithColor(x, y, '·', theme.Empty)
	}

	head, hasHead := engine.Coord{}, false
	if snap.HasCurrent {
		if p, ok := snap.Pipe(snap.Current); ok && len(p.Cells) > 0 {
			head, hasHead = p.Cells[len(p.Cells)-1], true
		}
	}

	for _, p := range snap.Pipes {
		drawPipe(s, l, p)
	}

	for _, cell := range snap.Cells {
		if cell.HasAnchor {
			drawAnchor(s, l, cell.At, cell.AnchorColor)
		}
	}

	if hasHead {
		x, y := cellCenter(l, head)
		c := s.GetCell(x, y)
		c.Bold = true
		s.SetCell(x, y, c)
	}

	if view.ShowCursor {
		drawCursor(s, l, view.Cursor, theme.Cursor)
	}
}

func drawPipe(s *core.Screen, l core.BoardLayout, p engine.PipeView) {
	color := screenColor(p.Color)
	for i := 1; i < len(p.Cells); i++ {
		x0, y0 := cellCenter(l, p.Cells[i-1])
		x1, y1 := cellCenter(l, p.Cells[i])
		if y0 == y1 {
			for x := core.Min(x0, x1) + 1; x < core.Max(x0, x1); x++ {
				s.SetWithColor(x, y0, '━', color)
			}
		} else {
			for y := core.Min(y0, y1) + 1; y < core.Max(y0, y1); y++ {
				s.SetWithColor(x0, y, '┃', color)
			}
		}
	}

	for i, at := range p.Cells {
		var in, out engine.Direction
		hasIn, hasOut := i > 0, i < len(p.Path)
		if hasIn {
			in = p.Path[i-1]
		}
		if hasOut {
			out = p.Path[i]
		}
		x, y := cellCenter(l, at)
		s.SetWithColor(x, y, joinGlyph(in, out, hasIn, hasOut), color)
	}
}

// drawAnchor fills the middle of a cell. Cells too narrow for a block show
// the color letter.
func drawAnchor(s *core.Screen, l core.BoardLayout, at engine.Coord, c engine.Color) {
	color := screenColor(c)
	x, y := cellCenter(l, at)
	w, h := l.CellW/2, core.Max(1, l.CellH/2)
	if w < 2 {
		s.SetCell(x, y, core.Cell{Rune: c.Char(), Color: color, Bold: true})
		return
	}
	s.DrawRect(core.NewRect(x-w/2, y-h/2, w, h), '█', color)
}

func drawCursor(s *core.Screen, l core.BoardLayout, at engine.Coord, color core.Color) {
	r := l.CellRect(at.Row, at.Col)
	if r.W >= 3 && r.H >= 2 {
		s.SetWithColor(r.X, r.Y, '┌', color)
		s.SetWithColor(r.Right()-1, r.Y, '┐', color)
		s.SetWithColor(r.X, r.Bottom()-1, '└', color)
		s.SetWithColor(r.Right()-1, r.Bottom()-1, '┘', color)
		return
	}
	x, y := cellCenter(l, at)
	c := s.GetCell(x, y)
	if c.Rune == '·' {
		c = core.Cell{Rune: '+', Color: color}
	}
	c.Bold = true
	s.SetCell(x, y, c)
}
