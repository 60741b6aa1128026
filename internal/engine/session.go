package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// ProgressTracker answers and records whether a level has been solved.
// MarkSolved must be idempotent; the session never un-solves a level.
type ProgressTracker interface {
	IsSolved(levelID string) (bool, error)
	MarkSolved(levelID string) error
}

// Session is the facade a front end drives: select an anchor, then grow or
// retract its pipe one direction at a time. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	level    Level
	board    *Board
	registry *Registry
	current  *Pipe
	solved   bool

	tracker ProgressTracker
	logger  *log.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for move tracing and tracker failures.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracker sets where solved levels are recorded.
func WithTracker(t ProgressTracker) SessionOption {
	return func(s *Session) {
		s.tracker = t
	}
}

// NewSession creates a session with no level loaded.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		registry: NewRegistry(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResetForNewLevel builds a fresh board for the level and drops every pipe.
// On error the previous level stays loaded.
func (s *Session) ResetForNewLevel(level Level) error {
	board, err := NewBoard(level)
	if err != nil {
		return fmt.Errorf("level %q: %w", level.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.ClearAll()
	s.level = level
	s.board = board
	s.current = nil
	s.solved = s.querySolved(level.ID)

	s.logger.Debug("level loaded", "level", level.ID,
		"rows", board.Rows, "cols", board.Cols, "colors", len(board.Colors()), "solved", s.solved)
	return nil
}

// Restart reloads the current level from scratch.
func (s *Session) Restart() error {
	s.mu.Lock()
	level := s.level
	loaded := s.board != nil
	s.mu.Unlock()

	if !loaded {
		return nil
	}
	return s.ResetForNewLevel(level)
}

func (s *Session) querySolved(levelID string) bool {
	if s.tracker == nil {
		return false
	}
	solved, err := s.tracker.IsSolved(levelID)
	if err != nil {
		s.logger.Warn("cannot read level progress", "level", levelID, "err", err)
		return false
	}
	return solved
}

// Select starts a new pipe from the anchor at (row, col), discarding any
// pipe of that color. Returns false and changes nothing when the cell holds
// no anchor.
func (s *Session) Select(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return false
	}
	at := At(row, col)
	cell, ok := s.board.CellAt(at)
	if !ok {
		return false
	}
	anchor, ok := cell.Anchor()
	if !ok {
		return false
	}

	s.current = s.registry.StartPipe(s.board, anchor.Color, at)
	s.logger.Debug("pipe started", "color", anchor.Color, "at", at)
	return true
}

// Act moves the current pipe one step and reports whether the puzzle is
// won after the move. Without a current pipe it does nothing and returns
// false.
func (s *Session) Act(d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false
	}

	s.current.Extend(d)
	won := s.isWon()

	s.logger.Debug("act", "dir", d, "color", s.current.Color(),
		"path", PathString(s.current.Path()), "complete", s.current.IsComplete(), "won", won)
	if s.logger.GetLevel() <= log.DebugLevel {
		s.logger.Debug("board\n" + s.board.String())
	}

	if won {
		s.markSolved()
	}
	return won
}

func (s *Session) markSolved() {
	if s.solved {
		return
	}
	s.solved = true
	s.logger.Info("level solved", "level", s.level.ID)
	if s.tracker == nil {
		return
	}
	if err := s.tracker.MarkSolved(s.level.ID); err != nil {
		s.logger.Warn("cannot record solved level", "level", s.level.ID, "err", err)
	}
}

// isWon requires every color connected and no empty cell left.
func (s *Session) isWon() bool {
	if s.board == nil {
		return false
	}
	for _, c := range s.board.Colors() {
		if !s.registry.IsComplete(c) {
			return false
		}
	}
	return s.board.IsFullyCovered()
}

// IsWon reports whether the current state is winning.
func (s *Session) IsWon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isWon()
}

// IsSolved reports whether the loaded level has ever been solved.
func (s *Session) IsSolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved
}

// Level returns the loaded level.
func (s *Session) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Loaded reports whether a level has been loaded.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board != nil
}

// Colors returns the level colors in ascending order.
func (s *Session) Colors() []Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return nil
	}
	return s.board.Colors()
}

// HasPipe reports whether the color has an active pipe.
func (s *Session) HasPipe(c Color) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.HasPipe(c)
}

// IsComplete reports whether the color's pipe connects both anchors.
func (s *Session) IsComplete(c Color) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.IsComplete(c)
}

// StartCell returns the anchor the color's pipe was drawn from.
func (s *Session) StartCell(c Color) (Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.registry.Pipe(c)
	if !ok {
		return Coord{}, false
	}
	return p.Start(), true
}

// PathDirections returns the step directions of the color's pipe.
func (s *Session) PathDirections(c Color) []Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.registry.Pipe(c)
	if !ok {
		return nil
	}
	return p.Path()
}

// AnchorCoords returns both anchor positions of a color.
func (s *Session) AnchorCoords(c Color) (AnchorPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return AnchorPair{}, false
	}
	return s.board.Anchors(c)
}

// IsFullyCovered reports whether every cell is occupied.
func (s *Session) IsFullyCovered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board != nil && s.board.IsFullyCovered()
}

// Current returns the color of the pipe receiving Act calls.
func (s *Session) Current() (Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0, false
	}
	return s.current.Color(), true
}

// Head returns the last cell of the current pipe.
func (s *Session) Head() (Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Coord{}, false
	}
	return s.current.Head(), true
}

// String returns the ASCII board, or an empty string before a level is loaded.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return ""
	}
	return s.board.String()
}

// Snapshot returns a deep copy of the render state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		LevelID:   s.level.ID,
		LevelName: s.level.Name,
		Solved:    s.solved,
	}
	if s.board == nil {
		return snap
	}

	b := s.board
	snap.Rows = b.Rows
	snap.Cols = b.Cols
	snap.Cells = make([]CellView, len(b.cells))
	for i := range b.cells {
		cell := &b.cells[i]
		view := CellView{At: cell.at, HasPipe: cell.hasPipe, PipeColor: cell.owner}
		if cell.anchor != nil {
			view.HasAnchor = true
			view.AnchorColor = cell.anchor.Color
		}
		snap.Cells[i] = view
	}

	snap.Colors = b.Colors()
	for _, c := range snap.Colors {
		p, ok := s.registry.Pipe(c)
		if !ok {
			continue
		}
		complete := p.IsComplete()
		if complete {
			snap.Connected++
		}
		snap.Pipes = append(snap.Pipes, PipeView{
			Color:    c,
			Start:    p.Start(),
			Cells:    p.Cells(),
			Path:     p.Path(),
			Complete: complete,
		})
	}

	if s.current != nil {
		snap.Current = s.current.Color()
		snap.HasCurrent = true
	}
	snap.Occupied = b.OccupiedCount()
	snap.Covered = b.IsFullyCovered()
	snap.Won = s.isWon()
	return snap
}
