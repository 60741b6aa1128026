package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is matched by every LevelError through errors.Is.
var ErrInvalidLevel = errors.New("invalid level")

// Level construction error codes.
const (
	CodeInvalidGeometry   = "INVALID_GEOMETRY"
	CodeNoColors          = "NO_COLORS"
	CodeAnchorOutOfBounds = "ANCHOR_OUT_OF_BOUNDS"
	CodeAnchorOverlap     = "ANCHOR_OVERLAP"
	CodeDegeneratePair    = "DEGENERATE_PAIR"
)

// LevelError contains details about a level that cannot be turned into a board.
type LevelError struct {
	Code    string
	Message string
}

func (e LevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is ErrInvalidLevel.
func (e LevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}

func levelErrorf(code, format string, args ...any) error {
	return LevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}
