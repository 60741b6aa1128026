package core

// Action represents a semantic player intent, abstracted from physical key
// presses and mouse events.
type Action int

const (
	ActionNone Action = iota
	// Pipe growth: arrows and WASD.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	// Cursor movement: hjkl.
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight
	ActionSelect  // Enter, Space - start a pipe from the anchor under the cursor
	ActionRestart // R - clear every pipe of the level
	ActionNext    // N - next level in the catalog
	ActionHelp    // ? - toggle the rules
	ActionBack    // Esc - back to the level picker
	ActionQuit    // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionSelect:
		return "Select"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGrowth reports whether the action moves the current pipe.
func (a Action) IsGrowth() bool {
	return a >= ActionUp && a <= ActionRight
}

// IsCursor reports whether the action moves the selection cursor.
func (a Action) IsCursor() bool {
	return a >= ActionCursorUp && a <= ActionCursorRight
}

// Delta returns the (drow, dcol) step of growth and cursor actions.
func (a Action) Delta() (drow, dcol int) {
	switch a {
	case ActionUp, ActionCursorUp:
		return -1, 0
	case ActionDown, ActionCursorDown:
		return 1, 0
	case ActionLeft, ActionCursorLeft:
		return 0, -1
	case ActionRight, ActionCursorRight:
		return 0, 1
	default:
		return 0, 0
	}
}
