// Package tui provides the Bubble Tea front end of the puzzle: the board
// screen, the level picker, the progress table and the SSH server that
// serves them to remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives short animations such as the win banner.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// 1/rate seconds.
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
