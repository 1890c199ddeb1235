// Package tui runs the game in a terminal with Bubble Tea: the tick loop,
// key mapping, screen rendering, the mode menu, the scoreboard and the SSH
// front door.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Each loop carries its
// own ID so a stale loop of a replaced game is ignored.
type TickMsg struct {
	loop int64
	At   time.Time
}

var tickLoops atomic.Int64

// newTickLoop returns a fresh loop ID.
func newTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickCmd schedules the next tick. Non-positive rates fall back to 60.
func tickCmd(loop int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{loop: loop, At: t}
	})
}
