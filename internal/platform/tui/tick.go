// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID ties the message to
// the model that scheduled it, so a tick still in flight when a game ends
// cannot drive the next one.
type TickMsg struct {
	ID   int
	Time time.Time
}

var lastTickID atomic.Int64

func nextTickID() int {
	return int(lastTickID.Add(1))
}

// tickCmd returns a Bubble Tea command that sends a tick at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
