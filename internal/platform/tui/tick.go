// Package tui provides the Bubble Tea front end of the runner: the game
// screen, the variant menu, the run history board and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick of the model with the same ID.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID returns a fresh tick chain id. A model ignores ticks of chains
// it did not start, so a chain left over from a previous game dies out.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after the tick interval.
func tickCmd(id int64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
