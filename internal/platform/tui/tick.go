// Package tui runs games in a terminal with Bubble Tea, locally or over
// SSH. It owns the real clock, key mapping, and the final score save; the
// games themselves only see fixed-rate Step calls.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a tick still in flight when a session swaps
// games does not start a second loop.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

var loopSeq atomic.Uint64

// nextLoopID returns a process-unique tick loop identifier.
func nextLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message for loop
// after 1/tickRate seconds.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
