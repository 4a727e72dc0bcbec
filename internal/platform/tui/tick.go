// Package tui provides the Bubble Tea integration: the frame driver, input
// mapping, terminal rendering and the SSH server. The simulation itself
// lives in internal/engine and never sees any of this.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. The model re-arms it after every tick, so ticks are
// frame-count based rather than wall-clock based.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
