// Package tui runs the game against a simulated LED matrix in the terminal.
// The game loop and the bus drivers are the ones used on hardware; only the
// wires end at a simulated chip instead of GPIO pins.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusRate is how often the status line is refreshed between frames.
const statusRate = 10

// TickMsg is sent to refresh the status line.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
