package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

// KeyMap defines the key bindings for the simulator.
type KeyMap struct {
	Down key.Binding // Button1
	Up   key.Binding // Button2
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "paddle down (button 1)"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "paddle up (button 2)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Buttons translates a key message to the button it presses.
func (k KeyMap) Buttons(msg tea.KeyMsg) core.Buttons {
	switch {
	case key.Matches(msg, k.Down):
		return core.Button1
	case key.Matches(msg, k.Up):
		return core.Button2
	}
	return core.NoButtons
}
