package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
	"github.com/vovakirdan/matrix-pong/internal/sim"
)

// LED glyphs
const (
	ledOn  = "●"
	ledOff = "·"
)

// Theme contains the visual styles of the simulator.
type Theme struct {
	// LED colors by intensity, dimmest first
	Lit []lipgloss.Style
	Off lipgloss.Style

	Board   lipgloss.Style
	Title   lipgloss.Style
	Status  lipgloss.Style
	Pressed lipgloss.Style
	Error   lipgloss.Style
}

// DefaultTheme returns a red LED matrix look.
func DefaultTheme() Theme {
	return Theme{
		Lit: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("52")),  // Dark red
			lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Bright red
		},
		Off: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),

		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Pressed: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// litStyle returns the LED style for an intensity register value.
func (t Theme) litStyle(intensity byte) lipgloss.Style {
	if len(t.Lit) == 0 {
		return lipgloss.NewStyle()
	}
	i := int(intensity) * len(t.Lit) / int(max7219.MaxIntensity+1)
	return t.Lit[core.Clamp(i, 0, len(t.Lit)-1)]
}

// RenderMatrix draws the LEDs the chip currently shows.
// Row 0 is at the top, column 0 on the left.
func RenderMatrix(s sim.State, theme Theme) string {
	f := s.Visible()
	on := theme.litStyle(s.Intensity)

	var sb strings.Builder
	for y := 0; y < core.Size; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < core.Size; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			if f.Get(x, y) {
				sb.WriteString(on.Render(ledOn))
			} else {
				sb.WriteString(theme.Off.Render(ledOff))
			}
		}
	}
	return theme.Board.Render(sb.String())
}

// RenderStatus describes the chip registers and the buttons held.
func RenderStatus(s sim.State, held core.Buttons, commands int, theme Theme) string {
	mode := "on"
	switch {
	case s.Shutdown:
		mode = "shutdown"
	case s.DisplayTest:
		mode = "test"
	}

	button := func(name string, b core.Buttons) string {
		if held.Has(b) {
			return theme.Pressed.Render(name)
		}
		return theme.Status.Render(name)
	}

	return theme.Status.Render(fmt.Sprintf("intensity %2d  %-8s  %6d writes  ", s.Intensity, mode, commands)) +
		button("[B1]", core.Button1) + " " + button("[B2]", core.Button2)
}
