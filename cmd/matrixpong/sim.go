package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-pong/internal/platform/tui"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play on a simulated matrix in the terminal",
	Long: `Play on a simulated MAX7219 LED matrix rendered in the terminal.

The game, the bus driver and the display driver are the same as on
hardware; the wires end at a simulated chip instead of GPIO pins.
Terminal key repeat stands in for holding a button down.

Controls:
  Down/S     - Paddle down (button 1)
  Up/W       - Paddle up (button 2)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  matrixpong sim
  matrixpong sim --speed slow
  matrixpong sim --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func runSim(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("sim needs an interactive terminal; try 'matrixpong trace' instead")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stats, err := tui.Run(contextOrBackground(cmd.Context()), cfg)
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "ticks", stats.Ticks, "misses", stats.GameOvers, "config", cfg.Source)
	return nil
}
