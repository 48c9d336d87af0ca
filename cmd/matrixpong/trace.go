package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-pong/internal/config"
	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/games/pong"
	"github.com/vovakirdan/matrix-pong/internal/platform/device"
	"github.com/vovakirdan/matrix-pong/internal/sim"
)

var flagTicks int

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the bus commands of a headless run",
	Long: `Run the game against a simulated display controller with no buttons
pressed and print every command the controller latched, one tick per line.
Delays are skipped, so the output is produced immediately.

Examples:
  matrixpong trace
  matrixpong trace --ticks 100 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTicks, "ticks", 10, "Number of ticks to run")
}

func runTrace(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return trace(contextOrBackground(cmd.Context()), os.Stdout, cfg, flagTicks)
}

func noSleep(time.Duration) {}

// trace runs ticks headless on a simulated chip and writes the decoded
// commands of the init sequence and of every tick to w.
func trace(ctx context.Context, w io.Writer, cfg config.Config, ticks int) error {
	chip := sim.New()

	opts := cfg.DisplayOpts()
	opts.Sleep = noSleep
	dev, err := chip.Attach(opts)
	if err != nil {
		return err
	}
	printCommands(w, "init", chip.Commands())
	chip.ResetLog()

	rt := cfg.Runtime()
	rt.Sleep = noSleep
	gameOpts := cfg.GameOptions()
	game, err := pong.New(dev, rt, &gameOpts)
	if err != nil {
		return err
	}

	_, err = device.Run(ctx, game, nil, &device.Options{
		MaxTicks: ticks,
		OnTick: func(tick int, res core.StepResult) {
			label := fmt.Sprintf("tick %d", tick)
			if res.GameOver {
				label += " miss"
			}
			printCommands(w, label, chip.Commands())
			chip.ResetLog()
		},
	})
	if err != nil {
		return err
	}
	if n := chip.Malformed(); n > 0 {
		return fmt.Errorf("%d malformed bus transactions", n)
	}
	return nil
}

func printCommands(w io.Writer, label string, cmds []sim.Command) {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = c.String()
	}
	fmt.Fprintf(w, "%-12s %s\n", label+":", strings.Join(parts, " "))
}
