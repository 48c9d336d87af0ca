package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/matrix-pong/internal/bus"
	"github.com/vovakirdan/matrix-pong/internal/games/pong"
	"github.com/vovakirdan/matrix-pong/internal/input"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
	"github.com/vovakirdan/matrix-pong/internal/platform/device"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play on real hardware",
	Long: `Play on an LED matrix wired to the host's GPIO pins.

The data, clock and select lines of the MAX7219 and the two buttons are
looked up by name in the host's pin registry (see the pins section of the
configuration). The game runs until SIGINT or SIGTERM; the current tick
always completes, then the display is put into shutdown mode.

Controls:
  Button 1 - Paddle down
  Button 2 - Paddle up

Examples:
  matrixpong run
  matrixpong run --config ./wiring.yaml
  matrixpong run --speed fast --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

// pinByName looks a pin up in the host's registry.
func pinByName(role, name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%s pin %q not found", role, name)
	}
	return p, nil
}

func runRun(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "source", cfg.Source, "speed", cfg.Speed, "seed", cfg.Game.Seed)

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	pins := map[string]gpio.PinIO{}
	for _, p := range []struct{ role, name string }{
		{"data", cfg.Pins.Data},
		{"clock", cfg.Pins.Clock},
		{"select", cfg.Pins.Select},
		{"button1", cfg.Pins.Button1},
		{"button2", cfg.Pins.Button2},
	} {
		pin, err := pinByName(p.role, p.name)
		if err != nil {
			return err
		}
		pins[p.role] = pin
	}

	b, err := bus.NewBitBang(pins["data"], pins["clock"])
	if err != nil {
		return err
	}
	dev, err := max7219.New(b, pins["select"], cfg.DisplayOpts())
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Halt(); err != nil {
			logger.Error("failed to shut the display down", "err", err)
		}
	}()

	buttons, err := input.NewGPIO(pins["button1"], pins["button2"], cfg.Pins.ActiveLow)
	if err != nil {
		return err
	}

	gameOpts := cfg.GameOptions()
	game, err := pong.New(dev, cfg.Runtime(), &gameOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("playing", "display", dev, "buttons", buttons)
	_, err = device.Run(ctx, game, buttons, &device.Options{Logger: logger})
	return err
}

// contextOrBackground returns ctx, or a background context when ctx is nil.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
