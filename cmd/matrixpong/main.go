// matrixpong plays single-player Pong on an 8x8 LED matrix driven by a
// MAX7219 display controller.
//
// Usage:
//
//	matrixpong run              - Play on real hardware
//	matrixpong sim              - Play on a simulated matrix in the terminal
//	matrixpong config           - Print the effective configuration
//	matrixpong trace --ticks N  - Print the bus commands of N ticks
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search order)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--speed <preset>    - slow, normal, fast or fixed
//	--seed <value>      - PRNG seed 1..255 (0 = from config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-pong/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSpeed    string
	flagSeed     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matrixpong",
	Short: "Pong against a wall on an 8x8 LED matrix",
	Long: `matrixpong drives an 8x8 LED matrix through a MAX7219 display
controller over a bit-banged serial bus and plays single-player Pong on it.
Two push buttons move a three-LED paddle; the ball bounces off the far wall.

Available commands:
  run     - Play on real hardware (GPIO pins)
  sim     - Play on a simulated matrix in the terminal
  config  - Print the effective configuration
  trace   - Print the bus commands of a headless run

Examples:
  matrixpong run
  matrixpong run --config ./wiring.yaml --speed fast
  matrixpong sim --seed 42
  matrixpong trace --ticks 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, fixed")
	rootCmd.PersistentFlags().IntVar(&flagSeed, "seed", 0, "PRNG seed 1..255 (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(traceCmd)
}

// newLogger creates the process logger on stderr.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "matrixpong",
		Level:           level,
	}), nil
}

// loadConfig loads the configuration and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSpeed != "" {
		if err := config.ApplySpeedPreset(&cfg, flagSpeed); err != nil {
			return cfg, err
		}
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	return cfg, cfg.Validate()
}
