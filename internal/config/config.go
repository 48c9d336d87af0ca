// Package config provides YAML-based configuration loading and speed presets
// for matrix-pong.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/games/pong"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
)

// Config contains the complete configuration.
type Config struct {
	Pins    PinsConfig    `yaml:"pins"`
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
	Game    GameConfig    `yaml:"game"`
	Serve   ServeConfig   `yaml:"serve"`
	Sim     SimConfig     `yaml:"sim"`
	Speed   SpeedPreset   `yaml:"speed"`

	// Source is where the configuration was read from.
	Source string `yaml:"-"`
}

// PinsConfig names the GPIO lines as known to the host's pin registry.
type PinsConfig struct {
	Data      string `yaml:"data"`
	Clock     string `yaml:"clock"`
	Select    string `yaml:"select"`
	Button1   string `yaml:"button1"`
	Button2   string `yaml:"button2"`
	ActiveLow bool   `yaml:"active_low"` // Buttons pull the line Low when pressed
}

// DisplayConfig defines display controller parameters.
type DisplayConfig struct {
	Intensity int           `yaml:"intensity"`
	Settle    time.Duration `yaml:"settle"`
}

// TimingConfig defines the game loop delays.
type TimingConfig struct {
	Tick          time.Duration `yaml:"tick"`
	GameOverPause time.Duration `yaml:"game_over_pause"`
	FillDelay     time.Duration `yaml:"fill_delay"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	Seed          int  `yaml:"seed"`
	PaddleStart   int  `yaml:"paddle_start"`
	ClearEachTick bool `yaml:"clear_each_tick"`
}

// ServeConfig defines how the ball is served after a miss.
type ServeConfig struct {
	BalancedDY bool `yaml:"balanced_dy"`
}

// SimConfig defines terminal simulator parameters.
type SimConfig struct {
	KeyHold time.Duration `yaml:"key_hold"` // How long one key press holds a button
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Pins.Data == "" || c.Pins.Clock == "" || c.Pins.Select == "" {
		return errors.New("config: pins.data, pins.clock and pins.select are required")
	}
	if c.Pins.Button1 == "" || c.Pins.Button2 == "" {
		return errors.New("config: pins.button1 and pins.button2 are required")
	}
	if c.Display.Intensity < 0 || c.Display.Intensity > int(max7219.MaxIntensity) {
		return fmt.Errorf("config: display.intensity %d out of range 0..%d", c.Display.Intensity, max7219.MaxIntensity)
	}
	if c.Display.Settle < 0 {
		return fmt.Errorf("config: display.settle must not be negative, got %s", c.Display.Settle)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"timing.tick", c.Timing.Tick},
		{"timing.game_over_pause", c.Timing.GameOverPause},
		{"timing.fill_delay", c.Timing.FillDelay},
		{"sim.key_hold", c.Sim.KeyHold},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("config: %s must be positive, got %s", d.name, d.d)
		}
	}

	if c.Game.Seed < 1 || c.Game.Seed > 0xFF {
		return fmt.Errorf("config: game.seed %d out of range 1..255", c.Game.Seed)
	}
	if c.Game.PaddleStart < 0 || c.Game.PaddleStart > pong.MaxPaddleY {
		return fmt.Errorf("config: game.paddle_start %d out of range 0..%d", c.Game.PaddleStart, pong.MaxPaddleY)
	}
	if _, err := ParseSpeedPreset(string(c.Speed)); err != nil {
		return err
	}
	return nil
}

// Runtime returns the runtime configuration for the game engine.
// The tick delay reflects the speed preset.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Timing: core.Timing{
			Tick:          TickForPreset(c.Speed, c.Timing.Tick),
			GameOverPause: c.Timing.GameOverPause,
			FillDelay:     c.Timing.FillDelay,
		},
		Sleep: time.Sleep,
		Seed:  uint8(c.Game.Seed),
	}
}

// GameOptions returns the gameplay options for the engine.
func (c Config) GameOptions() pong.Options {
	return pong.Options{
		PaddleStart:   c.Game.PaddleStart,
		BalancedServe: c.Serve.BalancedDY,
		ClearEachTick: c.Game.ClearEachTick,
	}
}

// DisplayOpts returns the display controller driver options.
func (c Config) DisplayOpts() *max7219.Opts {
	return &max7219.Opts{
		Intensity: byte(c.Display.Intensity),
		Settle:    c.Display.Settle,
	}
}
