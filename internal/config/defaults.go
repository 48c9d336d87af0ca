package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/matrix-pong/internal/games/pong"
	"github.com/vovakirdan/matrix-pong/internal/input"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
	"github.com/vovakirdan/matrix-pong/internal/rng"
)

//go:embed defaults/matrixpong.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Pins: PinsConfig{
			Data:    "GPIO10",
			Clock:   "GPIO11",
			Select:  "GPIO8",
			Button1: "GPIO23",
			Button2: "GPIO24",
		},
		Display: DisplayConfig{
			Intensity: int(max7219.DefaultIntensity),
			Settle:    time.Microsecond,
		},
		Timing: TimingConfig{
			Tick:          100 * time.Millisecond,
			GameOverPause: 500 * time.Millisecond,
			FillDelay:     50 * time.Millisecond,
		},
		Game: GameConfig{
			Seed:        int(rng.DefaultSeed),
			PaddleStart: pong.DefaultPaddleY,
		},
		Sim: SimConfig{
			KeyHold: input.DefaultHold,
		},
		Speed:  SpeedFixed,
		Source: "default",
	}
}
