// Package device runs the game loop against a display and a button reader.
//
// The loop is strictly sequential: one tick (render, delay, physics) runs to
// completion before the context is checked again. A tick or a game-over
// animation is never cut short.
package device

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/games/pong"
	"github.com/vovakirdan/matrix-pong/internal/input"
)

// Engine is the game driven by the loop.
type Engine interface {
	Step(in core.Buttons) (core.StepResult, error)
	Snapshot() pong.Snapshot
}

// Options configure a loop run.
type Options struct {
	// Logger receives lifecycle and game-over events. nil discards them.
	Logger *log.Logger

	// MaxTicks stops the loop after that many ticks. Zero runs until the
	// context is done.
	MaxTicks int

	// OnTick is called after every completed tick.
	OnTick func(tick int, res core.StepResult)
}

// Stats summarize a finished run.
type Stats struct {
	Ticks     int
	GameOvers int
}

// Run drives engine until ctx is done, MaxTicks is reached or a tick fails.
// Buttons are sampled once at the start of every tick. A nil reader never
// presses anything.
//
// Cancellation is not an error: Run returns nil once ctx is done.
func Run(ctx context.Context, engine Engine, reader input.Reader, opts *Options) (Stats, error) {
	var stats Stats
	if engine == nil {
		return stats, errors.New("device: engine is required")
	}
	if reader == nil {
		reader = input.None
	}
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	logger.Info("game loop started", engine.Snapshot().KeyVals()...)
	defer func() {
		logger.Info("game loop stopped", "ticks", stats.Ticks, "misses", stats.GameOvers)
	}()

	for {
		if ctx.Err() != nil {
			return stats, nil
		}
		if opts.MaxTicks > 0 && stats.Ticks >= opts.MaxTicks {
			return stats, nil
		}

		in := reader.Read()
		res, err := engine.Step(in)
		if err != nil {
			logger.Error("tick failed", "tick", stats.Ticks+1, "err", err)
			return stats, fmt.Errorf("device: tick %d: %w", stats.Ticks+1, err)
		}
		stats.Ticks++

		if res.GameOver {
			stats.GameOvers++
			logger.Info("ball missed", engine.Snapshot().KeyVals()...)
		} else if in != core.NoButtons {
			logger.Debug("input", "tick", stats.Ticks, "buttons", in)
		}

		if opts.OnTick != nil {
			opts.OnTick(stats.Ticks, res)
		}
	}
}
