package core

import "time"

// Timing holds the fixed delays that pace the game loop and the game-over
// animation. Render always happens before the tick delay, and physics after it.
type Timing struct {
	Tick          time.Duration // Delay between pushing a frame and running physics
	GameOverPause time.Duration // Pause before and after the fill animation
	FillDelay     time.Duration // Delay before each cell lit by the fill animation
}

// DefaultTiming returns the stock game timing.
func DefaultTiming() Timing {
	return Timing{
		Tick:          100 * time.Millisecond,
		GameOverPause: 500 * time.Millisecond,
		FillDelay:     50 * time.Millisecond,
	}
}

// SleepFunc blocks for the given duration.
// Tests substitute a recorder so no real time passes.
type SleepFunc func(time.Duration)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Timing Timing
	Sleep  SleepFunc // nil means time.Sleep
	Seed   uint8     // PRNG seed, must be non-zero
}

// DefaultConfig returns a RuntimeConfig with the stock timing and seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Timing: DefaultTiming(),
		Sleep:  time.Sleep,
		Seed:   0xB8,
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	GameOver bool // The game-over animation ran during this tick
}
