package pong

import (
	"fmt"

	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/rng"
)

// Snapshot contains the complete mutable state of a game.
// Uses primitive types only for stable logging and test fixtures.
type Snapshot struct {
	Tick      int
	BallX     int
	BallY     int
	BallDX    int
	BallDY    int
	PaddleY   int
	GameOvers int
	RNG       uint8 // Generator state, never zero
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		BallX:     g.ballX,
		BallY:     g.ballY,
		BallDX:    g.ballDX,
		BallDY:    g.ballDY,
		PaddleY:   g.paddleY,
		GameOvers: g.gameOvers,
		RNG:       g.rng.State(),
	}
}

// ApplySnapshot replaces the game state with snap.
// The snapshot is rejected if it breaks a board invariant.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if !(core.Point{X: snap.BallX, Y: snap.BallY}).In() {
		return fmt.Errorf("pong: ball (%d,%d) off the board", snap.BallX, snap.BallY)
	}
	if !validVelocity(snap.BallDX) || !validVelocity(snap.BallDY) || snap.BallDX == 0 {
		return fmt.Errorf("pong: invalid ball velocity (%d,%d)", snap.BallDX, snap.BallDY)
	}
	if snap.PaddleY < 0 || snap.PaddleY > MaxPaddleY {
		return fmt.Errorf("pong: paddle %d out of range 0..%d", snap.PaddleY, MaxPaddleY)
	}
	src, err := rng.New(snap.RNG)
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}

	g.tickCount = snap.Tick
	g.ballX, g.ballY = snap.BallX, snap.BallY
	g.ballDX, g.ballDY = snap.BallDX, snap.BallDY
	g.paddleY = snap.PaddleY
	g.gameOvers = snap.GameOvers
	g.rng = src
	return nil
}

// KeyVals returns the snapshot as alternating keys and values for structured
// logging.
func (s Snapshot) KeyVals() []any {
	return []any{
		"tick", s.Tick,
		"ball", fmt.Sprintf("(%d,%d)", s.BallX, s.BallY),
		"velocity", fmt.Sprintf("(%d,%d)", s.BallDX, s.BallDY),
		"paddle", s.PaddleY,
		"misses", s.GameOvers,
	}
}

func validVelocity(v int) bool {
	return v >= -1 && v <= 1
}
