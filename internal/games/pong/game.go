// Package pong implements single-player Pong against a wall on an 8x8 LED
// matrix. The player moves a three-cell paddle along column 0 and keeps the
// ball bouncing off the far wall (column 7) and the side walls (rows 0 and 7).
//
// The game is a single blocking state machine: Step renders a frame, pushes
// it to the display, waits one tick, then runs collision and moves the ball.
// A miss runs the game-over animation inside the same Step.
package pong

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/rng"
)

// Board geometry.
const (
	PaddleSize   = 3
	PaddleColumn = 0
	FarWall      = core.Size - 1
	MaxPaddleY   = core.Size - PaddleSize
)

// Default game settings
const (
	DefaultPaddleY = 3
	DefaultBallX   = 4
	DefaultBallY   = 4
	DefaultBallDX  = 1
	DefaultBallDY  = -1
)

// Display is the LED controller the game draws on.
type Display interface {
	// Clear turns every LED off.
	Clear() error
	// Display shows f.
	Display(f core.Frame) error
}

// Options tune gameplay details that are fixed in the stock game.
type Options struct {
	// PaddleStart is the paddle position after Reset, clamped to [0, MaxPaddleY].
	PaddleStart int

	// BalancedServe draws the vertical direction after a miss with equal
	// odds. By default up is twice as likely as down.
	BalancedServe bool

	// ClearEachTick blanks the display before every frame.
	ClearEachTick bool
}

// DefaultOptions returns the stock gameplay.
func DefaultOptions() Options {
	return Options{PaddleStart: DefaultPaddleY}
}

// Game implements the Pong game logic.
type Game struct {
	display Display
	runtime core.RuntimeConfig
	opts    Options
	rng     *rng.Source

	// Frame buffer, rebuilt every tick
	frame core.Frame

	// Ball
	ballX  int
	ballY  int
	ballDX int
	ballDY int

	// Paddle top row
	paddleY int

	tickCount int
	gameOvers int
}

// New creates a game that draws on display.
// opts can be nil to use DefaultOptions.
func New(display Display, runtime core.RuntimeConfig, opts *Options) (*Game, error) {
	if display == nil {
		return nil, errors.New("pong: display is required")
	}
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if runtime.Sleep == nil {
		runtime.Sleep = time.Sleep
	}

	g := &Game{
		display: display,
		runtime: runtime,
		opts:    *opts,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset restores the power-up state and reseeds the generator.
func (g *Game) Reset() error {
	src, err := rng.New(g.runtime.Seed)
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}
	g.rng = src

	g.frame.Clear()
	g.ballX, g.ballY = DefaultBallX, DefaultBallY
	g.ballDX, g.ballDY = DefaultBallDX, DefaultBallDY
	g.paddleY = core.Clamp(g.opts.PaddleStart, 0, MaxPaddleY)
	g.tickCount = 0
	g.gameOvers = 0
	return nil
}

// Step advances the game by one tick.
//
// The frame is drawn with the ball where it is now and the paddle after
// applying in, pushed to the display, and held for the tick delay. Only then
// are collisions resolved and the ball moved. A display error aborts the tick
// before any physics runs.
func (g *Game) Step(in core.Buttons) (core.StepResult, error) {
	g.tickCount++

	g.frame.Clear()
	g.frame.Set(g.ballX, g.ballY)
	g.movePaddle(in)
	g.drawPaddle()

	if g.opts.ClearEachTick {
		if err := g.display.Clear(); err != nil {
			return core.StepResult{}, err
		}
	}
	if err := g.display.Display(g.frame); err != nil {
		return core.StepResult{}, err
	}
	g.runtime.Sleep(g.runtime.Timing.Tick)

	missed, err := g.collide()
	if err != nil {
		return core.StepResult{GameOver: missed}, err
	}
	g.advance()

	return core.StepResult{GameOver: missed}, nil
}

// movePaddle applies at most one move. Button1 wins when both are held.
func (g *Game) movePaddle(in core.Buttons) {
	switch {
	case in.Has(core.Button1):
		if g.paddleY+PaddleSize < core.Size {
			g.paddleY++
		}
	case in.Has(core.Button2):
		if g.paddleY > 0 {
			g.paddleY--
		}
	}
}

func (g *Game) drawPaddle() {
	for i := 0; i < PaddleSize; i++ {
		g.frame.Set(PaddleColumn, g.paddleY+i)
	}
}

// paddle returns the rows covered by the paddle.
func (g *Game) paddle() core.Span {
	return core.Span{Start: g.paddleY, Len: PaddleSize}
}

// Frame returns a copy of the frame buffer.
func (g *Game) Frame() core.Frame {
	return g.frame
}

// Ball returns the ball position.
func (g *Game) Ball() core.Point {
	return core.Point{X: g.ballX, Y: g.ballY}
}

// PaddleY returns the top row of the paddle.
func (g *Game) PaddleY() int {
	return g.paddleY
}

// String returns a representation of the game state.
func (g *Game) String() string {
	return fmt.Sprintf("pong.Game{ball: (%d,%d) v(%d,%d), paddle: %d, tick: %d}",
		g.ballX, g.ballY, g.ballDX, g.ballDY, g.paddleY, g.tickCount)
}
