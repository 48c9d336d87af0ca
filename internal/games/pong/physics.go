package pong

import (
	"github.com/vovakirdan/matrix-pong/internal/core"
)

// collide resolves the paddle wall, the far wall and the side walls, in that
// order. It reports whether the ball was missed.
func (g *Game) collide() (missed bool, err error) {
	if g.ballX == PaddleColumn {
		paddle := g.paddle()
		if paddle.Contains(g.ballY) {
			g.rebound(paddle.Offset(g.ballY))
		} else {
			g.gameOvers++
			if err := g.gameOver(); err != nil {
				return true, err
			}
			g.serve()
			missed = true
		}
	}

	// Walls reflect only a ball heading into them. A plain negation would
	// undo the rebound clamp on a corner hit and push the ball off the board.
	if g.ballX == FarWall && g.ballDX > 0 {
		g.ballDX = -g.ballDX
	}
	if (g.ballY == 0 && g.ballDY < 0) || (g.ballY == core.Size-1 && g.ballDY > 0) {
		g.ballDY = -g.ballDY
	}
	return missed, nil
}

// rebound sends the ball back from the paddle. The vertical direction depends
// on which paddle cell was hit: the top cell never deflects down, the bottom
// cell never deflects up, the middle cell may go either way.
func (g *Game) rebound(hit int) {
	g.ballDX = 1
	switch hit {
	case 0:
		g.ballDY = -1 + g.rng.Intn(2)
	case 1:
		g.ballDY = g.rng.Intn(3) - 1
	default:
		g.ballDY = g.rng.Intn(2)
	}

	// Clamp dy to stay in bounds
	if g.ballY+g.ballDY < 0 {
		g.ballDY = 1
	}
	if g.ballY+g.ballDY > core.Size-1 {
		g.ballDY = -1
	}
}

// serve places the ball away from every wall with a fresh direction.
// The vertical direction is never zero.
func (g *Game) serve() {
	g.ballX = g.rng.Intn(core.Size-2) + 1
	g.ballY = g.rng.Intn(core.Size-2) + 1

	if g.rng.Intn(2) != 0 {
		g.ballDX = -1
	} else {
		g.ballDX = 1
	}

	if g.opts.BalancedServe {
		if g.rng.Intn(2) == 0 {
			g.ballDY = -1
		} else {
			g.ballDY = 1
		}
		return
	}

	// 0 and 2 both serve upwards.
	switch g.rng.Intn(3) {
	case 1:
		g.ballDY = 1
	default:
		g.ballDY = -1
	}
}

// advance moves the ball one cell along its velocity.
func (g *Game) advance() {
	g.ballX += g.ballDX
	g.ballY += g.ballDY
}

// gameOver plays the miss animation: blank the display, pause, light the
// matrix one cell at a time row by row, pause again, blank the display.
// It blocks for its whole duration and only touches the frame buffer.
func (g *Game) gameOver() error {
	t := g.runtime.Timing

	if err := g.display.Clear(); err != nil {
		return err
	}
	g.runtime.Sleep(t.GameOverPause)

	for y := 0; y < core.Size; y++ {
		for x := 0; x < core.Size; x++ {
			g.runtime.Sleep(t.FillDelay)
			g.frame.Set(x, y)
			if err := g.display.Display(g.frame); err != nil {
				return err
			}
		}
	}

	g.frame.Clear()
	g.runtime.Sleep(t.GameOverPause)
	return g.display.Clear()
}
