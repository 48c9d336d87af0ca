// Package input samples the two paddle buttons.
//
// Buttons are level-polled once per tick: no debounce, no edge detection.
// GPIO reads real push buttons through periph.io pins; Latch is fed by the
// terminal simulator's key events.
package input

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

// Reader samples the current button levels.
type Reader interface {
	Read() core.Buttons
}

// ReaderFunc adapts a function to a Reader.
type ReaderFunc func() core.Buttons

// Read implements Reader.
func (f ReaderFunc) Read() core.Buttons {
	return f()
}

// None is a Reader with no button ever pressed.
var None Reader = ReaderFunc(func() core.Buttons { return core.NoButtons })

// GPIO reads two push buttons wired to input pins.
type GPIO struct {
	button1   gpio.PinIn
	button2   gpio.PinIn
	activeLow bool
}

// NewGPIO configures both pins as inputs with no edge detection.
//
// Active-high buttons get a pull-down so an open switch reads Low;
// active-low buttons get a pull-up.
func NewGPIO(button1, button2 gpio.PinIn, activeLow bool) (*GPIO, error) {
	if button1 == nil || button2 == nil {
		return nil, errors.New("input: both button pins are required")
	}
	pull := gpio.PullDown
	if activeLow {
		pull = gpio.PullUp
	}
	if err := button1.In(pull, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("input: button1: %w", err)
	}
	if err := button2.In(pull, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("input: button2: %w", err)
	}
	return &GPIO{button1: button1, button2: button2, activeLow: activeLow}, nil
}

// Read implements Reader.
func (g *GPIO) Read() core.Buttons {
	in := core.NoButtons
	if g.pressed(g.button1) {
		in = in.Set(core.Button1)
	}
	if g.pressed(g.button2) {
		in = in.Set(core.Button2)
	}
	return in
}

func (g *GPIO) pressed(p gpio.PinIn) bool {
	return p.Read() != gpio.Level(g.activeLow)
}

// String returns a representation of the reader.
func (g *GPIO) String() string {
	return fmt.Sprintf("input.GPIO{%s, %s, activeLow: %t}", g.button1, g.button2, g.activeLow)
}

// DefaultHold is how long a key press keeps its button held.
// Terminal auto-repeat typically fires every 30-50ms after an initial
// delay of a few hundred milliseconds.
const DefaultHold = 150 * time.Millisecond

// Latch holds key presses for a short window so they read like a held
// button. It is safe for concurrent use: the UI goroutine presses, the game
// loop goroutine reads.
type Latch struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time
	last [2]time.Time
}

// NewLatch creates a latch holding each press for hold.
// A non-positive hold uses DefaultHold.
func NewLatch(hold time.Duration) *Latch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Latch{hold: hold, now: time.Now}
}

// Press marks the buttons in b as held from now.
func (l *Latch) Press(b core.Buttons) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.now()
	if b.Has(core.Button1) {
		l.last[0] = t
	}
	if b.Has(core.Button2) {
		l.last[1] = t
	}
}

// Release lets go of every button immediately.
func (l *Latch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = [2]time.Time{}
}

// Read implements Reader.
func (l *Latch) Read() core.Buttons {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.now()
	in := core.NoButtons
	if l.held(l.last[0], t) {
		in = in.Set(core.Button1)
	}
	if l.held(l.last[1], t) {
		in = in.Set(core.Button2)
	}
	return in
}

func (l *Latch) held(pressed, now time.Time) bool {
	return !pressed.IsZero() && now.Sub(pressed) < l.hold
}
