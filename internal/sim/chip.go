// Package sim models a MAX7219 LED matrix controller at the wire level.
//
// The chip is driven through three simulated GPIO lines. While the select
// line is Low, each rising clock edge shifts the data line into a 16-bit
// shift register; the rising edge of select latches the last 16 bits as one
// {register, value} command. The register file is interpreted the way the
// real part does, so the visible frame honors shutdown, display test and scan
// limit.
//
// Chip lets the real bus and controller drivers run unchanged on a host
// without hardware: the terminal simulator renders it and the tests inspect
// its command log.
package sim

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/vovakirdan/matrix-pong/internal/bus"
	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
)

// Line is a simulated output wire. It behaves like a gpiotest.Pin and reports
// every level written to it.
type Line struct {
	gpiotest.Pin
	onOut func(gpio.Level)
}

// Out implements gpio.PinOut.
func (l *Line) Out(v gpio.Level) error {
	if err := l.Pin.Out(v); err != nil {
		return err
	}
	if l.onOut != nil {
		l.onOut(v)
	}
	return nil
}

// Command is one latched register write.
type Command struct {
	Reg   byte
	Value byte
}

// String returns the command in "register=value" form.
func (c Command) String() string {
	var name string
	switch {
	case c.Reg >= max7219.RegRow0 && c.Reg < max7219.RegRow0+core.Size:
		name = fmt.Sprintf("row%d", c.Reg-max7219.RegRow0)
		return fmt.Sprintf("%s=%08b", name, c.Value)
	case c.Reg == max7219.RegNoOp:
		name = "noop"
	case c.Reg == max7219.RegDecodeMode:
		name = "decode"
	case c.Reg == max7219.RegIntensity:
		name = "intensity"
	case c.Reg == max7219.RegScanLimit:
		name = "scanlimit"
	case c.Reg == max7219.RegShutdown:
		name = "shutdown"
	case c.Reg == max7219.RegDisplayTest:
		name = "test"
	default:
		name = fmt.Sprintf("reg%X", c.Reg)
	}
	return fmt.Sprintf("%s=0x%02X", name, c.Value)
}

// State is a copy of the chip's register file.
type State struct {
	Rows        core.Frame
	Intensity   byte
	ScanLimit   byte
	Shutdown    bool
	DisplayTest bool
}

// Visible returns the frame a viewer would see on the matrix.
func (s State) Visible() core.Frame {
	var f core.Frame
	switch {
	case s.Shutdown:
		return f
	case s.DisplayTest:
		f.Fill()
		return f
	}
	for y := 0; y <= int(s.ScanLimit&0x07); y++ {
		f[y] = s.Rows[y]
	}
	return f
}

// Chip is a simulated MAX7219. The zero value is not usable; use New.
type Chip struct {
	// Wires to hand to the bus and controller drivers.
	DIN *Line
	CLK *Line
	CS  *Line

	mu       sync.Mutex
	din      gpio.Level
	clk      gpio.Level
	selected bool
	shift    uint16
	nbits    int

	state     State
	log       []Command
	malformed int
	onLatch   func(Command, State)
}

// New creates a chip in its power-on state: shutdown mode, all registers zero.
// All wires idle Low except select, which idles High.
func New() *Chip {
	c := &Chip{
		state: State{Shutdown: true},
	}
	c.DIN = &Line{Pin: gpiotest.Pin{N: "DIN", Num: 0}, onOut: c.onDIN}
	c.CLK = &Line{Pin: gpiotest.Pin{N: "CLK", Num: 2}, onOut: c.onCLK}
	c.CS = &Line{Pin: gpiotest.Pin{N: "CS", Num: 1, L: gpio.High}, onOut: c.onCS}
	return c
}

// Attach builds the bit-bang bus and the controller driver on the chip's
// wires. The driver's Init sequence runs immediately.
func (c *Chip) Attach(opts *max7219.Opts) (*max7219.Dev, error) {
	b, err := bus.NewBitBang(c.DIN, c.CLK)
	if err != nil {
		return nil, err
	}
	return max7219.New(b, c.CS, opts)
}

// OnLatch registers fn to be called after every latched command.
// fn runs on the goroutine driving the wires, outside the chip lock.
func (c *Chip) OnLatch(fn func(Command, State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLatch = fn
}

func (c *Chip) onDIN(v gpio.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.din = v
}

func (c *Chip) onCLK(v gpio.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rising := v == gpio.High && c.clk == gpio.Low
	c.clk = v
	if !rising || !c.selected {
		return
	}
	c.shift <<= 1
	if c.din {
		c.shift |= 1
	}
	c.nbits++
}

func (c *Chip) onCS(v gpio.Level) {
	c.mu.Lock()
	if v == gpio.Low {
		c.selected = true
		c.shift = 0
		c.nbits = 0
		c.mu.Unlock()
		return
	}
	if !c.selected {
		c.mu.Unlock()
		return
	}
	c.selected = false
	if c.nbits != 16 {
		c.malformed++
	}
	if c.nbits < 16 {
		c.mu.Unlock()
		return
	}
	cmd := Command{Reg: byte(c.shift>>8) & 0x0F, Value: byte(c.shift)}
	c.apply(cmd)
	c.log = append(c.log, cmd)
	fn, st := c.onLatch, c.state
	c.mu.Unlock()

	if fn != nil {
		fn(cmd, st)
	}
}

// apply updates the register file. Called with the lock held.
func (c *Chip) apply(cmd Command) {
	switch {
	case cmd.Reg >= max7219.RegRow0 && cmd.Reg < max7219.RegRow0+core.Size:
		c.state.Rows[cmd.Reg-max7219.RegRow0] = cmd.Value
	case cmd.Reg == max7219.RegIntensity:
		c.state.Intensity = cmd.Value & 0x0F
	case cmd.Reg == max7219.RegScanLimit:
		c.state.ScanLimit = cmd.Value & 0x07
	case cmd.Reg == max7219.RegShutdown:
		c.state.Shutdown = cmd.Value&0x01 == 0
	case cmd.Reg == max7219.RegDisplayTest:
		c.state.DisplayTest = cmd.Value&0x01 != 0
	}
}

// State returns a copy of the register file.
func (c *Chip) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Commands returns a copy of every command latched so far.
func (c *Chip) Commands() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Command, len(c.log))
	copy(out, c.log)
	return out
}

// ResetLog discards the command log and the malformed counter.
func (c *Chip) ResetLog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = nil
	c.malformed = 0
}

// Malformed returns the number of select transactions that did not carry
// exactly 16 bits.
func (c *Chip) Malformed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.malformed
}

// String returns a representation of the chip.
func (c *Chip) String() string {
	return fmt.Sprintf("sim.Chip{%d commands}", len(c.Commands()))
}
