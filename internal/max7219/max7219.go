// Package max7219 controls an 8x8 LED matrix through a MAX7219 display
// controller.
//
// Every write is a two-byte {register, value} command framed by one
// chip-select transaction: select Low, settle, transmit, settle, select High.
// The controller latches the command on the rising select edge. Writes are
// never coalesced and nothing is ever read back.
package max7219

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/matrix-pong/internal/bus"
	"github.com/vovakirdan/matrix-pong/internal/core"
)

// Register addresses.
const (
	RegNoOp        byte = 0x00
	RegRow0        byte = 0x01 // Rows are 0x01..0x08
	RegDecodeMode  byte = 0x09
	RegIntensity   byte = 0x0A
	RegScanLimit   byte = 0x0B
	RegShutdown    byte = 0x0C
	RegDisplayTest byte = 0x0F
)

// Register values used by the driver.
const (
	ScanAllDigits    byte = 0x07
	ShutdownMode     byte = 0x00
	NormalOperation  byte = 0x01
	DisplayTestOff   byte = 0x00
	DisplayTestOn    byte = 0x01
	MaxIntensity     byte = 0x0F
	DefaultIntensity byte = 0x02
)

// ErrHalted is returned by writes after Halt.
var ErrHalted = errors.New("max7219: halted")

// Opts is the configuration for the MAX7219 driver.
type Opts struct {
	Intensity byte          // Brightness 0..15 (default: 2)
	Settle    time.Duration // Delay on both sides of a transmission (default: 1µs)

	// Sleep blocks for the settle delay. Nil uses time.Sleep.
	Sleep func(time.Duration)
}

// Dev is the device handle for the MAX7219 display controller.
type Dev struct {
	b  bus.Transmitter
	cs gpio.PinOut

	intensity byte
	settle    time.Duration
	sleep     func(time.Duration)

	halted bool
}

// New creates a MAX7219 device on the given bus and select line and runs
// Init.
//
// opts can be nil to use defaults.
func New(b bus.Transmitter, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Intensity: DefaultIntensity, Settle: time.Microsecond}
	}
	if opts.Intensity > MaxIntensity {
		return nil, fmt.Errorf("max7219: intensity %d out of range 0..%d", opts.Intensity, MaxIntensity)
	}
	if b == nil || cs == nil {
		return nil, errors.New("max7219: bus and select pin are required")
	}

	d := &Dev{
		b:         b,
		cs:        cs,
		intensity: opts.Intensity,
		settle:    opts.Settle,
		sleep:     opts.Sleep,
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}

	// Idle level of the select line is High.
	if err := d.cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("max7219: failed to pull %s high: %w", cs, err)
	}

	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init sends the power-up sequence: intensity, scan all 8 digits, leave
// shutdown mode, disable display test. It also clears a previous Halt.
func (d *Dev) Init() error {
	d.halted = false
	cmds := [][2]byte{
		{RegIntensity, d.intensity},
		{RegScanLimit, ScanAllDigits},
		{RegShutdown, NormalOperation},
		{RegDisplayTest, DisplayTestOff},
	}
	for _, c := range cmds {
		if err := d.send(c[0], c[1]); err != nil {
			return err
		}
	}
	return nil
}

// send writes one command inside its own select transaction.
func (d *Dev) send(reg, value byte) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("max7219: select low: %w", err)
	}
	d.wait()

	txErr := d.b.Transmit([]byte{reg, value})

	d.wait()
	if err := d.cs.Out(gpio.High); err != nil && txErr == nil {
		return fmt.Errorf("max7219: select high: %w", err)
	}
	if txErr != nil {
		return fmt.Errorf("max7219: write 0x%02X=0x%02X: %w", reg, value, txErr)
	}
	return nil
}

func (d *Dev) wait() {
	if d.settle > 0 {
		d.sleep(d.settle)
	}
}

// Clear writes zero to every row register, row 1 first.
func (d *Dev) Clear() error {
	if d.halted {
		return ErrHalted
	}
	for i := 0; i < core.Size; i++ {
		if err := d.send(RegRow0+byte(i), 0); err != nil {
			return err
		}
	}
	return nil
}

// Display writes frame row i to row register i+1, row 1 first.
// A failure part way leaves the earlier rows updated.
func (d *Dev) Display(f core.Frame) error {
	if d.halted {
		return ErrHalted
	}
	for i, row := range f {
		if err := d.send(RegRow0+byte(i), row); err != nil {
			return err
		}
	}
	return nil
}

// SetIntensity sets the display brightness (0-15).
func (d *Dev) SetIntensity(level byte) error {
	if d.halted {
		return ErrHalted
	}
	if level > MaxIntensity {
		return fmt.Errorf("max7219: intensity %d out of range 0..%d", level, MaxIntensity)
	}
	if err := d.send(RegIntensity, level); err != nil {
		return err
	}
	d.intensity = level
	return nil
}

// TestDisplay turns display-test mode on or off. In test mode every LED is
// lit regardless of the row registers.
func (d *Dev) TestDisplay(on bool) error {
	if d.halted {
		return ErrHalted
	}
	v := DisplayTestOff
	if on {
		v = DisplayTestOn
	}
	return d.send(RegDisplayTest, v)
}

// Halt puts the controller into shutdown mode.
// Further writes fail with ErrHalted until Init is called again.
func (d *Dev) Halt() error {
	d.halted = true
	return d.send(RegShutdown, ShutdownMode)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%dx%d, cs: %s}", core.Size, core.Size, d.cs)
}
