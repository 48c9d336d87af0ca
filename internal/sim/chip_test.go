package sim

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/matrix-pong/internal/bus"
	"github.com/vovakirdan/matrix-pong/internal/core"
	"github.com/vovakirdan/matrix-pong/internal/max7219"
)

// frame sends data inside one select transaction using the bit-bang bus.
func frame(c *qt.C, chip *Chip, data ...byte) {
	b, err := bus.NewBitBang(chip.DIN, chip.CLK)
	c.Assert(err, qt.IsNil)
	c.Assert(chip.CS.Out(gpio.Low), qt.IsNil)
	c.Assert(b.Transmit(data), qt.IsNil)
	c.Assert(chip.CS.Out(gpio.High), qt.IsNil)
}

func TestPowerOnState(t *testing.T) {
	c := qt.New(t)

	chip := New()
	st := chip.State()
	c.Assert(st.Shutdown, qt.IsTrue)
	c.Assert(st.Visible(), qt.Equals, core.Frame{})
	c.Assert(chip.Commands(), qt.HasLen, 0)
}

func TestLatchOnSelectRisingEdge(t *testing.T) {
	c := qt.New(t)

	chip := New()
	frame(c, chip, max7219.RegRow0+2, 0xA5)

	c.Assert(chip.Commands(), qt.DeepEquals, []Command{{Reg: 0x03, Value: 0xA5}})
	c.Assert(chip.State().Rows[2], qt.Equals, uint8(0xA5))
	c.Assert(chip.Malformed(), qt.Equals, 0)
}

func TestClockIgnoredWhileDeselected(t *testing.T) {
	c := qt.New(t)

	chip := New()
	b, err := bus.NewBitBang(chip.DIN, chip.CLK)
	c.Assert(err, qt.IsNil)
	c.Assert(b.Transmit([]byte{0x01, 0xFF}), qt.IsNil)

	c.Assert(chip.Commands(), qt.HasLen, 0)
	c.Assert(chip.State().Rows[0], qt.Equals, uint8(0))
}

func TestMalformedTransactions(t *testing.T) {
	c := qt.New(t)

	chip := New()

	// Too short: nothing latched.
	frame(c, chip, 0x01)
	c.Assert(chip.Commands(), qt.HasLen, 0)
	c.Assert(chip.Malformed(), qt.Equals, 1)

	// Too long: the last 16 bits win.
	frame(c, chip, 0xFF, 0x02, 0x3C)
	c.Assert(chip.Commands(), qt.DeepEquals, []Command{{Reg: 0x02, Value: 0x3C}})
	c.Assert(chip.Malformed(), qt.Equals, 2)

	chip.ResetLog()
	c.Assert(chip.Commands(), qt.HasLen, 0)
	c.Assert(chip.Malformed(), qt.Equals, 0)
}

func TestVisible(t *testing.T) {
	c := qt.New(t)

	rows := core.Frame{1, 2, 3, 4, 5, 6, 7, 8}

	st := State{Rows: rows, ScanLimit: 7}
	c.Assert(st.Visible(), qt.Equals, rows)

	st.ScanLimit = 3
	c.Assert(st.Visible(), qt.Equals, core.Frame{1, 2, 3, 4})

	st.DisplayTest = true
	c.Assert(st.Visible().Lit(), qt.Equals, core.Size*core.Size)

	st.Shutdown = true
	c.Assert(st.Visible(), qt.Equals, core.Frame{})
}

func TestOnLatch(t *testing.T) {
	c := qt.New(t)

	chip := New()
	var got []Command
	chip.OnLatch(func(cmd Command, st State) {
		got = append(got, cmd)
	})

	frame(c, chip, max7219.RegIntensity, 0x09)
	c.Assert(got, qt.DeepEquals, []Command{{Reg: max7219.RegIntensity, Value: 0x09}})
	c.Assert(chip.State().Intensity, qt.Equals, byte(0x09))
}

func TestAttachRunsInit(t *testing.T) {
	c := qt.New(t)

	chip := New()
	dev, err := chip.Attach(&max7219.Opts{Intensity: 5})
	c.Assert(err, qt.IsNil)
	c.Assert(dev, qt.IsNotNil)

	st := chip.State()
	c.Assert(st.Shutdown, qt.IsFalse)
	c.Assert(st.DisplayTest, qt.IsFalse)
	c.Assert(st.ScanLimit, qt.Equals, max7219.ScanAllDigits)
	c.Assert(st.Intensity, qt.Equals, byte(5))
}

func TestCommandString(t *testing.T) {
	c := qt.New(t)

	c.Assert(Command{Reg: 0x01, Value: 0x81}.String(), qt.Equals, "row0=10000001")
	c.Assert(Command{Reg: 0x08, Value: 0x00}.String(), qt.Equals, "row7=00000000")
	c.Assert(Command{Reg: 0x0C, Value: 0x01}.String(), qt.Equals, "shutdown=0x01")
	c.Assert(Command{Reg: 0x0E, Value: 0x01}.String(), qt.Equals, "regE=0x01")
}
