// Package bus turns bytes into a clocked serial bit stream on GPIO lines.
//
// The stream is write-only: the receiving chip samples the data line on each
// rising clock edge and never acknowledges. Chip-select framing is left to the
// caller so that one select assertion covers exactly one logical write.
package bus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Transmitter sends a sequence of bytes on a serial bus.
type Transmitter interface {
	// Transmit sends each byte of data most significant bit first.
	Transmit(data []byte) error
}

// BitBang is a Transmitter that toggles two GPIO output lines directly.
//
// For every bit the clock is driven Low, the data line is set to the bit
// value, then the clock is driven High. After the last bit the clock is left
// Low.
type BitBang struct {
	data gpio.PinOut
	clk  gpio.PinOut
}

// NewBitBang creates a BitBang transmitter on the given data and clock lines.
// Both pins are driven Low.
func NewBitBang(data, clk gpio.PinOut) (*BitBang, error) {
	if data == nil || clk == nil {
		return nil, errors.New("bus: data and clock pins are required")
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("bus: failed to pull %s low: %w", clk, err)
	}
	if err := data.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("bus: failed to pull %s low: %w", data, err)
	}
	return &BitBang{data: data, clk: clk}, nil
}

// Transmit implements Transmitter.
// It stops at the first pin error; the receiver then holds a partial word.
func (b *BitBang) Transmit(data []byte) error {
	for _, v := range data {
		for i := 7; i >= 0; i-- {
			if err := b.clk.Out(gpio.Low); err != nil {
				return fmt.Errorf("bus: clock low: %w", err)
			}
			if err := b.data.Out(gpio.Level(v&(1<<i) != 0)); err != nil {
				return fmt.Errorf("bus: data: %w", err)
			}
			if err := b.clk.Out(gpio.High); err != nil {
				return fmt.Errorf("bus: clock high: %w", err)
			}
		}
	}
	if err := b.clk.Out(gpio.Low); err != nil {
		return fmt.Errorf("bus: clock low: %w", err)
	}
	return nil
}

// String returns a representation of the transmitter.
func (b *BitBang) String() string {
	return fmt.Sprintf("bus.BitBang{data: %s, clk: %s}", b.data, b.clk)
}

// Bits returns the bits of data in transmission order, most significant bit
// of the first byte first.
func Bits(data []byte) []gpio.Level {
	out := make([]gpio.Level, 0, len(data)*8)
	for _, v := range data {
		for i := 7; i >= 0; i-- {
			out = append(out, gpio.Level(v&(1<<i) != 0))
		}
	}
	return out
}
