package core

import (
	"strings"
)

// Frame is the 8x8 frame buffer pushed to the display controller.
// Row i holds the pixels of matrix row i; bit j of a row lights column j.
type Frame [Size]uint8

// Clear turns every pixel off.
func (f *Frame) Clear() {
	for y := range f {
		f[y] = 0
	}
}

// Fill turns every pixel on.
func (f *Frame) Fill() {
	for y := range f {
		f[y] = 0xFF
	}
}

// Set lights the pixel at column x of row y.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int) {
	if !(Point{X: x, Y: y}).In() {
		return
	}
	f[y] |= 1 << x
}

// Get reports whether the pixel at column x of row y is lit.
// Returns false for out-of-bounds coordinates.
func (f Frame) Get(x, y int) bool {
	if !(Point{X: x, Y: y}).In() {
		return false
	}
	return f[y]&(1<<x) != 0
}

// Lit returns the number of lit pixels.
func (f Frame) Lit() int {
	n := 0
	for _, row := range f {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

// String renders the frame as text, one line per row, column 0 first.
// Lit pixels are '#', dark pixels are '.'.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(Size*Size + Size)

	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < Size; x++ {
			if f.Get(x, y) {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
	}
	return sb.String()
}
