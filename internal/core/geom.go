// Package core provides the fundamental types shared by the matrix drivers and
// the game: the 8x8 frame buffer, button state and runtime timing.
// It contains no hardware dependencies (especially no periph.io) to keep game
// logic pure and testable.
package core

// Size is the edge length of the LED matrix in cells.
const Size = 8

// Point is a cell position on the matrix.
// X is the column (bit index within a row), Y is the row.
type Point struct {
	X, Y int
}

// In returns true if the point lies on the matrix.
func (p Point) In() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Span is a one-dimensional run of cells starting at Start, Len cells long.
// The paddle is a Span along the Y axis.
type Span struct {
	Start int
	Len   int
}

// End returns the first position past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Contains returns true if v falls within [Start, End).
func (s Span) Contains(v int) bool {
	return v >= s.Start && v < s.End()
}

// Offset returns the position of v relative to the start of the span.
func (s Span) Offset(v int) int {
	return v - s.Start
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
