// Package rng provides the 8-bit pseudo-random source used by the game.
//
// The generator mixes a single byte of state with three xor-shift steps:
//
//	s ^= s >> 1
//	s ^= s << 1
//	s ^= s >> 2
//
// Each step is an invertible linear map over GF(2)^8, so the update is a
// permutation of the 256 byte values that fixes zero. A non-zero state
// therefore never becomes zero; from the default seed 0xB8 the period is 255.
//
// The sequence is fully determined by the seed. It is not suitable for
// anything beyond gameplay.
package rng

import (
	"errors"
	"fmt"
)

// DefaultSeed is the power-up seed.
const DefaultSeed uint8 = 0xB8

// ErrZeroSeed is returned when a zero seed is supplied.
// Zero is the generator's fixed point and would yield zeros forever.
var ErrZeroSeed = errors.New("rng: seed must be non-zero")

// Source is an 8-bit xor-shift generator.
// It is not safe for concurrent use.
type Source struct {
	state uint8
}

// New creates a Source with the given seed.
func New(seed uint8) (*Source, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &Source{state: seed}, nil
}

// Next advances the state and returns it.
func (s *Source) Next() uint8 {
	x := s.state
	x ^= x >> 1
	x ^= x << 1
	x ^= x >> 2
	s.state = x
	return x
}

// Intn returns Next() % n. n must be in [1, 255].
func (s *Source) Intn(n int) int {
	return int(s.Next()) % n
}

// State returns the current state without advancing it.
func (s *Source) State() uint8 {
	return s.state
}

// String returns a representation of the generator state.
func (s *Source) String() string {
	return fmt.Sprintf("rng.Source{0x%02X}", s.state)
}
