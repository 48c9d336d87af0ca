package core

import "testing"

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"far corner", Point{7, 7}, true},
		{"middle", Point{3, 4}, true},
		{"negative x", Point{-1, 3}, false},
		{"negative y", Point{3, -1}, false},
		{"x past edge", Point{8, 0}, false},
		{"y past edge", Point{0, 8}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(); got != tc.expected {
				t.Errorf("%v.In() = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 3, Len: 3}

	tests := []struct {
		name     string
		v        int
		expected bool
	}{
		{"before start", 2, false},
		{"start", 3, true},
		{"middle", 4, true},
		{"last", 5, true},
		{"end (exclusive)", 6, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Contains(tc.v); got != tc.expected {
				t.Errorf("Contains(%d) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}

	if s.End() != 6 {
		t.Errorf("End() = %d, expected 6", s.End())
	}
	if s.Offset(5) != 2 {
		t.Errorf("Offset(5) = %d, expected 2", s.Offset(5))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
