package core

// Buttons is the level of the two momentary push buttons sampled once per tick.
// Each bit is one button; a set bit means the button is held down.
type Buttons uint8

const (
	// Button1 moves the paddle down (towards higher rows).
	Button1 Buttons = 1 << iota
	// Button2 moves the paddle up (towards row 0).
	Button2
)

// NoButtons is the idle input state.
const NoButtons Buttons = 0

// Has returns true if every button in b is pressed.
func (in Buttons) Has(b Buttons) bool {
	return b != 0 && in&b == b
}

// Set returns in with the buttons in b pressed.
func (in Buttons) Set(b Buttons) Buttons {
	return in | b
}

// String returns a human-readable name for the input state.
func (in Buttons) String() string {
	switch in {
	case NoButtons:
		return "None"
	case Button1:
		return "Button1"
	case Button2:
		return "Button2"
	case Button1 | Button2:
		return "Button1+Button2"
	default:
		return "Unknown"
	}
}
