// Package input describes what the window drivers observed during one tick:
// pointer samples, held buttons and queued events.
package input

// Buttons is a bitmask of held pointer buttons.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Has reports whether every button in o is held.
func (b Buttons) Has(o Buttons) bool { return b&o == o && o != 0 }

// Paint reports whether a painting button is held.
func (b Buttons) Paint() bool { return b&(ButtonLeft|ButtonRight) != 0 }

// Sample is one pointer observation in device pixels.
type Sample struct {
	X       float64
	Y       float64
	Buttons Buttons
}

// State is everything a driver hands to the editor for one tick.
type State struct {
	// X and Y locate the pointer in logical window units.
	X       float64
	Y       float64
	Buttons Buttons
	// Events arrived since the previous tick, oldest first.
	Events []Event
	// Density is device pixels per logical unit. Zero means 1.
	Density float64
}

// Sample converts the pointer to device pixels.
func (s State) Sample() Sample {
	d := s.Density
	if d <= 0 {
		d = 1
	}
	return Sample{X: s.X * d, Y: s.Y * d, Buttons: s.Buttons}
}
