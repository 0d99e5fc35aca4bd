package input

import "unicode"

// Kind tags an Event.
type Kind int

const (
	KindQuit Kind = iota + 1
	KindResize
	KindFocus
	KindKey
	KindWheel
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindResize:
		return "resize"
	case KindFocus:
		return "focus"
	case KindKey:
		return "key"
	case KindWheel:
		return "wheel"
	case KindButton:
		return "button"
	}
	return "unknown"
}

// Key names the non-printing keys the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Event is a queued input notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	// KindResize: new window size in logical units.
	Width  int
	Height int

	// KindFocus.
	Focused bool

	// KindKey: key press. Rune is set for printable keys.
	Key       Key
	Rune      rune
	Modifiers Modifiers

	// KindWheel: positive scrolls up (zoom in).
	WheelY float64

	// KindButton: a pointer button changed state.
	Button  Buttons
	Pressed bool
}

// Shortcut identifies a key combination.
type Shortcut struct {
	Rune      rune
	Key       Key
	Modifiers Modifiers
}

// Shortcut returns the combination a key event represents. Letters are
// folded to lower case so Shift does not hide a binding.
func (e Event) Shortcut() Shortcut {
	return Shortcut{Rune: unicode.ToLower(e.Rune), Key: e.Key, Modifiers: e.Modifiers &^ ModShift}
}

// Queue collects events between ticks.
type Queue struct {
	events []Event
}

func (q *Queue) Push(e Event) { q.events = append(q.events, e) }

// Drain returns the queued events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *Queue) Len() int { return len(q.events) }
