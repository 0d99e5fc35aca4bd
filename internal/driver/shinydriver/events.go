package shinydriver

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixelart/internal/input"
)

var keyCodes = map[key.Code]input.Key{
	key.CodeLeftArrow:  input.KeyLeft,
	key.CodeRightArrow: input.KeyRight,
	key.CodeUpArrow:    input.KeyUp,
	key.CodeDownArrow:  input.KeyDown,
	key.CodeEscape:     input.KeyEscape,
}

var mouseButtons = map[mouse.Button]input.Buttons{
	mouse.ButtonLeft:   input.ButtonLeft,
	mouse.ButtonRight:  input.ButtonRight,
	mouse.ButtonMiddle: input.ButtonMiddle,
}

func modifiers(m key.Modifiers) input.Modifiers {
	var out input.Modifiers
	if m&key.ModShift != 0 {
		out |= input.ModShift
	}
	if m&key.ModControl != 0 {
		out |= input.ModControl
	}
	if m&key.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&key.ModMeta != 0 {
		out |= input.ModMeta
	}
	return out
}

// keyEvent translates a key press. Releases and unknown keys report false.
// Control and Meta chords are keyed by letter since the rune may be a control
// character.
func keyEvent(e key.Event) (input.Event, bool) {
	if e.Direction == key.DirRelease {
		return input.Event{}, false
	}
	ev := input.Event{Kind: input.KindKey, Modifiers: modifiers(e.Modifiers)}
	if k, ok := keyCodes[e.Code]; ok {
		ev.Key = k
		return ev, true
	}
	if ev.Modifiers&(input.ModControl|input.ModMeta) != 0 && e.Code >= key.CodeA && e.Code <= key.CodeZ {
		ev.Rune = 'a' + rune(e.Code-key.CodeA)
		ev.Modifiers = ev.Modifiers&^input.ModMeta | input.ModControl
		return ev, true
	}
	if e.Rune > 0 {
		ev.Rune = e.Rune
		return ev, true
	}
	return input.Event{}, false
}

// pointer tracks held buttons across mouse events.
type pointer struct {
	x, y float64
	held input.Buttons
}

// mouseEvent updates the pointer from e, which is in device pixels, and
// returns the event to queue, if any.
func (p *pointer) mouseEvent(e mouse.Event, density float64) (input.Event, bool) {
	if density <= 0 {
		density = 1
	}
	p.x, p.y = float64(e.X)/density, float64(e.Y)/density
	if e.Button.IsWheel() {
		if e.Direction == mouse.DirRelease {
			return input.Event{}, false
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			return input.Event{Kind: input.KindWheel, WheelY: 1}, true
		case mouse.ButtonWheelDown:
			return input.Event{Kind: input.KindWheel, WheelY: -1}, true
		}
		return input.Event{}, false
	}
	b, ok := mouseButtons[e.Button]
	if !ok {
		return input.Event{}, false
	}
	switch e.Direction {
	case mouse.DirPress:
		p.held |= b
		return input.Event{Kind: input.KindButton, Button: b, Pressed: true}, true
	case mouse.DirRelease:
		p.held &^= b
		return input.Event{Kind: input.KindButton, Button: b}, true
	}
	return input.Event{}, false
}

// lifecycleEvents reports quit and focus changes.
func lifecycleEvents(e lifecycle.Event) []input.Event {
	var out []input.Event
	if e.To == lifecycle.StageDead {
		return append(out, input.Event{Kind: input.KindQuit})
	}
	switch e.Crosses(lifecycle.StageFocused) {
	case lifecycle.CrossOn:
		out = append(out, input.Event{Kind: input.KindFocus, Focused: true})
	case lifecycle.CrossOff:
		out = append(out, input.Event{Kind: input.KindFocus, Focused: false})
	}
	return out
}
