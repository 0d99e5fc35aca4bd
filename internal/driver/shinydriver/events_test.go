package shinydriver

import (
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixelart/internal/input"
)

func TestKeyEvent(t *testing.T) {
	cases := []struct {
		name string
		in   key.Event
		want input.Event
		ok   bool
	}{
		{"arrow", key.Event{Code: key.CodeLeftArrow, Direction: key.DirPress}, input.Event{Kind: input.KindKey, Key: input.KeyLeft}, true},
		{"repeat", key.Event{Code: key.CodeDownArrow, Direction: key.DirNone}, input.Event{Kind: input.KindKey, Key: input.KeyDown}, true},
		{"release", key.Event{Code: key.CodeLeftArrow, Direction: key.DirRelease}, input.Event{}, false},
		{"rune", key.Event{Rune: ']', Code: key.CodeRightSquareBracket, Direction: key.DirPress}, input.Event{Kind: input.KindKey, Rune: ']'}, true},
		{"ctrl chord", key.Event{Rune: 0x13, Code: key.CodeS, Modifiers: key.ModControl, Direction: key.DirPress}, input.Event{Kind: input.KindKey, Rune: 's', Modifiers: input.ModControl}, true},
		{"meta chord", key.Event{Rune: 'v', Code: key.CodeV, Modifiers: key.ModMeta | key.ModShift, Direction: key.DirPress}, input.Event{Kind: input.KindKey, Rune: 'v', Modifiers: input.ModControl | input.ModShift}, true},
		{"no rune", key.Event{Rune: -1, Code: key.CodeLeftShift, Direction: key.DirPress}, input.Event{}, false},
	}
	for _, c := range cases {
		got, ok := keyEvent(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("%s: got %+v %v, want %+v %v", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestMouseEventTracksButtons(t *testing.T) {
	var p pointer
	ev, ok := p.mouseEvent(mouse.Event{X: 200, Y: 100, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, 2)
	if !ok || ev.Kind != input.KindButton || !ev.Pressed || ev.Button != input.ButtonLeft {
		t.Fatalf("press: %+v %v", ev, ok)
	}
	if p.x != 100 || p.y != 50 {
		t.Fatalf("pointer at %v,%v, want 100,50", p.x, p.y)
	}
	if _, ok := p.mouseEvent(mouse.Event{X: 210, Y: 100}, 2); ok {
		t.Fatal("move should not queue an event")
	}
	if p.held != input.ButtonLeft {
		t.Fatalf("held %v during drag", p.held)
	}
	p.mouseEvent(mouse.Event{Button: mouse.ButtonRight, Direction: mouse.DirPress}, 2)
	if p.held != input.ButtonLeft|input.ButtonRight {
		t.Fatalf("held %v", p.held)
	}
	ev, _ = p.mouseEvent(mouse.Event{Button: mouse.ButtonLeft, Direction: mouse.DirRelease}, 2)
	if ev.Pressed || p.held != input.ButtonRight {
		t.Fatalf("release: %+v held %v", ev, p.held)
	}
}

func TestMouseWheel(t *testing.T) {
	var p pointer
	ev, ok := p.mouseEvent(mouse.Event{Button: mouse.ButtonWheelUp, Direction: mouse.DirStep}, 1)
	if !ok || ev.Kind != input.KindWheel || ev.WheelY != 1 {
		t.Fatalf("wheel up: %+v %v", ev, ok)
	}
	ev, ok = p.mouseEvent(mouse.Event{Button: mouse.ButtonWheelDown, Direction: mouse.DirPress}, 1)
	if !ok || ev.WheelY != -1 {
		t.Fatalf("wheel down: %+v %v", ev, ok)
	}
	if _, ok := p.mouseEvent(mouse.Event{Button: mouse.ButtonWheelDown, Direction: mouse.DirRelease}, 1); ok {
		t.Fatal("wheel release should be ignored")
	}
}

func TestLifecycleEvents(t *testing.T) {
	evs := lifecycleEvents(lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageFocused})
	if len(evs) != 1 || evs[0].Kind != input.KindFocus || !evs[0].Focused {
		t.Fatalf("focus gain: %+v", evs)
	}
	evs = lifecycleEvents(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageVisible})
	if len(evs) != 1 || evs[0].Focused {
		t.Fatalf("focus loss: %+v", evs)
	}
	evs = lifecycleEvents(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead})
	if len(evs) != 1 || evs[0].Kind != input.KindQuit {
		t.Fatalf("dead: %+v", evs)
	}
	if evs := lifecycleEvents(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageVisible}); len(evs) != 0 {
		t.Fatalf("unexpected %+v", evs)
	}
}
