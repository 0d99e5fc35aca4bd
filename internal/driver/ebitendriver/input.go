package ebitendriver

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/example/pixelart/internal/input"
)

var arrowKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyEscape:     input.KeyEscape,
}

var mouseButtons = []struct {
	eb ebiten.MouseButton
	in input.Buttons
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonRight, input.ButtonRight},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

func modifiers() input.Modifiers {
	var m input.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= input.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= input.ModMeta
	}
	return m
}

// pollKeys queues this frame's key presses. Typed characters come from the
// text input; with Control or Meta held no text arrives, so letter keys are
// mapped directly.
func (g *Game) pollKeys() {
	mods := modifiers()
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := arrowKeys[k]; ok {
			g.queue.Push(input.Event{Kind: input.KindKey, Key: key, Modifiers: mods})
			continue
		}
		if mods&(input.ModControl|input.ModMeta) != 0 && k >= ebiten.KeyA && k <= ebiten.KeyZ {
			r := 'a' + rune(k-ebiten.KeyA)
			g.queue.Push(input.Event{Kind: input.KindKey, Rune: r, Modifiers: mods &^ input.ModMeta | input.ModControl})
		}
	}
	if mods&(input.ModControl|input.ModMeta) != 0 {
		return
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if !unicode.IsPrint(r) {
			continue
		}
		g.queue.Push(input.Event{Kind: input.KindKey, Rune: r, Modifiers: mods})
	}
}

// pollPointer queues button transitions and returns the held buttons.
func (g *Game) pollPointer() input.Buttons {
	var held input.Buttons
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.queue.Push(input.Event{Kind: input.KindButton, Button: b.in, Pressed: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.queue.Push(input.Event{Kind: input.KindButton, Button: b.in})
		}
		if ebiten.IsMouseButtonPressed(b.eb) {
			held |= b.in
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.queue.Push(input.Event{Kind: input.KindWheel, WheelY: wy})
	}
	return held
}
