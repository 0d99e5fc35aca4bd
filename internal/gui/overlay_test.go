package gui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/theme"
)

func press(b input.Buttons) input.Event {
	return input.Event{Kind: input.KindButton, Button: b, Pressed: true}
}

func TestLayoutRightAligned(t *testing.T) {
	o := NewOverlay(DefaultButtons()...)
	o.Layout(800, 1)
	bs := o.Buttons()
	require.Len(t, bs, 5)
	assert.Equal(t, image.Rect(546, 10, 590, 54), bs[0].Rect())
	assert.Equal(t, image.Rect(746, 10, 790, 54), bs[4].Rect())

	o.Layout(800, 2)
	assert.Equal(t, image.Rect(1492, 20, 1580, 108), bs[4].Rect())
}

func TestHandleEventDispatchesPress(t *testing.T) {
	o := NewOverlay(DefaultButtons()...)
	o.Layout(800, 1)

	assert.Equal(t, CommandPenSmaller, o.HandleEvent(press(input.ButtonLeft), 550, 20))
	assert.Equal(t, CommandLoad, o.HandleEvent(press(input.ButtonLeft), 789, 53))
	assert.Equal(t, CommandNone, o.HandleEvent(press(input.ButtonLeft), 790, 20))
	assert.Equal(t, CommandNone, o.HandleEvent(press(input.ButtonLeft), 592, 20), "gap between buttons")
}

func TestHandleEventIgnoresOtherInput(t *testing.T) {
	o := NewOverlay(DefaultButtons()...)
	o.Layout(800, 1)
	x, y := 550, 20

	assert.Equal(t, CommandNone, o.HandleEvent(press(input.ButtonRight), x, y))
	assert.Equal(t, CommandNone, o.HandleEvent(input.Event{Kind: input.KindButton, Button: input.ButtonLeft}, x, y))
	assert.Equal(t, CommandNone, o.HandleEvent(input.Event{Kind: input.KindKey, Rune: 's'}, x, y))
	assert.Equal(t, CommandNone, o.HandleEvent(input.Event{Kind: input.KindWheel, WheelY: 1}, x, y))
}

func TestHandleEventFirstMatchWins(t *testing.T) {
	a := NewButton("a", CommandSave)
	b := NewButton("b", CommandLoad)
	r := image.Rect(50, 50, 110, 110)
	a.SetRect(r)
	b.SetRect(r)
	o := NewOverlay(a, b)
	assert.Equal(t, CommandSave, o.HandleEvent(press(input.ButtonLeft), 60, 60))
}

func TestFacesTrackState(t *testing.T) {
	o := NewOverlay(DefaultButtons()...)
	o.Layout(800, 1)
	th := theme.Default()

	o.Hover(600, 20)
	faces := o.Faces(th)
	require.Len(t, faces, 5)
	assert.Equal(t, StateDefault, faces[0].State)
	assert.Equal(t, StateHover, faces[1].State)

	o.HandleEvent(press(input.ButtonLeft), 600, 20)
	assert.Equal(t, StatePressed, o.Faces(th)[1].State)

	o.HandleEvent(input.Event{Kind: input.KindButton, Button: input.ButtonLeft}, 600, 20)
	assert.Equal(t, StateHover, o.Faces(th)[1].State)
}

func TestButtonFaceCache(t *testing.T) {
	th := theme.Default()
	b := NewButton("Save", CommandSave)
	b.SetRect(image.Rect(0, 0, 44, 44))

	f1 := b.Face(StateDefault, th, nil)
	assert.Same(t, f1, b.Face(StateDefault, th, nil))
	assert.Equal(t, image.Rect(0, 0, 44, 44), f1.Bounds())
	assert.NotSame(t, f1, b.Face(StateHover, th, nil))

	b.SetRect(image.Rect(10, 10, 40, 40))
	f2 := b.Face(StateDefault, th, nil)
	assert.NotSame(t, f1, f2)
	assert.Equal(t, image.Rect(0, 0, 30, 30), f2.Bounds())

	assert.NotSame(t, f2, b.Face(StateDefault, theme.Default(), nil), "new theme drops the cache")
}

func TestButtonFaceColors(t *testing.T) {
	th := theme.Default()
	b := NewButton("", CommandSave)
	b.SetRect(image.Rect(0, 0, 44, 44))

	img := b.Face(StateDefault, th, nil)
	assert.Equal(t, th.ButtonBackground, img.RGBAAt(22, 22))
	assert.Equal(t, th.ButtonBorder, img.RGBAAt(22, 0))
	assert.Zero(t, img.RGBAAt(0, 0).A, "rounded corner stays transparent")

	img = b.Face(StatePressed, th, nil)
	assert.Equal(t, th.ButtonBackgroundPress, img.RGBAAt(22, 22))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "save", CommandSave.String())
	assert.Equal(t, "next-color", CommandNextColor.String())
	assert.Equal(t, "unknown", Command(99).String())
}
