// Package gui is the button strip drawn over the editor window.
package gui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/theme"
)

// Layout metrics in logical units.
const (
	ButtonSize   = 44
	ButtonGap    = 6
	ButtonMargin = 10
)

// Overlay hit-tests pointer presses against an ordered list of buttons.
type Overlay struct {
	buttons []*Button
	hover   int
	pressed int

	// LabelFace draws button captions. Defaults to basicfont.Face7x13.
	LabelFace font.Face
}

func NewOverlay(buttons ...*Button) *Overlay {
	return &Overlay{buttons: buttons, hover: -1, pressed: -1, LabelFace: basicfont.Face7x13}
}

// DefaultButtons is the editor's toolbar.
func DefaultButtons() []*Button {
	return []*Button{
		NewButton("-", CommandPenSmaller),
		NewButton("+", CommandPenLarger),
		NewButton("Color", CommandNextColor),
		NewButton("Save", CommandSave),
		NewButton("Load", CommandLoad),
	}
}

func (o *Overlay) Buttons() []*Button { return o.buttons }

// Layout right-aligns the buttons in one row along the top of a window winW
// logical units wide.
func (o *Overlay) Layout(winW int, density float64) {
	if density <= 0 {
		density = 1
	}
	size := int(ButtonSize * density)
	gap := int(ButtonGap * density)
	margin := int(ButtonMargin * density)
	x := int(float64(winW)*density) - margin - len(o.buttons)*size - (len(o.buttons)-1)*gap
	for _, b := range o.buttons {
		b.SetRect(image.Rect(x, margin, x+size, margin+size))
		x += size + gap
	}
}

// HitTest returns the index of the first button containing (x, y), or -1.
func (o *Overlay) HitTest(x, y int) int {
	p := image.Pt(x, y)
	for i, b := range o.buttons {
		if p.In(b.rect) {
			return i
		}
	}
	return -1
}

// HandleEvent returns the command of the first button under (x, y) when ev is
// a left button press. Any other event yields CommandNone.
func (o *Overlay) HandleEvent(ev input.Event, x, y int) Command {
	if ev.Kind != input.KindButton || ev.Button != input.ButtonLeft {
		return CommandNone
	}
	if !ev.Pressed {
		o.pressed = -1
		return CommandNone
	}
	i := o.HitTest(x, y)
	if i < 0 {
		return CommandNone
	}
	o.pressed = i
	return o.buttons[i].Command
}

// Hover records which button the pointer is over.
func (o *Overlay) Hover(x, y int) { o.hover = o.HitTest(x, y) }

func (o *Overlay) state(i int) State {
	switch {
	case i == o.pressed:
		return StatePressed
	case i == o.hover:
		return StateHover
	}
	return StateDefault
}

// Face is a rendered button ready to be composited at Rect.
type Face struct {
	Rect  image.Rectangle
	State State
	Image *image.RGBA
}

// Faces renders every button in its current state.
func (o *Overlay) Faces(th *theme.Theme) []Face {
	out := make([]Face, 0, len(o.buttons))
	for i, b := range o.buttons {
		st := o.state(i)
		out = append(out, Face{Rect: b.rect, State: st, Image: b.Face(st, th, o.LabelFace)})
	}
	return out
}
