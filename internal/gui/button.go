package gui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/example/pixelart/internal/theme"
)

// State describes how a button is drawn.
type State int

const (
	StateDefault State = iota
	StateHover
	StatePressed
)

// Button is a rectangle in device pixels bound to a command. Its rendered
// faces are cached per state until the rectangle, theme or label face change.
type Button struct {
	Label   string
	Command Command

	rect  image.Rectangle
	cache [3]*image.RGBA
	theme *theme.Theme
	face  font.Face
}

func NewButton(label string, cmd Command) *Button {
	return &Button{Label: label, Command: cmd}
}

func (b *Button) Rect() image.Rectangle { return b.rect }

func (b *Button) SetRect(r image.Rectangle) {
	if r != b.rect {
		b.rect = r
		b.cache = [3]*image.RGBA{}
	}
}

// Face returns the button image for a state. The image has a zero origin and
// the size of Rect.
func (b *Button) Face(state State, th *theme.Theme, face font.Face) *image.RGBA {
	if th != b.theme || face != b.face {
		b.theme = th
		b.face = face
		b.cache = [3]*image.RGBA{}
	}
	if b.cache[state] == nil {
		b.cache[state] = renderFace(b.Label, b.rect.Size(), state, th, face)
	}
	return b.cache[state]
}

func renderFace(label string, size image.Point, state State, th *theme.Theme, face font.Face) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 {
		return img
	}
	fill, text := th.ButtonBackground, th.ButtonText
	switch state {
	case StateHover:
		fill, text = th.ButtonBackgroundHover, th.ButtonTextHover
	case StatePressed:
		fill, text = th.ButtonBackgroundPress, th.ButtonTextPress
	}

	w, h := float32(size.X), float32(size.Y)
	radius := min(w, h) / 6
	border := max(1, min(w, h)/22)
	fillShape(img, roundedRect(w, h, 0, radius), th.ButtonBorder)
	fillShape(img, roundedRect(w, h, border, radius-border), fill)

	if face != nil && label != "" {
		d := &font.Drawer{Dst: img, Src: image.NewUniform(text), Face: face}
		m := face.Metrics()
		tw := d.MeasureString(label).Ceil()
		lh := (m.Ascent + m.Descent).Ceil()
		d.Dot = fixed.P((size.X-tw)/2, (size.Y-lh)/2+m.Ascent.Ceil())
		d.DrawString(label)
	}
	return img
}

func roundedRect(w, h, inset, r float32) *vector.Rasterizer {
	if r < 0 {
		r = 0
	}
	z := vector.NewRasterizer(int(w), int(h))
	x0, y0, x1, y1 := inset, inset, w-inset, h-inset
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.QuadTo(x1, y0, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.QuadTo(x1, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.QuadTo(x0, y1, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.QuadTo(x0, y0, x0+r, y0)
	z.ClosePath()
	return z
}

func fillShape(dst *image.RGBA, z *vector.Rasterizer, c color.RGBA) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
