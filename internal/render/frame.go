// Package render turns an editor frame description into pixels.
package render

import (
	"image"
	"image/color"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/gui"
)

// Anchor says which point of a label its position refers to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorBottomLeft
)

// Label is a piece of text drawn over the window. Lines are separated by '\n'.
type Label struct {
	Text   string
	Pos    image.Point
	Size   float64
	Anchor Anchor
	Color  color.RGBA
}

// Frame describes one presented image in device pixels.
type Frame struct {
	Width   int
	Height  int
	Density float64

	Canvas canvas.Surface
	// Source is the visible part of the canvas in cells; Dest is where it is
	// scaled to.
	Source image.Rectangle
	Dest   image.Rectangle

	Buttons []gui.Face
	Labels  []Label
	Message string
}

// Size is the frame size as a point.
func (f *Frame) Size() image.Point { return image.Pt(f.Width, f.Height) }

func (f *Frame) density() float64 {
	if f.Density <= 0 {
		return 1
	}
	return f.Density
}

// imageSurface is implemented by surfaces backed by an in-memory image.
type imageSurface interface {
	Image() *image.RGBA
}
