// Package canvas owns the pixel grid being edited and the transform that maps
// window coordinates onto it.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ErrInvalidSize is returned when a canvas is created with a non-positive dimension.
var ErrInvalidSize = errors.New("canvas dimensions must be positive")

// Surface is the renderable copy of the pixel buffer owned by a display driver.
// It is updated cell by cell as the buffer changes and rebuilt wholesale after
// bulk mutation.
type Surface interface {
	SetNRGBA(x, y int, c color.NRGBA)
	Replace(buf *image.NRGBA)
	Release()
}

// SurfaceFactory allocates a surface matching a canvas of the given size.
type SurfaceFactory func(width, height int) (Surface, error)

// Canvas is the logical artwork: a dense row-major buffer of non-premultiplied
// pixels, its renderable surface and the view transform used to display it.
type Canvas struct {
	buf     *image.NRGBA
	surface Surface
	factory SurfaceFactory

	// PixelSize is the integer fit-to-window factor in logical units.
	PixelSize int
	// Scale is device pixels per cell at zoom 1.0.
	Scale float64
	// Zoom magnifies the view beyond Scale. Never below 1.
	Zoom float64
	// TranslateX and TranslateY pan the view, in cells.
	TranslateX int
	TranslateY int
	// OffsetX and OffsetY place the viewport inside the window, in device pixels.
	OffsetX int
	OffsetY int
	Margins Margins
}

// New creates a transparent canvas. A nil factory uses NewMemorySurface.
func New(width, height int, factory SurfaceFactory) (*Canvas, error) {
	if factory == nil {
		factory = NewMemorySurface
	}
	c := &Canvas{
		factory:   factory,
		PixelSize: 1,
		Scale:     1,
		Zoom:      1,
		Margins:   DefaultMargins(),
	}
	if err := c.Reload(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the buffer and surface with fresh transparent ones of the
// given size. The view transform is left alone; callers re-fit afterwards.
// On error the canvas keeps its previous buffer and surface.
func (c *Canvas) Reload(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s, err := c.factory(width, height)
	if err != nil {
		return fmt.Errorf("allocate %dx%d surface: %w", width, height, err)
	}
	if c.surface != nil {
		c.surface.Release()
	}
	c.buf = image.NewNRGBA(image.Rect(0, 0, width, height))
	c.surface = s
	return nil
}

// Load resizes the canvas to src and copies its pixels into the buffer.
// The surface is not touched; call RepaintAll once the load succeeds.
func (c *Canvas) Load(src image.Image) error {
	b := src.Bounds()
	if err := c.Reload(b.Dx(), b.Dy()); err != nil {
		return err
	}
	if n, ok := src.(*image.NRGBA); ok {
		// Byte copy keeps low-alpha channels exact.
		for y := 0; y < b.Dy(); y++ {
			i := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(c.buf.Pix[y*c.buf.Stride:(y+1)*c.buf.Stride], n.Pix[i:i+4*b.Dx()])
		}
		return nil
	}
	draw.Draw(c.buf, c.buf.Rect, src, b.Min, draw.Src)
	return nil
}

// WritePixel overwrites one cell. Out of range coordinates are ignored.
func (c *Canvas) WritePixel(x, y int, p color.NRGBA) {
	if !image.Pt(x, y).In(c.buf.Rect) {
		return
	}
	c.buf.SetNRGBA(x, y, p)
	c.surface.SetNRGBA(x, y, p)
}

// At returns the stored value of a cell, or transparent black when out of range.
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.buf.NRGBAAt(x, y)
}

// RepaintAll rebuilds the surface from the buffer.
func (c *Canvas) RepaintAll() {
	c.surface.Replace(c.buf)
}

// Release frees the surface. The canvas must not be drawn afterwards.
func (c *Canvas) Release() {
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
}

func (c *Canvas) Width() int  { return c.buf.Rect.Dx() }
func (c *Canvas) Height() int { return c.buf.Rect.Dy() }

// Buffer exposes the pixel buffer for encoding. Callers must not retain it
// across a Reload.
func (c *Canvas) Buffer() *image.NRGBA { return c.buf }

func (c *Canvas) Surface() Surface { return c.surface }
