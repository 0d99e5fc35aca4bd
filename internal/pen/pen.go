// Package pen paints square footprints onto a canvas and joins consecutive
// pointer samples into gap-free strokes.
package pen

import (
	"image/color"
	"math"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/input"
)

const (
	DefaultSize = 1
	MaxSize     = 32
)

var (
	// DefaultColor is a translucent aqua.
	DefaultColor = color.NRGBA{R: 0, G: 255, B: 255, A: 120}
	// Eraser is what the right button paints with.
	Eraser = color.NRGBA{}
)

// Pen is the current brush.
type Pen struct {
	Size  int
	Color color.NRGBA
}

// New returns a pen, clamping size into [1, MaxSize].
func New(size int, c color.NRGBA) *Pen {
	p := &Pen{Size: DefaultSize, Color: c}
	p.Resize(size - p.Size)
	return p
}

// Resize grows or shrinks the footprint, staying within [1, MaxSize].
func (p *Pen) Resize(delta int) {
	p.Size += delta
	if p.Size < 1 {
		p.Size = 1
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
}

// ApplyAt paints the Size by Size square whose top-left cell is (x, y).
// The square grows toward +X and +Y only. Cells off the canvas are skipped
// and not counted.
func (p *Pen) ApplyAt(c *canvas.Canvas, x, y int) int {
	w, h := c.Width(), c.Height()
	n := 0
	for cy := y; cy < y+p.Size; cy++ {
		if cy < 0 || cy >= h {
			continue
		}
		for cx := x; cx < x+p.Size; cx++ {
			if cx < 0 || cx >= w {
				continue
			}
			c.WritePixel(cx, cy, p.Color)
			n++
		}
	}
	return n
}

// Stroke paints the segment ending at cur. cur and prev are device pixel
// samples from consecutive ticks. The current cell is painted when it lies on
// the canvas; if prev also had a paint button held, every unit step from prev
// to cur is painted too. Holding the right button erases; when both buttons
// are held the eraser wins. Stroke returns the number of cells written.
func (p *Pen) Stroke(c *canvas.Canvas, prev, cur input.Sample) int {
	if !cur.Buttons.Paint() {
		return 0
	}
	if cur.Buttons.Has(input.ButtonRight) {
		saved := p.Color
		p.Color = Eraser
		defer func() { p.Color = saved }()
	}

	n := 0
	x, y := c.ScreenToCanvas(cur.X, cur.Y)
	if c.Contains(x, y) {
		n += p.ApplyAt(c, int(math.Floor(x)), int(math.Floor(y)))
	}
	if prev.Buttons.Paint() {
		px, py := c.ScreenToCanvas(prev.X, prev.Y)
		n += p.line(c, px, py, x, y)
	}
	return n
}

// line steps from (x0, y0) toward (x1, y1) one cell at a time along the
// dominant axis. The start point is not painted.
func (p *Pen) line(c *canvas.Canvas, x0, y0, x1, y1 float64) int {
	dx, dy := x1-x0, y1-y0
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		return 0
	}
	ix, iy := dx/steps, dy/steps
	n := 0
	for i := 1.0; i <= steps; i++ {
		n += p.ApplyAt(c, int(math.Floor(x0+ix*i)), int(math.Floor(y0+iy*i)))
	}
	return n
}
