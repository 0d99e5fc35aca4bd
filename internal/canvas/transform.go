package canvas

import (
	"image"
	"math"
)

// Margins reserve window space around the fitted canvas, in logical units.
type Margins struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// DefaultMargins leaves room for the title and buttons above the canvas and
// the instructions below it.
func DefaultMargins() Margins {
	return Margins{Left: 10, Right: 10, Top: 75, Bottom: 20}
}

// ScreenToCanvas maps a device pixel position to real-valued cell coordinates.
// It is the inverse of the SourceRect to DestRect mapping used for display.
func (c *Canvas) ScreenToCanvas(x, y float64) (float64, float64) {
	s := c.Scale * c.Zoom
	cx := (x-float64(c.OffsetX))/s + float64(c.TranslateX)
	cy := (y-float64(c.OffsetY))/s + float64(c.TranslateY)
	return cx, cy
}

// Contains reports whether real-valued cell coordinates fall on the canvas.
func (c *Canvas) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(c.Width()) && y < float64(c.Height())
}

// Translate pans by a delta in cells and clamps the pan so the visible region
// stays inside the canvas. A zero delta only re-clamps.
func (c *Canvas) Translate(dx, dy int) {
	c.TranslateX = clampInt(c.TranslateX+dx, 0, panLimit(c.Width(), c.Zoom))
	c.TranslateY = clampInt(c.TranslateY+dy, 0, panLimit(c.Height(), c.Zoom))
}

// ZoomBy applies a scroll wheel delta: ten wheel units add 1.0 to the zoom,
// which never drops below 1.
func (c *Canvas) ZoomBy(wheel float64) {
	c.Zoom += wheel / 10
	if c.Zoom < 1 {
		c.Zoom = 1
	}
	c.Translate(0, 0)
}

// Fit computes the largest integer cell size that fits the canvas and its
// margins in a window of winW by winH logical units, then places the canvas
// horizontally centered below the top margin. Zoom and pan are unchanged.
func (c *Canvas) Fit(winW, winH int, density float64) {
	if density <= 0 {
		density = 1
	}
	m := c.Margins
	availW := float64(winW - m.Left - m.Right)
	availH := float64(winH - m.Top - m.Bottom)
	px := int(math.Min(availW/float64(c.Width()), availH/float64(c.Height())))
	if px < 1 {
		px = 1
	}
	c.PixelSize = px
	c.Scale = float64(px) * density
	extraW := winW - px*c.Width()
	c.OffsetX = int(float64(extraW/2) * density)
	c.OffsetY = int(float64(m.Top) * density)
}

// SourceRect is the visible region of the canvas in cells.
func (c *Canvas) SourceRect() image.Rectangle {
	w := int(float64(c.Width()) / c.Zoom)
	h := int(float64(c.Height()) / c.Zoom)
	return image.Rect(c.TranslateX, c.TranslateY, c.TranslateX+w, c.TranslateY+h)
}

// DestRect is where the visible region is drawn, in device pixels.
func (c *Canvas) DestRect() image.Rectangle {
	w := int(float64(c.Width()) * c.Scale)
	h := int(float64(c.Height()) * c.Scale)
	return image.Rect(c.OffsetX, c.OffsetY, c.OffsetX+w, c.OffsetY+h)
}

func panLimit(dim int, zoom float64) int {
	d := float64(dim)
	return int((d*zoom - d) / zoom)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
