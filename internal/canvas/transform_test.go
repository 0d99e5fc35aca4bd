package canvas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h, nil)
	require.NoError(t, err)
	return c
}

func TestScreenToCanvas(t *testing.T) {
	c := newCanvas(t, 16, 16)
	c.Scale = 2

	x, y := c.ScreenToCanvas(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = c.ScreenToCanvas(2, 2)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
}

func TestScreenToCanvasWithViewport(t *testing.T) {
	c := newCanvas(t, 100, 100)
	c.Scale = 4
	c.Zoom = 2
	c.OffsetX = 40
	c.OffsetY = 20
	c.TranslateX = 10
	c.TranslateY = 5

	x, y := c.ScreenToCanvas(40, 20)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 5.0, y)

	x, y = c.ScreenToCanvas(40+8*3, 20+8*7)
	assert.Equal(t, 13.0, x)
	assert.Equal(t, 12.0, y)
}

func TestZoomNeverBelowOne(t *testing.T) {
	c := newCanvas(t, 32, 32)
	for i := 0; i < 100; i++ {
		c.ZoomBy(-7)
		assert.GreaterOrEqual(t, c.Zoom, 1.0)
	}
	assert.Equal(t, 1.0, c.Zoom)

	c.ZoomBy(5)
	assert.InDelta(t, 1.5, c.Zoom, 1e-9)
}

func TestZoomReclampsPan(t *testing.T) {
	c := newCanvas(t, 100, 100)
	c.Zoom = 4
	c.Translate(1000, 1000)
	assert.Equal(t, 75, c.TranslateX)

	c.ZoomBy(-30)
	assert.Equal(t, 1.0, c.Zoom)
	assert.Equal(t, 0, c.TranslateX)
	assert.Equal(t, 0, c.TranslateY)
}

func TestPanSaturates(t *testing.T) {
	c := newCanvas(t, 100, 100)
	c.Zoom = 2
	c.Translate(1<<20, 1<<20)
	assert.Equal(t, 50, c.TranslateX)
	assert.Equal(t, 50, c.TranslateY)

	c.Translate(5, 5)
	assert.Equal(t, 50, c.TranslateX)

	c.Translate(-1<<20, -3)
	assert.Equal(t, 0, c.TranslateX)
	assert.Equal(t, 47, c.TranslateY)
}

func TestPanAtUnitZoomIsPinned(t *testing.T) {
	c := newCanvas(t, 100, 60)
	c.Translate(5, 5)
	assert.Equal(t, 0, c.TranslateX)
	assert.Equal(t, 0, c.TranslateY)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		winW      int
		winH      int
		density   float64
		pixelSize int
		scale     float64
		offset    image.Point
	}{
		{"default canvas", 256, 256, 800, 600, 1, 1, 1, image.Pt(272, 75)},
		{"high density", 256, 256, 800, 600, 2, 1, 2, image.Pt(544, 150)},
		{"small canvas", 100, 100, 800, 600, 1, 5, 5, image.Pt(150, 75)},
		{"wide canvas", 390, 10, 800, 600, 1, 2, 2, image.Pt(10, 75)},
		{"tiny window", 256, 256, 100, 100, 1.5, 1, 1.5, image.Pt(-117, 112)},
		{"odd spare width halves before scaling", 255, 10, 800, 600, 2, 3, 6, image.Pt(34, 150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas(t, tt.w, tt.h)
			c.Zoom = 3
			c.TranslateX = 7
			c.Fit(tt.winW, tt.winH, tt.density)
			assert.Equal(t, tt.pixelSize, c.PixelSize)
			assert.Equal(t, tt.scale, c.Scale)
			assert.Equal(t, tt.offset, image.Pt(c.OffsetX, c.OffsetY))
			assert.Equal(t, 3.0, c.Zoom)
			assert.Equal(t, 7, c.TranslateX)
		})
	}
}

func TestViewRectsAreInverse(t *testing.T) {
	c := newCanvas(t, 64, 64)
	c.Fit(800, 600, 1)
	c.Zoom = 2
	c.Translate(10, 20)

	src := c.SourceRect()
	dst := c.DestRect()
	assert.Equal(t, image.Rect(10, 20, 42, 52), src)

	x, y := c.ScreenToCanvas(float64(dst.Min.X), float64(dst.Min.Y))
	assert.Equal(t, float64(src.Min.X), x)
	assert.Equal(t, float64(src.Min.Y), y)
	x, y = c.ScreenToCanvas(float64(dst.Max.X), float64(dst.Max.Y))
	assert.Equal(t, float64(src.Max.X), x)
	assert.Equal(t, float64(src.Max.Y), y)
}
