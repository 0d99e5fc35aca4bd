package pen

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/input"
)

var red = color.NRGBA{R: 255, A: 255}

func newCanvas(t *testing.T, w, h int) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(w, h, nil)
	require.NoError(t, err)
	return c
}

func painted(c *canvas.Canvas) map[image.Point]color.NRGBA {
	out := map[image.Point]color.NRGBA{}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if v := c.At(x, y); v != (color.NRGBA{}) {
				out[image.Pt(x, y)] = v
			}
		}
	}
	return out
}

func TestNewClampsSize(t *testing.T) {
	assert.Equal(t, 1, New(0, red).Size)
	assert.Equal(t, 4, New(4, red).Size)
	assert.Equal(t, MaxSize, New(1000, red).Size)

	p := New(2, red)
	p.Resize(-5)
	assert.Equal(t, 1, p.Size)
	p.Resize(3)
	assert.Equal(t, 4, p.Size)
}

func TestApplyAtFootprintGrowsTowardPositive(t *testing.T) {
	c := newCanvas(t, 8, 8)
	p := New(2, red)
	n := p.ApplyAt(c, 3, 4)
	assert.Equal(t, 4, n)
	assert.Equal(t, map[image.Point]color.NRGBA{
		{3, 4}: red, {4, 4}: red,
		{3, 5}: red, {4, 5}: red,
	}, painted(c))
}

func TestApplyAtClipsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		size int
		x, y int
		want int
	}{
		{"bottom right corner", 3, 9, 9, 1},
		{"right edge", 3, 9, 4, 3},
		{"top left outside", 3, -1, -1, 4},
		{"fully outside", 2, 10, 0, 0},
		{"far negative", 4, -10, -10, 0},
		{"interior", 3, 2, 2, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas(t, 10, 10)
			p := New(tt.size, red)
			assert.Equal(t, tt.want, p.ApplyAt(c, tt.x, tt.y))
			assert.Len(t, painted(c), tt.want)
		})
	}
}

func TestStrokeInterpolatesAcrossTicks(t *testing.T) {
	c := newCanvas(t, 8, 8)
	p := New(1, red)
	var h input.History

	first := input.Sample{X: 0, Y: 0, Buttons: input.ButtonLeft}
	p.Stroke(c, h.Previous(), first)
	h.Push(first)

	second := input.Sample{X: 0, Y: 3, Buttons: input.ButtonLeft}
	p.Stroke(c, h.Previous(), second)
	h.Push(second)

	assert.Equal(t, map[image.Point]color.NRGBA{
		{0, 0}: red, {0, 1}: red, {0, 2}: red, {0, 3}: red,
	}, painted(c))
}

func TestStrokeFastDiagonalLeavesNoGaps(t *testing.T) {
	c := newCanvas(t, 32, 32)
	p := New(1, red)
	prev := input.Sample{X: 1, Y: 1, Buttons: input.ButtonLeft}
	cur := input.Sample{X: 21, Y: 9, Buttons: input.ButtonLeft}
	n := p.Stroke(c, prev, cur)

	// 20 interpolated steps plus the single current application.
	assert.Equal(t, 21, n)
	cols := map[int]bool{}
	for pt := range painted(c) {
		cols[pt.X] = true
	}
	for x := 2; x <= 21; x++ {
		assert.True(t, cols[x], "column %d painted", x)
	}
	assert.Equal(t, red, c.At(21, 9))
}

func TestStrokeWithoutMovementPaintsOnce(t *testing.T) {
	c := newCanvas(t, 4, 4)
	p := New(1, red)
	s := input.Sample{X: 2.5, Y: 1.2, Buttons: input.ButtonLeft}
	assert.Equal(t, 1, p.Stroke(c, s, s))
	assert.Equal(t, map[image.Point]color.NRGBA{{2, 1}: red}, painted(c))
}

func TestStrokeNeedsPreviousPaintToInterpolate(t *testing.T) {
	c := newCanvas(t, 8, 8)
	p := New(1, red)
	prev := input.Sample{X: 0, Y: 0}
	cur := input.Sample{X: 5, Y: 0, Buttons: input.ButtonLeft}
	assert.Equal(t, 1, p.Stroke(c, prev, cur))
	assert.Equal(t, map[image.Point]color.NRGBA{{5, 0}: red}, painted(c))
}

func TestStrokeIdleButtonsDoNothing(t *testing.T) {
	c := newCanvas(t, 8, 8)
	p := New(1, red)
	prev := input.Sample{X: 0, Y: 0, Buttons: input.ButtonLeft}
	cur := input.Sample{X: 5, Y: 0, Buttons: input.ButtonMiddle}
	assert.Zero(t, p.Stroke(c, prev, cur))
	assert.Empty(t, painted(c))
}

func TestStrokeOffCanvasStillInterpolates(t *testing.T) {
	c := newCanvas(t, 8, 8)
	p := New(1, red)
	prev := input.Sample{X: 2, Y: 2, Buttons: input.ButtonLeft}
	cur := input.Sample{X: -3, Y: 2, Buttons: input.ButtonLeft}
	n := p.Stroke(c, prev, cur)

	assert.Equal(t, 2, n)
	assert.Equal(t, map[image.Point]color.NRGBA{{1, 2}: red, {0, 2}: red}, painted(c))
}

func TestStrokeEraseRestoresColor(t *testing.T) {
	c := newCanvas(t, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c.WritePixel(x, y, red)
		}
	}
	p := New(2, DefaultColor)
	before := p.Color

	prev := input.Sample{X: 0, Y: 0, Buttons: input.ButtonRight}
	cur := input.Sample{X: 4, Y: 0, Buttons: input.ButtonRight}
	n := p.Stroke(c, prev, cur)

	assert.Equal(t, before, p.Color)
	assert.Equal(t, 20, n)
	for x := 1; x <= 5; x++ {
		assert.Equal(t, color.NRGBA{}, c.At(x, 0))
		assert.Equal(t, color.NRGBA{}, c.At(x, 1))
	}
	assert.Equal(t, red, c.At(0, 0), "start of segment is not redrawn")
	assert.Equal(t, red, c.At(6, 0))
}

func TestStrokeBothButtonsErase(t *testing.T) {
	c := newCanvas(t, 4, 4)
	c.WritePixel(1, 1, red)
	p := New(1, DefaultColor)
	s := input.Sample{X: 1, Y: 1, Buttons: input.ButtonLeft | input.ButtonRight}
	p.Stroke(c, input.Sample{}, s)
	assert.Equal(t, color.NRGBA{}, c.At(1, 1))
	assert.Equal(t, DefaultColor, p.Color)
}

func TestStrokeHonorsTransform(t *testing.T) {
	c := newCanvas(t, 16, 16)
	c.Scale = 4
	c.OffsetX = 100
	c.OffsetY = 50
	p := New(1, red)
	cur := input.Sample{X: 100 + 4*3 + 1, Y: 50 + 4*7 + 3, Buttons: input.ButtonLeft}
	p.Stroke(c, input.Sample{}, cur)
	assert.Equal(t, map[image.Point]color.NRGBA{{3, 7}: red}, painted(c))
}
