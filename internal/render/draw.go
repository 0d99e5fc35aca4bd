package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	if size < 1 {
		size = 1
	}
	lightSrc := image.NewUniform(light)
	darkSrc := image.NewUniform(dark)
	for y := rect.Min.Y; y < rect.Max.Y; y += size {
		for x := rect.Min.X; x < rect.Max.X; x += size {
			src := lightSrc
			if ((x-rect.Min.X)/size+(y-rect.Min.Y)/size)%2 == 1 {
				src = darkSrc
			}
			cell := image.Rect(x, y, x+size, y+size).Intersect(rect)
			draw.Draw(dst, cell, src, image.Point{}, draw.Src)
		}
	}
}

// strokeRect draws a border of the given thickness just outside r.
func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	if thick < 1 {
		thick = 1
	}
	src := image.NewUniform(col)
	o := r.Inset(-thick)
	for _, edge := range []image.Rectangle{
		image.Rect(o.Min.X, o.Min.Y, o.Max.X, r.Min.Y),
		image.Rect(o.Min.X, r.Max.Y, o.Max.X, o.Max.Y),
		image.Rect(o.Min.X, r.Min.Y, r.Min.X, r.Max.Y),
		image.Rect(r.Max.X, r.Min.Y, o.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, edge, src, image.Point{}, draw.Over)
	}
}

// drawLabel renders l with face. Each line advances by the face height.
func drawLabel(dst *image.RGBA, l Label, face font.Face) {
	if face == nil || l.Text == "" {
		return
	}
	m := face.Metrics()
	lineH := m.Height.Ceil()
	ascent := m.Ascent.Ceil()
	lines := strings.Split(l.Text, "\n")

	top := l.Pos.Y
	if l.Anchor == AnchorBottomLeft {
		top = l.Pos.Y - lineH*len(lines)
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(l.Color), Face: face}
	for i, line := range lines {
		x := l.Pos.X
		if l.Anchor == AnchorTopCenter {
			x -= d.MeasureString(line).Ceil() / 2
		}
		d.Dot = fixed.P(x, top+i*lineH+ascent)
		d.DrawString(line)
	}
}

// drawMessage draws a boxed toast centered in dst.
func drawMessage(dst *image.RGBA, msg string, face font.Face, bg, fg color.RGBA, pad int) {
	if face == nil || msg == "" {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	b := dst.Bounds()
	wmsg := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := b.Min.X + (b.Dx()-wmsg)/2
	py := b.Min.Y + (b.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-pad, py-ascent-pad, px+wmsg+pad, py+descent+pad)
	draw.Draw(dst, rect, image.NewUniform(bg), image.Point{}, draw.Over)
	strokeRect(dst, rect, fg, max(1, pad/4))
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
