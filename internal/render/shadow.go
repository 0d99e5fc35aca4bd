package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow behind the canvas.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// ShadowResult is a rendered shadow and where to place it.
type ShadowResult struct {
	Image *image.RGBA
	// Offset is the position of Image's top-left corner relative to the
	// top-left corner of the rectangle casting the shadow.
	Offset image.Point
}

// DefaultShadowOptions scales a soft bottom-right shadow by density.
func DefaultShadowOptions(density float64) ShadowOptions {
	if density <= 0 {
		density = 1
	}
	d := int(density + 0.5)
	return ShadowOptions{
		Radius:  6 * d,
		Offset:  image.Pt(4*d, 4*d),
		Opacity: 1,
	}
}

// DropShadow renders the blurred shadow of an opaque rectangle of the given
// size in col. An empty size or zero opacity yields an empty result.
func DropShadow(size image.Point, opts ShadowOptions, col color.RGBA) ShadowResult {
	if size.X <= 0 || size.Y <= 0 || opts.Opacity <= 0 || col.A == 0 {
		return ShadowResult{}
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	bounds := image.Rect(0, 0, size.X+2*radius, size.Y+2*radius)
	mask := image.NewGray(bounds)
	draw.Draw(mask, image.Rect(radius, radius, radius+size.X, radius+size.Y), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	blurred := blurGray(mask, radius)

	a := uint8(float64(col.A)*opacity + 0.5)
	tint := color.NRGBA{R: col.R, G: col.G, B: col.B, A: a}
	dst := image.NewRGBA(bounds)
	draw.DrawMask(dst, bounds, image.NewUniform(tint), image.Point{}, blurred, image.Point{}, draw.Over)

	return ShadowResult{Image: dst, Offset: opts.Offset.Sub(image.Pt(radius, radius))}
}

// blurGray applies a separable box blur using running sums per row and column.
func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(0, x-radius), min(w-1, x+radius)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(0, y-radius), min(h-1, y+radius)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}
