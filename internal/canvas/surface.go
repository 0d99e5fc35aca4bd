package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// MemorySurface keeps the renderable copy as a premultiplied RGBA image. It is
// what software renderers sample from.
type MemorySurface struct {
	img *image.RGBA
}

var _ Surface = (*MemorySurface)(nil)

// NewMemorySurface is the default SurfaceFactory.
func NewMemorySurface(width, height int) (Surface, error) {
	return &MemorySurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

func (m *MemorySurface) SetNRGBA(x, y int, c color.NRGBA) {
	if m.img == nil {
		return
	}
	m.img.Set(x, y, c)
}

func (m *MemorySurface) Replace(buf *image.NRGBA) {
	if m.img == nil {
		return
	}
	draw.Draw(m.img, m.img.Rect, buf, buf.Rect.Min, draw.Src)
}

func (m *MemorySurface) Release() { m.img = nil }

// Image returns the backing image, or nil once released.
func (m *MemorySurface) Image() *image.RGBA { return m.img }
