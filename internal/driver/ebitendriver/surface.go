package ebitendriver

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/pixelart/internal/canvas"
)

// Surface keeps the canvas in a GPU image.
type Surface struct {
	img     *ebiten.Image
	scratch *image.RGBA
}

var _ canvas.Surface = (*Surface)(nil)

// NewSurface is the ebiten SurfaceFactory.
func NewSurface(width, height int) (canvas.Surface, error) {
	return &Surface{img: ebiten.NewImage(width, height)}, nil
}

func (s *Surface) SetNRGBA(x, y int, c color.NRGBA) {
	if s.img != nil {
		s.img.Set(x, y, c)
	}
}

// Replace uploads the whole buffer at once.
func (s *Surface) Replace(buf *image.NRGBA) {
	if s.img == nil {
		return
	}
	if s.scratch == nil || s.scratch.Rect != buf.Rect {
		s.scratch = image.NewRGBA(buf.Rect)
	}
	draw.Draw(s.scratch, buf.Rect, buf, buf.Rect.Min, draw.Src)
	s.img.WritePixels(s.scratch.Pix)
}

func (s *Surface) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.scratch = nil
}

// Image is the GPU image, nil after Release.
func (s *Surface) Image() *ebiten.Image { return s.img }
