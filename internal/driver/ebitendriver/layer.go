package ebitendriver

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// layer is a CPU-drawn image mirrored to the GPU. It is only redrawn and
// uploaded when its key changes.
type layer struct {
	key string
	cpu *image.RGBA
	gpu *ebiten.Image
}

// update redraws the layer with paint when key differs from the last call.
func (l *layer) update(size image.Point, key string, paint func(dst *image.RGBA)) *ebiten.Image {
	if l.cpu == nil || l.cpu.Rect.Size() != size {
		l.cpu = image.NewRGBA(image.Rectangle{Max: size})
		if l.gpu != nil {
			l.gpu.Deallocate()
		}
		l.gpu = ebiten.NewImage(size.X, size.Y)
		l.key = ""
	}
	if key != l.key || key == "" {
		clear(l.cpu.Pix)
		paint(l.cpu)
		l.gpu.WritePixels(l.cpu.Pix)
		l.key = key
	}
	return l.gpu
}
