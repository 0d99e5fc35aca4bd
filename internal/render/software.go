package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixelart/internal/theme"
)

// Software composites frames on the CPU. The checkerboard and shadow are
// cached until the canvas rectangle moves or resizes.
type Software struct {
	Theme  *theme.Theme
	Faces  *Faces
	Shadow bool

	checker     *image.RGBA
	checkerSize image.Point
	checkerCell int
	shadow      ShadowResult
	shadowSize  image.Point
}

func NewSoftware(th *theme.Theme, faces *Faces, shadow bool) *Software {
	if th == nil {
		th = theme.Default()
	}
	if faces == nil {
		faces = &Faces{}
	}
	return &Software{Theme: th, Faces: faces, Shadow: shadow}
}

// Draw renders the whole frame into dst.
func (s *Software) Draw(dst *image.RGBA, f *Frame) {
	s.DrawUnderlay(dst, f)
	s.DrawCanvas(dst, f)
	s.DrawOverlay(dst, f)
}

// DrawUnderlay paints everything below the canvas: window background, drop
// shadow and the checkerboard seen through transparent cells.
func (s *Software) DrawUnderlay(dst *image.RGBA, f *Frame) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.Theme.Background), image.Point{}, draw.Src)
	if f.Dest.Empty() {
		return
	}
	if s.Shadow {
		if s.shadow.Image == nil || s.shadowSize != f.Dest.Size() {
			s.shadowSize = f.Dest.Size()
			s.shadow = DropShadow(s.shadowSize, DefaultShadowOptions(f.density()), s.Theme.Shadow)
		}
		if img := s.shadow.Image; img != nil {
			at := f.Dest.Min.Add(s.shadow.Offset)
			draw.Draw(dst, img.Bounds().Add(at), img, image.Point{}, draw.Over)
		}
	}
	cell := int(8 * f.density())
	if s.checker == nil || s.checkerSize != f.Dest.Size() || s.checkerCell != cell {
		s.checkerSize, s.checkerCell = f.Dest.Size(), cell
		s.checker = image.NewRGBA(image.Rectangle{Max: s.checkerSize})
		drawCheckerboard(s.checker, s.checker.Bounds(), cell, s.Theme.CheckerLight, s.Theme.CheckerDark)
	}
	draw.Draw(dst, f.Dest, s.checker, image.Point{}, draw.Src)
}

// DrawCanvas scales the visible canvas region into the destination rectangle
// with nearest-neighbour sampling so cells stay crisp.
func (s *Software) DrawCanvas(dst *image.RGBA, f *Frame) {
	src, ok := f.Canvas.(imageSurface)
	if !ok || f.Dest.Empty() || f.Source.Empty() {
		return
	}
	img := src.Image()
	if img == nil {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, f.Dest, img, f.Source, draw.Over, nil)
}

// DrawOverlay paints everything above the canvas: its border, the buttons,
// text labels and the toast message. It only draws with Over so it can
// target a transparent layer.
func (s *Software) DrawOverlay(dst *image.RGBA, f *Frame) {
	d := f.density()
	if !f.Dest.Empty() {
		strokeRect(dst, f.Dest, s.Theme.CanvasBorder, int(d+0.5))
	}
	for _, b := range f.Buttons {
		if b.Image != nil {
			draw.Draw(dst, b.Rect, b.Image, image.Point{}, draw.Over)
		}
	}
	for _, l := range f.Labels {
		drawLabel(dst, l, s.Faces.Face(l.Size))
	}
	if f.Message != "" {
		drawMessage(dst, f.Message, s.Faces.Face(28*d), s.Theme.MessageBackground, s.Theme.MessageText, int(8*d))
	}
}
