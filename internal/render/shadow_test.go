package render

import (
	"image"
	"image/color"
	"testing"
)

func TestDropShadowExpandsBounds(t *testing.T) {
	opts := ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	res := DropShadow(image.Pt(10, 10), opts, color.RGBA{A: 200})
	if res.Image == nil {
		t.Fatal("expected shadow image")
	}
	expected := image.Rect(0, 0, 18, 18)
	if !res.Image.Bounds().Eq(expected) {
		t.Fatalf("unexpected bounds %v, want %v", res.Image.Bounds(), expected)
	}
	if want := image.Pt(4, 2); res.Offset != want {
		t.Fatalf("offset %v, want %v", res.Offset, want)
	}
	// The middle of the rectangle is fully covered by the mask.
	if got := res.Image.RGBAAt(9, 9).A; got != 100 {
		t.Fatalf("center alpha %d, want 100", got)
	}
}

func TestDropShadowEmptyWhenOpacityZero(t *testing.T) {
	res := DropShadow(image.Pt(4, 4), ShadowOptions{Radius: 12, Offset: image.Pt(20, 10), Opacity: 0}, color.RGBA{A: 255})
	if res.Image != nil {
		t.Fatalf("expected no image, got %v", res.Image.Bounds())
	}
	res = DropShadow(image.Pt(0, 4), DefaultShadowOptions(1), color.RGBA{A: 255})
	if res.Image != nil {
		t.Fatal("expected no image for empty size")
	}
}

func TestDropShadowBlurredEdges(t *testing.T) {
	opts := ShadowOptions{Radius: 2, Offset: image.Pt(3, 0), Opacity: 1}
	res := DropShadow(image.Pt(2, 2), opts, color.RGBA{A: 255})
	img := res.Image
	if img == nil {
		t.Fatal("expected shadow image")
	}
	corner := img.RGBAAt(0, 0).A
	center := img.RGBAAt(3, 3).A
	if corner == 0 {
		t.Fatal("expected blur to reach the padded corner")
	}
	if corner >= center {
		t.Fatalf("expected falloff, corner %d center %d", corner, center)
	}
}

func TestBlurGrayZeroRadiusCopies(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.Pix = []uint8{0, 255, 0}
	out := blurGray(src, 0)
	for i, v := range src.Pix {
		if out.Pix[i] != v {
			t.Fatalf("pix %d = %d, want %d", i, out.Pix[i], v)
		}
	}
	out.Pix[1] = 1
	if src.Pix[1] != 255 {
		t.Fatal("expected a copy, source was modified")
	}
}

func TestBlurGrayAveragesWindow(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.Pix = []uint8{0, 90, 0}
	out := blurGray(src, 1)
	// Edge windows clip: left = (0+90)/2, middle = 90/3.
	want := []uint8{45, 30, 45}
	for i := range want {
		if out.Pix[i] != want[i] {
			t.Fatalf("pix %d = %d, want %d", i, out.Pix[i], want[i])
		}
	}
}
