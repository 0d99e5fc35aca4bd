package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestIconSizes(t *testing.T) {
	sizes := IconSizes()
	want := []int{16, 32, 48, 64, 128, 256}
	if len(sizes) != len(want) {
		t.Fatalf("sizes %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("sizes %v, want %v", sizes, want)
		}
	}
}

func TestIconImageMatchesSize(t *testing.T) {
	for _, size := range IconSizes() {
		img, err := IconImage(size)
		if err != nil {
			t.Fatalf("IconImage(%d): %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Fatalf("icon %d has bounds %v", size, b)
		}
	}
	if _, err := IconImage(17); err == nil {
		t.Fatal("expected error for missing size")
	}
}

func TestIconPNGIsCopy(t *testing.T) {
	a, err := IconPNG(32)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(a)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	a[0] = 0
	b, _ := IconPNG(32)
	if b[0] == 0 {
		t.Fatal("IconPNG returned shared bytes")
	}
}

func TestIconSVG(t *testing.T) {
	data, err := IconSVG()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatal("not an svg")
	}
}

func TestIconSizeParsing(t *testing.T) {
	cases := map[string]int{"pixelart-64.png": 64, "a-b-16.png": 16}
	for name, want := range cases {
		if got, ok := iconSize(name); !ok || got != want {
			t.Fatalf("iconSize(%q) = %d %v", name, got, ok)
		}
	}
	for _, name := range []string{"pixelart.png", "pixelart-.png", "pixelart-x.png", "pixelart-0.png"} {
		if _, ok := iconSize(name); ok {
			t.Fatalf("iconSize(%q) should fail", name)
		}
	}
}
