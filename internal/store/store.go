// Package store reads and writes canvas buffers as image files. The format is
// chosen from the file extension; PNG is used when the extension is unknown
// or missing.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for an explicit format that has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format names an on-disk encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists the encodings Save understands.
func Formats() []Format { return []Format{FormatPNG, FormatBMP, FormatTIFF} }

// FormatFor picks the encoding for a path from its extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	}
	return FormatPNG
}

// Encode writes img in the given format. BMP has no alpha channel, so it only
// accepts opaque images.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		if !opaque(img) {
			return fmt.Errorf("%w: bmp cannot store translucent cells", ErrUnsupportedFormat)
		}
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// Decode reads any registered image format into a zero-origin,
// non-premultiplied buffer.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	src, name, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return ToNRGBA(src), name, nil
}

// ToNRGBA copies img into a new zero-origin NRGBA buffer. NRGBA sources are
// copied byte for byte; other models go through color conversion.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:(y+1)*out.Stride], src.Pix[i:i+4*b.Dx()])
		}
		return out
	}
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	return out
}

// Save writes img to path, replacing any existing file. The image is fully
// encoded before the file is touched so a failed encode never truncates the
// previous image.
func Save(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatFor(path)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load decodes the image at path completely before returning it.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
