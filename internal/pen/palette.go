package pen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name  string
	Color color.NRGBA
}

var palette = []Swatch{
	{"Aqua", DefaultColor},
	{"Black", opaque(colornames.Black)},
	{"White", opaque(colornames.White)},
	{"Red", opaque(colornames.Red)},
	{"Orange", opaque(colornames.Orange)},
	{"Yellow", opaque(colornames.Yellow)},
	{"Green", opaque(colornames.Green)},
	{"Blue", opaque(colornames.Blue)},
	{"Purple", opaque(colornames.Purple)},
	{"Magenta", opaque(colornames.Magenta)},
	{"Gray", opaque(colornames.Gray)},
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Palette returns a copy of the colors the color button cycles through.
func Palette() []Swatch {
	out := make([]Swatch, len(palette))
	copy(out, palette)
	return out
}

// NextColor returns the palette entry after c, wrapping around. Colors not in
// the palette advance to its first entry.
func NextColor(c color.NRGBA) color.NRGBA {
	for i, s := range palette {
		if s.Color == c {
			return palette[(i+1)%len(palette)].Color
		}
	}
	return palette[0].Color
}

// ParseColor accepts a palette name, an SVG color name or #RRGGBB / #RRGGBBAA.
func ParseColor(s string) (color.NRGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.NRGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, sw := range palette {
		if strings.EqualFold(sw.Name, spec) {
			return sw.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return opaque(c), nil
	}
	if !strings.HasPrefix(spec, "#") || (len(spec) != 7 && len(spec) != 9) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(spec[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(spec) == 7 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c the way ParseColor reads it back.
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
