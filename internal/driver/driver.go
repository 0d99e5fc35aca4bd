// Package driver holds what the window drivers share: their settings and the
// translation from window size to density.
package driver

import (
	"github.com/example/pixelart/internal/editor"
	"github.com/example/pixelart/internal/theme"
)

// Config describes the window a driver opens and the editor it hosts.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
	// HighDPI lets the driver render at the display's density. When false
	// one logical unit is one device pixel.
	HighDPI bool
	// Density overrides the detected density when positive.
	Density float64
	// Monitor selects the display whose density is used.
	Monitor string
	Theme   *theme.Theme
	Shadow  bool
	// Editor options applied after the driver's own.
	Editor []editor.Option
}

// ResolveDensity picks the density to use given what the platform detected.
func (c Config) ResolveDensity(detected float64) float64 {
	if !c.HighDPI {
		return 1
	}
	if c.Density > 0 {
		return c.Density
	}
	if detected > 0 {
		return detected
	}
	return 1
}

// Logical converts a device size to logical units.
func Logical(px int, density float64) int {
	if density <= 0 {
		return px
	}
	return int(float64(px)/density + 0.5)
}
