package theme

import (
	"image/color"
)

// Theme defines the color palette for the editor window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Status and instruction text
	Title      color.RGBA

	// Canvas
	CanvasBorder color.RGBA
	CheckerLight color.RGBA // Shown through transparent cells
	CheckerDark  color.RGBA
	Shadow       color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonTextHover       color.RGBA
	ButtonTextPress       color.RGBA
	ButtonBorder          color.RGBA

	// Toast messages
	MessageBackground color.RGBA
	MessageText       color.RGBA
}

// Default returns the built-in theme: white window, dark gray canvas backdrop
// and a magenta canvas border.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{255, 255, 255, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		Title:                 color.RGBA{0, 0, 0, 255},
		CanvasBorder:          color.RGBA{255, 0, 255, 255},
		CheckerLight:          color.RGBA{80, 80, 80, 255},
		CheckerDark:           color.RGBA{72, 72, 72, 255},
		Shadow:                color.RGBA{0, 0, 0, 140},
		ButtonBackground:      color.RGBA{85, 85, 85, 255},
		ButtonBackgroundHover: color.RGBA{110, 110, 110, 255},
		ButtonBackgroundPress: color.RGBA{60, 60, 60, 255},
		ButtonText:            color.RGBA{255, 255, 255, 255},
		ButtonTextHover:       color.RGBA{255, 255, 255, 255},
		ButtonTextPress:       color.RGBA{220, 220, 220, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		MessageBackground:     color.RGBA{255, 255, 255, 230},
		MessageText:           color.RGBA{0, 0, 0, 255},
	}
}
