package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/theme"
)

// Canvas holds the size of a new drawing.
type Canvas struct {
	Width  int
	Height int
}

// Pen holds the initial brush.
type Pen struct {
	Size  int
	Color color.NRGBA
}

// Window holds display settings.
type Window struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	HighDPI bool
	// Density overrides the detected display density when positive.
	Density float64
	// Driver selects the window backend: "shiny" or "ebiten".
	Driver string
	Shadow bool
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Load bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme    string
	SaveFile string
	Canvas   Canvas
	Pen      Pen
	Window   Window
	Notify   Notify
	Themes   map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:    "", // Default to empty to allow fallback to Env/Default
		SaveFile: "art.png",
		Canvas:   Canvas{Width: 256, Height: 256},
		Pen:      Pen{Size: pen.DefaultSize, Color: pen.DefaultColor},
		Window: Window{
			Title:   "Pixel Art Maker",
			Width:   800,
			Height:  600,
			VSync:   true,
			HighDPI: true,
			Driver:  "shiny",
			Shadow:  true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "save_file = %s\n", c.SaveFile)
	fmt.Fprintf(&sb, "canvas_width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.Canvas.Height)
	sb.WriteString("\n")

	sb.WriteString("[pen]\n")
	fmt.Fprintf(&sb, "size = %d\n", c.Pen.Size)
	fmt.Fprintf(&sb, "color = %s\n", pen.FormatColor(c.Pen.Color))
	sb.WriteString("\n")

	sb.WriteString("[window]\n")
	fmt.Fprintf(&sb, "title = %s\n", c.Window.Title)
	fmt.Fprintf(&sb, "width = %d\n", c.Window.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Window.Height)
	fmt.Fprintf(&sb, "vsync = %v\n", c.Window.VSync)
	fmt.Fprintf(&sb, "high_dpi = %v\n", c.Window.HighDPI)
	fmt.Fprintf(&sb, "density = %g\n", c.Window.Density)
	fmt.Fprintf(&sb, "driver = %s\n", c.Window.Driver)
	fmt.Fprintf(&sb, "shadow = %v\n", c.Window.Shadow)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
