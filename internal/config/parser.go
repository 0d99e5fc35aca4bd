package config

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := ini.LoadSources(theme.LoadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := New()
	for _, sec := range f.Sections() {
		name := sec.Name()
		switch {
		case name == ini.DefaultSection:
			err = parseRoot(cfg, sec)
		case strings.EqualFold(name, "pen"):
			err = parsePen(&cfg.Pen, sec)
		case strings.EqualFold(name, "window"):
			err = parseWindow(&cfg.Window, sec)
		case strings.EqualFold(name, "notify"):
			err = parseNotify(&cfg.Notify, sec)
		case strings.HasPrefix(name, "theme."):
			themeName := strings.TrimPrefix(name, "theme.")
			// Start with defaults so missing keys are fine
			t := theme.Default()
			t.Name = themeName
			err = t.Apply(sec)
			cfg.Themes[themeName] = t
		}
		if err != nil {
			if name == ini.DefaultSection {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", name, err)
		}
	}
	return cfg, nil
}

func parseRoot(cfg *Config, sec *ini.Section) error {
	for _, k := range sec.Keys() {
		var err error
		switch strings.ToLower(k.Name()) {
		case "theme":
			cfg.Theme = k.String()
		case "save_file":
			cfg.SaveFile = k.String()
		case "canvas_width":
			cfg.Canvas.Width, err = positive(k)
		case "canvas_height":
			cfg.Canvas.Height, err = positive(k)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parsePen(p *Pen, sec *ini.Section) error {
	for _, k := range sec.Keys() {
		switch strings.ToLower(k.Name()) {
		case "size":
			v, err := positive(k)
			if err != nil {
				return err
			}
			p.Size = v
		case "color":
			c, err := pen.ParseColor(k.String())
			if err != nil {
				return fmt.Errorf("invalid color for key %s: %w", k.Name(), err)
			}
			p.Color = c
		}
	}
	return nil
}

func parseWindow(w *Window, sec *ini.Section) error {
	for _, k := range sec.Keys() {
		var err error
		switch strings.ToLower(k.Name()) {
		case "title":
			w.Title = k.String()
		case "width":
			w.Width, err = positive(k)
		case "height":
			w.Height, err = positive(k)
		case "vsync":
			w.VSync, err = boolean(k)
		case "high_dpi":
			w.HighDPI, err = boolean(k)
		case "density":
			w.Density, err = k.Float64()
			if err != nil {
				err = fmt.Errorf("invalid number for key %s: %w", k.Name(), err)
			}
		case "driver":
			w.Driver = strings.ToLower(k.String())
		case "shadow":
			w.Shadow, err = boolean(k)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseNotify(n *Notify, sec *ini.Section) error {
	for _, k := range sec.Keys() {
		b, err := boolean(k)
		if err != nil {
			return err
		}
		switch strings.ToLower(k.Name()) {
		case "save":
			n.Save = b
		case "load":
			n.Load = b
		case "copy":
			n.Copy = b
		}
	}
	return nil
}

func boolean(k *ini.Key) (bool, error) {
	b, err := k.Bool()
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", k.Name(), err)
	}
	return b, nil
}

func positive(k *ini.Key) (int, error) {
	v, err := k.Int()
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", k.Name(), err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("key %s must be positive, got %d", k.Name(), v)
	}
	return v, nil
}
