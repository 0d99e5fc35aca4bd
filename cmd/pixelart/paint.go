package main

import (
	"flag"
	"fmt"
	"image"
	"strings"

	"github.com/example/pixelart/internal/clipboard"
	"github.com/example/pixelart/internal/driver"
	"github.com/example/pixelart/internal/editor"
	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/store"
)

// windowFlags are shared by the commands that open the editor.
type windowFlags struct {
	file     string
	width    int
	height   int
	penSize  int
	penColor string
	driver   string
	density  float64
	monitor  string
	noShadow bool
}

func (w *windowFlags) register(fs *flag.FlagSet, r *root) {
	cfg := r.config
	fs.StringVar(&w.file, "file", cfg.SaveFile, "file used by save and load; the extension picks the format ("+formatNames()+")")
	fs.IntVar(&w.width, "width", cfg.Canvas.Width, "canvas width in cells")
	fs.IntVar(&w.height, "height", cfg.Canvas.Height, "canvas height in cells")
	fs.IntVar(&w.penSize, "pen-size", cfg.Pen.Size, "initial pen size")
	fs.StringVar(&w.penColor, "color", pen.FormatColor(cfg.Pen.Color), "initial pen color (name or #RRGGBB[AA])")
	fs.StringVar(&w.driver, "driver", cfg.Window.Driver, "window backend ("+driverNames()+")")
	fs.Float64Var(&w.density, "density", cfg.Window.Density, "display density override, 0 detects")
	fs.StringVar(&w.monitor, "monitor", "", "monitor whose density is used (index, name or primary)")
	fs.BoolVar(&w.noShadow, "no-shadow", !cfg.Window.Shadow, "do not draw the canvas shadow")
}

// run opens the editor window, starting from img when it is not nil.
func (w *windowFlags) run(r *root, img image.Image) error {
	c, err := pen.ParseColor(w.penColor)
	if err != nil {
		return fmt.Errorf("invalid -color: %w", err)
	}
	runFn, err := lookupDriver(w.driver)
	if err != nil {
		return err
	}
	win := r.config.Window
	opts := []editor.Option{
		editor.WithCanvasSize(w.width, w.height),
		editor.WithPen(w.penSize, c),
		editor.WithSavePath(w.file),
		editor.WithNotifier(r.notifier),
		editor.WithClipboard(clipboard.System{}),
	}
	if img != nil {
		opts = append(opts, editor.WithImage(img))
	}
	return runFn(driver.Config{
		Title:   win.Title,
		Width:   win.Width,
		Height:  win.Height,
		VSync:   win.VSync,
		HighDPI: win.HighDPI,
		Density: w.density,
		Monitor: w.monitor,
		Theme:   r.activeTheme,
		Shadow:  !w.noShadow,
		Editor:  opts,
	})
}

// formatNames lists the image formats save understands, for flag help.
func formatNames() string {
	names := make([]string, 0, len(store.Formats()))
	for _, f := range store.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

type paintCmd struct {
	*root
	fs  *flag.FlagSet
	win windowFlags
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet(r.subcommand("paint"), flag.ContinueOnError)
	cmd := &paintCmd{root: r, fs: fs}
	cmd.win.register(fs, r)
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	if cmd.win.width <= 0 || cmd.win.height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", cmd.win.width, cmd.win.height)
	}
	return cmd, nil
}

func (p *paintCmd) Program() string { return p.root.subcommand("paint") }

func (p *paintCmd) FlagSet() *flag.FlagSet { return p.fs }

func (p *paintCmd) Run() error { return p.win.run(p.root, nil) }
