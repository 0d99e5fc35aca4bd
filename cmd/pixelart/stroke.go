package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/store"
)

// strokeCmd paints one segment onto an image file without opening a window.
type strokeCmd struct {
	*root
	fs       *flag.FlagSet
	in       string
	out      string
	width    int
	height   int
	size     int
	color    string
	erase    bool
	from, to [2]float64
}

func parseStrokeCmd(args []string, r *root) (*strokeCmd, error) {
	fs := flag.NewFlagSet(r.subcommand("stroke"), flag.ContinueOnError)
	cmd := &strokeCmd{root: r, fs: fs}
	fs.StringVar(&cmd.in, "in", "", "image to draw on; a blank canvas when empty")
	fs.StringVar(&cmd.out, "out", "", "file to write (defaults to -in, then the configured save file); formats: "+formatNames())
	fs.IntVar(&cmd.width, "width", r.config.Canvas.Width, "blank canvas width")
	fs.IntVar(&cmd.height, "height", r.config.Canvas.Height, "blank canvas height")
	fs.IntVar(&cmd.size, "size", r.config.Pen.Size, "pen size")
	fs.StringVar(&cmd.color, "color", pen.FormatColor(r.config.Pen.Color), "pen color (name or #RRGGBB[AA])")
	fs.BoolVar(&cmd.erase, "erase", false, "erase instead of painting")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() != 4 {
		return nil, &UsageError{of: cmd}
	}
	var coords [4]float64
	for i, a := range fs.Args() {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		coords[i] = v
	}
	cmd.from = [2]float64{coords[0], coords[1]}
	cmd.to = [2]float64{coords[2], coords[3]}
	if cmd.out == "" {
		cmd.out = cmd.in
	}
	if cmd.out == "" {
		cmd.out = r.config.SaveFile
	}
	return cmd, nil
}

func (s *strokeCmd) Program() string { return s.root.subcommand("stroke") }

func (s *strokeCmd) FlagSet() *flag.FlagSet { return s.fs }

func (s *strokeCmd) Run() error {
	c, err := pen.ParseColor(s.color)
	if err != nil {
		return fmt.Errorf("invalid -color: %w", err)
	}
	cv, err := s.canvas()
	if err != nil {
		return err
	}
	defer cv.Release()

	// Two ticks with the button held: the first paints the start, the
	// second joins it to the end. Cells are addressed at their centers.
	buttons := input.ButtonLeft
	if s.erase {
		buttons = input.ButtonRight
	}
	p := pen.New(s.size, c)
	start := input.Sample{X: s.from[0] + 0.5, Y: s.from[1] + 0.5, Buttons: buttons}
	end := input.Sample{X: s.to[0] + 0.5, Y: s.to[1] + 0.5, Buttons: buttons}
	n := p.Stroke(cv, input.Sample{}, start)
	n += p.Stroke(cv, start, end)
	log.Debugf("stroke wrote %d cells", n)

	if err := store.Save(s.out, cv.Buffer()); err != nil {
		return fmt.Errorf("failed to save stroke: %w", err)
	}
	fmt.Fprintf(s.root.out(), "wrote %d cells to %s\n", n, s.out)
	s.root.notifier.Save(s.out)
	return nil
}

// canvas loads -in, or creates a blank canvas when -in is empty or missing.
// The view is left at one device pixel per cell.
func (s *strokeCmd) canvas() (*canvas.Canvas, error) {
	if s.in != "" {
		img, err := store.Load(s.in)
		switch {
		case err == nil:
			cv, err := canvas.New(img.Rect.Dx(), img.Rect.Dy(), nil)
			if err != nil {
				return nil, err
			}
			if err := cv.Load(img); err != nil {
				return nil, err
			}
			cv.RepaintAll()
			return cv, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
		log.Debugf("%s does not exist, starting blank", s.in)
	}
	return canvas.New(s.width, s.height, nil)
}
