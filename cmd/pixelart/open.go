package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/example/pixelart/internal/store"
)

type openCmd struct {
	*root
	fs   *flag.FlagSet
	win  windowFlags
	path string
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet(r.subcommand("open"), flag.ContinueOnError)
	cmd := &openCmd{root: r, fs: fs}
	cmd.win.register(fs, r)
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	cmd.path = fs.Arg(0)
	explicitFile := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "file" {
			explicitFile = true
		}
	})
	if !explicitFile {
		cmd.win.file = cmd.path
	}
	return cmd, nil
}

func (o *openCmd) Program() string { return o.root.subcommand("open") }

func (o *openCmd) FlagSet() *flag.FlagSet { return o.fs }

func (o *openCmd) Run() error {
	img, err := store.Load(o.path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	log.Debugf("opened %s (%dx%d)", o.path, img.Rect.Dx(), img.Rect.Dy())
	return o.win.run(o.root, img)
}
