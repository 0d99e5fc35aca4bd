package main

import (
	"flag"
	"fmt"

	"github.com/example/pixelart/internal/display"
	"github.com/example/pixelart/internal/pen"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet(r.subcommand("colors"), flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Program() string { return c.root.subcommand("colors") }

func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *colorsCmd) Run() error {
	out := c.root.out()
	fmt.Fprintln(out, "palette (the Color button and the c key cycle through it):")
	for i, sw := range pen.Palette() {
		fmt.Fprintf(out, "%2d %-8s %s\n", i, sw.Name, pen.FormatColor(sw.Color))
	}
	fmt.Fprintln(out, "any CSS color name or #RRGGBB[AA] is accepted by -color")
	return nil
}

type displaysCmd struct {
	*root
	fs *flag.FlagSet
}

func parseDisplaysCmd(args []string, r *root) (*displaysCmd, error) {
	fs := flag.NewFlagSet(r.subcommand("displays"), flag.ContinueOnError)
	cmd := &displaysCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (d *displaysCmd) Program() string { return d.root.subcommand("displays") }

func (d *displaysCmd) FlagSet() *flag.FlagSet { return d.fs }

func (d *displaysCmd) Run() error {
	monitors, err := display.List()
	if err != nil {
		return fmt.Errorf("failed to list displays: %w", err)
	}
	out := d.root.out()
	for _, m := range monitors {
		fmt.Fprintln(out, m.String())
	}
	fmt.Fprintln(out, "selectors: primary, <index>, #<index>, name substring")
	return nil
}
