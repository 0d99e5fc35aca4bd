package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/pixelart/internal/driver"
)

func driverNames() string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// lookupDriver falls back to ebiten where the configured driver is not built in.
func lookupDriver(name string) (func(driver.Config) error, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "shiny"
	}
	if fn, ok := drivers[name]; ok {
		return fn, nil
	}
	if name == "shiny" {
		if fn, ok := drivers["ebiten"]; ok {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("unknown driver %q (available: %s)", name, driverNames())
}
