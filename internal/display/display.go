// Package display enumerates monitors and estimates how many device pixels
// make up one logical unit on them.
package display

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ReferenceDPI is the pixel density treated as 1.0.
const ReferenceDPI = 96.0

var errNoMonitors = errors.New("no monitors available")

// Monitor describes one connected output.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
	// Physical size as reported by the output. Zero when unknown.
	WidthMM  int
	HeightMM int
}

// DPI is the horizontal pixel density, or 0 when the physical size is unknown.
func (m Monitor) DPI() float64 {
	if m.WidthMM <= 0 || m.Rect.Dx() <= 0 {
		return 0
	}
	return float64(m.Rect.Dx()) / (float64(m.WidthMM) / 25.4)
}

// Density rounds DPI/ReferenceDPI to the nearest quarter, never below 1.
func (m Monitor) Density() float64 {
	dpi := m.DPI()
	if dpi <= 0 {
		return 1
	}
	d := math.Round(dpi/ReferenceDPI*4) / 4
	if d < 1 {
		return 1
	}
	return d
}

func (m Monitor) String() string {
	primary := ""
	if m.Primary {
		primary = " primary"
	}
	return fmt.Sprintf("%d: %s %dx%d+%d+%d %.0fdpi density %.2f%s",
		m.Index, m.Name, m.Rect.Dx(), m.Rect.Dy(), m.Rect.Min.X, m.Rect.Min.Y, m.DPI(), m.Density(), primary)
}

// Find resolves a selector against monitors. An empty selector picks the
// first monitor; "primary", an index (optionally prefixed with '#') or a
// case-insensitive name fragment select others.
func Find(monitors []Monitor, selector string) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, errNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "" {
		return monitors[0], nil
	}
	if sel == "primary" {
		for _, m := range monitors {
			if m.Primary {
				return m, nil
			}
		}
		return monitors[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(sel, "#")); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return Monitor{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, m := range monitors {
		if strings.Contains(strings.ToLower(m.Name), sel) {
			return m, nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %q not found", selector)
}

// Density returns the density of the selected monitor, falling back to 1
// when monitors cannot be listed.
func Density(selector string) float64 {
	monitors, err := List()
	if err != nil {
		log.WithError(err).Debug("list monitors")
		return 1
	}
	m, err := Find(monitors, selector)
	if err != nil {
		log.WithError(err).Debug("select monitor")
		return 1
	}
	return m.Density()
}
