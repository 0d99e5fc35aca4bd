//go:build js

package display

// List is unavailable in the browser; the page reports its own density.
func List() ([]Monitor, error) { return nil, errNoMonitors }
