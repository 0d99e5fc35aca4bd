package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const (
	appDir      = "pixelart"
	devFile     = ".pixelartrc"
	primaryFile = "config.rc"
	legacyFile  = "pixelart.rc"
)

// Loader finds and reads the RC file.
type Loader struct {
	// Version "dev" enables the working directory lookup.
	Version string
	// OverridePath is set at build time and wins when the file exists.
	OverridePath string
	// WorkDir and HomeDir default to the process values when empty.
	WorkDir string
	HomeDir string
}

// NewLoader creates a Loader for the running process.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{Version: version, OverridePath: overridePath}
}

// Load parses the first existing candidate, or returns defaults when there
// is none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		log.Debug("no config file found, using defaults")
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded config %s", path)
	return cfg, nil
}

// GetConfigPath returns the first candidate that exists, or "".
func (l *Loader) GetConfigPath() string {
	for _, p := range l.Candidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warnf("skipping config %s", p)
		}
	}
	return ""
}

// Candidates lists the lookup order: the build override, ./.pixelartrc in
// dev builds, then config.rc and pixelart.rc in the user config directory.
func (l *Loader) Candidates() []string {
	var out []string
	if l.OverridePath != "" {
		out = append(out, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd := l.workDir(); wd != "" {
			out = append(out, filepath.Join(wd, devFile))
		}
	}
	if dir := l.configDir(); dir != "" {
		out = append(out, filepath.Join(dir, primaryFile), filepath.Join(dir, legacyFile))
	}
	return out
}

// DefaultPath is where a new config is written when none was loaded.
func (l *Loader) DefaultPath() (string, error) {
	dir := l.configDir()
	if dir == "" {
		return "", errors.New("cannot determine config directory")
	}
	return filepath.Join(dir, primaryFile), nil
}

// configDir honours XDG_CONFIG_HOME and otherwise uses ~/.config/pixelart.
func (l *Loader) configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home := l.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", appDir)
}

func (l *Loader) workDir() string {
	if l.WorkDir != "" {
		return l.WorkDir
	}
	wd, _ := os.Getwd()
	return wd
}
