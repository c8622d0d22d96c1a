package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector reads the GTK_THEME environment variable.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string { return detectorNameEnv }

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int { return priorityEnv }

// Available reports whether GTK_THEME is set.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect treats any theme name containing "dark" as dark, anything else as light.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	theme := d.getenv("GTK_THEME")
	if theme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(theme), "dark"), true
}
