package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector queries the GNOME interface color-scheme key.
type GsettingsDetector struct {
	run func() ([]byte, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: func() ([]byte, error) {
		return exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	}}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string { return detectorNameGsettings }

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int { return priorityGsettings }

// Available reports whether gsettings is on PATH.
func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// Detect parses output such as "'prefer-dark'". The "default" value is
// undecided.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run()
	if err != nil {
		return false, false
	}
	return parseGsettingsScheme(string(output))
}

func parseGsettingsScheme(output string) (prefersDark, ok bool) {
	switch strings.Trim(strings.TrimSpace(output), "'\"") {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
