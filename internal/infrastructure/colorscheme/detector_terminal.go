package colorscheme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 1
)

// TerminalDetector asks the controlling terminal for its background color.
// It is the last resort for CLI output on desktops without gsettings.
type TerminalDetector struct{}

// NewTerminalDetector creates a terminal background detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string { return detectorNameTerminal }

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int { return priorityTerminal }

// Available reports whether stdout is a terminal.
func (*TerminalDetector) Available() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Detect implements port.ColorSchemeDetector.
func (*TerminalDetector) Detect() (prefersDark, ok bool) {
	return lipgloss.HasDarkBackground(), true
}
