package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twilight/weaver/internal/domain/build"
	"github.com/twilight/weaver/internal/domain/router"
)

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with ASCII logo and styled info lines.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `██     ██
██     ██
██  █  ██
██ ███ ██
 ███ ███`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	meta := router.About()

	version := info.Version
	if version == "" {
		version = "dev"
	}

	lines := []string{
		r.theme.Title.Render(router.DefaultAppName) + " " + keyStyle.Render(meta.AppID),
		"",
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(version)),
	}
	if info.Commit != "" {
		lines = append(lines, fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Commit"), valStyle.Render(info.Commit)))
	}
	if info.BuildDate != "" {
		lines = append(lines, fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)))
	}
	if info.GoVersion != "" {
		lines = append(lines, fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)))
	}

	lines = append(lines,
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconScale), keyStyle.Render("License"), valStyle.Render(meta.License)),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGlobe), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made with love by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
		keyStyle.Render(meta.Copyright),
	)

	return strings.Join(lines, "\n")
}
