package config

import (
	"github.com/twilight/weaver/internal/domain/url"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600

	defaultFontSize = 16
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultSearchEngine: url.DefaultSearchTemplate,
		Appearance: AppearanceConfig{
			ColorScheme:     ThemeDefault,
			SansFont:        "Cantarell",
			SerifFont:       "DejaVu Serif",
			MonospaceFont:   "DejaVu Sans Mono",
			DefaultFontSize: defaultFontSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		ContentFiltering: ContentFilteringConfig{
			YouTubeAdBlock: true,
		},
	}
}
