package config

// Config represents the complete configuration for weaver.
type Config struct {
	// DataDir overrides the data root holding config.ini and the profile directories.
	DataDir string `mapstructure:"data_dir" toml:"data_dir" json:"data_dir,omitempty" jsonschema:"description=Directory holding config.ini and profile data (default ~/.weaver)"`
	// DefaultSearchEngine is the URL template for free-text searches (must contain %s placeholder)
	DefaultSearchEngine string                 `mapstructure:"default_search_engine" toml:"default_search_engine" json:"default_search_engine" jsonschema:"description=Search URL template containing %s"`
	Appearance          AppearanceConfig       `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging             LoggingConfig          `mapstructure:"logging" toml:"logging" json:"logging"`
	ContentFiltering    ContentFilteringConfig `mapstructure:"content_filtering" toml:"content_filtering" json:"content_filtering"`
}

// ColorScheme selects the theme of internal pages.
type ColorScheme string

const (
	ThemeDefault     ColorScheme = "default"
	ThemePreferDark  ColorScheme = "prefer-dark"
	ThemePreferLight ColorScheme = "prefer-light"
)

// AppearanceConfig holds font and theme preferences for internal pages.
type AppearanceConfig struct {
	ColorScheme     ColorScheme `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
	SansFont        string      `mapstructure:"sans_font" toml:"sans_font" json:"sans_font"`
	SerifFont       string      `mapstructure:"serif_font" toml:"serif_font" json:"serif_font"`
	MonospaceFont   string      `mapstructure:"monospace_font" toml:"monospace_font" json:"monospace_font"`
	DefaultFontSize int         `mapstructure:"default_font_size" toml:"default_font_size" json:"default_font_size" jsonschema:"minimum=1,maximum=72"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// ContentFilteringConfig controls script injection into third-party pages.
type ContentFilteringConfig struct {
	// YouTubeAdBlock injects the ad-skipping script into youtube.com pages.
	YouTubeAdBlock bool `mapstructure:"youtube_ad_block" toml:"youtube_ad_block" json:"youtube_ad_block"`
}
