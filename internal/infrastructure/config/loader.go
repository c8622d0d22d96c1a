package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/infrastructure/fonts"
	"github.com/twilight/weaver/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	root           string
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	fontDetector   port.FontDetector
}

// NewManager creates a configuration manager for the settings file under root.
func NewManager(root string) (*Manager, error) {
	if root == "" {
		return nil, fmt.Errorf("data root cannot be empty")
	}

	v := viper.New()
	v.SetConfigFile(SettingsFile(root))
	v.SetConfigType("toml")

	// Environment overrides use the WEAVER_ prefix (e.g. WEAVER_DEFAULT_SEARCH_ENGINE,
	// WEAVER_APPEARANCE_COLOR_SCHEME).
	v.SetEnvPrefix("WEAVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WEAVER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEAVER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WEAVER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WEAVER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		root:      root,
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetFontDetector makes first-run config creation pick installed fonts
// instead of the static defaults. It must be called before Load.
func (m *Manager) SetFontDetector(d port.FontDetector) {
	m.mu.Lock()
	m.fontDetector = d
	m.mu.Unlock()
}

// Load loads the configuration from file and environment variables.
// A default settings file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(m.root); err != nil {
		return err
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	configFile := SettingsFile(m.root)

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(configFile); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.DataDir = strings.TrimSpace(config.DataDir)
	config.DefaultSearchEngine = strings.TrimSpace(config.DefaultSearchEngine)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch config.Appearance.ColorScheme {
	case ThemePreferDark, ThemePreferLight, ThemeDefault:
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Root returns the data root the manager was created for.
func (m *Manager) Root() string {
	return m.root
}

// ProfileRoot returns the directory holding config.ini and profile data.
// The data_dir setting relocates it; settings.toml itself stays under Root.
func (m *Manager) ProfileRoot() string {
	cfg := m.Get()
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	return m.root
}

// Save validates cfg, writes it to disk and notifies listeners.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()

	if cfg == nil {
		m.mu.Unlock()
		return fmt.Errorf("config is nil")
	}

	normalized := *cfg
	normalizeConfig(&normalized)

	// Validate before writing so callers get immediate errors.
	if err := validateConfig(&normalized); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(&normalized, SettingsFile(m.root)); err != nil {
		m.mu.Unlock()
		return err
	}

	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to reread config after save: %w", err)
	}

	// The watcher sees our own write; it only needs to resync.
	if m.watching {
		m.skipNextReload = true
	}

	m.config = &normalized
	m.notifyCallbacksLocked()
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return SettingsFile(m.root)
}

func (m *Manager) createDefaultConfig(configFile string) error {
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	log := logging.NewFromEnv()

	defaults := DefaultConfig()
	m.applyDetectedFonts(log.WithContext(context.Background()), defaults)

	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}

	log.Info().Str("path", configFile).Msg("created default configuration file")

	if err := WriteSchemaFile(m.root); err != nil {
		log.Warn().Err(err).Msg("failed to write configuration schema")
	}

	return nil
}

func (m *Manager) applyDetectedFonts(ctx context.Context, cfg *Config) {
	d := m.fontDetector
	if d == nil || !d.Available(ctx) {
		return
	}
	cfg.Appearance.SansFont = d.Pick(ctx, port.FontCategorySansSerif, fonts.Candidates(port.FontCategorySansSerif))
	cfg.Appearance.SerifFont = d.Pick(ctx, port.FontCategorySerif, fonts.Candidates(port.FontCategorySerif))
	cfg.Appearance.MonospaceFont = d.Pick(ctx, port.FontCategoryMonospace, fonts.Candidates(port.FontCategoryMonospace))
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("data_dir", defaults.DataDir)
	m.viper.SetDefault("default_search_engine", defaults.DefaultSearchEngine)

	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	m.viper.SetDefault("appearance.sans_font", defaults.Appearance.SansFont)
	m.viper.SetDefault("appearance.serif_font", defaults.Appearance.SerifFont)
	m.viper.SetDefault("appearance.monospace_font", defaults.Appearance.MonospaceFont)
	m.viper.SetDefault("appearance.default_font_size", defaults.Appearance.DefaultFontSize)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)

	m.viper.SetDefault("content_filtering.youtube_ad_block", defaults.ContentFiltering.YouTubeAdBlock)
}
