package cli

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/infrastructure/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(Options{Root: t.TempDir(), SkipProfile: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestApp_WatchSettingsAppliesSavedChanges(t *testing.T) {
	app := newTestApp(t)

	var (
		mu       sync.Mutex
		gotCfg   *config.Config
		gotTheme *styles.Theme
	)
	require.NoError(t, app.WatchSettings(func(cfg *config.Config, theme *styles.Theme) {
		mu.Lock()
		gotCfg, gotTheme = cfg, theme
		mu.Unlock()
	}))

	cfg := app.ConfigManager.Get()
	cfg.Appearance.ColorScheme = config.ThemePreferLight
	cfg.Appearance.SansFont = "Noto Sans"
	cfg.ContentFiltering.YouTubeAdBlock = false
	require.NoError(t, app.ConfigManager.Save(cfg))

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, gotCfg)
	assert.Equal(t, config.ThemePreferLight, gotCfg.Appearance.ColorScheme)
	assert.Same(t, gotTheme, app.CurrentTheme())
	assert.False(t, app.Dark())
	assert.False(t, app.Settings().ContentFiltering.YouTubeAdBlock)
	assert.Equal(t, "Noto Sans", app.PageContext(app.Dark()).Fonts.Sans)
}

func TestApp_WatchSettingsNilCallback(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.WatchSettings(nil))

	cfg := app.ConfigManager.Get()
	cfg.Appearance.ColorScheme = config.ThemePreferDark
	require.NoError(t, app.ConfigManager.Save(cfg))
	assert.True(t, app.Dark())
}
