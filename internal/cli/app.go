// Package cli wires the weaver core for the command-line front end.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/twilight/weaver/internal/application/usecase"
	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/build"
	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/router"
	"github.com/twilight/weaver/internal/infrastructure/colorscheme"
	"github.com/twilight/weaver/internal/infrastructure/config"
	"github.com/twilight/weaver/internal/infrastructure/fonts"
	"github.com/twilight/weaver/internal/infrastructure/profile"
	"github.com/twilight/weaver/internal/logging"
)

// Options configures NewApp.
type Options struct {
	// Root overrides the data root; empty uses WEAVER_DATA_DIR or ~/.weaver.
	Root string
	// SkipProfile leaves config.ini untouched; record operations then fail
	// with a storage error.
	SkipProfile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Store   *profile.Store
	Router  *router.Router
	Profile entity.Profile
	// ProfileErr is the reason the placeholder profile is active, if it is.
	ProfileErr error

	// Use cases
	NavigateUC    *usecase.NavigateUseCase
	RecordVisitUC *usecase.RecordVisitUseCase
	HistoryUC     *usecase.ManageHistoryUseCase
	BookmarksUC   *usecase.ManageBookmarksUseCase

	// Context with logger
	ctx        context.Context
	mu         sync.RWMutex
	logCleanup func()
	dark       bool
}

// NewApp creates a new CLI application with all dependencies.
// Profile and storage failures are not fatal: the app keeps running with the
// placeholder profile and reports them through ProfileErr.
func NewApp(opts Options) (*App, error) {
	root := opts.Root
	if root == "" {
		var err error
		root, err = config.GetDataRoot()
		if err != nil {
			return nil, fmt.Errorf("resolve data root: %w", err)
		}
	}

	mgr, err := config.NewManager(root)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	mgr.SetFontDetector(fonts.NewDetector())
	loadErr := mgr.Load()
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("WEAVER_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: cfg.Logging.EnableFileLog, LogDir: config.LogDir(root), WriteToStderr: true},
	)
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "cli")
	log := logging.FromContext(ctx)
	if logErr != nil {
		log.Warn().Err(logErr).Msg("file logging disabled")
	}
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("path", mgr.GetConfigFile()).Msg("using default settings")
	}

	scheme := colorscheme.NewDefaultResolver(cfg.Appearance.ColorScheme).Resolve()
	dark := scheme.PrefersDark
	log.Debug().Bool("dark", dark).Str("source", scheme.Source).Msg("color scheme resolved")
	r := router.New(cfg.DefaultSearchEngine)

	store := profile.NewStore(mgr.ProfileRoot())
	p := entity.PlaceholderProfile()
	var profileErr error
	if !opts.SkipProfile {
		p, profileErr = store.Open(ctx)
	}
	if p.ID != "" {
		ctx = logging.WithProfile(ctx, p.ID)
	}
	log.Debug().Str("root", root).Str("profile", p.ID).Bool("storage", store.Available()).Msg("cli initialized")

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(dark),
		Store:         store,
		Router:        r,
		Profile:       p,
		ProfileErr:    profileErr,
		RecordVisitUC: usecase.NewRecordVisitUseCase(store.History(), store.Bookmarks()),
		HistoryUC:     usecase.NewManageHistoryUseCase(store.History()),
		BookmarksUC:   usecase.NewManageBookmarksUseCase(store.Bookmarks()),
		ctx:           ctx,
		logCleanup:    logCleanup,
		dark:          dark,
	}
	app.NavigateUC = usecase.NewNavigateUseCase(r, func() router.PageContext { return app.PageContext(app.Dark()) })
	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.Store != nil {
		err = a.Store.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Dark reports whether the configured color scheme resolves to dark.
func (a *App) Dark() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dark
}

// Settings returns the current settings. After WatchSettings it follows
// edits of settings.toml.
func (a *App) Settings() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Config
}

// CurrentTheme returns the theme matching the current color scheme.
func (a *App) CurrentTheme() *styles.Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Theme
}

// WatchSettings reloads settings.toml when it changes and calls onChange
// with the new settings and the theme of the re-resolved color scheme.
// onChange may be nil and runs outside the app lock.
func (a *App) WatchSettings(onChange func(*config.Config, *styles.Theme)) error {
	log := logging.FromContext(a.ctx)

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		scheme := colorscheme.NewDefaultResolver(cfg.Appearance.ColorScheme).Resolve()
		theme := styles.NewTheme(scheme.PrefersDark)

		a.mu.Lock()
		a.Config = cfg
		a.Theme = theme
		a.dark = scheme.PrefersDark
		a.mu.Unlock()

		log.Info().
			Str("color_scheme", string(cfg.Appearance.ColorScheme)).
			Bool("dark", scheme.PrefersDark).
			Msg("settings reloaded")
		if onChange != nil {
			onChange(cfg, theme)
		}
	})

	if err := a.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	return nil
}

// PageContext builds the rendering context of internal pages from settings.
func (a *App) PageContext(dark bool) router.PageContext {
	return PageContextFromConfig(a.Settings(), a.BuildInfo, dark)
}

// PageContextFromConfig maps settings and build info to an internal page context.
func PageContextFromConfig(cfg *config.Config, info build.Info, dark bool) router.PageContext {
	ctx := router.PageContext{
		DarkMode: dark,
		Version:  info.Version,
		AppName:  router.DefaultAppName,
	}
	if cfg != nil {
		ctx.Fonts = router.Fonts{
			Sans:      cfg.Appearance.SansFont,
			Serif:     cfg.Appearance.SerifFont,
			Monospace: cfg.Appearance.MonospaceFont,
			Size:      cfg.Appearance.DefaultFontSize,
		}
	}
	return ctx
}
