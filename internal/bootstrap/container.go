// Package bootstrap wires the shell core together.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/gekko-browser/gekko/internal/application/usecase"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/infrastructure/config"
	"github.com/gekko-browser/gekko/internal/infrastructure/eventbus"
	"github.com/gekko-browser/gekko/internal/infrastructure/headless"
	"github.com/gekko-browser/gekko/internal/infrastructure/messaging"
	"github.com/gekko-browser/gekko/internal/infrastructure/persistence/jsonstore"
	"github.com/gekko-browser/gekko/internal/infrastructure/protocol"
	"github.com/gekko-browser/gekko/internal/logging"
	"github.com/gekko-browser/gekko/internal/ui/theme"
)

// Options overrides the environment-derived defaults.
type Options struct {
	// ConfigDir and DataHome replace the XDG directories when both are set.
	ConfigDir string
	DataHome  string
	// Fs backs the virtual protocol. Defaults to the OS filesystem.
	Fs afero.Fs
	// LogOutput receives log lines. Defaults to stderr.
	LogOutput io.Writer
	// WatchConfig enables live config reloading.
	WatchConfig bool
}

// Container holds the wired components.
type Container struct {
	Ctx           context.Context
	Logger        zerolog.Logger
	ConfigManager *config.Manager

	Settings  *jsonstore.SettingsStore
	History   *jsonstore.HistoryStore
	Bookmarks *jsonstore.BookmarkStore
	Downloads *jsonstore.DownloadStore

	ThemeBus *eventbus.ThemeBus
	Resolver *protocol.Resolver
	Schemes  *protocol.SchemeHandler
	Views    *headless.Factory
	Status   *headless.StatusLine

	Theme     *usecase.ThemeCoordinator
	Tabs      *usecase.TabRegistry
	Navigator *usecase.NavigateUseCase
	Messages  *messaging.Router
}

// New loads configuration and builds every component.
func New(ctx context.Context, opts Options) (*Container, error) {
	mgr, err := newConfigManager(opts)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	// The logger itself passes everything; the global level filters so
	// config reloads can change it.
	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
		Output:     out,
	})
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	ctx = logging.WithContext(ctx, logger)

	c := &Container{
		Ctx:           ctx,
		Logger:        logger,
		ConfigManager: mgr,
	}
	c.buildStores(cfg)
	c.buildCore(ctx, cfg, opts.Fs)
	if err := c.buildMessaging(); err != nil {
		return nil, err
	}

	mgr.OnConfigChange(c.applyConfig)
	if opts.WatchConfig {
		if err := mgr.Watch(ctx); err != nil {
			return nil, fmt.Errorf("watch config: %w", err)
		}
	}

	logger.Debug().
		Str("config", mgr.ConfigFile()).
		Str("sites_dir", cfg.SitesDir).
		Str("data_dir", cfg.DataDir).
		Msg("container ready")
	return c, nil
}

func newConfigManager(opts Options) (*config.Manager, error) {
	if opts.ConfigDir != "" && opts.DataHome != "" {
		return config.NewManagerWithDirs(opts.ConfigDir, opts.DataHome)
	}
	return config.NewManager()
}

func (c *Container) buildStores(cfg *config.Config) {
	c.Settings = jsonstore.NewSettingsStore(cfg.DataDir, jsonstore.WithSettingsDefaults(func(s *entity.Settings) {
		if cfg.HomePage != "" {
			s.HomePage = cfg.HomePage
		}
		if cfg.SearchEngine != "" {
			s.SearchEngine = cfg.SearchEngine
		}
	}))
	c.History = jsonstore.NewHistoryStore(cfg.DataDir)
	c.Bookmarks = jsonstore.NewBookmarkStore(cfg.DataDir)
	c.Downloads = jsonstore.NewDownloadStore(cfg.DataDir)
}

func (c *Container) buildCore(ctx context.Context, cfg *config.Config, fs afero.Fs) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	c.Resolver = protocol.NewResolver(ctx, fs, cfg.SitesDir, cfg.SharedDir)
	c.Schemes = protocol.NewSchemeHandler(ctx, c.Resolver)
	c.Views = headless.NewFactory(
		headless.WithAutoReady(),
		headless.WithLoader(headless.ProtocolLoader(c.Schemes)),
	)
	c.Status = &headless.StatusLine{}
	c.ThemeBus = eventbus.NewThemeBus()

	c.Theme = usecase.NewThemeCoordinator(ctx, c.Settings, c.ThemeBus, theme.StyleSheet, usecase.ThemeCoordinatorConfig{
		LockWindow:     cfg.Theme.LockWindow(),
		RetryBaseDelay: cfg.Theme.RetryBaseDelay(),
		MaxAttempts:    cfg.Theme.MaxAttempts,
	})
	c.Tabs = usecase.NewTabRegistry(c.Views, c.Theme, c.homeURL, usecase.NewUUID)
	c.Theme.SetViewSource(c.Tabs)
	c.Tabs.OnTitleChanged(c.recordTitle)
	c.Navigator = usecase.NewNavigateUseCase(c.Tabs, c.Settings, c.History, c.Status)
}

func (c *Container) buildMessaging() error {
	c.Messages = messaging.NewRouter()
	if err := c.Messages.RegisterHandler(messaging.TypeNavigate, messaging.NavigateHandler(c.Navigator, c.Tabs)); err != nil {
		return fmt.Errorf("register navigate handler: %w", err)
	}
	if err := c.Messages.RegisterHandler(messaging.TypeThemeChange, messaging.ThemeChangeHandler(c.Theme)); err != nil {
		return fmt.Errorf("register themeChange handler: %w", err)
	}
	if err := c.Messages.RegisterHandler(messaging.TypeDownload, messaging.DownloadHandler(c.Downloads, usecase.NewUUID, time.Now)); err != nil {
		return fmt.Errorf("register download handler: %w", err)
	}
	return nil
}

// recordTitle backfills the history entry once a page reports its title.
func (c *Container) recordTitle(ctx context.Context, id entity.TabID, pageURL, title string) {
	if err := c.History.UpdateTitle(ctx, pageURL, title); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(id)).Msg("failed to update history title")
	}
}

func (c *Container) homeURL(ctx context.Context) string {
	return c.Settings.GetAll(ctx).HomePage
}

// applyConfig reacts to a reloaded config file.
func (c *Container) applyConfig(cfg *config.Config) {
	level := logging.ParseLevel(cfg.Logging.Level)
	zerolog.SetGlobalLevel(level)
	c.Logger.Info().Str("level", level.String()).Msg("config reloaded")
}

// Close releases subscriptions and destroys every open view.
func (c *Container) Close() {
	if c.Theme != nil {
		c.Theme.Close()
	}
	if c.Views != nil {
		for _, v := range c.Views.Views() {
			if !v.IsDestroyed() {
				v.Destroy()
			}
		}
	}
}
