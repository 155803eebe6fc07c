package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/logging"
)

// ThemeState is the coordinator's position in a theme change.
type ThemeState int

const (
	ThemeIdle ThemeState = iota
	// ThemeLocked means a change was accepted within the lock window.
	ThemeLocked
	ThemeSaving
	ThemeCommitted
	ThemeReverting
)

// String returns a human-readable representation of the state.
func (s ThemeState) String() string {
	switch s {
	case ThemeIdle:
		return "idle"
	case ThemeLocked:
		return "locked"
	case ThemeSaving:
		return "saving"
	case ThemeCommitted:
		return "committed"
	case ThemeReverting:
		return "reverting"
	default:
		return "unknown"
	}
}

const (
	defaultThemeLockWindow     = 500 * time.Millisecond
	defaultThemeRetryBaseDelay = 100 * time.Millisecond
	defaultThemeMaxAttempts    = 3
)

// ThemeCoordinatorConfig tunes locking and persistence retries.
type ThemeCoordinatorConfig struct {
	LockWindow     time.Duration
	RetryBaseDelay time.Duration
	MaxAttempts    int
}

func (c ThemeCoordinatorConfig) withDefaults() ThemeCoordinatorConfig {
	if c.LockWindow <= 0 {
		c.LockWindow = defaultThemeLockWindow
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = defaultThemeRetryBaseDelay
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultThemeMaxAttempts
	}
	return c
}

// StyleProvider renders the stylesheet injected into views for a theme.
type StyleProvider func(entity.ThemeID) string

// Waiter blocks for d or until ctx is done.
type Waiter func(ctx context.Context, d time.Duration) error

func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ThemeCoordinatorOption configures a ThemeCoordinator.
type ThemeCoordinatorOption func(*ThemeCoordinator)

// WithThemeClock replaces time.Now for lock window checks.
func WithThemeClock(now func() time.Time) ThemeCoordinatorOption {
	return func(c *ThemeCoordinator) { c.now = now }
}

// WithThemeWaiter replaces the backoff wait.
func WithThemeWaiter(wait Waiter) ThemeCoordinatorOption {
	return func(c *ThemeCoordinator) { c.wait = wait }
}

// ThemeCoordinator owns the committed theme. It persists changes with
// verification and pushes the theme's stylesheet to every live view.
type ThemeCoordinator struct {
	settings port.SettingsStore
	notifier port.ThemeNotifier
	styles   StyleProvider
	cfg      ThemeCoordinatorConfig
	now      func() time.Time
	wait     Waiter
	origin   string

	mu          sync.Mutex
	views       port.ViewSource
	current     entity.ThemeID
	state       ThemeState
	lockedUntil time.Time
	generation  uint64
	unsubscribe func()
}

// NewThemeCoordinator loads the committed theme from settings and
// subscribes to theme changes published by other coordinators.
func NewThemeCoordinator(
	ctx context.Context,
	settings port.SettingsStore,
	notifier port.ThemeNotifier,
	styles StyleProvider,
	cfg ThemeCoordinatorConfig,
	opts ...ThemeCoordinatorOption,
) *ThemeCoordinator {
	c := &ThemeCoordinator{
		settings: settings,
		notifier: notifier,
		styles:   styles,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		wait:     waitContext,
		origin:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.current = entity.CoerceTheme(string(settings.GetAll(ctx).Theme))
	if notifier != nil {
		c.unsubscribe = notifier.Subscribe(c.handleThemeEvent)
	}

	logging.FromContext(ctx).Debug().
		Str("theme", string(c.current)).
		Msg("theme coordinator initialized")
	return c
}

// SetViewSource sets where live views are read from on broadcast.
func (c *ThemeCoordinator) SetViewSource(views port.ViewSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views = views
}

// CurrentTheme returns the committed theme.
func (c *ThemeCoordinator) CurrentTheme() entity.ThemeID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// State returns the current state. An idle coordinator inside the lock
// window reports ThemeLocked.
func (c *ThemeCoordinator) State() ThemeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == ThemeIdle && c.now().Before(c.lockedUntil) {
		return ThemeLocked
	}
	return c.state
}

// RequestThemeChange coerces raw to an allowed theme, persists it and
// propagates it. It reports false only when persistence failed after all
// attempts; the prior theme is then published as a revert.
func (c *ThemeCoordinator) RequestThemeChange(ctx context.Context, raw string) bool {
	log := logging.FromContext(ctx)
	theme := entity.CoerceTheme(raw)

	c.mu.Lock()
	if theme == c.current {
		c.mu.Unlock()
		log.Debug().Str("theme", string(theme)).Msg("theme already committed")
		return true
	}
	now := c.now()
	if now.Before(c.lockedUntil) {
		c.mu.Unlock()
		log.Debug().Str("theme", string(theme)).Msg("theme change locked, ignoring request")
		return true
	}
	c.lockedUntil = now.Add(c.cfg.LockWindow)
	c.generation++
	gen := c.generation
	prior := c.current
	c.state = ThemeSaving
	c.mu.Unlock()

	log.Info().
		Str("from", string(prior)).
		Str("to", string(theme)).
		Msg("theme change requested")

	err := c.persist(ctx, gen, theme)

	c.mu.Lock()
	if gen != c.generation {
		// A newer request owns the state now.
		c.mu.Unlock()
		log.Debug().Str("theme", string(theme)).Msg("theme change superseded")
		return err == nil
	}
	if err != nil {
		c.state = ThemeReverting
		c.mu.Unlock()

		log.Error().Err(err).Str("theme", string(theme)).Msg("failed to persist theme")
		c.publish(ctx, port.ThemeReverted, prior)

		c.setState(ThemeIdle)
		return false
	}
	c.current = theme
	c.state = ThemeCommitted
	views := c.views
	c.mu.Unlock()

	if views != nil {
		c.BroadcastTo(ctx, views.LiveViews())
	}
	c.publish(ctx, port.ThemeChanged, theme)
	c.setState(ThemeIdle)

	log.Info().Str("theme", string(theme)).Msg("theme committed")
	return true
}

// persist writes theme and reads it back, retrying with exponential
// backoff. A newer generation abandons the loop.
func (c *ThemeCoordinator) persist(ctx context.Context, gen uint64, theme entity.ThemeID) error {
	log := logging.FromContext(ctx)
	delay := c.cfg.RetryBaseDelay
	var lastErr error

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if c.superseded(gen) {
			return fmt.Errorf("theme change to %s superseded", theme)
		}

		lastErr = c.writeAndVerify(ctx, theme)
		if lastErr == nil {
			return nil
		}
		log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Int("max_attempts", c.cfg.MaxAttempts).
			Msg("theme persistence attempt failed")

		if attempt == c.cfg.MaxAttempts {
			break
		}
		if err := c.wait(ctx, delay); err != nil {
			return fmt.Errorf("theme persistence interrupted: %w", err)
		}
		delay *= 2
	}
	return fmt.Errorf("persist theme %s after %d attempts: %w", theme, c.cfg.MaxAttempts, lastErr)
}

func (c *ThemeCoordinator) writeAndVerify(ctx context.Context, theme entity.ThemeID) error {
	if err := c.settings.Set(ctx, entity.SettingTheme, string(theme)); err != nil {
		return err
	}
	if got := c.settings.GetAll(ctx).Theme; got != theme {
		return fmt.Errorf("verification failed: stored theme is %q", got)
	}
	return nil
}

func (c *ThemeCoordinator) superseded(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen != c.generation
}

func (c *ThemeCoordinator) setState(s ThemeState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// BroadcastTo injects the committed theme's stylesheet into every live
// view. Failures are logged per view. It returns the number of views
// updated.
func (c *ThemeCoordinator) BroadcastTo(ctx context.Context, views []port.WebView) int {
	theme := c.CurrentTheme()
	css := c.styles(theme)

	applied := 0
	for _, v := range views {
		if v == nil || v.IsDestroyed() {
			continue
		}
		if err := v.InjectCSS(ctx, css); err != nil {
			logging.FromContext(ctx).Warn().
				Err(err).
				Uint64("view_id", uint64(v.ID())).
				Msg("failed to apply theme to view")
			continue
		}
		applied++
	}

	logging.FromContext(ctx).Debug().
		Str("theme", string(theme)).
		Int("views", applied).
		Msg("theme broadcast")
	return applied
}

// ApplyTo injects the committed theme into a single view.
func (c *ThemeCoordinator) ApplyTo(ctx context.Context, view port.WebView) error {
	if view == nil || view.IsDestroyed() {
		return nil
	}
	if err := view.InjectCSS(ctx, c.styles(c.CurrentTheme())); err != nil {
		return fmt.Errorf("apply theme to view %d: %w", view.ID(), err)
	}
	return nil
}

func (c *ThemeCoordinator) publish(ctx context.Context, kind port.ThemeEventKind, theme entity.ThemeID) {
	if c.notifier == nil {
		return
	}
	c.notifier.Publish(ctx, port.ThemeEvent{Kind: kind, Theme: theme, Origin: c.origin})
}

// handleThemeEvent adopts themes committed elsewhere without persisting.
func (c *ThemeCoordinator) handleThemeEvent(ctx context.Context, event port.ThemeEvent) {
	if event.Origin == c.origin || event.Kind != port.ThemeChanged {
		return
	}
	theme := entity.CoerceTheme(string(event.Theme))

	c.mu.Lock()
	if theme == c.current {
		c.mu.Unlock()
		return
	}
	c.current = theme
	views := c.views
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("theme", string(theme)).
		Str("origin", event.Origin).
		Msg("adopting theme from another window")
	if views != nil {
		c.BroadcastTo(ctx, views.LiveViews())
	}
}

// Close stops listening for theme events.
func (c *ThemeCoordinator) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}
