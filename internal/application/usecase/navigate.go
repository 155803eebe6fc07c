package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/domain/url"
	"github.com/gekko-browser/gekko/internal/logging"
)

const (
	// logURLMaxLen is the max length for URLs in log messages.
	logURLMaxLen = 60

	// duplicateNavigationWindow is how long an identical navigation on the
	// same tab is treated as a redelivery of the same intent.
	duplicateNavigationWindow = 250 * time.Millisecond

	// appliedIntentTTL bounds how long intent IDs are remembered.
	appliedIntentTTL = time.Minute
)

var (
	// ErrEmptyURL is returned when the intent carries no input.
	ErrEmptyURL = errors.New("empty url")
	// ErrNoTargetTab is returned when neither the target nor an active tab exists.
	ErrNoTargetTab = errors.New("no target tab")
	// ErrViewNotReady is returned when the tab's view accepts neither a load
	// nor a pending source.
	ErrViewNotReady = errors.New("view not ready")
)

// Channel identifies how a navigation intent reached the router.
type Channel int

const (
	ChannelDirect Channel = iota
	ChannelMessage
	ChannelNavigationAPI
	ChannelViewAttribute
)

// String returns a human-readable representation of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelDirect:
		return "direct"
	case ChannelMessage:
		return "message"
	case ChannelNavigationAPI:
		return "navigation-api"
	case ChannelViewAttribute:
		return "view-attribute"
	default:
		return "unknown"
	}
}

// Intent is a request to navigate, whatever transport delivered it.
// Intents sharing an ID are applied once.
type Intent struct {
	ID      string
	URL     string
	Target  entity.TabID // empty means the active tab
	Channel Channel
}

// NavigationTarget is the tab state the router drives.
type NavigationTarget interface {
	GetActive() (entity.Tab, bool)
	Get(id entity.TabID) (entity.Tab, bool)
	BeginNavigation(ctx context.Context, id entity.TabID, target string) (Navigation, bool)
	IsLatestNavigation(id entity.TabID, seq uint64) bool
}

type recentNavigation struct {
	url string
	seq uint64
	at  time.Time
}

// NavigateUseCase is the single ingress for navigation intents. It
// normalizes input, drives the target tab's view and records history.
type NavigateUseCase struct {
	tabs     NavigationTarget
	settings port.SettingsStore
	history  port.HistoryStore
	status   port.StatusReporter
	now      func() time.Time

	mu      sync.Mutex
	applied map[string]time.Time
	pending map[string]struct{}
	recent  map[entity.TabID]recentNavigation
}

// NewNavigateUseCase creates a navigation router. status may be nil.
func NewNavigateUseCase(
	tabs NavigationTarget,
	settings port.SettingsStore,
	history port.HistoryStore,
	status port.StatusReporter,
) *NavigateUseCase {
	return &NavigateUseCase{
		tabs:     tabs,
		settings: settings,
		history:  history,
		status:   status,
		now:      time.Now,
		applied:  make(map[string]time.Time),
		pending:  make(map[string]struct{}),
		recent:   make(map[entity.TabID]recentNavigation),
	}
}

// Navigate loads rawURL in target, or in the active tab when target is
// empty.
func (uc *NavigateUseCase) Navigate(ctx context.Context, rawURL string, target entity.TabID) error {
	return uc.Dispatch(ctx, Intent{URL: rawURL, Target: target, Channel: ChannelDirect})
}

// ResolveInput turns user input into a loadable URL using the current
// search settings.
func (uc *NavigateUseCase) ResolveInput(ctx context.Context, input string) string {
	settings := uc.settings.GetAll(ctx)
	return url.BuildSearchURL(input, settings.SearchShortcuts, settings.SearchEngine)
}

// Dispatch applies an intent. Redelivered intents are no-ops. Failures
// are reported on the status line and returned; they are never retried.
func (uc *NavigateUseCase) Dispatch(ctx context.Context, intent Intent) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("input", logging.TruncateURL(intent.URL, logURLMaxLen)).
		Str("target", string(intent.Target)).
		Str("channel", intent.Channel.String()).
		Str("intent_id", intent.ID).
		Msg("navigation intent")

	input := strings.TrimSpace(intent.URL)
	if input == "" {
		return uc.fail(ctx, ErrEmptyURL)
	}
	target := uc.ResolveInput(ctx, input)

	tabID := intent.Target
	if tabID == "" {
		active, ok := uc.tabs.GetActive()
		if !ok {
			return uc.fail(ctx, ErrNoTargetTab)
		}
		tabID = active.ID
	}

	if uc.isDuplicate(intent.ID, tabID, target) {
		log.Debug().
			Str("url", logging.TruncateURL(target, logURLMaxLen)).
			Str("channel", intent.Channel.String()).
			Msg("duplicate navigation intent ignored")
		return nil
	}
	ctx = logging.WithURL(ctx, logging.TruncateURL(target, logURLMaxLen))

	nav, ok := uc.tabs.BeginNavigation(ctx, tabID, target)
	if !ok {
		uc.release(intent.ID)
		return uc.fail(ctx, fmt.Errorf("%w: %s", ErrNoTargetTab, tabID))
	}

	if err := load(ctx, nav, target); err != nil {
		uc.release(intent.ID)
		return uc.fail(ctx, err)
	}
	uc.markApplied(intent.ID, nav, target)

	if err := uc.history.Add(ctx, target, uc.committedTitle(nav)); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to record history")
	}

	logging.FromContext(ctx).Info().
		Str("tab_id", string(nav.TabID)).
		Msg("navigation initiated")
	return nil
}

// committedTitle returns the page title when the navigation already
// completed, and "" while it is loading or after it failed. Later titles
// reach history through title-change events.
func (uc *NavigateUseCase) committedTitle(nav Navigation) string {
	tab, ok := uc.tabs.Get(nav.TabID)
	if !ok || tab.NavSeq != nav.Seq || tab.LoadState != entity.LoadComplete {
		return ""
	}
	return tab.Title
}

// load prefers the view's load primitive and falls back to setting its
// source while it initializes.
func load(ctx context.Context, nav Navigation, target string) error {
	if nav.View == nil || nav.View.IsDestroyed() {
		return ErrViewNotReady
	}
	req := port.LoadRequest{URI: target, Seq: nav.Seq}

	if nav.View.IsReady() {
		err := nav.View.Load(ctx, req)
		if err == nil {
			return nil
		}
		logging.FromContext(ctx).Debug().Err(err).Msg("load failed, falling back to source")
	}
	if err := nav.View.SetSource(req); err != nil {
		return fmt.Errorf("%w: %w", ErrViewNotReady, err)
	}
	return nil
}

// isDuplicate reports whether the intent was already applied or is in
// flight. An unseen intent ID is reserved until markApplied or release.
func (uc *NavigateUseCase) isDuplicate(intentID string, tabID entity.TabID, target string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	for id, at := range uc.applied {
		if now.Sub(at) > appliedIntentTTL {
			delete(uc.applied, id)
		}
	}

	if intentID != "" {
		if _, seen := uc.applied[intentID]; seen {
			return true
		}
		if _, inFlight := uc.pending[intentID]; inFlight {
			return true
		}
		uc.pending[intentID] = struct{}{}
		return false
	}

	last, ok := uc.recent[tabID]
	return ok &&
		last.url == target &&
		now.Sub(last.at) < duplicateNavigationWindow &&
		uc.tabs.IsLatestNavigation(tabID, last.seq)
}

// markApplied records a successful navigation for de-duplication.
func (uc *NavigateUseCase) markApplied(intentID string, nav Navigation, target string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	if intentID != "" {
		delete(uc.pending, intentID)
		uc.applied[intentID] = now
	}
	uc.recent[nav.TabID] = recentNavigation{url: target, seq: nav.Seq, at: now}
}

// release drops the reservation of a failed intent so a later delivery
// can apply it.
func (uc *NavigateUseCase) release(intentID string) {
	if intentID == "" {
		return
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.pending, intentID)
}

func (uc *NavigateUseCase) fail(ctx context.Context, err error) error {
	logging.FromContext(ctx).Warn().Err(err).Msg("navigation failed")
	if uc.status != nil {
		uc.status.SetStatus(ctx, "Failed to navigate: "+err.Error())
	}
	return fmt.Errorf("navigate: %w", err)
}
