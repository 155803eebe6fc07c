package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/domain/url"
	"github.com/gekko-browser/gekko/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// HomeURLFunc returns the URL new tabs open when none is given.
type HomeURLFunc func(ctx context.Context) string

// ThemeApplier applies the committed theme to a single view.
type ThemeApplier interface {
	ApplyTo(ctx context.Context, view port.WebView) error
}

// TabPatch is a partial tab update. Nil fields are left unchanged.
type TabPatch struct {
	URL       *string
	Title     *string
	Favicon   *string
	LoadState *entity.LoadState
}

// TitleObserver is told about page titles as views report them.
type TitleObserver func(ctx context.Context, id entity.TabID, url, title string)

// TabRegistry owns the tabs and their views. At least one tab exists
// after Init; exactly one is active whenever any exist.
type TabRegistry struct {
	factory     port.WebViewFactory
	theme       ThemeApplier
	homeURL     HomeURLFunc
	idGenerator IDGenerator

	mu      sync.Mutex
	tabs    *entity.TabList
	views   map[entity.TabID]port.WebView
	seq     uint64
	onTitle TitleObserver
}

// NewTabRegistry creates an empty registry. theme may be nil.
func NewTabRegistry(factory port.WebViewFactory, theme ThemeApplier, homeURL HomeURLFunc, idGenerator IDGenerator) *TabRegistry {
	if idGenerator == nil {
		idGenerator = NewUUID
	}
	if homeURL == nil {
		homeURL = func(context.Context) string { return entity.DefaultHomePage }
	}
	return &TabRegistry{
		factory:     factory,
		theme:       theme,
		homeURL:     homeURL,
		idGenerator: idGenerator,
		tabs:        entity.NewTabList(),
		views:       make(map[entity.TabID]port.WebView),
	}
}

// OnTitleChanged registers the observer notified after a tab's title
// changes. Pass nil to clear.
func (r *TabRegistry) OnTitleChanged(observer TitleObserver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onTitle = observer
}

// Init creates the default tab if the registry is empty.
func (r *TabRegistry) Init(ctx context.Context) error {
	r.mu.Lock()
	empty := r.tabs.Count() == 0
	r.mu.Unlock()
	if !empty {
		return nil
	}
	_, err := r.CreateTab(ctx, "")
	return err
}

// CreateTab opens a tab loading initialURL, or the home URL when empty,
// and makes it active.
func (r *TabRegistry) CreateTab(ctx context.Context, initialURL string) (entity.TabID, error) {
	log := logging.FromContext(ctx)

	target := strings.TrimSpace(initialURL)
	if target == "" {
		target = r.homeURL(ctx)
	}
	target = url.Normalize(target)

	view, err := r.factory.Create(ctx)
	if err != nil {
		return "", fmt.Errorf("create view: %w", err)
	}

	r.mu.Lock()
	r.seq++
	id := entity.TabID(r.idGenerator())
	tab := entity.NewTab(id, r.seq, target)
	tab.NavSeq = 1
	tab.LoadState = entity.LoadLoading
	if err := r.tabs.Add(tab); err != nil {
		r.mu.Unlock()
		view.Destroy()
		return "", fmt.Errorf("add tab: %w", err)
	}
	r.tabs.ActiveTabID = id
	r.views[id] = view
	position := tab.Position
	r.mu.Unlock()

	eventCtx := context.WithoutCancel(logging.WithTabID(ctx, string(id)))
	view.OnEvent(func(event port.ViewEvent) {
		r.HandleViewEvent(eventCtx, id, event)
	})
	r.syncVisibility()

	if err := view.SetSource(port.LoadRequest{URI: target, Seq: 1}); err != nil {
		log.Warn().Err(err).Str("tab_id", string(id)).Msg("failed to set initial source")
	}

	log.Info().
		Str("tab_id", string(id)).
		Str("url", logging.TruncateURL(target, logURLMaxLen)).
		Int("position", position).
		Msg("tab created")

	return id, nil
}

// CloseTab removes a tab and destroys its view. Closing the last tab
// opens a fresh default tab. Unknown IDs are ignored.
func (r *TabRegistry) CloseTab(ctx context.Context, id entity.TabID) error {
	log := logging.FromContext(logging.WithTabID(ctx, string(id)))

	r.mu.Lock()
	if r.tabs.Find(id) == nil {
		r.mu.Unlock()
		log.Debug().Msg("tab not found")
		return nil
	}
	view := r.views[id]
	delete(r.views, id)
	r.tabs.Remove(id)
	remaining := r.tabs.Count()
	active := r.tabs.ActiveTabID
	r.mu.Unlock()

	if view != nil {
		view.OnEvent(nil)
		view.Destroy()
	}

	log.Info().
		Str("new_active", string(active)).
		Int("remaining", remaining).
		Msg("tab closed")

	if remaining == 0 {
		if _, err := r.CreateTab(ctx, ""); err != nil {
			return fmt.Errorf("replace last tab: %w", err)
		}
		return nil
	}
	r.syncVisibility()
	return nil
}

// SetActive activates a tab and shows only its view. Unknown IDs are
// ignored.
func (r *TabRegistry) SetActive(ctx context.Context, id entity.TabID) {
	r.mu.Lock()
	if r.tabs.Find(id) == nil {
		r.mu.Unlock()
		return
	}
	from := r.tabs.ActiveTabID
	r.tabs.ActiveTabID = id
	r.mu.Unlock()

	r.syncVisibility()

	logging.FromContext(ctx).Debug().
		Str("from", string(from)).
		Str("to", string(id)).
		Msg("switched tab")
}

// UpdateTab applies patch to a tab. Unknown IDs are ignored.
func (r *TabRegistry) UpdateTab(_ context.Context, id entity.TabID, patch TabPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tab := r.tabs.Find(id)
	if tab == nil {
		return false
	}
	if patch.URL != nil {
		tab.URL = *patch.URL
	}
	if patch.Title != nil {
		tab.Title = *patch.Title
	}
	if patch.Favicon != nil {
		tab.Favicon = *patch.Favicon
	}
	if patch.LoadState != nil {
		tab.LoadState = *patch.LoadState
	}
	return true
}

// Move reorders a tab to position pos.
func (r *TabRegistry) Move(ctx context.Context, id entity.TabID, pos int) bool {
	r.mu.Lock()
	moved := r.tabs.Move(id, pos)
	r.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Int("position", pos).
		Bool("moved", moved).
		Msg("move tab")
	return moved
}

// GetActive returns a copy of the active tab.
func (r *TabRegistry) GetActive() (entity.Tab, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tab := r.tabs.ActiveTab(); tab != nil {
		return *tab, true
	}
	return entity.Tab{}, false
}

// Get returns a copy of the tab with id.
func (r *TabRegistry) Get(id entity.TabID) (entity.Tab, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tab := r.tabs.Find(id); tab != nil {
		return *tab, true
	}
	return entity.Tab{}, false
}

// Tabs returns copies of all tabs in tab bar order.
func (r *TabRegistry) Tabs() []entity.Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Tab, 0, r.tabs.Count())
	for _, tab := range r.tabs.Tabs {
		out = append(out, *tab)
	}
	return out
}

// Count returns the number of tabs.
func (r *TabRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tabs.Count()
}

// View returns the view owned by a tab.
func (r *TabRegistry) View(id entity.TabID) (port.WebView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	return v, ok
}

// TabForView returns the tab owning the view with viewID.
func (r *TabRegistry) TabForView(viewID port.WebViewID) (entity.TabID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, v := range r.views {
		if v.ID() == viewID {
			return id, true
		}
	}
	return "", false
}

// LiveViews returns the views of all tabs that are not destroyed.
func (r *TabRegistry) LiveViews() []port.WebView {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]port.WebView, 0, len(r.views))
	for _, tab := range r.tabs.Tabs {
		if v := r.views[tab.ID]; v != nil && !v.IsDestroyed() {
			out = append(out, v)
		}
	}
	return out
}

// Navigation is a started navigation on a tab.
type Navigation struct {
	TabID entity.TabID
	Seq   uint64
	View  port.WebView
}

// BeginNavigation records an optimistic navigation to target: the tab's
// URL and loading state are updated and its navigation sequence bumped.
// An empty id targets the active tab.
func (r *TabRegistry) BeginNavigation(ctx context.Context, id entity.TabID, target string) (Navigation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		id = r.tabs.ActiveTabID
	}
	tab := r.tabs.Find(id)
	if tab == nil {
		return Navigation{}, false
	}
	nav := Navigation{TabID: id, View: r.views[id]}
	tab.NavSeq++
	tab.URL = target
	tab.LoadState = entity.LoadLoading
	nav.Seq = tab.NavSeq

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Uint64("nav_seq", nav.Seq).
		Str("url", logging.TruncateURL(target, logURLMaxLen)).
		Msg("navigation started")
	return nav, true
}

// IsLatestNavigation reports whether seq is still the tab's newest
// navigation.
func (r *TabRegistry) IsLatestNavigation(id entity.TabID, seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	tab := r.tabs.Find(id)
	return tab != nil && tab.NavSeq == seq
}

// HandleViewEvent applies a view lifecycle event to its tab. Events
// tagged with a navigation sequence older than the tab's newest are
// dropped.
func (r *TabRegistry) HandleViewEvent(ctx context.Context, id entity.TabID, event port.ViewEvent) {
	log := logging.FromContext(ctx)

	r.mu.Lock()
	tab := r.tabs.Find(id)
	if tab == nil {
		r.mu.Unlock()
		return
	}
	view := r.views[id]

	if event.Kind == port.ViewReady {
		r.mu.Unlock()
		if r.theme != nil && view != nil {
			if err := r.theme.ApplyTo(ctx, view); err != nil {
				log.Warn().Err(err).Msg("failed to apply theme on ready")
			}
		}
		return
	}

	if event.Seq != 0 && event.Seq < tab.NavSeq {
		r.mu.Unlock()
		log.Debug().
			Str("event", event.Kind.String()).
			Uint64("event_seq", event.Seq).
			Uint64("nav_seq", tab.NavSeq).
			Msg("dropping stale view event")
		return
	}

	switch event.Kind {
	case port.ViewLoadStarted:
		tab.LoadState = entity.LoadLoading
	case port.ViewDidNavigate:
		if event.URI != "" {
			tab.URL = event.URI
		}
		// A committed navigation starts without the previous page's metadata.
		tab.Title = ""
		tab.Favicon = ""
	case port.ViewTitleChanged:
		tab.Title = event.Title
	case port.ViewFaviconChanged:
		tab.Favicon = event.Favicon
	case port.ViewLoadFinished:
		tab.LoadState = entity.LoadComplete
	case port.ViewLoadFailed:
		tab.LoadState = entity.LoadError
	}
	pageURL := tab.URL
	observer := r.onTitle
	r.mu.Unlock()

	if event.Kind == port.ViewTitleChanged && observer != nil && event.Title != "" {
		observer(ctx, id, pageURL, event.Title)
	}

	if event.Kind == port.ViewLoadFailed {
		log.Warn().Err(event.Err).Str("url", logging.TruncateURL(event.URI, logURLMaxLen)).Msg("load failed")
	}
}

// syncVisibility shows the active view and hides the rest.
func (r *TabRegistry) syncVisibility() {
	type visibility struct {
		view    port.WebView
		visible bool
	}

	r.mu.Lock()
	updates := make([]visibility, 0, len(r.views))
	for _, tab := range r.tabs.Tabs {
		if v := r.views[tab.ID]; v != nil {
			updates = append(updates, visibility{view: v, visible: tab.ID == r.tabs.ActiveTabID})
		}
	}
	r.mu.Unlock()

	for _, u := range updates {
		u.view.SetVisible(u.visible)
	}
}
