package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/application/port/mocks"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/infrastructure/headless"
	"github.com/gekko-browser/gekko/internal/infrastructure/persistence/jsonstore"
	"github.com/gekko-browser/gekko/internal/logging"
)

func settingsWith(t *testing.T, mutate func(*entity.Settings)) *mocks.MockSettingsStore {
	settings := entity.DefaultSettings()
	if mutate != nil {
		mutate(&settings)
	}
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().GetAll(mock.Anything).Return(settings).Maybe()
	return store
}

func permissiveHistory(t *testing.T) *mocks.MockHistoryStore {
	history := mocks.NewMockHistoryStore(t)
	history.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return history
}

type navFixture struct {
	registry *TabRegistry
	router   *NavigateUseCase
	tab      entity.TabID
}

func newNavFixture(t *testing.T, settings *mocks.MockSettingsStore, history *mocks.MockHistoryStore) navFixture {
	t.Helper()
	ctx := context.Background()
	registry, _, _ := newTestRegistry(headless.WithAutoReady())
	id, err := registry.CreateTab(ctx, "")
	require.NoError(t, err)
	return navFixture{
		registry: registry,
		router:   NewNavigateUseCase(registry, settings, history, nil),
		tab:      id,
	}
}

func (f navFixture) lastLoad(t *testing.T) string {
	t.Helper()
	loads := headlessView(t, f.registry, f.tab).Loads()
	require.NotEmpty(t, loads)
	return loads[len(loads)-1]
}

// flakyView rejects both load paths until failures runs out.
type flakyView struct {
	fakeView
	failures int
	loads    []string
}

func (v *flakyView) Load(_ context.Context, req port.LoadRequest) error {
	if v.failures > 0 {
		return errors.New("renderer not attached")
	}
	v.loads = append(v.loads, req.URI)
	return nil
}

func (v *flakyView) SetSource(port.LoadRequest) error {
	if v.failures > 0 {
		v.failures--
		return errors.New("renderer not attached")
	}
	return nil
}

// stubTarget is a single-tab NavigationTarget around an arbitrary view.
type stubTarget struct {
	tab  entity.Tab
	view port.WebView
}

func newStubTarget(id entity.TabID, view port.WebView) *stubTarget {
	return &stubTarget{tab: entity.Tab{ID: id, LoadState: entity.LoadComplete}, view: view}
}

func (s *stubTarget) GetActive() (entity.Tab, bool) { return s.tab, true }

func (s *stubTarget) Get(id entity.TabID) (entity.Tab, bool) {
	return s.tab, id == s.tab.ID
}

func (s *stubTarget) BeginNavigation(_ context.Context, id entity.TabID, target string) (Navigation, bool) {
	if id != s.tab.ID {
		return Navigation{}, false
	}
	s.tab.NavSeq++
	s.tab.URL = target
	return Navigation{TabID: id, Seq: s.tab.NavSeq, View: s.view}, true
}

func (s *stubTarget) IsLatestNavigation(id entity.TabID, seq uint64) bool {
	return id == s.tab.ID && seq == s.tab.NavSeq
}

func TestNavigate_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		template string
		want     string
	}{
		{"bare domain", "example.com", "", "https://example.com"},
		{"ipv4 with port", "192.168.1.1:8080", "", "http://192.168.1.1:8080"},
		{"https passes through", "https://example.com/a?b=c", "", "https://example.com/a?b=c"},
		{"virtual scheme passes through", "gkp://home.gekko/", "", "gkp://home.gekko/"},
		{"file scheme passes through", "file:///tmp/x.html", "", "file:///tmp/x.html"},
		{"trimmed", "  example.com  ", "", "https://example.com"},
		{"search query", "hello world", "", "https://www.google.com/search?q=hello%20world"},
		{"search with %s template", "hello world", "https://duckduckgo.com/?q=%s&ia=web", "https://duckduckgo.com/?q=hello%20world&ia=web"},
		{"search with prefix template", "go", "https://search.test/?q=", "https://search.test/?q=go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := settingsWith(t, func(s *entity.Settings) {
				s.SearchEngine = tt.template
			})
			f := newNavFixture(t, settings, permissiveHistory(t))

			require.NoError(t, f.router.Navigate(context.Background(), tt.input, ""))
			assert.Equal(t, tt.want, f.lastLoad(t))
		})
	}
}

func TestNavigate_BangShortcut(t *testing.T) {
	settings := settingsWith(t, func(s *entity.Settings) {
		s.SearchShortcuts = map[string]string{"gh": "https://github.com/search?q=%s"}
	})
	f := newNavFixture(t, settings, permissiveHistory(t))

	require.NoError(t, f.router.Navigate(context.Background(), "!gh go toolchain", ""))
	assert.Equal(t, "https://github.com/search?q=go%20toolchain", f.lastLoad(t))
}

func TestNavigate_SearchTemplateReadPerRequest(t *testing.T) {
	template := "https://one.test/?q="
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().GetAll(mock.Anything).RunAndReturn(func(context.Context) entity.Settings {
		s := entity.DefaultSettings()
		s.SearchEngine = template
		return s
	})
	f := newNavFixture(t, store, permissiveHistory(t))
	ctx := context.Background()

	require.NoError(t, f.router.Navigate(ctx, "first query", ""))
	assert.Equal(t, "https://one.test/?q=first%20query", f.lastLoad(t))

	template = "https://two.test/?q="
	require.NoError(t, f.router.Navigate(ctx, "second query", ""))
	assert.Equal(t, "https://two.test/?q=second%20query", f.lastLoad(t))
}

func TestNavigate_HistoryRecordedWithCommittedTitle(t *testing.T) {
	ctx := context.Background()
	history := mocks.NewMockHistoryStore(t)
	history.EXPECT().Add(mock.Anything, "https://example.com", "Docs").Return(nil).Once()
	history.EXPECT().Add(mock.Anything, "https://untitled.test", "").Return(nil).Once()

	registry, _, _ := newTestRegistry(headless.WithAutoReady(), headless.WithLoader(
		func(_ context.Context, uri string) (headless.Page, error) {
			if uri == "https://example.com" {
				return headless.Page{Title: "Docs"}, nil
			}
			return headless.Page{}, nil
		}))
	_, err := registry.CreateTab(ctx, "")
	require.NoError(t, err)
	router := NewNavigateUseCase(registry, settingsWith(t, nil), history, nil)

	require.NoError(t, router.Navigate(ctx, "https://example.com", ""))
	require.NoError(t, router.Navigate(ctx, "https://untitled.test", ""))
}

func TestNavigate_FailedPageRecordsEmptyTitle(t *testing.T) {
	ctx := context.Background()
	history := mocks.NewMockHistoryStore(t)
	history.EXPECT().Add(mock.Anything, "https://down.test", "").Return(nil).Once()

	registry, _, _ := newTestRegistry(headless.WithAutoReady(), headless.WithLoader(
		func(_ context.Context, uri string) (headless.Page, error) {
			if uri == "https://down.test" {
				return headless.Page{}, errors.New("connection refused")
			}
			return headless.Page{Title: "Home"}, nil
		}))
	id, err := registry.CreateTab(ctx, "")
	require.NoError(t, err)
	tab, _ := registry.Get(id)
	require.Equal(t, "Home", tab.Title)
	router := NewNavigateUseCase(registry, settingsWith(t, nil), history, nil)

	require.NoError(t, router.Navigate(ctx, "https://down.test", ""))
}

func TestNavigate_PendingViewRecordsEmptyTitle(t *testing.T) {
	ctx := context.Background()
	history := mocks.NewMockHistoryStore(t)
	history.EXPECT().Add(mock.Anything, "https://example.com", "").Return(nil).Once()

	registry, _, _ := newTestRegistry()
	id, err := registry.CreateTab(ctx, "")
	require.NoError(t, err)
	title := "Previous Page"
	registry.UpdateTab(ctx, id, TabPatch{Title: &title})
	router := NewNavigateUseCase(registry, settingsWith(t, nil), history, nil)

	require.NoError(t, router.Navigate(ctx, "example.com", id))
}

func TestNavigate_InternalPagesSkipHistoryStorage(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.NewHistoryStore(t.TempDir())
	registry, _, _ := newTestRegistry(headless.WithAutoReady(), headless.WithLoader(
		func(_ context.Context, uri string) (headless.Page, error) {
			if strings.HasPrefix(uri, "gkp://") {
				return headless.Page{Title: "History"}, nil
			}
			return headless.Page{Title: "Example Domain"}, nil
		}))
	_, err := registry.CreateTab(ctx, "")
	require.NoError(t, err)
	router := NewNavigateUseCase(registry, settingsWith(t, nil), store, nil)

	require.NoError(t, router.Navigate(ctx, "gkp://history.gekko/", ""))
	entries, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, router.Navigate(ctx, "https://example.com", ""))
	entries, err = store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://example.com", entries[0].URL)
	assert.Equal(t, "Example Domain", entries[0].Title)
}

func TestNavigate_IntentIDAppliedOnce(t *testing.T) {
	ctx := context.Background()
	f := newNavFixture(t, settingsWith(t, nil), permissiveHistory(t))
	before := len(headlessView(t, f.registry, f.tab).Loads())

	intent := Intent{ID: "intent-1", URL: "example.com", Channel: ChannelMessage}
	require.NoError(t, f.router.Dispatch(ctx, intent))
	intent.Channel = ChannelNavigationAPI
	require.NoError(t, f.router.Dispatch(ctx, intent))

	assert.Len(t, headlessView(t, f.registry, f.tab).Loads(), before+1)
}

func TestNavigate_FailedLoadDoesNotConsumeIntentID(t *testing.T) {
	ctx := context.Background()
	view := &flakyView{fakeView: fakeView{id: 1}, failures: 1}
	target := newStubTarget("tab-1", view)
	router := NewNavigateUseCase(target, settingsWith(t, nil), permissiveHistory(t), nil)

	err := router.Dispatch(ctx, Intent{ID: "n1", URL: "example.com", Channel: ChannelDirect})
	require.ErrorIs(t, err, ErrViewNotReady)
	assert.Empty(t, view.loads)

	require.NoError(t, router.Dispatch(ctx, Intent{ID: "n1", URL: "example.com", Channel: ChannelMessage}))
	assert.Equal(t, []string{"https://example.com"}, view.loads)

	require.NoError(t, router.Dispatch(ctx, Intent{ID: "n1", URL: "example.com", Channel: ChannelNavigationAPI}))
	assert.Len(t, view.loads, 1)
}

func TestNavigate_FailedLoadRetriedWithinWindow(t *testing.T) {
	ctx := context.Background()
	view := &flakyView{fakeView: fakeView{id: 1}, failures: 1}
	target := newStubTarget("tab-1", view)
	router := NewNavigateUseCase(target, settingsWith(t, nil), permissiveHistory(t), nil)
	clock := newFakeClock()
	router.now = clock.Now

	require.Error(t, router.Dispatch(ctx, Intent{URL: "example.com", Channel: ChannelDirect}))
	require.NoError(t, router.Dispatch(ctx, Intent{URL: "example.com", Channel: ChannelViewAttribute}))
	assert.Equal(t, []string{"https://example.com"}, view.loads)
}

func TestNavigate_MissingTabDoesNotConsumeIntentID(t *testing.T) {
	ctx := context.Background()
	f := newNavFixture(t, settingsWith(t, nil), permissiveHistory(t))
	before := len(headlessView(t, f.registry, f.tab).Loads())

	intent := Intent{ID: "n2", URL: "example.com", Target: "missing", Channel: ChannelMessage}
	require.ErrorIs(t, f.router.Dispatch(ctx, intent), ErrNoTargetTab)

	intent.Target = f.tab
	require.NoError(t, f.router.Dispatch(ctx, intent))
	assert.Len(t, headlessView(t, f.registry, f.tab).Loads(), before+1)
	assert.Equal(t, "https://example.com", f.lastLoad(t))
}

func TestNavigate_RedeliveryWithoutIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newNavFixture(t, settingsWith(t, nil), permissiveHistory(t))
	clock := newFakeClock()
	f.router.now = clock.Now
	view := headlessView(t, f.registry, f.tab)
	before := len(view.Loads())

	require.NoError(t, f.router.Dispatch(ctx, Intent{URL: "example.com", Channel: ChannelDirect}))
	require.NoError(t, f.router.Dispatch(ctx, Intent{URL: "example.com", Channel: ChannelViewAttribute}))
	assert.Len(t, view.Loads(), before+1)

	clock.Advance(time.Second)
	require.NoError(t, f.router.Navigate(ctx, "example.com", ""))
	assert.Len(t, view.Loads(), before+2)
}

func TestNavigate_SameURLAfterNewerNavigationLoads(t *testing.T) {
	ctx := context.Background()
	f := newNavFixture(t, settingsWith(t, nil), permissiveHistory(t))
	clock := newFakeClock()
	f.router.now = clock.Now
	view := headlessView(t, f.registry, f.tab)
	before := len(view.Loads())

	require.NoError(t, f.router.Navigate(ctx, "a.test", ""))
	_, ok := f.registry.BeginNavigation(ctx, f.tab, "https://b.test")
	require.True(t, ok)
	require.NoError(t, f.router.Navigate(ctx, "a.test", ""))

	assert.Len(t, view.Loads(), before+2)
}

func TestNavigate_ViewNotReadyUsesSource(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newTestRegistry()
	id, err := registry.CreateTab(ctx, "")
	require.NoError(t, err)
	router := NewNavigateUseCase(registry, settingsWith(t, nil), permissiveHistory(t), nil)

	require.NoError(t, router.Navigate(ctx, "example.com", id))

	src, ok := headlessView(t, registry, id).PendingSource()
	require.True(t, ok)
	assert.Equal(t, "https://example.com", src.URI)
	tab, _ := registry.Get(id)
	assert.Equal(t, "https://example.com", tab.URL)
	assert.Equal(t, entity.LoadLoading, tab.LoadState)
	assert.Equal(t, src.Seq, tab.NavSeq)
}

func TestNavigate_FailuresSetStatus(t *testing.T) {
	ctx := context.Background()
	status := mocks.NewMockStatusReporter(t)
	status.EXPECT().SetStatus(mock.Anything, mock.MatchedBy(func(msg string) bool {
		return strings.HasPrefix(msg, "Failed to navigate: ")
	})).Times(3)

	registry, _, _ := newTestRegistry()
	router := NewNavigateUseCase(registry, settingsWith(t, nil), permissiveHistory(t), status)

	err := router.Navigate(ctx, "example.com", "")
	assert.ErrorIs(t, err, ErrNoTargetTab)

	_, err = registry.CreateTab(ctx, "")
	require.NoError(t, err)
	err = router.Navigate(ctx, "example.com", "missing")
	assert.ErrorIs(t, err, ErrNoTargetTab)

	err = router.Navigate(ctx, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestNavigate_LogsCarryTargetURL(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))
	f := newNavFixture(t, settingsWith(t, nil), permissiveHistory(t))

	require.NoError(t, f.router.Navigate(ctx, "example.com", ""))

	var initiated string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "navigation initiated") {
			initiated = line
		}
	}
	require.NotEmpty(t, initiated)
	assert.Contains(t, initiated, `"url":"https://example.com"`)
	assert.Contains(t, initiated, `"tab_id":"`+string(f.tab)+`"`)
}

func TestNavigate_DestroyedViewFails(t *testing.T) {
	ctx := context.Background()
	f := newNavFixture(t, settingsWith(t, nil), permissiveHistory(t))
	headlessView(t, f.registry, f.tab).Destroy()

	err := f.router.Navigate(ctx, "example.com", "")
	assert.ErrorIs(t, err, ErrViewNotReady)
}
