package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/infrastructure/protocol"
)

func collect(v port.WebView) *[]port.ViewEvent {
	events := &[]port.ViewEvent{}
	v.OnEvent(func(e port.ViewEvent) { *events = append(*events, e) })
	return events
}

func kinds(events []port.ViewEvent) []port.ViewEventKind {
	out := make([]port.ViewEventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestView_LoadBeforeReady(t *testing.T) {
	ctx := context.Background()
	f := NewFactory()
	wv, err := f.Create(ctx)
	require.NoError(t, err)
	v := wv.(*View)
	events := collect(v)

	assert.ErrorIs(t, v.Load(ctx, port.LoadRequest{URI: "https://a.test"}), ErrNotReady)
	require.NoError(t, v.SetSource(port.LoadRequest{URI: "https://a.test", Seq: 1}))
	assert.False(t, v.IsReady())

	require.NoError(t, v.MarkReady(ctx))
	assert.True(t, v.IsReady())
	assert.Equal(t, []string{"https://a.test"}, v.Loads())
	assert.Equal(t, []port.ViewEventKind{
		port.ViewReady, port.ViewLoadStarted, port.ViewDidNavigate, port.ViewLoadFinished,
	}, kinds(*events))
	assert.Equal(t, uint64(1), (*events)[2].Seq)
}

func TestView_AutoReadyLoadsSource(t *testing.T) {
	f := NewFactory(WithAutoReady(), WithLoader(func(_ context.Context, uri string) (Page, error) {
		return Page{Title: "Example"}, nil
	}))
	wv, err := f.Create(context.Background())
	require.NoError(t, err)
	events := collect(wv)

	require.NoError(t, wv.SetSource(port.LoadRequest{URI: "https://example.com", Seq: 3}))

	assert.True(t, wv.IsReady())
	assert.Equal(t, []port.ViewEventKind{
		port.ViewReady, port.ViewLoadStarted, port.ViewDidNavigate, port.ViewTitleChanged, port.ViewLoadFinished,
	}, kinds(*events))
	assert.Equal(t, "Example", (*events)[3].Title)
	assert.Len(t, f.Views(), 1)
}

func TestView_LoaderFailureEmitsLoadFailed(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	f := NewFactory(WithLoader(func(context.Context, string) (Page, error) { return Page{}, boom }))
	wv, _ := f.Create(ctx)
	v := wv.(*View)
	require.NoError(t, v.MarkReady(ctx))
	events := collect(v)

	require.NoError(t, v.Load(ctx, port.LoadRequest{URI: "https://x.test", Seq: 2}))
	require.Len(t, *events, 2)
	assert.Equal(t, port.ViewLoadFailed, (*events)[1].Kind)
	assert.ErrorIs(t, (*events)[1].Err, boom)
}

func TestView_Destroy(t *testing.T) {
	ctx := context.Background()
	wv, _ := NewFactory().Create(ctx)
	v := wv.(*View)
	events := collect(v)

	v.Destroy()
	assert.True(t, v.IsDestroyed())
	v.Emit(port.ViewEvent{Kind: port.ViewReady})
	assert.Empty(t, *events)
	assert.ErrorIs(t, v.InjectCSS(ctx, "x"), ErrDestroyed)
	assert.ErrorIs(t, v.MarkReady(ctx), ErrDestroyed)
}

func TestProtocolLoader(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/sites/home.gekko/index.html",
		[]byte("<html><head><title>Home &amp; Away</title></head></html>"), 0o644))
	resolver := protocol.NewResolver(ctx, fs, "/sites", "/sites/shared.gekko")
	load := ProtocolLoader(protocol.NewSchemeHandler(ctx, resolver))

	page, err := load(ctx, "gkp://home.gekko/")
	require.NoError(t, err)
	assert.Equal(t, "Home & Away", page.Title)

	page, err = load(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", page.URI)
	assert.Empty(t, page.Title)

	_, err = load(ctx, "gkp://evil.com/")
	assert.Error(t, err)
}
