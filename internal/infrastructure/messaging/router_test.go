package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/application/usecase"
	"github.com/gekko-browser/gekko/internal/domain/entity"
)

type recordingNavigator struct {
	intents []usecase.Intent
	err     error
}

func (n *recordingNavigator) Dispatch(_ context.Context, intent usecase.Intent) error {
	n.intents = append(n.intents, intent)
	return n.err
}

type recordingThemes struct {
	requested []string
	ok        bool
}

func (r *recordingThemes) RequestThemeChange(_ context.Context, themeID string) bool {
	r.requested = append(r.requested, themeID)
	return r.ok
}

type singleTab struct{}

func (singleTab) TabForView(viewID port.WebViewID) (entity.TabID, bool) {
	if viewID == 7 {
		return "tab-7", true
	}
	return "", false
}

func newTestRouter(t *testing.T, nav Navigator, themes ThemeRequester) *Router {
	t.Helper()
	r := NewRouter()
	require.NoError(t, r.RegisterHandler(TypeNavigate, NavigateHandler(nav, singleTab{})))
	require.NoError(t, r.RegisterHandler(TypeThemeChange, ThemeChangeHandler(themes)))
	return r
}

func TestRouter_Navigate(t *testing.T) {
	nav := &recordingNavigator{}
	r := newTestRouter(t, nav, &recordingThemes{})
	ctx := context.Background()

	_, err := r.Dispatch(ctx, 7, []byte(`{"type":"navigate","url":"example.com","id":"n-1"}`))
	require.NoError(t, err)
	_, err = r.Dispatch(ctx, 7, []byte(`{"type":"navigate","url":"b.test","target":"tab-2"}`))
	require.NoError(t, err)
	_, err = r.Dispatch(ctx, 0, []byte(`{"type":"navigate","url":"c.test"}`))
	require.NoError(t, err)

	assert.Equal(t, []usecase.Intent{
		{ID: "n-1", URL: "example.com", Target: "tab-7", Channel: usecase.ChannelMessage},
		{URL: "b.test", Target: "tab-2", Channel: usecase.ChannelMessage},
		{URL: "c.test", Channel: usecase.ChannelMessage},
	}, nav.intents)
}

func TestRouter_NavigateError(t *testing.T) {
	boom := errors.New("boom")
	r := newTestRouter(t, &recordingNavigator{err: boom}, &recordingThemes{})

	_, err := r.Dispatch(context.Background(), 1, []byte(`{"type":"navigate","url":"x.test"}`))
	assert.ErrorIs(t, err, boom)
}

func TestRouter_ThemeChange(t *testing.T) {
	themes := &recordingThemes{ok: true}
	r := newTestRouter(t, &recordingNavigator{}, themes)

	result, err := r.Dispatch(context.Background(), 1, []byte(`{"type":"themeChange","theme":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"blue"}, themes.requested)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(encoded))
}

func TestRouter_RejectsBadMessages(t *testing.T) {
	r := newTestRouter(t, &recordingNavigator{}, &recordingThemes{})
	ctx := context.Background()

	_, err := r.Dispatch(ctx, 1, []byte(`{"type":"teleport"}`))
	assert.ErrorIs(t, err, ErrUnknownMessageType)

	_, err = r.Dispatch(ctx, 1, []byte(`not json`))
	assert.Error(t, err)

	_, err = r.Dispatch(ctx, 1, []byte(`{"type":"navigate","url":42}`))
	assert.Error(t, err)
}

func TestRouter_RecoversHandlerPanic(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.RegisterHandler("explode", MessageHandlerFunc(
		func(context.Context, port.WebViewID, json.RawMessage) (any, error) {
			panic("kaboom")
		})))

	var err error
	assert.NotPanics(t, func() {
		_, err = r.Dispatch(context.Background(), 1, []byte(`{"type":"explode"}`))
	})
	assert.ErrorContains(t, err, "kaboom")
}

func TestRouter_RegisterValidation(t *testing.T) {
	r := NewRouter()
	assert.Error(t, r.RegisterHandler("", NavigateHandler(&recordingNavigator{}, nil)))
	assert.Error(t, r.RegisterHandler("x", nil))
	assert.Empty(t, r.Types())
}
