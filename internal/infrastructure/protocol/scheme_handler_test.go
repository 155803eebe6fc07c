package protocol

import (
	"context"
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeHandler_Found(t *testing.T) {
	r := NewResolver(context.Background(), newTestFs(t), sitesRoot, sharedRoot)
	h := NewSchemeHandler(context.Background(), r)

	resp := h.Handle(&SchemeRequest{URI: "gkp://home.gekko/", Method: "GET"})
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.ContentType)
	assert.Equal(t, "<h1>home</h1>", string(resp.Data))
	assert.Equal(t, uint64(1), h.Served())
}

func TestSchemeHandler_NotFoundUsesBuiltinPage(t *testing.T) {
	r := NewResolver(context.Background(), newTestFs(t), sitesRoot, sharedRoot)
	h := NewSchemeHandler(context.Background(), r)

	resp := h.Handle(&SchemeRequest{URI: "gkp://home.gekko/nope.html", Method: "GET"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(resp.Data), "Page not found.")
}

func TestSchemeHandler_NotFoundPrefersSharedPage(t *testing.T) {
	fs := newTestFs(t)
	require.NoError(t, afero.WriteFile(fs, sharedRoot+"/404.html", []byte("custom 404"), 0o644))
	h := NewSchemeHandler(context.Background(), NewResolver(context.Background(), fs, sitesRoot, sharedRoot))

	resp := h.Handle(&SchemeRequest{URI: "gkps://bank.gekko/nope.html", Method: "GET"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "custom 404", string(resp.Data))
}

func TestSchemeHandler_ErrorPage(t *testing.T) {
	h := NewSchemeHandler(context.Background(), NewResolver(context.Background(), newTestFs(t), sitesRoot, sharedRoot))

	resp := h.Handle(&SchemeRequest{URI: "gkp://evil.com/", Method: "GET"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(resp.Data), "The page could not be loaded.")

	resp = h.Handle(nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
