package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

func TestSettingsStore_GetAllReturnsDefaultsWhenMissing(t *testing.T) {
	store := NewSettingsStore(t.TempDir())

	got := store.GetAll(context.Background())

	assert.Equal(t, entity.DefaultSettings(), got)
}

func TestSettingsStore_ThemeRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewSettingsStore(dir)

	require.NoError(t, store.Set(ctx, entity.SettingTheme, entity.ThemeBlue))

	assert.Equal(t, entity.ThemeBlue, store.GetAll(ctx).Theme)
	// A fresh store reads from disk, not from memory.
	assert.Equal(t, entity.ThemeBlue, NewSettingsStore(dir).GetAll(ctx).Theme)
}

func TestSettingsStore_SetKeepsOtherKeysAndDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(t.TempDir())

	require.NoError(t, store.Set(ctx, entity.SettingSearchEngine, "https://duckduckgo.com/?q=%s"))
	require.NoError(t, store.Set(ctx, entity.SettingEnableDevTools, true))

	got := store.GetAll(ctx)
	assert.Equal(t, "https://duckduckgo.com/?q=%s", got.SearchEngine)
	assert.True(t, got.EnableDevTools)
	assert.Equal(t, entity.DefaultHomePage, got.HomePage)
	assert.Equal(t, entity.DefaultTheme, got.Theme)
}

func TestSettingsStore_SetRejectsWrongType(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(t.TempDir())

	err := store.Set(ctx, entity.SettingEnableDevTools, "yes please")
	require.Error(t, err)
	assert.False(t, store.GetAll(ctx).EnableDevTools)
}

func TestSettingsStore_CorruptDocumentReplaced(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewSettingsStore(dir)
	assert.Equal(t, entity.DefaultSettings(), store.GetAll(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestSettingsStore_UnwritableDirReturnsPersistenceError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	store := NewSettingsStore(dir)
	err := store.Set(ctx, entity.SettingTheme, entity.ThemeRed)

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.NotEmpty(t, perr.Op)
}

func TestSettingsSchema(t *testing.T) {
	data, err := SettingsSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme"`)
	assert.Contains(t, string(data), `"purple"`)
	assert.Contains(t, string(data), `"searchEngine"`)
}

func TestSettingsStore_CustomDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewSettingsStore(t.TempDir(), WithSettingsDefaults(func(s *entity.Settings) {
		s.SearchEngine = "https://duckduckgo.com/?q=%s"
		s.HomePage = "gkp://start.gekko/"
	}))

	got := store.GetAll(ctx)
	assert.Equal(t, "https://duckduckgo.com/?q=%s", got.SearchEngine)
	assert.Equal(t, "gkp://start.gekko/", got.HomePage)

	require.NoError(t, store.Set(ctx, entity.SettingHomePage, "gkp://home.gekko/"))
	assert.Equal(t, "gkp://home.gekko/", store.GetAll(ctx).HomePage)
	assert.Equal(t, "https://duckduckgo.com/?q=%s", store.GetAll(ctx).SearchEngine)
}
