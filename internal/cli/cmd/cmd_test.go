package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliDirs struct {
	config string
	data   string
}

func newCLIDirs(t *testing.T) cliDirs {
	t.Helper()
	dirs := cliDirs{config: t.TempDir(), data: t.TempDir()}

	home := filepath.Join(dirs.data, "sites", "home.gekko")
	require.NoError(t, os.MkdirAll(home, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "index.html"),
		[]byte("<html><title>Gekko Home</title><body>welcome</body></html>"), 0o644))
	return dirs
}

func execute(t *testing.T, dirs cliDirs, args ...string) (string, string, error) {
	t.Helper()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		historyJSON = false
		historyMax = defaultHistoryMax
		bookmarkTitle = ""
		if app != nil {
			_ = app.Close()
			app = nil
		}
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config-dir", dirs.config, "--data-dir", dirs.data}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNormalize(t *testing.T) {
	out, _, err := execute(t, newCLIDirs(t), "normalize", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com\n", out)
}

func TestResolve(t *testing.T) {
	dirs := newCLIDirs(t)

	out, _, err := execute(t, dirs, "resolve", "gkp://home.gekko/")
	require.NoError(t, err)
	assert.Contains(t, out, "found")
	assert.Contains(t, out, filepath.Join(dirs.data, "sites", "home.gekko", "index.html"))
	assert.Contains(t, out, "text/html")

	out, _, err = execute(t, dirs, "resolve", "gkp://home.evil/")
	require.NoError(t, err)
	assert.Contains(t, out, "error")
}

func TestFetch(t *testing.T) {
	dirs := newCLIDirs(t)

	out, errOut, err := execute(t, dirs, "fetch", "gkp://home.gekko/")
	require.NoError(t, err)
	assert.Contains(t, out, "welcome")
	assert.Contains(t, errOut, "200")

	_, errOut, err = execute(t, dirs, "fetch", "gkp://missing.gekko/")
	require.NoError(t, err)
	assert.Contains(t, errOut, "404")
}

func TestThemeSetThenGet(t *testing.T) {
	dirs := newCLIDirs(t)

	out, _, err := execute(t, dirs, "theme", "set", "blue")
	require.NoError(t, err)
	assert.Contains(t, out, "blue")

	out, _, err = execute(t, dirs, "theme", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "blue")

	out, _, err = execute(t, dirs, "theme", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "nord")
	assert.Contains(t, out, "(current)")
}

func TestOpen_PrintsTabs(t *testing.T) {
	dirs := newCLIDirs(t)

	out, _, err := execute(t, dirs, "open", "gkp://home.gekko/", "example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Gekko Home")
	assert.Contains(t, out, "https://example.com")

	out, _, err = execute(t, dirs, "history", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"url": "https://example.com"`)

	_, _, err = execute(t, dirs, "history", "clear")
	require.NoError(t, err)

	out, _, err = execute(t, dirs, "history", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestBookmarks(t *testing.T) {
	dirs := newCLIDirs(t)

	_, _, err := execute(t, dirs, "bookmarks", "add", "go.dev", "--title", "Go")
	require.NoError(t, err)

	out, _, err := execute(t, dirs, "bookmarks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "https://go.dev")

	_, _, err = execute(t, dirs, "bookmarks", "remove", "go.dev")
	require.NoError(t, err)

	out, _, err = execute(t, dirs, "bookmarks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No bookmarks")
}

func TestSettingsSchema(t *testing.T) {
	out, _, err := execute(t, newCLIDirs(t), "settings", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "searchEngine")
}

func TestConfigPath(t *testing.T) {
	dirs := newCLIDirs(t)

	out, _, err := execute(t, dirs, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dirs.data, "sites"))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, newCLIDirs(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, "github.com/gekko-browser/gekko")
}

func TestDownloads_Empty(t *testing.T) {
	dirs := newCLIDirs(t)

	out, _, err := execute(t, dirs, "downloads", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No downloads")

	_, _, err = execute(t, dirs, "downloads", "clear")
	require.NoError(t, err)
}
