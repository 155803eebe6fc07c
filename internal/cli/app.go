// Package cli provides the operator CLI on top of the shell core.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gekko-browser/gekko/internal/bootstrap"
	"github.com/gekko-browser/gekko/internal/cli/styles"
	"github.com/gekko-browser/gekko/internal/domain/build"
)

// Options selects the directories and log sink for an App.
type Options struct {
	ConfigDir string
	DataHome  string
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	*bootstrap.Container

	Theme     *styles.Theme
	BuildInfo build.Info
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	container, err := bootstrap.New(ctx, bootstrap.Options{
		ConfigDir: opts.ConfigDir,
		DataHome:  opts.DataHome,
		LogOutput: opts.LogOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &App{
		Container: container,
		Theme:     styles.NewTheme(container.Theme.CurrentTheme()),
	}, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	a.Container.Close()
	return nil
}
