// Package cmd provides Cobra CLI commands for gekko.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/cli"
	"github.com/gekko-browser/gekko/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configDir string
	dataHome  string

	rootCmd = &cobra.Command{
		Use:   "gekko",
		Short: "Operator CLI for the gekko browser shell",
		Long: `Gekko - the shell core of a tabbed browser for locally hosted sites.

Sites live under the sites directory and are served through the
gkp:// and gkps:// schemes. This CLI drives the same core the browser
uses: URL resolution, navigation, theme coordination and the JSON
stores for settings, history and bookmarks.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "normalize", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(context.Background(), cli.Options{
				ConfigDir: configDir,
				DataHome:  dataHome,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (requires --data-dir)")
	rootCmd.PersistentFlags().StringVar(&dataHome, "data-dir", "", "data directory (requires --config-dir)")
	rootCmd.MarkFlagsRequiredTogether("config-dir", "data-dir")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
