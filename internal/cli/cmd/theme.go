package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/cli/styles"
	"github.com/gekko-browser/gekko/internal/domain/entity"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the UI theme",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeGet,
}

var themeSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Change the theme through the theme coordinator",
	Long: `Request a theme change. Unknown themes fall back to the default
theme. The change is persisted with retries and broadcast to every
open window listening on the same data directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
}

func runThemeGet(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Highlight.Render(string(app.Container.Theme.CurrentTheme())))
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	coordinator := app.Container.Theme
	if !coordinator.RequestThemeChange(app.Ctx, args[0]) {
		return fmt.Errorf("theme change to %q failed, kept %s", args[0], coordinator.CurrentTheme())
	}

	current := coordinator.CurrentTheme()
	app.Theme = styles.NewTheme(current)
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.KeyValue("theme", string(current)))
	return nil
}

func runThemeList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	current := app.Container.Theme.CurrentTheme()
	out := cmd.OutOrStdout()
	for _, id := range entity.KnownThemes {
		swatch := styles.NewTheme(id)
		line := swatch.Badge.Render(string(id))
		if id == current {
			line += " " + app.Theme.Highlight.Render("(current)")
		}
		if !id.IsAllowed() {
			line += " " + app.Theme.Subtle.Render("(palette only)")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
