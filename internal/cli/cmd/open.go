package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/cli/styles"
	"github.com/gekko-browser/gekko/internal/infrastructure/messaging"
)

var openCmd = &cobra.Command{
	Use:   "open <input>...",
	Short: "Open inputs in headless tabs and print the tab list",
	Long: `Create one headless tab per input and navigate it through the
message router, the same path a page uses to request navigation.
Inputs may be URLs, bare domains or search terms.

Examples:
  gekko open gkp://home.gekko/
  gekko open example.com "!gh gekko"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx

	for _, input := range args {
		tabID, err := app.Tabs.CreateTab(ctx, "")
		if err != nil {
			return fmt.Errorf("create tab: %w", err)
		}
		view, ok := app.Tabs.View(tabID)
		if !ok {
			return fmt.Errorf("tab %s has no view", tabID)
		}

		payload, err := json.Marshal(messaging.NavigateMessage{Type: messaging.TypeNavigate, URL: input})
		if err != nil {
			return fmt.Errorf("encode navigate message: %w", err)
		}
		if _, err := app.Messages.Dispatch(ctx, view.ID(), payload); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.ErrorStyle.Render(err.Error()))
		}
	}

	active, _ := app.Tabs.GetActive()
	tabs := app.Tabs.Tabs()
	rows := make([]table.Row, 0, len(tabs))
	for _, tab := range tabs {
		rows = append(rows, styles.TabRow(tab, tab.ID == active.ID))
	}
	t := styles.NewStyledTable(app.Theme, styles.TabTableColumns(), rows, 90, len(rows)+3)
	t.Blur()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.View())
	if msg := app.Status.Message(); msg != "" {
		fmt.Fprintln(out, app.Theme.WarningStyle.Render(msg))
	}
	return nil
}
