package cmd

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/cli/model"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage history",
	Long: `Interactive history browser with search. Selecting an entry
prints its URL so it can be piped to another command.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show (for --json)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyJSON {
		return runHistoryJSON(cmd)
	}
	return runHistoryTUI(cmd)
}

// runHistoryTUI runs the interactive history browser.
func runHistoryTUI(cmd *cobra.Command) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	m := model.NewHistoryModel(app.Ctx, app.Theme, app.History)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run history browser: %w", err)
	}

	if hm, ok := final.(model.HistoryModel); ok && hm.Selected() != "" {
		fmt.Fprintln(cmd.OutOrStdout(), hm.Selected())
	}
	return nil
}

// runHistoryJSON outputs history as JSON.
func runHistoryJSON(cmd *cobra.Command) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	entries, err := app.History.GetAll(app.Ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if historyMax > 0 && len(entries) > historyMax {
		entries = entries[:historyMax]
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.History.Clear(app.Ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("History cleared"))
	return nil
}
