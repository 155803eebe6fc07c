package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Inspect recorded downloads",
}

var downloadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List download records",
	Args:  cobra.NoArgs,
	RunE:  runDownloadsList,
}

var downloadsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all download records",
	Args:  cobra.NoArgs,
	RunE:  runDownloadsClear,
}

func init() {
	rootCmd.AddCommand(downloadsCmd)
	downloadsCmd.AddCommand(downloadsListCmd)
	downloadsCmd.AddCommand(downloadsClearCmd)
}

func runDownloadsList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	records, err := app.Downloads.GetAll(app.Ctx)
	if err != nil {
		return fmt.Errorf("load downloads: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No downloads"))
		return nil
	}
	for _, d := range records {
		fmt.Fprintf(out, "%s %s  %s\n",
			app.Theme.BadgeMuted.Render(string(d.State)),
			app.Theme.Normal.Render(d.Filename),
			app.Theme.Subtle.Render(d.URL))
	}
	return nil
}

func runDownloadsClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.Downloads.Clear(app.Ctx); err != nil {
		return fmt.Errorf("clear downloads: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("Downloads cleared"))
	return nil
}
