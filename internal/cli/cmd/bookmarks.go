package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	urlutil "github.com/gekko-browser/gekko/internal/domain/url"
)

var bookmarkTitle string

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "Manage bookmarks",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks in order",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Bookmark a URL, updating the title if it already exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksAdd,
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksRemove,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)

	bookmarksAddCmd.Flags().StringVarP(&bookmarkTitle, "title", "t", "", "bookmark title")
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	bookmarks, err := app.Bookmarks.GetAll(app.Ctx)
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(bookmarks) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No bookmarks"))
		return nil
	}
	for _, b := range bookmarks {
		title := b.Title
		if title == "" {
			title = b.URL
		}
		fmt.Fprintf(out, "%s  %s\n", app.Theme.Normal.Render(title), app.Theme.Subtle.Render(b.URL))
	}
	return nil
}

func runBookmarksAdd(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	target := urlutil.Normalize(args[0])
	if err := app.Bookmarks.Add(app.Ctx, target, bookmarkTitle, ""); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("Bookmarked "+target))
	return nil
}

func runBookmarksRemove(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	target := urlutil.Normalize(args[0])
	if err := app.Bookmarks.Remove(app.Ctx, target); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render("Removed "+target))
	return nil
}
