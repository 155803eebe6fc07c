package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/cli/styles"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	urlutil "github.com/gekko-browser/gekko/internal/domain/url"
	"github.com/gekko-browser/gekko/internal/infrastructure/protocol"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <input>",
	Short: "Show how address bar input is normalized",
	Long: `Print the URL that navigating to <input> would load before any
search-engine fallback is applied.

Examples:
  gekko normalize example.com        # https://example.com
  gekko normalize localhost:3000     # http://localhost:3000`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve a gkp:// or gkps:// URL to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Serve a virtual URL and print the response body",
	Long: `Run <url> through the scheme handler exactly as a content view
would, printing the body to stdout. Status and content type go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(fetchCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), urlutil.Normalize(args[0]))
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	res := app.Resolver.ResolveURL(args[0])
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.Theme.StatusBadge(res.Kind.String(), res.Kind == protocol.Found))
	if res.AbsolutePath != "" {
		fmt.Fprintln(out, app.Theme.KeyValue("path", res.AbsolutePath))
	}
	if res.MimeType != "" {
		fmt.Fprintln(out, app.Theme.KeyValue("mime", res.MimeType))
	}
	if res.Err != nil {
		fmt.Fprintln(out, app.Theme.KeyValue("error", res.Err.Error()))
	}
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	resp := app.Schemes.Handle(&protocol.SchemeRequest{URI: args[0], Method: "GET"})
	fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.KeyValue("status", strconv.Itoa(resp.StatusCode)))
	fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.KeyValue("content-type", resp.ContentType))
	_, err = cmd.OutOrStdout().Write(resp.Data)
	return err
}

// themeForOutput returns the styles used by commands that skip app setup.
func themeForOutput() *styles.Theme {
	if app != nil {
		return app.Theme
	}
	return styles.NewTheme(entity.DefaultTheme)
}
