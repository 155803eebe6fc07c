package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	theme := themeForOutput()
	info := buildInfo
	version := info.Version
	if version == "" {
		version = "dev"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Title.Render("gekko")+" "+theme.Badge.Render(version))
	if info.Commit != "" {
		fmt.Fprintln(out, theme.KeyValue("commit", info.Commit))
	}
	if info.BuildDate != "" {
		fmt.Fprintln(out, theme.KeyValue("built", info.BuildDate))
	}
	if info.GoVersion != "" {
		fmt.Fprintln(out, theme.KeyValue("go", info.GoVersion))
	}
	fmt.Fprintln(out, theme.KeyValue("repo", build.RepoURL()))
	fmt.Fprintln(out, theme.KeyValue("contributors", strings.Join(build.Contributors(), ", ")))
	return nil
}
