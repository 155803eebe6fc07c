package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gekko-browser/gekko/internal/infrastructure/persistence/jsonstore"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect the settings document",
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of settings.json",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSchema,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and data directories",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSchemaCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
}

func runSettingsSchema(cmd *cobra.Command, _ []string) error {
	schema, err := jsonstore.SettingsSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	cfg := app.ConfigManager.Get()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.Theme.KeyValue("config", app.ConfigManager.ConfigFile()))
	fmt.Fprintln(out, app.Theme.KeyValue("sites", cfg.SitesDir))
	fmt.Fprintln(out, app.Theme.KeyValue("shared", cfg.SharedDir))
	fmt.Fprintln(out, app.Theme.KeyValue("data", cfg.DataDir))
	return nil
}
