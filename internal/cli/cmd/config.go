package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where settings live, print the effective settings or emit the settings JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Show configuration file locations",
	Annotations: noProfile(),
	RunE:        runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective settings",
	Annotations: noProfile(),
	RunE:        runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the settings JSON schema",
	Annotations: noProfile(),
	RunE:        runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
}

type configPathsJSON struct {
	Settings string `json:"settings"`
	Profile  string `json:"profile"`
	Schema   string `json:"schema"`
	DataRoot string `json:"data_root"`
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	mgr := app.ConfigManager
	paths := configPathsJSON{
		Settings: mgr.GetConfigFile(),
		Profile:  config.ProfileConfigFile(mgr.ProfileRoot()),
		Schema:   filepath.Join(mgr.Root(), config.SchemaFileName),
		DataRoot: mgr.ProfileRoot(),
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), paths)
	}

	t := app.Theme
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s %s\n", t.Subtle.Render("settings"), t.Normal.Render(paths.Settings))
	fmt.Fprintf(out, "  %s  %s\n", t.Subtle.Render("profile"), t.Normal.Render(paths.Profile))
	fmt.Fprintf(out, "  %s   %s\n", t.Subtle.Render("schema"), t.Normal.Render(paths.Schema))
	fmt.Fprintf(out, "  %s     %s\n", t.Subtle.Render("data"), t.Normal.Render(paths.DataRoot))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), app.Config)
	}

	data, err := toml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
