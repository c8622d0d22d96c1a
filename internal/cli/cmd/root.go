// Package cmd provides Cobra CLI commands for weaver.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/cli"
	"github.com/twilight/weaver/internal/domain/build"
)

// annotationNoProfile marks commands that never touch profile data.
const annotationNoProfile = "weaver/no-profile"

var (
	app       *cli.App
	buildInfo build.Info

	dataDir    string
	jsonOutput bool

	rootCmd = &cobra.Command{
		Use:   "weaver",
		Short: "A simple web browser",
		Long: `Weaver - a simple web browser built on GTK4, libadwaita and WebKitGTK.

This command line front end exposes the browsing core: the profile, its
history and bookmarks, address resolution and the weaver:// internal pages.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				Root:        dataDir,
				SkipProfile: cmd.Annotations[annotationNoProfile] == "true",
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
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default $WEAVER_DATA_DIR or ~/.weaver)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
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

func noProfile() map[string]string {
	return map[string]string{annotationNoProfile: "true"}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
