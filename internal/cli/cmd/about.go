package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/build"
	"github.com/twilight/weaver/internal/domain/router"
)

var aboutCmd = &cobra.Command{
	Use:         "about",
	Short:       "Show version and build information",
	Long:        `Display version, build info, license, homepage and contributors.`,
	Annotations: noProfile(),
	RunE:        runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

type aboutJSON struct {
	build.Info
	router.AboutMeta
	Contributors []string `json:"contributors"`
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), aboutJSON{
			Info:         app.BuildInfo,
			AboutMeta:    router.About(),
			Contributors: build.Contributors(),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
