package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/infrastructure/persistence/sqlite"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the active profile",
	Long: `Resolve the profile from config.ini, creating it on first run, and show
where its history and bookmarks are stored.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

type profileJSON struct {
	ID          string `json:"id"`
	Dir         string `json:"dir"`
	ConfigFile  string `json:"config_file"`
	Placeholder bool   `json:"placeholder"`
	// CustomID is true for a hand-edited profile_name.
	CustomID bool                   `json:"custom_id"`
	Storage  bool                   `json:"storage"`
	Schema   *sqlite.SchemaVersions `json:"schema,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

func runProfile(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var schema *sqlite.SchemaVersions
	if app.Store.Available() {
		v, err := app.Store.SchemaVersions(app.Ctx())
		if err != nil {
			return err
		}
		schema = &v
	}

	if jsonOutput {
		out := profileJSON{
			ID:          app.Profile.ID,
			Dir:         app.Profile.Dir,
			ConfigFile:  app.Store.ConfigFile(),
			Placeholder: app.Profile.IsPlaceholder(),
			CustomID:    !app.Profile.IsPlaceholder() && !entity.IsGeneratedProfileID(app.Profile.ID),
			Storage:     app.Store.Available(),
			Schema:      schema,
		}
		if app.ProfileErr != nil {
			out.Error = app.ProfileErr.Error()
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	renderer := styles.NewBrowseRenderer(app.Theme)
	text := renderer.RenderProfile(app.Profile, app.Store.ConfigFile(), app.ProfileErr)
	if schema != nil {
		text += renderer.RenderSchemaVersions(schema.History, schema.Bookmarks)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
