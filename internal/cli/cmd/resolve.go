package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/cli/styles"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <address>",
	Short: "Classify an address the way the address bar does",
	Long: `Show whether an address navigates to a web page, runs a search, opens a
weaver:// page or shows the blank document. Several arguments are joined
with spaces, so unquoted search terms work.

Examples:
  weaver resolve example.com
  weaver resolve what is go
  weaver resolve weaver://about`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: noProfile(),
	RunE:        runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

type dispositionJSON struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	URL   string `json:"url"`
	Page  string `json:"page,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	d := app.NavigateUC.Classify(input)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), dispositionJSON{
			Input: input,
			Kind:  d.Kind.String(),
			URL:   d.URL,
			Page:  string(d.PageID),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBrowseRenderer(app.Theme).RenderDisposition(input, d))
	return nil
}
