package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/application/usecase"
	"github.com/twilight/weaver/internal/cli/styles"
)

var visitTitle string

var visitCmd = &cobra.Command{
	Use:   "visit <address>",
	Short: "Record a finished page load in history",
	Long: `Resolve the address as the address bar would and record the visit, as the
browser does when a page finishes loading. Only http and https pages are
recorded.`,
	Args: cobra.ExactArgs(1),
	RunE: runVisit,
}

func init() {
	rootCmd.AddCommand(visitCmd)
	visitCmd.Flags().StringVar(&visitTitle, "title", "", "page title (defaults to the address)")
}

type visitJSON struct {
	URL        string `json:"url"`
	Recorded   bool   `json:"recorded"`
	Bookmarked bool   `json:"bookmarked"`
	Secure     bool   `json:"secure"`
}

func runVisit(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	d := app.NavigateUC.Classify(args[0])
	out, err := app.RecordVisitUC.Execute(app.Ctx(), usecase.RecordVisitInput{URI: d.URL, Title: visitTitle})
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), visitJSON{
			URL:        d.URL,
			Recorded:   out.Recorded,
			Bookmarked: out.Bookmarked,
			Secure:     out.Secure,
		})
	}

	renderer := styles.NewBrowseRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderVisit(d.URL, out.Recorded, out.Bookmarked, out.Secure))
	return nil
}
