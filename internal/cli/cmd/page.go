package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/domain/router"
)

var (
	pageDark  bool
	pageLight bool
)

var pageCmd = &cobra.Command{
	Use:   "page <id>",
	Short: "Render a weaver:// page to stdout",
	Long: `Render an internal page as HTML. Known pages are home, about and start;
any other id renders the invalid page. The color scheme follows the
appearance settings unless --dark or --light is given.`,
	Args:        cobra.ExactArgs(1),
	Annotations: noProfile(),
	RunE:        runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.Flags().BoolVar(&pageDark, "dark", false, "use the dark palette")
	pageCmd.Flags().BoolVar(&pageLight, "light", false, "use the light palette")
	pageCmd.MarkFlagsMutuallyExclusive("dark", "light")
}

func runPage(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	dark := app.Dark()
	switch {
	case pageDark:
		dark = true
	case pageLight:
		dark = false
	}

	html, err := router.RenderPage(args[0], app.PageContext(dark))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), html)
	return nil
}
