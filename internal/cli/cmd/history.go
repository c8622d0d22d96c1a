package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/cli/model"
	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/infrastructure/config"
	"github.com/twilight/weaver/internal/logging"
)

var (
	historyMax   int
	historyQuery string
	clearYes     bool
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage history",
	Long:  `List browsing history, most recent first. Use the subcommands to delete entries or browse interactively.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List history entries",
	RunE:  runHistoryList,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <url> <title> <timestamp>",
	Short: "Delete the entries matching url, title and timestamp",
	Long: `Delete history entries. All three fields must match exactly; the
timestamp uses the stored "YYYY-MM-DD HH:MM:SS" local time format.

Example:
  weaver history delete https://go.dev "The Go Programming Language" "2024-05-01 09:30:00"`,
	Args: cobra.ExactArgs(3),
	RunE: runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history",
	RunE:  runHistoryClear,
}

var historyBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse history interactively",
	RunE:  runHistoryBrowse,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyDeleteCmd, historyClearCmd, historyBrowseCmd)

	for _, c := range []*cobra.Command{historyCmd, historyListCmd} {
		c.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show (0 for all)")
		c.Flags().StringVarP(&historyQuery, "query", "q", "", "only show entries whose URL or title contains this text")
	}
	historyClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation prompt")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	entries, err := app.HistoryUC.Filter(app.Ctx(), historyQuery, historyMax)
	if err != nil {
		return err
	}

	if jsonOutput {
		if entries == nil {
			entries = []*entity.HistoryEntry{}
		}
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBrowseRenderer(app.Theme).RenderHistory(entries, time.Now()))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	visitedAt, err := entity.ParseHistoryTimestamp(args[2])
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", args[2], err)
	}

	n, err := app.HistoryUC.Delete(app.Ctx(), args[0], args[1], visitedAt)
	if err != nil {
		return err
	}
	return printDeleted(cmd, "history entries", n)
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !clearYes && !confirm(cmd, "Delete all history?") {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("  Aborted"))
		return nil
	}

	n, err := app.HistoryUC.Clear(app.Ctx())
	if err != nil {
		return err
	}
	return printDeleted(cmd, "history entries", n)
}

func runHistoryBrowse(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	m := model.NewHistoryModel(app.Ctx(), app.CurrentTheme(), app.HistoryUC)
	p := tea.NewProgram(m, tea.WithAltScreen())

	err = app.WatchSettings(func(_ *config.Config, theme *styles.Theme) {
		p.Send(model.ThemeChangedMsg{Theme: theme})
	})
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("settings changes will not apply until restart")
	}

	_, err = p.Run()
	return err
}

func printDeleted(cmd *cobra.Command, what string, n int64) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), map[string]int64{"deleted": n})
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBrowseRenderer(app.Theme).RenderDeleted(what, n))
	return nil
}

// confirm asks a yes/no question on the command input; anything but y/yes is no.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
