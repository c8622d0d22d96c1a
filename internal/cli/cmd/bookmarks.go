package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/entity"
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bookmark"},
	Short:   "List and manage bookmarks",
	RunE:    runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url> [title]",
	Short: "Bookmark a URL",
	Long:  `Bookmark a URL. The title defaults to the URL. Bookmarking the same URL twice keeps both rows.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runBookmarksAdd,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks in the order they were added",
	RunE:  runBookmarksList,
}

var bookmarksDeleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Delete every bookmark of a URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksDelete,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd, bookmarksListCmd, bookmarksDeleteCmd)
}

func runBookmarksAdd(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	title := ""
	if len(args) > 1 {
		title = args[1]
	}

	b, err := app.BookmarksUC.Add(app.Ctx(), args[0], title)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), b)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBrowseRenderer(app.Theme).RenderBookmarks([]*entity.Bookmark{b}))
	return nil
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	bookmarks, err := app.BookmarksUC.List(app.Ctx())
	if err != nil {
		return err
	}

	if jsonOutput {
		if bookmarks == nil {
			bookmarks = []*entity.Bookmark{}
		}
		return writeJSON(cmd.OutOrStdout(), bookmarks)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewBrowseRenderer(app.Theme).RenderBookmarks(bookmarks))
	return nil
}

func runBookmarksDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	n, err := app.BookmarksUC.Remove(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	return printDeleted(cmd, "bookmarks", n)
}
