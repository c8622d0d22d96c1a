package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/router"
)

// BrowseRenderer renders profile, address and storage output for the CLI.
type BrowseRenderer struct {
	theme *Theme
}

// NewBrowseRenderer creates a renderer with the given theme.
func NewBrowseRenderer(theme *Theme) *BrowseRenderer {
	return &BrowseRenderer{theme: theme}
}

func (r *BrowseRenderer) icon(icon string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon)
}

// RenderProfile renders the active profile and where its data lives.
func (r *BrowseRenderer) RenderProfile(p entity.Profile, configFile string, profileErr error) string {
	var sb strings.Builder
	if p.IsPlaceholder() {
		sb.WriteString(fmt.Sprintf("\n  %s %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			r.theme.WarningStyle.Render("No profile: history and bookmarks are disabled"),
		))
		if profileErr != nil {
			sb.WriteString("    " + r.theme.Subtle.Render(profileErr.Error()) + "\n")
		}
	} else {
		id := r.theme.Highlight.Render(p.ID)
		if !entity.IsGeneratedProfileID(p.ID) {
			id += " " + r.theme.Subtle.Render("(custom)")
		}
		sb.WriteString(fmt.Sprintf("\n  %s Profile %s\n", r.icon(IconUser), id))
		sb.WriteString(fmt.Sprintf("  %s Data    %s\n", r.icon(IconFolder), r.theme.Subtle.Render(p.Dir)))
	}
	sb.WriteString(fmt.Sprintf("  %s Config  %s\n", r.icon(IconConfig), r.theme.Subtle.Render(configFile)))
	return sb.String()
}

// RenderSchemaVersions renders the migration versions of the profile databases.
func (r *BrowseRenderer) RenderSchemaVersions(history, bookmarks int64) string {
	return fmt.Sprintf("  %s Schema  %s\n", r.icon(IconFile),
		r.theme.Subtle.Render(fmt.Sprintf("history v%d, bookmarks v%d", history, bookmarks)))
}

// RenderDisposition renders how an address was classified.
func (r *BrowseRenderer) RenderDisposition(input string, d router.Disposition) string {
	icon := IconGlobe
	switch d.Kind {
	case router.KindSearch:
		icon = IconSearch
	case router.KindInternal:
		icon = IconHome
	case router.KindBlank:
		icon = IconFile
	}

	lines := []string{
		fmt.Sprintf("  %s %s %s", r.icon(icon), r.theme.AccentBadge(d.Kind.String()), r.theme.Normal.Render(d.URL)),
		fmt.Sprintf("    %s %s", r.theme.Subtle.Render("input"), r.theme.Subtle.Render(input)),
	}
	if d.Kind == router.KindInternal {
		lines = append(lines, fmt.Sprintf("    %s %s", r.theme.Subtle.Render("page"), r.theme.Highlight.Render(string(d.PageID))))
	}
	return strings.Join(lines, "\n")
}

// RenderVisit renders the outcome of recording a visit.
func (r *BrowseRenderer) RenderVisit(uri string, recorded, bookmarked, secure bool) string {
	if !recorded {
		return fmt.Sprintf("  %s %s", r.theme.Subtle.Render("not recorded"), r.theme.Subtle.Render(uri))
	}

	lock := r.theme.Subtle.Render(IconUnlock)
	if secure {
		lock = r.icon(IconLock)
	}
	star := ""
	if bookmarked {
		star = " " + r.icon(IconStar)
	}
	return fmt.Sprintf("  %s %s %s%s", r.theme.SuccessStyle.Render(IconCheck), lock, r.theme.Normal.Render(uri), star)
}

// RenderHistory renders history entries as a plain list.
func (r *BrowseRenderer) RenderHistory(entries []*entity.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return "  " + r.theme.Subtle.Render("No history")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			r.theme.Subtle.Render(e.Timestamp()),
			r.theme.Normal.Render(Truncate(e.Title, maxTitleLength)),
			r.theme.Subtle.Render(Truncate(e.URL, maxURLLength)),
		))
	}
	lines = append(lines, "", "  "+r.theme.Subtle.Render(fmt.Sprintf("%d entries, latest %s", len(entries), RelativeTime(entries[0].VisitedAt, now))))
	return strings.Join(lines, "\n")
}

// RenderBookmarks renders bookmarks as a plain list.
func (r *BrowseRenderer) RenderBookmarks(bookmarks []*entity.Bookmark) string {
	if len(bookmarks) == 0 {
		return "  " + r.theme.Subtle.Render("No bookmarks")
	}

	lines := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			r.icon(IconStar),
			r.theme.Normal.Render(Truncate(b.Title, maxTitleLength)),
			r.theme.Subtle.Render(Truncate(b.URL, maxURLLength)),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderDeleted renders the number of removed rows.
func (r *BrowseRenderer) RenderDeleted(what string, n int64) string {
	return fmt.Sprintf("  %s %s", r.icon(IconTrash), r.theme.Normal.Render(fmt.Sprintf("%d %s removed", n, what)))
}
