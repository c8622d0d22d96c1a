package styles

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxTitleLength = 60
	maxURLLength   = 60
)

// HistoryItem represents a history entry for the list.
type HistoryItem struct {
	URL       string
	Title     string
	VisitedAt time.Time
}

// FilterValue implements list.Item.
func (i HistoryItem) FilterValue() string {
	return i.Title + " " + i.URL
}

// TitleValue returns the title, falling back to the URL.
func (i HistoryItem) TitleValue() string {
	if i.Title != "" {
		return i.Title
	}
	return i.URL
}

// HistoryDelegate renders history items with theme styling.
type HistoryDelegate struct {
	Theme *Theme
	// Now is used for relative timestamps; zero means time.Now.
	Now time.Time
}

// NewHistoryDelegate creates a themed history list delegate.
func NewHistoryDelegate(theme *Theme) HistoryDelegate {
	return HistoryDelegate{Theme: theme}
}

// Height returns the height of each item.
func (d HistoryDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d HistoryDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d HistoryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d HistoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	hi, ok := item.(HistoryItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()

	now := d.Now
	if now.IsZero() {
		now = time.Now()
	}

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	urlStyle := t.ListItemDesc
	if isSelected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		urlStyle = urlStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		titleStyle.Render(Truncate(hi.TitleValue(), maxTitleLength)),
	)

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 3),
		urlStyle.Render(Truncate(hi.URL, maxURLLength)),
		" ",
		t.MutedBadge(RelativeTime(hi.VisitedAt, now)),
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewHistoryList creates a themed list for history items.
func NewHistoryList(theme *Theme, items []HistoryItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, NewHistoryDelegate(theme), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}

// Truncate shortens s to at most n runes, ending with "...".
func Truncate(s string, n int) string {
	const ellipsis = "..."
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return string(r[:n])
	}
	return string(r[:n-len(ellipsis)]) + ellipsis
}
