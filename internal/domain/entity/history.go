package entity

import "time"

// HistoryTimestampLayout is the on-disk format of history timestamps (local time).
const HistoryTimestampLayout = "2006-01-02 15:04:05"

// HistoryEntry represents one visit in browsing history.
// Entries are append-only: several may share a URL and none are updated in place.
type HistoryEntry struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	VisitedAt time.Time `json:"visited_at"`
}

// NewHistoryEntry creates a history entry stamped at the given instant,
// truncated to the second precision the store keeps.
func NewHistoryEntry(url, title string, at time.Time) *HistoryEntry {
	return &HistoryEntry{
		URL:       url,
		Title:     title,
		VisitedAt: at.Truncate(time.Second),
	}
}

// Timestamp returns the stored text form of VisitedAt.
func (h *HistoryEntry) Timestamp() string {
	return FormatHistoryTimestamp(h.VisitedAt)
}

// FormatHistoryTimestamp renders t in the stored layout using local time.
func FormatHistoryTimestamp(t time.Time) string {
	return t.In(time.Local).Format(HistoryTimestampLayout)
}

// ParseHistoryTimestamp parses a stored timestamp as local time.
func ParseHistoryTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(HistoryTimestampLayout, s, time.Local)
}
