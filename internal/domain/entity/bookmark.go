package entity

// Bookmark represents a saved URL.
// The store does not enforce uniqueness: the same URL may be saved several times.
type Bookmark struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// NewBookmark creates a bookmark for a URL.
func NewBookmark(url, title string) *Bookmark {
	return &Bookmark{URL: url, Title: title}
}
