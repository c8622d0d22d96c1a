package port

import "context"

// FontCategory names a generic CSS font family.
type FontCategory string

const (
	FontCategorySansSerif FontCategory = "sans-serif"
	FontCategorySerif     FontCategory = "serif"
	FontCategoryMonospace FontCategory = "monospace"
)

// FontDetector picks installed fonts for the default appearance settings.
// It is consulted once, when settings.toml is first written.
type FontDetector interface {
	// Available reports whether the system font catalogue can be queried.
	Available(ctx context.Context) bool

	// Families lists the installed font family names.
	Families(ctx context.Context) ([]string, error)

	// Pick returns the first installed family of candidates, or the
	// generic family of category when none is installed.
	Pick(ctx context.Context, category FontCategory, candidates []string) string
}
