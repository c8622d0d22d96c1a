package url

import (
	"net/url"
	"strings"
)

// DefaultSearchTemplate is used when no search engine is configured.
const DefaultSearchTemplate = "https://www.duckduckgo.com/?q=%s"

// SearchPlaceholder marks where the query goes in a search template.
const SearchPlaceholder = "%s"

// BuildSearchURL substitutes the query-escaped input into template.
// An empty template or one without a placeholder falls back to DefaultSearchTemplate.
//
// Examples:
//
//	"hello world" → "https://www.duckduckgo.com/?q=hello+world"
//	"a&b"         → "https://www.duckduckgo.com/?q=a%26b"
func BuildSearchURL(query, template string) string {
	if !IsValidSearchTemplate(template) {
		template = DefaultSearchTemplate
	}
	return strings.Replace(template, SearchPlaceholder, url.QueryEscape(query), 1)
}

// IsValidSearchTemplate reports whether template carries a query placeholder.
func IsValidSearchTemplate(template string) bool {
	return strings.Contains(template, SearchPlaceholder)
}
