// Package url provides address manipulation utilities for the browser.
package url

import (
	"net/url"
	"regexp"
	"strings"
)

// Address prefixes recognised by the router.
const (
	HTTPPrefix     = "http://"
	HTTPSPrefix    = "https://"
	FilePrefix     = "file://"
	InternalPrefix = "weaver://"

	// BlankURL is the empty-document sentinel.
	BlankURL = "about:blank"
)

// domainPattern accepts a host ending in a 2 to 6 letter label, an optional
// port, then an optional path, query or fragment.
var domainPattern = regexp.MustCompile(`^\S+\.[A-Za-z]{2,6}(:\d{1,5})?([/?#]\S*)?$`)

// IsPassThrough reports whether input is already a well-formed local or internal address.
func IsPassThrough(input string) bool {
	switch {
	case strings.HasPrefix(input, FilePrefix):
		return true
	case strings.HasPrefix(input, InternalPrefix):
		return true
	case HasWebScheme(input):
		return true
	}
	return false
}

// HasWebScheme reports whether input starts with http:// or https://.
func HasWebScheme(input string) bool {
	return strings.HasPrefix(input, HTTPPrefix) || strings.HasPrefix(input, HTTPSPrefix)
}

// IsSecure reports whether input is an https address.
func IsSecure(input string) bool {
	return strings.HasPrefix(input, HTTPSPrefix)
}

// LooksLikeDomain checks if the input appears to be a host name rather than a search query.
// Returns true for strings like "example.com", "example.com/path" or "example.co.uk:8080".
func LooksLikeDomain(input string) bool {
	if input == "" {
		return false
	}
	return domainPattern.MatchString(input)
}

// Normalize prepends http:// to inputs that carry no web scheme.
// Local and internal addresses are returned unchanged.
func Normalize(input string) string {
	if input == "" || IsPassThrough(input) {
		return input
	}
	return HTTPPrefix + input
}

// InternalPath returns the remainder of a weaver:// address.
func InternalPath(address string) (string, bool) {
	if !strings.HasPrefix(address, InternalPrefix) {
		return "", false
	}
	return strings.TrimPrefix(address, InternalPrefix), true
}

// ExtractHost extracts the host from an address, lowercased and without "www.".
func ExtractHost(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}
