package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty string", input: "", want: false},
		{name: "bare domain", input: "example.com", want: true},
		{name: "subdomain", input: "docs.example.org", want: true},
		{name: "domain with path", input: "example.com/path/to", want: true},
		{name: "domain with query", input: "example.com?q=1", want: true},
		{name: "domain with port", input: "example.com:8080/x", want: true},
		{name: "six letter tld", input: "example.travel", want: true},
		{name: "seven letter tld", input: "example.abcdefg", want: false},
		{name: "numeric tld", input: "10.0.0.1", want: false},
		{name: "free text", input: "hello world", want: false},
		{name: "text with dot and space", input: "go to example.com", want: false},
		{name: "single word", input: "golang", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeDomain(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "bare domain gets http", input: "example.com", want: "http://example.com"},
		{name: "http unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "file unchanged", input: "file:///tmp/a.html", want: "file:///tmp/a.html"},
		{name: "internal unchanged", input: "weaver://home", want: "weaver://home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestInternalPath(t *testing.T) {
	path, ok := InternalPath("weaver://about")
	assert.True(t, ok)
	assert.Equal(t, "about", path)

	_, ok = InternalPath("https://about")
	assert.False(t, ok)
}

func TestExtractHost(t *testing.T) {
	assert.Equal(t, "youtube.com", ExtractHost("https://www.YouTube.com/watch?v=1"))
	assert.Equal(t, "example.com", ExtractHost("http://example.com:8080/"))
	assert.Equal(t, "", ExtractHost("not a url"))
	assert.Equal(t, "", ExtractHost(""))
}

func TestIsSecure(t *testing.T) {
	assert.True(t, IsSecure("https://example.com"))
	assert.False(t, IsSecure("http://example.com"))
	assert.False(t, IsSecure("weaver://home"))
}
