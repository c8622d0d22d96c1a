package router

import (
	"strings"

	"github.com/twilight/weaver/internal/domain/url"
)

// Router classifies addresses typed into the address bar.
// It holds no state besides its search template and is safe for concurrent use.
type Router struct {
	searchTemplate string
}

// New creates a router that rewrites free text with searchTemplate.
// An empty or placeholder-less template selects the default search engine.
func New(searchTemplate string) *Router {
	if !url.IsValidSearchTemplate(searchTemplate) {
		searchTemplate = url.DefaultSearchTemplate
	}
	return &Router{searchTemplate: searchTemplate}
}

// SearchTemplate returns the template used for search dispositions.
func (r *Router) SearchTemplate() string {
	return r.searchTemplate
}

// Classify maps input to exactly one disposition. It never fails.
//
// Precedence:
//  1. file://, weaver://, http:// and https:// addresses pass through
//  2. about:blank is the blank document
//  3. anything that is not domain-like becomes a search
//  4. domain-like input without a scheme gets http:// prepended
//  5. weaver:// addresses resolve against the page table
//  6. everything else is external
func (r *Router) Classify(input string) Disposition {
	address := strings.TrimSpace(input)

	switch {
	case address == "":
		return Disposition{Kind: KindBlank, URL: url.BlankURL}
	case url.IsPassThrough(address):
	case address == url.BlankURL:
		return Disposition{Kind: KindBlank, URL: url.BlankURL}
	case !url.LooksLikeDomain(address):
		return Disposition{Kind: KindSearch, URL: url.BuildSearchURL(address, r.searchTemplate)}
	default:
		address = url.Normalize(address)
	}

	if path, ok := url.InternalPath(address); ok {
		requested := NormalizePageID(path)
		return Disposition{
			Kind:        KindInternal,
			URL:         url.InternalPrefix + requested,
			PageID:      ResolvePageID(requested),
			RequestedID: requested,
		}
	}

	return Disposition{Kind: KindExternal, URL: address}
}
