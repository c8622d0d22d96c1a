// Package router classifies typed addresses and renders weaver:// pages.
package router

// Kind is the outcome class of a classified address.
type Kind int

const (
	// KindExternal addresses are handed to the browser engine.
	KindExternal Kind = iota
	// KindInternal addresses are rendered locally from the page table.
	KindInternal
	// KindSearch addresses are free text rewritten into a search query URL.
	KindSearch
	// KindBlank is the empty document.
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindExternal:
		return "external"
	case KindInternal:
		return "internal"
	case KindSearch:
		return "search"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Disposition is the classification of one address.
type Disposition struct {
	Kind Kind `json:"-"`
	// URL is the address to load or display.
	URL string `json:"url"`
	// PageID is the resolved page for internal dispositions.
	PageID PageID `json:"page_id,omitempty"`
	// RequestedID is the normalized id taken from a weaver:// address.
	RequestedID string `json:"requested_id,omitempty"`
}

// IsLocal reports whether the disposition is rendered without the engine fetching it.
func (d Disposition) IsLocal() bool {
	return d.Kind == KindInternal || d.Kind == KindBlank
}
