// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of the hosted browser engine.
package port

import "context"

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadRedirected indicates a redirect occurred.
	LoadRedirected
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
	// LoadFailed indicates the engine gave up on the address.
	LoadFailed
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadRedirected:
		return "redirected"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NavigableView is the capability interface of a view that can navigate.
// Only the hosted engine adapter implements it.
type NavigableView interface {
	// LoadURI navigates to uri.
	LoadURI(ctx context.Context, uri string) error

	// LoadHTML displays a locally rendered document; baseURI is shown as its address.
	LoadHTML(ctx context.Context, content, baseURI string) error

	// Reload reloads the current page.
	Reload(ctx context.Context) error

	// GoBack navigates back in history.
	GoBack(ctx context.Context) error

	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error

	// CanGoBack reports whether back navigation is possible.
	CanGoBack() bool

	// CanGoForward reports whether forward navigation is possible.
	CanGoForward() bool

	// URI returns the current address.
	URI() string

	// Title returns the current page title.
	Title() string

	// RunJavaScript evaluates script in the current page.
	RunJavaScript(ctx context.Context, script string) error
}
