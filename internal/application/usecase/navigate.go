package usecase

import (
	"context"
	"fmt"

	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/domain/router"
	"github.com/twilight/weaver/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// PageContextFunc supplies the current rendering context of internal pages.
type PageContextFunc func() router.PageContext

// NavigateUseCase classifies typed addresses and drives the view accordingly.
type NavigateUseCase struct {
	router      *router.Router
	pageContext PageContextFunc
}

// NewNavigateUseCase creates a new navigation use case.
// A nil pageContext renders internal pages with the default context.
func NewNavigateUseCase(r *router.Router, pageContext PageContextFunc) *NavigateUseCase {
	if pageContext == nil {
		pageContext = func() router.PageContext { return router.PageContext{} }
	}
	return &NavigateUseCase{router: r, pageContext: pageContext}
}

// NavigateInput contains parameters for navigation.
type NavigateInput struct {
	Address string
	View    port.NavigableView
}

// NavigateOutput contains the result of navigation.
type NavigateOutput struct {
	Disposition router.Disposition
}

// Execute classifies the address, then loads it in the engine or displays
// the locally rendered document.
func (uc *NavigateUseCase) Execute(ctx context.Context, input NavigateInput) (*NavigateOutput, error) {
	if input.View == nil {
		return nil, ErrNoView
	}
	log := logging.FromContext(ctx)

	d := uc.router.Classify(input.Address)
	log.Debug().
		Str("input", logging.TruncateURL(input.Address, logURLMaxLen)).
		Str("disposition", d.Kind.String()).
		Str("url", logging.TruncateURL(d.URL, logURLMaxLen)).
		Msg("navigating")

	switch d.Kind {
	case router.KindInternal, router.KindBlank:
		content, err := router.Render(d, uc.pageContext())
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", d.URL, err)
		}
		if err := input.View.LoadHTML(ctx, content, d.URL); err != nil {
			return nil, fmt.Errorf("failed to display %s: %w", d.URL, err)
		}
	default:
		if err := input.View.LoadURI(ctx, d.URL); err != nil {
			return nil, fmt.Errorf("failed to load URL: %w", err)
		}
	}

	return &NavigateOutput{Disposition: d}, nil
}

// Classify exposes the router classification without navigating.
func (uc *NavigateUseCase) Classify(address string) router.Disposition {
	return uc.router.Classify(address)
}

// GoBack navigates back when the view allows it.
func (uc *NavigateUseCase) GoBack(ctx context.Context, view port.NavigableView) error {
	if view == nil {
		return ErrNoView
	}
	if !view.CanGoBack() {
		return ErrCannotGoBack
	}
	logging.FromContext(ctx).Debug().Msg("going back")
	return view.GoBack(ctx)
}

// GoForward navigates forward when the view allows it.
func (uc *NavigateUseCase) GoForward(ctx context.Context, view port.NavigableView) error {
	if view == nil {
		return ErrNoView
	}
	if !view.CanGoForward() {
		return ErrCannotGoForward
	}
	logging.FromContext(ctx).Debug().Msg("going forward")
	return view.GoForward(ctx)
}

// Reload reloads the current page.
func (uc *NavigateUseCase) Reload(ctx context.Context, view port.NavigableView) error {
	if view == nil {
		return ErrNoView
	}
	logging.FromContext(ctx).Debug().Str("url", logging.TruncateURL(view.URI(), logURLMaxLen)).Msg("reloading")
	return view.Reload(ctx)
}
