package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/application/usecase"
	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/router"
	"github.com/twilight/weaver/internal/domain/url"
	"github.com/twilight/weaver/internal/logging"
)

// ErrNotBookmarkable is returned when the current page has no web address.
var ErrNotBookmarkable = errors.New("page cannot be bookmarked")

// ViewUpdate is the widget state after an event.
type ViewUpdate struct {
	// Address is the text shown in the address entry.
	Address string
	// Title is the page title, empty until known.
	Title string
	// Loading is true between load started and load finished or failed.
	Loading bool

	CanGoBack    bool
	CanGoForward bool

	// Bookmarked drives the bookmark star.
	Bookmarked bool
	// Secure drives the lock icon.
	Secure bool

	// HistoryCleared is the number of entries removed by ClearHistoryRequested.
	HistoryCleared int64
}

// Dispatcher routes UI events to the session use cases.
type Dispatcher struct {
	session *Session
	state   ViewUpdate
}

// New creates a Dispatcher for session.
func New(ctx context.Context, session *Session) *Dispatcher {
	logging.FromContext(ctx).Debug().Msg("creating event dispatcher")
	return &Dispatcher{session: session}
}

// State returns the last computed view state.
func (d *Dispatcher) State() ViewUpdate {
	return d.state
}

// Dispatch handles one event and returns the resulting view state.
// On error the returned state is the state before the failed operation,
// with navigation sensitivity refreshed.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (ViewUpdate, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("event", ev.eventName()).Msg("dispatching ui event")

	var err error
	switch e := ev.(type) {
	case AddressActivated:
		err = d.open(ctx, e.Text)
	case HistoryItemSelected:
		err = d.open(ctx, e.URL)
	case BookmarkSelected:
		err = d.open(ctx, e.URL)
	case LoadChanged:
		err = d.loadChanged(ctx, e)
	case NavigateBack:
		err = d.session.Navigate.GoBack(ctx, d.session.View)
	case NavigateForward:
		err = d.session.Navigate.GoForward(ctx, d.session.View)
	case ReloadRequested:
		err = d.session.Navigate.Reload(ctx, d.session.View)
	case BookmarkToggled:
		err = d.toggleBookmark(ctx)
	case ClearHistoryRequested:
		var n int64
		n, err = d.session.History.Clear(ctx)
		if err == nil {
			d.state.HistoryCleared = n
		}
	default:
		err = fmt.Errorf("unhandled ui event %T", ev)
		log.Warn().Str("event", ev.eventName()).Msg("unhandled ui event")
	}

	d.refreshNavigation()
	return d.state, err
}

func (d *Dispatcher) open(ctx context.Context, address string) error {
	out, err := d.session.Navigate.Execute(ctx, usecase.NavigateInput{Address: address, View: d.session.View})
	if err != nil {
		return err
	}

	disp := out.Disposition
	d.state.Address = disp.URL
	d.state.Title = ""
	d.state.Secure = url.IsSecure(disp.URL)
	d.state.Loading = !disp.IsLocal()
	d.state.Bookmarked = false

	if disp.Kind == router.KindExternal || disp.Kind == router.KindSearch {
		bookmarked, err := d.session.Bookmarks.IsBookmarked(ctx, disp.URL)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("bookmark state unavailable")
			return nil
		}
		d.state.Bookmarked = bookmarked
	}
	return nil
}

func (d *Dispatcher) loadChanged(ctx context.Context, e LoadChanged) error {
	if e.URI != "" {
		d.state.Address = e.URI
		d.state.Secure = url.IsSecure(e.URI)
	}
	if e.Title != "" {
		d.state.Title = e.Title
	}

	switch e.Event {
	case port.LoadStarted, port.LoadRedirected, port.LoadCommitted:
		d.state.Loading = true
		return nil
	case port.LoadFailed:
		d.state.Loading = false
		return nil
	case port.LoadFinished:
		d.state.Loading = false
	default:
		return nil
	}

	log := logging.FromContext(ctx)

	recordErr := d.recordVisit(ctx, e)
	if recordErr != nil {
		log.Warn().Err(recordErr).Msg("visit not recorded")
	}

	_, injectErr := d.session.Inject.Execute(ctx, d.session.View, e.URI)
	if injectErr != nil {
		log.Warn().Err(injectErr).Msg("content injection failed")
	}
	return errors.Join(recordErr, injectErr)
}

// recordVisit appends the finished load to history and refreshes the
// bookmark state. Storage that was never opened is not an error here: a
// placeholder profile browses without history.
func (d *Dispatcher) recordVisit(ctx context.Context, e LoadChanged) error {
	d.state.Bookmarked = false
	out, err := d.session.RecordVisit.Execute(ctx, usecase.RecordVisitInput{URI: e.URI, Title: e.Title})
	if err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) || errors.Is(err, entity.ErrPlaceholderProfile) {
			logging.FromContext(ctx).Debug().Err(err).Msg("history disabled for this profile")
			return nil
		}
		return err
	}
	d.state.Bookmarked = out.Bookmarked
	return nil
}

func (d *Dispatcher) toggleBookmark(ctx context.Context) error {
	view := d.session.View
	if view == nil {
		return usecase.ErrNoView
	}
	uri := view.URI()
	if !url.HasWebScheme(uri) {
		return ErrNotBookmarkable
	}

	state, err := d.session.Bookmarks.Toggle(ctx, uri, view.Title())
	if err != nil {
		return err
	}
	d.state.Bookmarked = state
	return nil
}

func (d *Dispatcher) refreshNavigation() {
	if d.session.View == nil {
		return
	}
	d.state.CanGoBack = d.session.View.CanGoBack()
	d.state.CanGoForward = d.session.View.CanGoForward()
}
