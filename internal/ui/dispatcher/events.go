package dispatcher

import "github.com/twilight/weaver/internal/application/port"

// Event is an explicit UI event handled by the Dispatcher.
type Event interface {
	eventName() string
}

// AddressActivated is emitted when the user submits the address entry.
type AddressActivated struct {
	Text string
}

// LoadChanged is emitted by the engine on every load state transition.
type LoadChanged struct {
	Event port.LoadEvent
	URI   string
	Title string
}

// NavigateBack is emitted by the back button.
type NavigateBack struct{}

// NavigateForward is emitted by the forward button.
type NavigateForward struct{}

// ReloadRequested is emitted by the reload button.
type ReloadRequested struct{}

// BookmarkToggled is emitted by the bookmark star.
type BookmarkToggled struct{}

// HistoryItemSelected is emitted when a history row is activated.
type HistoryItemSelected struct {
	URL string
}

// BookmarkSelected is emitted when a bookmark row is activated.
type BookmarkSelected struct {
	URL string
}

// ClearHistoryRequested is emitted by the clear history action.
type ClearHistoryRequested struct{}

func (AddressActivated) eventName() string      { return "address_activated" }
func (LoadChanged) eventName() string           { return "load_changed" }
func (NavigateBack) eventName() string          { return "navigate_back" }
func (NavigateForward) eventName() string       { return "navigate_forward" }
func (ReloadRequested) eventName() string       { return "reload_requested" }
func (BookmarkToggled) eventName() string       { return "bookmark_toggled" }
func (HistoryItemSelected) eventName() string   { return "history_item_selected" }
func (BookmarkSelected) eventName() string      { return "bookmark_selected" }
func (ClearHistoryRequested) eventName() string { return "clear_history_requested" }
