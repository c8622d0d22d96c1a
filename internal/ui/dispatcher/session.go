package dispatcher

import (
	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/application/usecase"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/domain/router"
)

// SessionConfig holds the collaborators of a browsing session.
type SessionConfig struct {
	History   repository.HistoryRepository
	Bookmarks repository.BookmarkRepository
	Router    *router.Router
	View      port.NavigableView

	// PageContext supplies the rendering context of internal pages.
	PageContext usecase.PageContextFunc
	// YouTubeAdBlock reports whether the YouTube filter is enabled.
	YouTubeAdBlock func() bool
}

// Session is the explicit state of one browser window: its view and the
// use cases bound to the active profile.
type Session struct {
	View port.NavigableView

	Navigate    *usecase.NavigateUseCase
	RecordVisit *usecase.RecordVisitUseCase
	History     *usecase.ManageHistoryUseCase
	Bookmarks   *usecase.ManageBookmarksUseCase
	Inject      *usecase.InjectContentUseCase
}

// NewSession wires the use cases of a session.
func NewSession(cfg SessionConfig) *Session {
	r := cfg.Router
	if r == nil {
		r = router.New("")
	}
	return &Session{
		View:        cfg.View,
		Navigate:    usecase.NewNavigateUseCase(r, cfg.PageContext),
		RecordVisit: usecase.NewRecordVisitUseCase(cfg.History, cfg.Bookmarks),
		History:     usecase.NewManageHistoryUseCase(cfg.History),
		Bookmarks:   usecase.NewManageBookmarksUseCase(cfg.Bookmarks),
		Inject:      usecase.NewInjectContentUseCase(cfg.YouTubeAdBlock),
	}
}
