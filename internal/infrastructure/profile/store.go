package profile

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/infrastructure/persistence/sqlite"
	"github.com/twilight/weaver/internal/logging"
)

// Store is the profile store: identity plus the history and bookmark stores of one profile.
// The resolved profile is cached for the lifetime of the Store.
type Store struct {
	resolver *Resolver
	now      sqlite.Clock

	mu        sync.RWMutex
	profile   entity.Profile
	storage   *sqlite.Storage
	history   repository.HistoryRepository
	bookmarks repository.BookmarkRepository
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store for the data root. Nothing is read until Open.
func NewStore(root string, opts ...Option) *Store {
	s := &Store{
		resolver:  NewResolver(root),
		history:   unavailableHistory{},
		bookmarks: unavailableBookmarks{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open resolves the profile and ensures its storage.
// The store stays usable on failure: the profile may be the placeholder and
// every record operation then fails with a *entity.StorageError.
func (s *Store) Open(ctx context.Context) (entity.Profile, error) {
	profile, err := s.ResolveProfile(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("continuing with placeholder profile")
		return profile, err
	}
	return profile, s.EnsureStorage(ctx, profile)
}

// ResolveProfile reads the profile from disk and caches it.
func (s *Store) ResolveProfile(ctx context.Context) (entity.Profile, error) {
	profile, err := s.resolver.Resolve(ctx)

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	return profile, err
}

// EnsureStorage opens the databases of profile and makes them the active stores.
func (s *Store) EnsureStorage(ctx context.Context, profile entity.Profile) error {
	storage, err := sqlite.EnsureStorage(logging.WithProfile(ctx, profile.ID), profile, s.now)
	if err != nil {
		return err
	}

	s.mu.Lock()
	previous := s.storage
	s.storage = storage
	s.history = storage.History
	s.bookmarks = storage.Bookmarks
	s.mu.Unlock()

	if previous != nil {
		closeReplaced(ctx, previous)
	}
	return nil
}

// closeReplaced closes storage that is no longer active. The new storage is
// already in use, so a failure is only reported.
func closeReplaced(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close replaced profile storage")
	}
}

// Profile returns the cached profile. It is the placeholder before ResolveProfile.
func (s *Store) Profile() entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// ConfigFile returns the path of config.ini.
func (s *Store) ConfigFile() string {
	return s.resolver.ConfigFile()
}

// Available reports whether storage is open.
func (s *Store) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storage != nil
}

// SchemaVersions reports the migration versions of the open databases.
func (s *Store) SchemaVersions(ctx context.Context) (sqlite.SchemaVersions, error) {
	s.mu.RLock()
	storage := s.storage
	s.mu.RUnlock()
	if storage == nil {
		return sqlite.SchemaVersions{}, unavailable("schema versions")
	}
	return storage.SchemaVersions(ctx)
}

// History returns the active history repository.
func (s *Store) History() repository.HistoryRepository {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history
}

// Bookmarks returns the active bookmark repository.
func (s *Store) Bookmarks() repository.BookmarkRepository {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarks
}

// AppendHistory records a visit stamped with the store clock.
func (s *Store) AppendHistory(ctx context.Context, url, title string) (*entity.HistoryEntry, error) {
	return s.History().Append(ctx, url, title)
}

// ListHistory returns every visit, most recent first.
func (s *Store) ListHistory(ctx context.Context) ([]*entity.HistoryEntry, error) {
	return s.History().List(ctx)
}

// DeleteHistory removes the visits matching all three fields.
func (s *Store) DeleteHistory(ctx context.Context, url, title string, visitedAt time.Time) (int64, error) {
	return s.History().Delete(ctx, url, title, visitedAt)
}

// ClearHistory removes every visit present when called.
func (s *Store) ClearHistory(ctx context.Context) (int64, error) {
	return s.History().DeleteAll(ctx)
}

// AddBookmark saves a bookmark.
func (s *Store) AddBookmark(ctx context.Context, url, title string) error {
	return s.Bookmarks().Add(ctx, entity.NewBookmark(url, title))
}

// ListBookmarks returns every bookmark in insertion order.
func (s *Store) ListBookmarks(ctx context.Context) ([]*entity.Bookmark, error) {
	return s.Bookmarks().List(ctx)
}

// DeleteBookmark removes every bookmark saved for url.
func (s *Store) DeleteBookmark(ctx context.Context, url string) (int64, error) {
	return s.Bookmarks().DeleteByURL(ctx, url)
}

// IsBookmarked reports whether url is bookmarked.
func (s *Store) IsBookmarked(ctx context.Context, url string) (bool, error) {
	return s.Bookmarks().ExistsByURL(ctx, url)
}

// Close closes the open storage, if any.
func (s *Store) Close() error {
	s.mu.Lock()
	storage := s.storage
	s.storage = nil
	s.history = unavailableHistory{}
	s.bookmarks = unavailableBookmarks{}
	s.mu.Unlock()

	return storage.Close()
}
