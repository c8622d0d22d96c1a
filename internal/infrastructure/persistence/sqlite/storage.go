package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/logging"
)

// File names of the per-profile databases.
const (
	HistoryDBName   = "history.db"
	BookmarksDBName = "bookmarks.db"
)

const profileDirPerm = 0o750

// Storage holds the open databases of one profile.
type Storage struct {
	Dir       string
	History   repository.HistoryRepository
	Bookmarks repository.BookmarkRepository

	historyDB   *sql.DB
	bookmarksDB *sql.DB
}

// EnsureStorage creates the profile directory and opens both databases,
// creating their tables when missing. Calling it again on the same profile
// is a no-op apart from reopening the handles.
func EnsureStorage(ctx context.Context, profile entity.Profile, now Clock) (*Storage, error) {
	const op = "ensure storage"
	log := logging.FromContext(ctx)

	if profile.IsPlaceholder() {
		return nil, &entity.StorageError{Op: op, Err: entity.ErrPlaceholderProfile}
	}

	if err := os.MkdirAll(profile.Dir, profileDirPerm); err != nil {
		return nil, &entity.StorageError{Op: op, Err: fmt.Errorf("failed to create profile directory: %w", err)}
	}

	historyDB, err := NewConnection(ctx, filepath.Join(profile.Dir, HistoryDBName), SchemaHistory)
	if err != nil {
		return nil, &entity.StorageError{Op: op, Err: err}
	}

	bookmarksDB, err := NewConnection(ctx, filepath.Join(profile.Dir, BookmarksDBName), SchemaBookmarks)
	if err != nil {
		_ = historyDB.Close()
		return nil, &entity.StorageError{Op: op, Err: err}
	}

	log.Info().Str("profile", profile.ID).Str("dir", profile.Dir).Msg("profile storage ready")

	return &Storage{
		Dir:         profile.Dir,
		History:     NewHistoryRepository(historyDB, now),
		Bookmarks:   NewBookmarkRepository(bookmarksDB),
		historyDB:   historyDB,
		bookmarksDB: bookmarksDB,
	}, nil
}

// Close closes both databases.
func (s *Storage) Close() error {
	if s == nil {
		return nil
	}
	return errors.Join(Close(s.historyDB), Close(s.bookmarksDB))
}

// SchemaVersions are the applied migration versions of a profile's databases.
type SchemaVersions struct {
	History   int64 `json:"history"`
	Bookmarks int64 `json:"bookmarks"`
}

// SchemaVersions reports the migration version of both databases.
func (s *Storage) SchemaVersions(ctx context.Context) (SchemaVersions, error) {
	const op = "schema versions"
	var v SchemaVersions
	var err error
	if v.History, err = GetMigrationStatus(ctx, s.historyDB); err != nil {
		return SchemaVersions{}, &entity.StorageError{Op: op, Err: err}
	}
	if v.Bookmarks, err = GetMigrationStatus(ctx, s.bookmarksDB); err != nil {
		return SchemaVersions{}, &entity.StorageError{Op: op, Err: err}
	}
	return v, nil
}
