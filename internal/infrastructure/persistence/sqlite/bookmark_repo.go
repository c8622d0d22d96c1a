package sqlite

import (
	"context"
	"database/sql"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/twilight/weaver/internal/logging"
)

type bookmarkRepo struct {
	queries *sqlc.Queries
}

// NewBookmarkRepository creates a new SQLite-backed bookmark repository.
func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &bookmarkRepo{queries: sqlc.New(db)}
}

func (r *bookmarkRepo) Add(ctx context.Context, bookmark *entity.Bookmark) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(bookmark.URL, logURLMaxLen)).Msg("saving bookmark")

	_, err := r.queries.InsertBookmark(ctx, sqlc.InsertBookmarkParams{
		Url:   bookmark.URL,
		Title: bookmark.Title,
	})
	if err != nil {
		return entity.NewStorageError("add bookmark", err)
	}
	return nil
}

func (r *bookmarkRepo) List(ctx context.Context) ([]*entity.Bookmark, error) {
	rows, err := r.queries.ListBookmarks(ctx)
	if err != nil {
		return nil, entity.NewStorageError("list bookmarks", err)
	}

	bookmarks := make([]*entity.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, &entity.Bookmark{URL: row.Url, Title: row.Title})
	}
	return bookmarks, nil
}

func (r *bookmarkRepo) DeleteByURL(ctx context.Context, url string) (int64, error) {
	n, err := r.queries.DeleteBookmarksByURL(ctx, url)
	if err != nil {
		return 0, entity.NewStorageError("delete bookmark", err)
	}
	return n, nil
}

func (r *bookmarkRepo) ExistsByURL(ctx context.Context, url string) (bool, error) {
	n, err := r.queries.CountBookmarksByURL(ctx, url)
	if err != nil {
		return false, entity.NewStorageError("find bookmark", err)
	}
	return n > 0, nil
}
