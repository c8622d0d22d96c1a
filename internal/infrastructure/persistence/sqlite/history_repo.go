package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/twilight/weaver/internal/logging"
)

const logURLMaxLen = 60

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

type historyRepo struct {
	queries *sqlc.Queries
	now     Clock
}

// NewHistoryRepository creates a new SQLite-backed history repository.
// A nil clock uses time.Now.
func NewHistoryRepository(db *sql.DB, now Clock) repository.HistoryRepository {
	if now == nil {
		now = time.Now
	}
	return &historyRepo{queries: sqlc.New(db), now: now}
}

func (r *historyRepo) Append(ctx context.Context, url, title string) (*entity.HistoryEntry, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(url, logURLMaxLen)).Msg("appending history entry")

	entry := entity.NewHistoryEntry(url, title, r.now())
	_, err := r.queries.InsertHistory(ctx, sqlc.InsertHistoryParams{
		Url:       entry.URL,
		Title:     entry.Title,
		Timestamp: entry.Timestamp(),
	})
	if err != nil {
		return nil, entity.NewStorageError("append history", err)
	}
	return entry, nil
}

func (r *historyRepo) List(ctx context.Context) ([]*entity.HistoryEntry, error) {
	rows, err := r.queries.ListHistory(ctx)
	if err != nil {
		return nil, entity.NewStorageError("list history", err)
	}
	return historyFromRows(ctx, rows), nil
}

func (r *historyRepo) Delete(ctx context.Context, url, title string, visitedAt time.Time) (int64, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(url, logURLMaxLen)).Msg("deleting history entry")

	n, err := r.queries.DeleteHistoryEntry(ctx, sqlc.DeleteHistoryEntryParams{
		Url:       url,
		Title:     title,
		Timestamp: entity.FormatHistoryTimestamp(visitedAt),
	})
	if err != nil {
		return 0, entity.NewStorageError("delete history", err)
	}
	return n, nil
}

func (r *historyRepo) DeleteAll(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteAllHistory(ctx)
	if err != nil {
		return 0, entity.NewStorageError("clear history", err)
	}
	return n, nil
}

// historyFromRows converts stored rows. A row whose timestamp does not parse
// is left out: it could not be matched by Delete, only by DeleteAll.
func historyFromRows(ctx context.Context, rows []sqlc.History) []*entity.HistoryEntry {
	entries := make([]*entity.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		visitedAt, err := entity.ParseHistoryTimestamp(row.Timestamp)
		if err != nil {
			logging.FromContext(ctx).Warn().
				Int64("id", row.ID).
				Str("timestamp", row.Timestamp).
				Msg("skipping history row with unparseable timestamp")
			continue
		}
		entries = append(entries, &entity.HistoryEntry{
			URL:       row.Url,
			Title:     row.Title,
			VisitedAt: visitedAt,
		})
	}
	return entries
}
