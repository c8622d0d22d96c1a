package repository

import (
	"context"
	"time"

	"github.com/twilight/weaver/internal/domain/entity"
)

// HistoryRepository defines operations for browsing history persistence.
type HistoryRepository interface {
	// Append inserts one visit stamped with the current time. No de-duplication.
	Append(ctx context.Context, url, title string) (*entity.HistoryEntry, error)

	// List returns every entry, most recent first.
	List(ctx context.Context) ([]*entity.HistoryEntry, error)

	// Delete removes the entries matching url, title and visitedAt exactly.
	// Matching zero rows is not an error.
	Delete(ctx context.Context, url, title string, visitedAt time.Time) (int64, error)

	// DeleteAll removes every entry present when the call starts.
	DeleteAll(ctx context.Context) (int64, error)
}
