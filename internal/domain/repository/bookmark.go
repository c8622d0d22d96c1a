package repository

import (
	"context"

	"github.com/twilight/weaver/internal/domain/entity"
)

// BookmarkRepository defines operations for bookmark persistence.
type BookmarkRepository interface {
	// Add saves a bookmark. Duplicates are kept.
	Add(ctx context.Context, bookmark *entity.Bookmark) error

	// List returns every bookmark in insertion order.
	List(ctx context.Context) ([]*entity.Bookmark, error)

	// DeleteByURL removes every bookmark saved for url.
	DeleteByURL(ctx context.Context, url string) (int64, error)

	// ExistsByURL reports whether at least one bookmark is saved for url.
	ExistsByURL(ctx context.Context, url string) (bool, error)
}
