package profile

import (
	"context"
	"time"

	"github.com/twilight/weaver/internal/domain/entity"
)

// unavailableHistory stands in for history when storage could not be opened.
type unavailableHistory struct{}

func unavailable(op string) error {
	return &entity.StorageError{Op: op, Err: entity.ErrStorageUnavailable}
}

func (unavailableHistory) Append(context.Context, string, string) (*entity.HistoryEntry, error) {
	return nil, unavailable("append history")
}

func (unavailableHistory) List(context.Context) ([]*entity.HistoryEntry, error) {
	return nil, unavailable("list history")
}

func (unavailableHistory) Delete(context.Context, string, string, time.Time) (int64, error) {
	return 0, unavailable("delete history")
}

func (unavailableHistory) DeleteAll(context.Context) (int64, error) {
	return 0, unavailable("clear history")
}

// unavailableBookmarks stands in for bookmarks when storage could not be opened.
type unavailableBookmarks struct{}

func (unavailableBookmarks) Add(context.Context, *entity.Bookmark) error {
	return unavailable("add bookmark")
}

func (unavailableBookmarks) List(context.Context) ([]*entity.Bookmark, error) {
	return nil, unavailable("list bookmarks")
}

func (unavailableBookmarks) DeleteByURL(context.Context, string) (int64, error) {
	return 0, unavailable("delete bookmark")
}

func (unavailableBookmarks) ExistsByURL(context.Context, string) (bool, error) {
	return false, unavailable("find bookmark")
}
