package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/logging"
)

// ManageBookmarksUseCase handles bookmark operations.
type ManageBookmarksUseCase struct {
	bookmarkRepo repository.BookmarkRepository
}

// NewManageBookmarksUseCase creates a new bookmark management use case.
func NewManageBookmarksUseCase(bookmarkRepo repository.BookmarkRepository) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{bookmarkRepo: bookmarkRepo}
}

// Add saves a bookmark. An empty title falls back to the URL.
func (uc *ManageBookmarksUseCase) Add(ctx context.Context, url, title string) (*entity.Bookmark, error) {
	url = bookmarkKey(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	if strings.TrimSpace(title) == "" {
		title = url
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(url, logURLMaxLen)).Str("title", title).Msg("adding bookmark")

	bookmark := entity.NewBookmark(url, title)
	if err := uc.bookmarkRepo.Add(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	log.Info().Str("url", logging.TruncateURL(url, logURLMaxLen)).Msg("bookmark added")
	return bookmark, nil
}

// List returns every bookmark in insertion order.
func (uc *ManageBookmarksUseCase) List(ctx context.Context) ([]*entity.Bookmark, error) {
	bookmarks, err := uc.bookmarkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Remove deletes every bookmark saved for url.
func (uc *ManageBookmarksUseCase) Remove(ctx context.Context, url string) (int64, error) {
	url = bookmarkKey(url)
	if url == "" {
		return 0, ErrEmptyURL
	}

	n, err := uc.bookmarkRepo.DeleteByURL(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookmark: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("url", logging.TruncateURL(url, logURLMaxLen)).
		Int64("deleted", n).
		Msg("bookmark removed")
	return n, nil
}

// IsBookmarked reports whether url has at least one bookmark.
func (uc *ManageBookmarksUseCase) IsBookmarked(ctx context.Context, url string) (bool, error) {
	url = bookmarkKey(url)
	if url == "" {
		return false, nil
	}
	ok, err := uc.bookmarkRepo.ExistsByURL(ctx, url)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return ok, nil
}

// Toggle removes the bookmarks of url when present, otherwise adds one.
// It returns the resulting bookmark state.
func (uc *ManageBookmarksUseCase) Toggle(ctx context.Context, url, title string) (bool, error) {
	exists, err := uc.IsBookmarked(ctx, url)
	if err != nil {
		return false, err
	}
	if exists {
		if _, err := uc.Remove(ctx, url); err != nil {
			return true, err
		}
		return false, nil
	}
	if _, err := uc.Add(ctx, url, title); err != nil {
		return false, err
	}
	return true, nil
}

// bookmarkKey is the form a URL is stored and looked up under.
func bookmarkKey(url string) string {
	return strings.TrimSpace(url)
}
