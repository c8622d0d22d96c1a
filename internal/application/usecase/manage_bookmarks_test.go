package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/domain/entity"
	repomocks "github.com/twilight/weaver/internal/domain/repository/mocks"
)

func TestManageBookmarks_Add(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockBookmarkRepository(t)
	repo.EXPECT().Add(mock.Anything, &entity.Bookmark{URL: "https://go.dev", Title: "https://go.dev"}).Return(nil).Once()

	uc := NewManageBookmarksUseCase(repo)
	b, err := uc.Add(ctx, " https://go.dev ", "")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", b.Title)

	_, err = uc.Add(ctx, "  ", "x")
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestManageBookmarks_ToggleAddsWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockBookmarkRepository(t)
	repo.EXPECT().ExistsByURL(mock.Anything, "https://go.dev").Return(false, nil).Once()
	repo.EXPECT().Add(mock.Anything, mock.MatchedBy(func(b *entity.Bookmark) bool {
		return b.URL == "https://go.dev" && b.Title == "Go"
	})).Return(nil).Once()

	state, err := NewManageBookmarksUseCase(repo).Toggle(ctx, "https://go.dev", "Go")
	require.NoError(t, err)
	assert.True(t, state)
}

func TestManageBookmarks_ToggleRemovesWhenPresent(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockBookmarkRepository(t)
	repo.EXPECT().ExistsByURL(mock.Anything, "https://go.dev").Return(true, nil).Once()
	repo.EXPECT().DeleteByURL(mock.Anything, "https://go.dev").Return(int64(2), nil).Once()

	state, err := NewManageBookmarksUseCase(repo).Toggle(ctx, "https://go.dev", "Go")
	require.NoError(t, err)
	assert.False(t, state)
}

func TestManageBookmarks_IsBookmarkedEmptyURL(t *testing.T) {
	repo := repomocks.NewMockBookmarkRepository(t)
	ok, err := NewManageBookmarksUseCase(repo).IsBookmarked(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManageBookmarks_RemoveEmptyURL(t *testing.T) {
	repo := repomocks.NewMockBookmarkRepository(t)
	_, err := NewManageBookmarksUseCase(repo).Remove(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestManageBookmarks_ToggleTrimsURLConsistently(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockBookmarkRepository(t)
	uc := NewManageBookmarksUseCase(repo)

	repo.EXPECT().ExistsByURL(mock.Anything, "https://go.dev").Return(false, nil).Once()
	repo.EXPECT().Add(mock.Anything, &entity.Bookmark{URL: "https://go.dev", Title: "Go"}).Return(nil).Once()
	state, err := uc.Toggle(ctx, " https://go.dev\n", "Go")
	require.NoError(t, err)
	assert.True(t, state)

	repo.EXPECT().ExistsByURL(mock.Anything, "https://go.dev").Return(true, nil).Once()
	repo.EXPECT().DeleteByURL(mock.Anything, "https://go.dev").Return(int64(1), nil).Once()
	state, err = uc.Toggle(ctx, " https://go.dev\n", "Go")
	require.NoError(t, err)
	assert.False(t, state)

	_, err = uc.Remove(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyURL)
}
