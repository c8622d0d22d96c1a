package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/domain/entity"
	repomocks "github.com/twilight/weaver/internal/domain/repository/mocks"
)

func TestRecordVisit_RecordsWebPages(t *testing.T) {
	ctx := context.Background()
	history := repomocks.NewMockHistoryRepository(t)
	bookmarks := repomocks.NewMockBookmarkRepository(t)

	history.EXPECT().Append(mock.Anything, "https://example.com", "Example").
		Return(&entity.HistoryEntry{URL: "https://example.com", Title: "Example"}, nil).Once()
	bookmarks.EXPECT().ExistsByURL(mock.Anything, "https://example.com").Return(true, nil).Once()

	out, err := NewRecordVisitUseCase(history, bookmarks).Execute(ctx, RecordVisitInput{URI: "https://example.com", Title: "Example"})
	require.NoError(t, err)
	assert.True(t, out.Recorded)
	assert.True(t, out.Bookmarked)
	assert.True(t, out.Secure)
}

func TestRecordVisit_EmptyTitleFallsBackToURI(t *testing.T) {
	ctx := context.Background()
	history := repomocks.NewMockHistoryRepository(t)
	bookmarks := repomocks.NewMockBookmarkRepository(t)

	history.EXPECT().Append(mock.Anything, "http://example.com", "http://example.com").Return(&entity.HistoryEntry{}, nil).Once()
	bookmarks.EXPECT().ExistsByURL(mock.Anything, "http://example.com").Return(false, nil).Once()

	out, err := NewRecordVisitUseCase(history, bookmarks).Execute(ctx, RecordVisitInput{URI: "http://example.com"})
	require.NoError(t, err)
	assert.False(t, out.Secure)
	assert.False(t, out.Bookmarked)
}

func TestRecordVisit_SkipsLocalDocuments(t *testing.T) {
	ctx := context.Background()
	history := repomocks.NewMockHistoryRepository(t)
	bookmarks := repomocks.NewMockBookmarkRepository(t)
	uc := NewRecordVisitUseCase(history, bookmarks)

	for _, uri := range []string{"weaver://home", "about:blank", "data:text/html,<h1>x</h1>", "file:///tmp/a.html", ""} {
		out, err := uc.Execute(ctx, RecordVisitInput{URI: uri, Title: "x"})
		require.NoError(t, err)
		assert.False(t, out.Recorded, uri)
	}
}

func TestRecordVisit_StorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	history := repomocks.NewMockHistoryRepository(t)
	bookmarks := repomocks.NewMockBookmarkRepository(t)

	storageErr := &entity.StorageError{Op: "append history", Err: entity.ErrStorageUnavailable}
	history.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(nil, storageErr).Once()

	out, err := NewRecordVisitUseCase(history, bookmarks).Execute(ctx, RecordVisitInput{URI: "https://example.com"})
	assert.Nil(t, out)

	var se *entity.StorageError
	assert.True(t, errors.As(err, &se))
}
