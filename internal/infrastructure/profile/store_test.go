package profile

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/domain/entity"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s := NewStore(t.TempDir(), opts...)
	_, err := s.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_OpenCreatesProfileStorage(t *testing.T) {
	s := openTestStore(t)

	p := s.Profile()
	assert.False(t, p.IsPlaceholder())
	assert.True(t, s.Available())
	assert.FileExists(t, filepath.Join(p.Dir, "history.db"))
	assert.FileExists(t, filepath.Join(p.Dir, "bookmarks.db"))
}

func TestStore_HistoryLifecycle(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	tick := 0
	s := openTestStore(t, WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}))

	a, err := s.AppendHistory(ctx, "https://a.example", "A")
	require.NoError(t, err)
	_, err = s.AppendHistory(ctx, "https://b.example", "B")
	require.NoError(t, err)

	entries, err := s.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://b.example", entries[0].URL)

	n, err := s.DeleteHistory(ctx, a.URL, a.Title, a.VisitedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entries, err = s.ListHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Bookmarks(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.AddBookmark(ctx, "https://a.example", "A"))
	ok, err := s.IsBookmarked(ctx, "https://a.example")
	require.NoError(t, err)
	assert.True(t, ok)

	bookmarks, err := s.ListBookmarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Bookmark{{URL: "https://a.example", Title: "A"}}, bookmarks)

	n, err := s.DeleteBookmark(ctx, "https://a.example")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_PlaceholderProfileRecordsFail(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.ini"), []byte("[Settings]\nprofile_name = a/b\n"), 0o600))

	s := NewStore(root)
	p, err := s.Open(ctx)
	var cfgErr *entity.ConfigIOError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, p.IsPlaceholder())
	assert.False(t, s.Available())

	_, err = s.AppendHistory(ctx, "https://a.example", "A")
	var se *entity.StorageError
	require.True(t, errors.As(err, &se))
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)

	_, err = s.IsBookmarked(ctx, "https://a.example")
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)

	// Explicitly opening storage for the placeholder is refused.
	err = s.EnsureStorage(ctx, p)
	assert.ErrorIs(t, err, entity.ErrPlaceholderProfile)
}

func TestStore_CloseMakesStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir())
	_, err := s.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.False(t, s.Available())

	_, err = s.ListHistory(ctx)
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)

	// Closing twice is harmless.
	assert.NoError(t, s.Close())
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	s := NewStore(root)
	first, err := s.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, s.AddBookmark(ctx, "https://a.example", "A"))
	require.NoError(t, s.Close())

	reopened := NewStore(root)
	second, err := reopened.Open(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	assert.Equal(t, first, second)
	ok, err := reopened.IsBookmarked(ctx, "https://a.example")
	require.NoError(t, err)
	assert.True(t, ok)
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseReplaced_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	closeReplaced(ctx, failingCloser{err: errors.New("database is locked")})
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "database is locked")

	buf.Reset()
	closeReplaced(ctx, failingCloser{})
	assert.Empty(t, buf.String())
}

func TestStore_EnsureStorageReplacesOpenStorage(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.AddBookmark(ctx, "https://a.example", "A"))

	require.NoError(t, s.EnsureStorage(ctx, s.Profile()))

	ok, err := s.IsBookmarked(ctx, "https://a.example")
	require.NoError(t, err)
	assert.True(t, ok)
}
