package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/infrastructure/persistence/sqlite"
	"github.com/twilight/weaver/internal/logging"
)

func storageTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) sqlite.Clock {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

func openTestStorage(t *testing.T, now sqlite.Clock) *sqlite.Storage {
	t.Helper()
	profile := entity.NewProfile(t.TempDir(), "ab12cd34")
	storage, err := sqlite.EnsureStorage(storageTestCtx(), profile, now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

func TestEnsureStorage_CreatesDatabases(t *testing.T) {
	ctx := storageTestCtx()
	profile := entity.NewProfile(t.TempDir(), "ab12cd34")

	storage, err := sqlite.EnsureStorage(ctx, profile, nil)
	require.NoError(t, err)
	require.NoError(t, storage.Close())

	info, err := os.Stat(profile.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.FileExists(t, filepath.Join(profile.Dir, sqlite.HistoryDBName))
	assert.FileExists(t, filepath.Join(profile.Dir, sqlite.BookmarksDBName))

	// Second call is a no-op on the schema.
	again, err := sqlite.EnsureStorage(ctx, profile, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = again.Close() })

	entries, err := again.History.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureStorage_PlaceholderProfile(t *testing.T) {
	storage, err := sqlite.EnsureStorage(storageTestCtx(), entity.PlaceholderProfile(), nil)
	assert.Nil(t, storage)

	var se *entity.StorageError
	require.True(t, errors.As(err, &se))
	assert.ErrorIs(t, err, entity.ErrPlaceholderProfile)
}

func TestEnsureStorage_AdoptsExistingDatabase(t *testing.T) {
	ctx := storageTestCtx()
	profile := entity.NewProfile(t.TempDir(), "legacy01")
	require.NoError(t, os.MkdirAll(profile.Dir, 0o750))

	// A history database written before versioned migrations existed.
	legacy, err := sql.Open("sqlite3", filepath.Join(profile.Dir, sqlite.HistoryDBName))
	require.NoError(t, err)
	_, err = legacy.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY, url TEXT NOT NULL, title TEXT NOT NULL, timestamp TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = legacy.Exec(`INSERT INTO history (url, title, timestamp) VALUES (?, ?, ?)`,
		"https://old.example", "Old", "2023-01-02 03:04:05")
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	storage, err := sqlite.EnsureStorage(ctx, profile, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://old.example", entries[0].URL)
	assert.Equal(t, "2023-01-02 03:04:05", entries[0].Timestamp())
}

func TestHistory_ListSkipsUnparseableTimestamps(t *testing.T) {
	ctx := storageTestCtx()
	profile := entity.NewProfile(t.TempDir(), "badts001")
	require.NoError(t, os.MkdirAll(profile.Dir, 0o750))

	raw, err := sql.Open("sqlite3", filepath.Join(profile.Dir, sqlite.HistoryDBName))
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY, url TEXT NOT NULL, title TEXT NOT NULL, timestamp TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO history (url, title, timestamp) VALUES (?, ?, ?), (?, ?, ?)`,
		"https://broken.example", "Broken", "yesterday",
		"https://ok.example", "OK", "2023-01-02 03:04:05")
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	storage, err := sqlite.EnsureStorage(ctx, profile, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://ok.example", entries[0].URL)

	n, err := storage.History.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "clear still removes rows that could not be listed")
}

func TestHistory_AppendAndListDescending(t *testing.T) {
	ctx := storageTestCtx()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	storage := openTestStorage(t, steppingClock(start))

	for _, u := range []string{"https://a.example", "https://b.example", "https://a.example"} {
		_, err := storage.History.Append(ctx, u, "title")
		require.NoError(t, err)
	}

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "https://a.example", entries[0].URL)
	assert.Equal(t, "https://b.example", entries[1].URL)
	assert.Equal(t, "https://a.example", entries[2].URL)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].VisitedAt.After(entries[i-1].VisitedAt))
	}
	assert.True(t, entries[2].VisitedAt.Equal(start))
}

func TestHistory_AppendStampsCurrentTime(t *testing.T) {
	ctx := storageTestCtx()
	storage := openTestStorage(t, nil)

	before := time.Now().Truncate(time.Second)
	entry, err := storage.History.Append(ctx, "https://example.com", "Example")
	require.NoError(t, err)
	assert.False(t, entry.VisitedAt.Before(before))

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].VisitedAt.Equal(entry.VisitedAt))
}

func TestHistory_SameSecondNewestFirst(t *testing.T) {
	ctx := storageTestCtx()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	storage := openTestStorage(t, func() time.Time { return fixed })

	_, err := storage.History.Append(ctx, "https://first.example", "First")
	require.NoError(t, err)
	_, err = storage.History.Append(ctx, "https://second.example", "Second")
	require.NoError(t, err)

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://second.example", entries[0].URL)
}

func TestHistory_DeleteMatchesFullTriple(t *testing.T) {
	ctx := storageTestCtx()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	storage := openTestStorage(t, steppingClock(start))

	first, err := storage.History.Append(ctx, "https://example.com", "One")
	require.NoError(t, err)
	_, err = storage.History.Append(ctx, "https://example.com", "Two")
	require.NoError(t, err)

	n, err := storage.History.Delete(ctx, first.URL, first.Title, first.VisitedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Two", entries[0].Title)

	// Wrong timestamp matches nothing and is not an error.
	n, err = storage.History.Delete(ctx, "https://example.com", "Two", start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestHistory_DeleteAll(t *testing.T) {
	ctx := storageTestCtx()
	storage := openTestStorage(t, steppingClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)))

	for i := 0; i < 3; i++ {
		_, err := storage.History.Append(ctx, "https://example.com", "Example")
		require.NoError(t, err)
	}

	n, err := storage.History.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = storage.History.Append(ctx, "https://after.example", "After")
	require.NoError(t, err)

	entries, err := storage.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://after.example", entries[0].URL)
}

func TestBookmarks_RoundTrip(t *testing.T) {
	ctx := storageTestCtx()
	storage := openTestStorage(t, nil)

	require.NoError(t, storage.Bookmarks.Add(ctx, entity.NewBookmark("https://a.example", "A")))
	require.NoError(t, storage.Bookmarks.Add(ctx, entity.NewBookmark("https://b.example", "B")))
	require.NoError(t, storage.Bookmarks.Add(ctx, entity.NewBookmark("https://a.example", "A again")))

	bookmarks, err := storage.Bookmarks.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookmarks, 3)
	assert.Equal(t, "A", bookmarks[0].Title)
	assert.Equal(t, "B", bookmarks[1].Title)
	assert.Equal(t, "A again", bookmarks[2].Title)

	exists, err := storage.Bookmarks.ExistsByURL(ctx, "https://a.example")
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := storage.Bookmarks.DeleteByURL(ctx, "https://a.example")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	exists, err = storage.Bookmarks.ExistsByURL(ctx, "https://a.example")
	require.NoError(t, err)
	assert.False(t, exists)

	bookmarks, err = storage.Bookmarks.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "https://b.example", bookmarks[0].URL)
}

func TestStorage_ClosedDatabaseReturnsStorageError(t *testing.T) {
	ctx := storageTestCtx()
	profile := entity.NewProfile(t.TempDir(), "ab12cd34")
	storage, err := sqlite.EnsureStorage(ctx, profile, nil)
	require.NoError(t, err)
	require.NoError(t, storage.Close())

	_, err = storage.History.Append(ctx, "https://example.com", "Example")
	var se *entity.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "append history", se.Op)

	_, err = storage.Bookmarks.List(ctx)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "list bookmarks", se.Op)
}
