package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/domain/entity"
)

// runCLI executes the root command against dir and returns stdout.
// Flag globals are reset because cobra keeps parsed values between runs.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	jsonOutput = false
	historyMax = defaultHistoryMax
	historyQuery = ""
	clearYes = false
	visitTitle = ""
	pageDark, pageLight = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveJSON(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	out, err := runCLI(t, dir, "--json", "resolve", "example.com")
	require.NoError(t, err)

	var d dispositionJSON
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "external", d.Kind)
	assert.Equal(t, "http://example.com", d.URL)

	out, err = runCLI(t, dir, "--json", "resolve", "hello", "world")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "search", d.Kind)
	assert.Equal(t, "hello world", d.Input)

	_, statErr := os.Stat(filepath.Join(dir, "config.ini"))
	assert.True(t, os.IsNotExist(statErr), "resolve must not create a profile")
}

func TestProfileJSONCreatesProfile(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	out, err := runCLI(t, dir, "--json", "profile")
	require.NoError(t, err)

	var p profileJSON
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Len(t, p.ID, entity.ProfileIDLength)
	assert.False(t, p.Placeholder)
	assert.False(t, p.CustomID)
	assert.True(t, p.Storage)
	require.NotNil(t, p.Schema)
	assert.Equal(t, int64(2), p.Schema.History)
	assert.Equal(t, int64(2), p.Schema.Bookmarks)
	assert.FileExists(t, filepath.Join(dir, "config.ini"))
	assert.FileExists(t, filepath.Join(dir, p.ID+entity.ProfileDirSuffix, "history.db"))

	again, err := runCLI(t, dir, "--json", "profile")
	require.NoError(t, err)
	var p2 profileJSON
	require.NoError(t, json.Unmarshal([]byte(again), &p2))
	assert.Equal(t, p.ID, p2.ID)
}

func TestProfileJSONHandEditedID(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"),
		[]byte("[Settings]\nprofile_name = work\n"), 0o600))

	out, err := runCLI(t, dir, "--json", "profile")
	require.NoError(t, err)

	var p profileJSON
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "work", p.ID)
	assert.True(t, p.CustomID)

	text, err := runCLI(t, dir, "profile")
	require.NoError(t, err)
	assert.Contains(t, text, "(custom)")
	assert.Contains(t, text, "history v2, bookmarks v2")
}

func TestVisitAndHistory(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	_, err := runCLI(t, dir, "visit", "https://go.dev", "--title", "Go")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--json", "visit", "weaver://home")
	require.NoError(t, err)
	var v visitJSON
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.False(t, v.Recorded)

	out, err = runCLI(t, dir, "--json", "history", "list")
	require.NoError(t, err)
	var entries []entity.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "https://go.dev", entries[0].URL)
	assert.Equal(t, "Go", entries[0].Title)

	_, err = runCLI(t, dir, "history", "delete", "https://go.dev", "Go", entries[0].Timestamp())
	require.NoError(t, err)

	out, err = runCLI(t, dir, "--json", "history")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestHistoryClearNeedsConfirmation(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	_, err := runCLI(t, dir, "visit", "example.com")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted")

	out, err = runCLI(t, dir, "--json", "history", "clear", "--yes")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":1}`, out)
}

func TestBookmarks(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	_, err := runCLI(t, dir, "bookmarks", "add", "https://go.dev", "Go")
	require.NoError(t, err)
	_, err = runCLI(t, dir, "bookmarks", "add", "https://go.dev")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "--json", "bookmarks", "list")
	require.NoError(t, err)
	var bookmarks []entity.Bookmark
	require.NoError(t, json.Unmarshal([]byte(out), &bookmarks))
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "Go", bookmarks[0].Title)
	assert.Equal(t, "https://go.dev", bookmarks[1].Title)

	out, err = runCLI(t, dir, "--json", "visit", "https://go.dev")
	require.NoError(t, err)
	var v visitJSON
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Bookmarked)
	assert.True(t, v.Secure)

	out, err = runCLI(t, dir, "--json", "bookmarks", "delete", "https://go.dev")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":2}`, out)
}

func TestPageRendersHTML(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	out, err := runCLI(t, dir, "page", "about", "--dark")
	require.NoError(t, err)
	assert.Contains(t, out, "#1e1e1e")
	assert.Contains(t, out, "GPL-3.0")

	out, err = runCLI(t, dir, "page", "<b>", "--light")
	require.NoError(t, err)
	assert.Contains(t, out, "#fafafa")
	assert.Contains(t, out, "weaver://&lt;b&gt;")
}

func TestConfigSchemaAndPath(t *testing.T) {
	t.Setenv("WEAVER_LOG_LEVEL", "disabled")
	dir := t.TempDir()

	out, err := runCLI(t, dir, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "default_search_engine")

	out, err = runCLI(t, dir, "--json", "config", "path")
	require.NoError(t, err)
	var paths configPathsJSON
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.Equal(t, filepath.Join(dir, "settings.toml"), paths.Settings)
	assert.Equal(t, filepath.Join(dir, "config.ini"), paths.Profile)

	out, err = runCLI(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "duckduckgo")
}
