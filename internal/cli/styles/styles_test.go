package styles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/router"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", RelativeTime(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", RelativeTime(now.Add(-48*time.Hour), now))
	assert.Equal(t, "2w ago", RelativeTime(now.Add(-15*24*time.Hour), now))
	assert.Equal(t, "1y ago", RelativeTime(now.Add(-400*24*time.Hour), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "日本...", Truncate("日本語のタイトル", 5))
}

func TestNewThemeUsesPagePalette(t *testing.T) {
	dark := NewTheme(true)
	assert.Equal(t, "#1e1e1e", string(dark.Background))
	assert.Equal(t, "#78aeed", string(dark.Accent))

	light := NewTheme(false)
	assert.Equal(t, "#fafafa", string(light.Background))
}

func TestRenderProfile(t *testing.T) {
	r := NewBrowseRenderer(NewTheme(true))

	out := r.RenderProfile(entity.NewProfile("/data", "abcd1234"), "/data/config.ini", nil)
	assert.Contains(t, out, "abcd1234")
	assert.Contains(t, out, "/data/config.ini")

	out = r.RenderProfile(entity.PlaceholderProfile(), "/data/config.ini", errors.New("permission denied"))
	assert.Contains(t, out, "No profile")
	assert.Contains(t, out, "permission denied")
}

func TestRenderDisposition(t *testing.T) {
	r := NewBrowseRenderer(NewTheme(false))
	d := router.New("").Classify("weaver://about")

	out := r.RenderDisposition("weaver://about", d)
	assert.Contains(t, out, "internal")
	assert.Contains(t, out, "about")
}

func TestRenderEmptyLists(t *testing.T) {
	r := NewBrowseRenderer(NewTheme(true))
	assert.Contains(t, r.RenderHistory(nil, time.Now()), "No history")
	assert.Contains(t, r.RenderBookmarks(nil), "No bookmarks")
}

func TestConfirmModel(t *testing.T) {
	m := NewConfirm(NewTheme(true), "Clear?")
	assert.False(t, m.Done())
	assert.False(t, m.Yes)
}
