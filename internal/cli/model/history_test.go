package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/twilight/weaver/internal/application/usecase"
	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/entity"
	repomocks "github.com/twilight/weaver/internal/domain/repository/mocks"
)

func testEntries() []*entity.HistoryEntry {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	return []*entity.HistoryEntry{
		{URL: "https://go.dev", Title: "Go", VisitedAt: at.Add(time.Minute)},
		{URL: "https://example.com", Title: "Example", VisitedAt: at},
	}
}

func newTestModel(t *testing.T) (HistoryModel, *repomocks.MockHistoryRepository) {
	t.Helper()
	repo := repomocks.NewMockHistoryRepository(t)
	m := NewHistoryModel(context.Background(), styles.NewTheme(true), usecase.NewManageHistoryUseCase(repo))
	return m, repo
}

func TestHistoryModel_LoadsEntries(t *testing.T) {
	m, repo := newTestModel(t)
	repo.EXPECT().List(mock.Anything).Return(testEntries(), nil).Once()

	msg := m.Init()()
	updated, _ := m.Update(msg)
	hm := updated.(HistoryModel)

	require.NoError(t, hm.Err())
	assert.Len(t, hm.Entries(), 2)
	assert.Contains(t, hm.View(), "2 entries")
}

func TestHistoryModel_DeleteSelectedAfterConfirm(t *testing.T) {
	m, repo := newTestModel(t)
	entries := testEntries()
	repo.EXPECT().List(mock.Anything).Return(entries, nil).Once()

	updated, _ := m.Update(m.Init()())
	hm := updated.(HistoryModel)

	updated, _ = hm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	hm = updated.(HistoryModel)
	require.NotNil(t, hm.confirm)

	repo.EXPECT().Delete(mock.Anything, "https://go.dev", "Go", entries[0].VisitedAt).Return(int64(1), nil).Once()
	updated, cmd := hm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	hm = updated.(HistoryModel)
	require.Nil(t, hm.confirm)
	require.NotNil(t, cmd)

	repo.EXPECT().List(mock.Anything).Return(entries[1:], nil).Once()
	updated, reload := hm.Update(cmd())
	hm = updated.(HistoryModel)
	require.NotNil(t, reload)

	updated, _ = hm.Update(reload())
	hm = updated.(HistoryModel)
	assert.Len(t, hm.Entries(), 1)
	assert.Equal(t, "1 entry removed", hm.status)
}

func TestHistoryModel_ClearCanceled(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("C")})
	hm := updated.(HistoryModel)
	require.NotNil(t, hm.confirm)

	updated, cmd := hm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	hm = updated.(HistoryModel)
	assert.Nil(t, hm.confirm)
	assert.Nil(t, cmd)
}

func TestHistoryModel_EmptyView(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No history")
}

func TestHistoryModel_ThemeChangedKeepsEntries(t *testing.T) {
	m, repo := newTestModel(t)
	repo.EXPECT().List(mock.Anything).Return(testEntries(), nil).Once()

	updated, _ := m.Update(m.Init()())
	light := styles.NewTheme(false)
	updated, cmd := updated.Update(ThemeChangedMsg{Theme: light})
	hm := updated.(HistoryModel)

	assert.Nil(t, cmd)
	assert.Same(t, light, hm.theme)
	assert.Len(t, hm.Entries(), 2)
	assert.Contains(t, hm.View(), "2 entries")
}
