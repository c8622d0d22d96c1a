// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twilight/weaver/internal/application/usecase"
	"github.com/twilight/weaver/internal/cli/styles"
	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/logging"
)

const historyChromeHeight = 8

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmClear
)

// HistoryModel is the Bubble Tea model for the interactive history browser.
type HistoryModel struct {
	list    list.Model
	search  textinput.Model
	help    help.Model
	keys    styles.HistoryKeyMap
	confirm *styles.ConfirmModel
	pending confirmAction

	entries    []*entity.HistoryEntry
	query      string
	searchMode bool
	showHelp   bool
	status     string
	width      int
	height     int
	err        error

	ctx       context.Context
	historyUC *usecase.ManageHistoryUseCase
	theme     *styles.Theme
}

// NewHistoryModel creates a new history browser model.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, historyUC *usecase.ManageHistoryUseCase) HistoryModel {
	logging.FromContext(ctx).Debug().Msg("creating history model")

	m := HistoryModel{
		search:    styles.NewSearchInput(theme),
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultHistoryKeyMap(),
		ctx:       ctx,
		historyUC: historyUC,
		theme:     theme,
		width:     80,
		height:    24,
	}
	m.updateList()
	return m
}

// historyLoadedMsg is sent when history entries are loaded.
type historyLoadedMsg struct {
	entries []*entity.HistoryEntry
	err     error
}

// historyChangedMsg is sent after a delete or clear.
type historyChangedMsg struct {
	deleted int64
	err     error
}

// ThemeChangedMsg restyles the browser after the color scheme changed.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.load(m.query)
}

func (m HistoryModel) load(query string) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.historyUC.Filter(m.ctx, query, 0)
		if err != nil {
			logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load history")
		}
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirm(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKey(msg)
		}
		return m.handleNormalKey(msg)

	case historyLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.entries = msg.entries
			m.updateList()
		}
		return m, nil

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.restyle(msg.Theme)
		}
		return m, nil

	case historyChangedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = pluralEntries(msg.deleted) + " removed"
		return m, m.load(m.query)
	}

	return m, nil
}

func (m HistoryModel) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, _ := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, nil
	}

	action := m.pending
	yes := m.confirm.Result()
	m.confirm = nil
	m.pending = confirmNone
	if !yes {
		return m, nil
	}

	switch action {
	case confirmDelete:
		return m, m.deleteSelected()
	case confirmClear:
		return m, m.clearAll()
	default:
		return m, nil
	}
}

func (m HistoryModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searchMode = false
		m.search.Blur()
		m.query = m.search.Value()
		return m, m.load(m.query)
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

func (m HistoryModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if m.list.SelectedItem() != nil {
			confirm := styles.NewConfirm(m.theme, "Delete this entry?")
			m.confirm = &confirm
			m.pending = confirmDelete
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		confirm := styles.NewConfirm(m.theme, "Clear all history?")
		m.confirm = &confirm
		m.pending = confirmClear
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *HistoryModel) restyle(theme *styles.Theme) {
	value := m.search.Value()
	m.theme = theme
	m.search = styles.NewSearchInput(theme)
	m.search.SetValue(value)
	if m.searchMode {
		m.search.Focus()
	}
	width := m.help.Width
	m.help = styles.NewStyledHelp(theme)
	m.help.Width = width
	m.updateList()
}

func (m *HistoryModel) updateList() {
	items := make([]styles.HistoryItem, len(m.entries))
	for i, e := range m.entries {
		items[i] = styles.HistoryItem{URL: e.URL, Title: e.Title, VisitedAt: e.VisitedAt}
	}

	listHeight := m.height - historyChromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	index := m.list.Index()
	m.list = styles.NewHistoryList(m.theme, items, m.width, listHeight)
	if index < len(items) {
		m.list.Select(index)
	}
}

// selected returns the entry under the cursor, if any.
func (m HistoryModel) selected() (styles.HistoryItem, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return styles.HistoryItem{}, false
	}
	hi, ok := item.(styles.HistoryItem)
	return hi, ok
}

func (m HistoryModel) deleteSelected() tea.Cmd {
	hi, ok := m.selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		n, err := m.historyUC.Delete(m.ctx, hi.URL, hi.Title, hi.VisitedAt)
		return historyChangedMsg{deleted: n, err: err}
	}
}

func (m HistoryModel) clearAll() tea.Cmd {
	return func() tea.Msg {
		n, err := m.historyUC.Clear(m.ctx)
		return historyChangedMsg{deleted: n, err: err}
	}
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	t := m.theme
	header := t.Title.Render(styles.IconDatabase+" History") + " " + t.MutedBadge(pluralEntries(int64(len(m.entries))))

	var searchBar string
	switch {
	case m.searchMode:
		searchBar = t.InputFocused.Render(m.search.View())
	case m.query != "":
		searchBar = t.Subtle.Render("Filter: ") + t.AccentBadge(m.query) + t.Subtle.Render(" (/ to change)")
	default:
		searchBar = t.Subtle.Render("Press / to search, d to delete, C to clear all")
	}

	body := m.list.View()
	switch {
	case m.err != nil:
		body = t.ErrorStyle.Render("Error: " + m.err.Error())
	case len(m.entries) == 0:
		body = t.Subtle.Render("No history")
	}

	footer := t.Subtle.Render("? for help • q to quit")
	if m.showHelp {
		footer = m.help.View(m.keys)
	}
	if m.status != "" {
		footer = t.SuccessStyle.Render(m.status) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", searchBar, "", body, "", footer)
}

// Entries returns the entries currently shown.
func (m HistoryModel) Entries() []*entity.HistoryEntry {
	return m.entries
}

// Err returns the last load or delete error.
func (m HistoryModel) Err() error {
	return m.err
}

func pluralEntries(n int64) string {
	if n == 1 {
		return "1 entry"
	}
	return strconv.FormatInt(n, 10) + " entries"
}

var _ tea.Model = HistoryModel{}
