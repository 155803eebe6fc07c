// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gekko-browser/gekko/internal/application/port"
	"github.com/gekko-browser/gekko/internal/cli/styles"
	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/logging"
)

// HistoryModel is the Bubble Tea model for the interactive history browser.
type HistoryModel struct {
	// UI components
	table  table.Model
	search textinput.Model
	help   help.Model
	keys   styles.HistoryKeyMap

	// State
	entries    []entity.HistoryEntry
	visible    []entity.HistoryEntry
	searchMode bool
	showHelp   bool
	selected   string
	width      int
	height     int
	err        error

	// Dependencies
	ctx     context.Context
	history port.HistoryStore
	theme   *styles.Theme
	now     func() time.Time
}

// NewHistoryModel creates a new history browser model.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, history port.HistoryStore) HistoryModel {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating history model")

	return HistoryModel{
		table:   styles.NewStyledTable(theme, styles.HistoryTableColumns(), nil, 80, 18),
		search:  styles.NewSearchInput(theme),
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultHistoryKeyMap(),
		ctx:     ctx,
		history: history,
		theme:   theme,
		now:     time.Now,
		width:   80,
		height:  24,
	}
}

// Selected returns the URL chosen with enter, or "" when the user quit.
func (m HistoryModel) Selected() string {
	return m.selected
}

// Err returns the load error, if any.
func (m HistoryModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

// historyLoadedMsg is sent when history entries are loaded.
type historyLoadedMsg struct {
	entries []entity.HistoryEntry
	err     error
}

func (m HistoryModel) loadHistory() tea.Msg {
	log := logging.FromContext(m.ctx)
	entries, err := m.history.GetAll(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load history")
		return historyLoadedMsg{err: err}
	}
	log.Debug().Int("count", len(entries)).Msg("loaded history entries")
	return historyLoadedMsg{entries: entries}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-6, 3))
		m.help.Width = msg.Width
		return m, nil

	case historyLoadedMsg:
		m.err = msg.err
		m.entries = msg.entries
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m HistoryModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.searchMode = false
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.searchMode = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m HistoryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if row := m.table.Cursor(); row >= 0 && row < len(m.visible) {
			m.selected = m.visible[row].URL
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// applyFilter narrows entries to those whose title or URL contains the query.
func (m *HistoryModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	m.visible = nil
	for _, e := range m.entries {
		if query == "" ||
			strings.Contains(strings.ToLower(e.Title), query) ||
			strings.Contains(strings.ToLower(e.URL), query) {
			m.visible = append(m.visible, e)
		}
	}

	now := m.now()
	rows := make([]table.Row, 0, len(m.visible))
	for _, e := range m.visible {
		rows = append(rows, styles.HistoryRow(e, now))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("History"))
	b.WriteString(" ")
	b.WriteString(m.theme.BadgeMuted.Render(strconv.Itoa(len(m.visible))))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.theme.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.searchMode || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(m.theme.Subtle.Render("No history entries"))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MarginTop(1).Render(m.help.View(m.keys)))

	return b.String()
}
