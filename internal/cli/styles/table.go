package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for history list table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: 40},
		{Title: "URL", Width: 40},
		{Title: "Visits", Width: 8},
		{Title: "Last Visit", Width: 16},
	}
}

// HistoryRow converts a history entry to a table row.
func HistoryRow(e entity.HistoryEntry, now time.Time) table.Row {
	return table.Row{e.Title, e.URL, strconv.FormatInt(e.VisitCount, 10), RelativeTime(e.LastVisited, now)}
}

// TabTableColumns returns columns for the open tabs table.
func TabTableColumns() []table.Column {
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Title", Width: 30},
		{Title: "URL", Width: 40},
		{Title: "State", Width: 10},
	}
}

// TabRow converts a tab to a table row.
func TabRow(tab entity.Tab, active bool) table.Row {
	marker := ""
	if active {
		marker = "*"
	}
	return table.Row{marker, tab.DisplayTitle(), tab.URL, tab.LoadState.String()}
}

// RelativeTime renders t relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h ago"
	case d < 30*24*time.Hour:
		return strconv.Itoa(int(d.Hours()/24)) + "d ago"
	default:
		return t.Format("2006-01-02")
	}
}
