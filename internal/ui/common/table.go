package common

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"admintable/internal/ui/uiconst"
)

type TableModel struct {
	table table.Model
}

// NewTable creates a static table with given columns and rows. The height
// fits the header line plus every row.
func NewTable(columns []table.Column, rows []table.Row) TableModel {
	h := len(rows) + 1
	if h < 2 {
		h = 2
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(h),
	)
	t.SetStyles(table.DefaultStyles())
	return TableModel{table: t}
}

// NewErrorTable renders a single-cell table holding msg.
func NewErrorTable(msg string) TableModel {
	cols := []table.Column{{Title: "Error", Width: uiconst.ColWidthError}}
	return NewTable(cols, []table.Row{{msg}})
}

// Init implements tea.Model.
func (m TableModel) Init() tea.Cmd { return nil }

// Update forwards messages to the underlying table.
func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m TableModel) View() string { return m.table.View() }

// Ensure TableModel implements tea.Model.
var _ tea.Model = (*TableModel)(nil)
