package common

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmItem struct {
	choice string
}

func (c confirmItem) Title() string       { return c.choice }
func (c confirmItem) Description() string { return "" }
func (c confirmItem) FilterValue() string { return c.choice }

// ConfirmModel asks a yes/no question.
type ConfirmModel struct {
	list   list.Model
	result string // "Yes" or "No"
	done   bool
}

// NewConfirm creates a confirm dialog with a message. "No" is preselected.
func NewConfirm(message string) ConfirmModel {
	items := []list.Item{
		confirmItem{choice: "Yes"},
		confirmItem{choice: "No"},
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	l := list.New(items, d, 40, 6)
	l.Title = message
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)
	l.Select(1)
	return ConfirmModel{list: l}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update forwards messages to the list and captures the answer. y and n
// answer directly; esc means no.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if i, ok := m.list.SelectedItem().(confirmItem); ok {
				m.result = i.choice
				m.done = true
			}
			return m, nil
		case "y", "Y":
			m.result, m.done = "Yes", true
			return m, nil
		case "n", "N", "esc":
			m.result, m.done = "No", true
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Done reports whether the question was answered.
func (m ConfirmModel) Done() bool { return m.done }

// Confirmed reports whether the answer was yes.
func (m ConfirmModel) Confirmed() bool { return m.done && m.result == "Yes" }

// View renders the confirm dialog.
func (m ConfirmModel) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(m.list.View())
}
