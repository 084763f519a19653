package search

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Debounce is how long typing must pause before a query is issued.
const Debounce = 150 * time.Millisecond

// QueryMsg carries a debounced query. It is stale if the input has changed
// since it was scheduled; see Model.Current.
type QueryMsg struct {
	Query string
}

// DoneMsg is sent when the user leaves the search box. Cleared is set when
// the query was discarded with esc.
type DoneMsg struct {
	Cleared bool
}

// Model is the search bar above the members table.
type Model struct {
	input   textinput.Model
	focused bool
}

// New creates an unfocused search bar.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name, email or role"
	ti.Prompt = "/ "
	ti.CharLimit = 128
	ti.Width = 40
	return Model{input: ti}
}

// Focus puts the cursor in the search box.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.input.Focus()
	return textinput.Blink
}

// Focused reports whether the search box has the cursor.
func (m Model) Focused() bool { return m.focused }

// Value returns the typed query.
func (m Model) Value() string { return m.input.Value() }

// Reset empties the box and blurs it.
func (m *Model) Reset() {
	m.input.SetValue("")
	m.blur()
}

func (m *Model) blur() {
	m.focused = false
	m.input.Blur()
}

// Current reports whether msg still matches what is typed.
func (m Model) Current(msg QueryMsg) bool {
	return msg.Query == m.input.Value()
}

// Update handles key input while focused. Edits schedule a debounced
// QueryMsg; enter keeps the query, esc clears it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "esc":
		m.Reset()
		return m, func() tea.Msg { return DoneMsg{Cleared: true} }
	case "enter":
		m.blur()
		query := m.input.Value()
		return m, tea.Batch(
			func() tea.Msg { return QueryMsg{Query: query} },
			func() tea.Msg { return DoneMsg{} },
		)
	}

	oldVal := m.input.Value()
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if newVal := m.input.Value(); newVal != oldVal {
		cmds = append(cmds, tea.Tick(Debounce, func(time.Time) tea.Msg {
			return QueryMsg{Query: newVal}
		}))
	}
	return m, tea.Batch(cmds...)
}

// View renders the search bar.
func (m Model) View() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if m.focused {
		border = border.BorderForeground(lipgloss.Color("205"))
	}
	return border.Render(m.input.View())
}
