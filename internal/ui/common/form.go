package common

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormModel is a column of labelled text inputs. Enter on the last field
// submits, esc cancels.
type FormModel struct {
	title      string
	inputs     []textinput.Model
	focusIndex int
	submitted  bool
	cancelled  bool
}

// NewForm creates a form with the given field labels and initial values.
func NewForm(title string, labels, values []string) FormModel {
	inputs := make([]textinput.Model, len(labels))
	for i, f := range labels {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(f)
		ti.Prompt = f + ": "
		ti.CharLimit = 256
		ti.Width = 40
		if i < len(values) {
			ti.SetValue(values[i])
		}
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return FormModel{title: title, inputs: inputs}
}

// Init starts the cursor blinking.
func (m FormModel) Init() tea.Cmd { return textinput.Blink }

// Update handles key events and input updates.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if m.submitted || m.cancelled || len(m.inputs) == 0 {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "enter":
			if m.focusIndex < len(m.inputs)-1 {
				m.focus(m.focusIndex + 1)
				return m, nil
			}
			m.submitted = true
			return m, nil
		case "tab", "down":
			m.focus((m.focusIndex + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.focus((m.focusIndex - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *FormModel) focus(i int) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = i
	m.inputs[m.focusIndex].Focus()
}

// Submitted reports whether the form was confirmed.
func (m FormModel) Submitted() bool { return m.submitted }

// Cancelled reports whether the form was abandoned.
func (m FormModel) Cancelled() bool { return m.cancelled }

// Values returns the current field values in label order.
func (m FormModel) Values() []string {
	out := make([]string, len(m.inputs))
	for i := range m.inputs {
		out[i] = m.inputs[i].Value()
	}
	return out
}

// View renders the form fields.
func (m FormModel) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.title) + "\n")
	}
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render("enter: next/save  tab: switch field  esc: cancel"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(b.String())
}
