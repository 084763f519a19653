package common

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"admintable/internal/ui/uiconst"
)

// Field is one labelled value in a DetailModel.
type Field struct {
	Name  string
	Value string
}

type DetailModel struct {
	title  string
	fields []Field
}

// NewDetail creates a detail view with a title and ordered fields.
func NewDetail(title string, fields []Field) DetailModel {
	return DetailModel{title: title, fields: fields}
}

// View renders the detail view.
func (m DetailModel) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.title) + "\n")
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C")).Width(uiconst.ColWidthField)
	for _, f := range m.fields {
		b.WriteString(fmt.Sprintf("%s %s\n", key.Render(f.Name+":"), f.Value))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}
