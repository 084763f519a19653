package ui

import "github.com/charmbracelet/lipgloss"

// Layout stacks the header, body and footer. A positive width pads every
// part to it; the footer is pushed to the bottom when height leaves room.
func Layout(width, height int, header, body, footer string) string {
	style := lipgloss.NewStyle()
	if width > 0 {
		style = style.Width(width)
	}
	top := lipgloss.JoinVertical(lipgloss.Left, style.Render(header), style.Render(body))
	if gap := height - lipgloss.Height(top) - lipgloss.Height(footer); gap > 0 {
		top = lipgloss.JoinVertical(lipgloss.Left, top, lipgloss.NewStyle().Height(gap).Render(""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, style.Render(footer))
}
