package users

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"admintable/internal/members"
	"admintable/internal/ui/common"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	pageStyle    = lipgloss.NewStyle().Padding(0, 1)
	currentStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	beyondStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(1, 2)
)

// View renders.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("Users")+"  ", m.search.View()))
	b.WriteString("\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(Pagination(m.view))
	if s := m.status.View(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}
	return b.String()
}

func (m Model) body() string {
	switch m.mode {
	case modeEdit:
		return m.form.View()
	case modeConfirm:
		return m.confirm.View()
	case modeDetail:
		return m.detail.View()
	}
	if m.loading {
		return m.spinner.View() + " Loading users..."
	}
	if m.view.Err != "" {
		return common.NewErrorTable("Failed to list users: " + m.view.Err).View()
	}
	if m.view.NotFound {
		return emptyStyle.Render(fmt.Sprintf("No users match %q", m.view.Term))
	}
	if m.view.OutOfRange {
		return emptyStyle.Render(fmt.Sprintf("Page %d is empty", m.view.CurrentPage))
	}
	if m.view.Total == 0 {
		return emptyStyle.Render("No users")
	}
	return m.table.View()
}

// Pagination draws the page window and a summary line. Pages past the last
// one are dimmed.
func Pagination(v members.View) string {
	hasPrev := v.CurrentPage > 1
	hasNext := v.CurrentPage < v.LastPage
	parts := []string{arrow("«", hasPrev), arrow("‹", hasPrev)}
	for _, p := range v.Pages {
		label := strconv.Itoa(p)
		switch {
		case p == v.CurrentPage:
			parts = append(parts, currentStyle.Render(label))
		case p > v.LastPage:
			parts = append(parts, beyondStyle.Render(label))
		default:
			parts = append(parts, pageStyle.Render(label))
		}
	}
	parts = append(parts, arrow("›", hasNext), arrow("»", hasNext))

	info := fmt.Sprintf("page %d/%d · %d users · %d selected · %d per page",
		v.CurrentPage, v.LastPage, v.Total, v.Selected, v.PageSize)
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...) + "  " + infoStyle.Render(info)
}

func arrow(s string, enabled bool) string {
	if enabled {
		return pageStyle.Render(s)
	}
	return beyondStyle.Render(s)
}
