package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"admintable/internal/client"
	"admintable/internal/members"
	"admintable/internal/ui/users"
)

const (
	stateMain = "main"
	stateHelp = "help"
)

// AppModel is the top-level model. It routes keys to the users table and
// owns quit and help.
type AppModel struct {
	users    users.Model
	help     help.Model
	keys     KeyMap
	endpoint string

	state     string
	prevState string
	width     int
	height    int
}

// NewModel creates the application model for state, fetching from mc.
func NewModel(state *members.State, mc client.MembersClient, opts users.Options) AppModel {
	return AppModel{
		users:    users.NewModel(state, mc, opts),
		help:     help.New(),
		keys:     GlobalKeyMap,
		endpoint: mc.Endpoint(),
		state:    stateMain,
	}
}

// Init loads the member list.
func (m AppModel) Init() tea.Cmd {
	return m.users.Init()
}

// Update handles global keys and forwards everything else to the table.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// The header and footer take two lines.
		return m.forward(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2})
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.state == stateHelp {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Esc):
				m.state = m.prevState
				m.prevState = ""
			}
			return m, nil
		}
		if !m.users.CapturingInput() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.prevState = m.state
				m.state = stateHelp
				return m, nil
			}
		}
	}
	return m.forward(msg)
}

func (m AppModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.users.Update(msg)
	if um, ok := next.(users.Model); ok {
		m.users = um
	}
	return m, cmd
}

// View renders the active state.
func (m AppModel) View() string {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render("admintable · " + m.endpoint)
	bindings := append(m.users.KeyMap().ShortHelp(), m.keys.ShortHelp()...)
	footer := fmt.Sprintf("[%s] %s", m.state, m.help.ShortHelpView(bindings))
	body := m.users.View()
	if m.state == stateHelp {
		body = m.helpView()
	}
	return Layout(m.width, m.height, header, body, footer)
}

func (m AppModel) helpView() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))

	section := func(title string, groups [][]key.Binding) {
		b.WriteString(titleStyle.Render("\n  "+title) + "\n")
		for _, group := range groups {
			for _, k := range group {
				h := k.Help()
				b.WriteString(keyStyle.Render(fmt.Sprintf("  %-12s", h.Key)) + descStyle.Render(h.Desc) + "\n")
			}
		}
	}
	section("Global", m.keys.FullHelp())
	section("Users", m.users.KeyMap().FullHelp())

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render("\n  [?] close help\n"))
	return b.String()
}

// Ensure AppModel implements tea.Model.
var _ tea.Model = (*AppModel)(nil)
