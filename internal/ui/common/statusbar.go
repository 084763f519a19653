package common

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Severity picks the status bar colour.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// ClearStatusMsg expires a flashed message. A newer flash makes it stale.
type ClearStatusMsg struct {
	seq int
}

// StatusBar shows a one-line message, optionally for a limited time.
type StatusBar struct {
	message  string
	severity Severity
	seq      int
}

// NewStatusBar creates a status bar with the given message.
func NewStatusBar(msg string) StatusBar {
	return StatusBar{message: msg}
}

// SetMessage updates the status bar text until the next change.
func (s *StatusBar) SetMessage(msg string) {
	s.seq++
	s.message = msg
	s.severity = SeverityInfo
}

// Flash shows msg for d and returns the command that clears it.
func (s *StatusBar) Flash(msg string, sev Severity, d time.Duration) tea.Cmd {
	s.seq++
	s.message = msg
	s.severity = sev
	seq := s.seq
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{seq: seq} })
}

// Clear handles a ClearStatusMsg, ignoring it if a newer message is showing.
func (s *StatusBar) Clear(msg ClearStatusMsg) {
	if msg.seq == s.seq {
		s.message = ""
	}
}

// Message returns the current text.
func (s StatusBar) Message() string { return s.message }

// View renders the status bar.
func (s StatusBar) View() string {
	if s.message == "" {
		return ""
	}
	bg := lipgloss.Color("#333")
	if s.severity == SeverityError {
		bg = lipgloss.Color("#d9534f")
	}
	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("#fff")).
		Padding(0, 1)
	return style.Render(s.message)
}
