package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-wide keybindings. Table bindings live in
// users.KeyMap.
type KeyMap struct {
	Quit      key.Binding // quit the application (ctrl+c or q)
	ForceQuit key.Binding // quit even while typing
	Help      key.Binding // toggle help view
	Esc       key.Binding // close help
}

// GlobalKeyMap holds the keybindings used across the application.
var GlobalKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
}

// ShortHelp returns a slice of key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns a matrix of key bindings for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.ForceQuit, k.Help, k.Esc}}
}
