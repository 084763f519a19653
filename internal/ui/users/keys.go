package users

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the members table bindings.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	PrevPage       key.Binding
	NextPage       key.Binding
	FirstPage      key.Binding
	LastPage       key.Binding
	JumpPage       key.Binding
	Search         key.Binding
	ClearSearch    key.Binding
	Toggle         key.Binding
	ToggleAll      key.Binding
	Detail         key.Binding
	Edit           key.Binding
	Delete         key.Binding
	DeleteSelected key.Binding
	Bigger         key.Binding
	Smaller        key.Binding
	Reload         key.Binding
	Refetch        key.Binding
}

// DefaultKeyMap is the keymap used by NewModel.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/up", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/down", "move down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/left", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/right", "next page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	JumpPage: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump to listed page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ClearSearch: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space/x", "select row"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select page"),
	),
	Detail: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit row"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete row"),
	),
	DeleteSelected: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete selected"),
	),
	Bigger: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more rows"),
	),
	Smaller: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer rows"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Refetch: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refetch"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.Edit, k.Delete, k.DeleteSelected}
}

// FullHelp returns the bindings for the help view, grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.JumpPage},
		{k.Search, k.ClearSearch, k.Toggle, k.ToggleAll, k.Detail},
		{k.Edit, k.Delete, k.DeleteSelected, k.Bigger, k.Smaller, k.Reload, k.Refetch},
	}
}
