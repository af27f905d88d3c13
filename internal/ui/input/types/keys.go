package types

import "github.com/charmbracelet/bubbles/key"

// RackKeyMap holds the bindings active on the rack
type RackKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Add    key.Binding
	Remove key.Binding
	Help   key.Binding
	Pager  key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap
func (k RackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k RackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Add, k.Remove},
		{k.Help, k.Pager, k.Quit},
	}
}

// BrowserKeyMap holds the bindings active while the browser is open.
// Printable keys are reserved for the search field.
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Favorite key.Binding
	Clear    key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Favorite, k.Clear, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Activate, k.Favorite, k.Clear, k.Cancel},
	}
}

// Keys is the default key set
var Keys = struct {
	Rack    RackKeyMap
	Browser BrowserKeyMap
}{
	Rack: RackKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Add:    key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter/a", "add module")),
		Remove: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Pager:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	},
	Browser: BrowserKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Favorite: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "favorite")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear filter")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	},
}
