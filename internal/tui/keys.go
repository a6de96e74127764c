package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Today     key.Binding
	Filters   key.Binding
	Accounts  key.Binding
	Home      key.Binding
	Reload    key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Search    key.Binding
	Clear     key.Binding
	Apply     key.Binding
	Defaults  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("[", "h", "left"), key.WithHelp("[/h", "previous range")),
		Next:      key.NewBinding(key.WithKeys("]", "l", "right"), key.WithHelp("]/l", "next range")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Filters:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Accounts:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accounts")),
		Home:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "home")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "change")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "change")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selection")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Defaults:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "apply and save as default")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Filters, k.Accounts, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today},
		{k.Filters, k.Accounts, k.Home, k.Reload},
		{k.Up, k.Down, k.Open, k.Back},
		{k.Help, k.Quit},
	}
}

// filterHelp is shown while the filter screen is open.
type filterHelp struct{ k keyMap }

func (f filterHelp) ShortHelp() []key.Binding {
	return []key.Binding{f.k.NextField, f.k.Left, f.k.Toggle, f.k.Search, f.k.Clear, f.k.Apply, f.k.Defaults, f.k.Back}
}

func (f filterHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}
