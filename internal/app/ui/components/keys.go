package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the portfolio view
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Select      key.Binding
	Menu        key.Binding
	CloseMenu   key.Binding
	Theme       key.Binding
	Language    key.Binding
	DownloadCV  key.Binding
	Stats       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "back to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open section"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		CloseMenu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		DownloadCV: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cv"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stats"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Menu, k.Theme, k.Language, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.NextSection, k.PrevSection},
		{k.Menu, k.CloseMenu, k.Select},
		{k.Theme, k.Language, k.DownloadCV, k.Stats},
		{k.Help, k.Quit},
	}
}
