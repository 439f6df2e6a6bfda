package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation between views
	GoHome     key.Binding
	GoListings key.Binding
	GoUpload   key.Binding
	GoContact  key.Binding
	GoAdmin    key.Binding

	// Movement within a view
	Up       key.Binding
	Down     key.Binding
	NextItem key.Binding
	PrevItem key.Binding

	// Actions
	Select    key.Binding
	Back      key.Binding
	ClearAll  key.Binding
	Approve   key.Binding
	Reject    key.Binding
	Delete    key.Binding
	Generate  key.Binding
	ToggleTab key.Binding

	// Application
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		GoHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		GoListings: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "listings"),
		),
		GoUpload: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "upload"),
		),
		GoContact: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "contact"),
		),
		GoAdmin: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "admin"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("→/l", "next"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select/submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "approve"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reject"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete listing"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("Ctrl+G", "generate description"),
		),
		ToggleTab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch tab"),
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
			key.WithHelp("Ctrl+C", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Select, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.GoHome, k.GoListings, k.GoUpload, k.GoContact, k.GoAdmin},
		{k.Up, k.Down, k.NextItem, k.PrevItem},
		{k.Select, k.Back, k.ClearAll, k.ToggleTab},
		{k.Approve, k.Reject, k.Delete, k.Generate},
		{k.Help, k.Quit},
	}
}
