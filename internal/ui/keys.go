package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"swipedemo/internal/ui/carousels"
)

// KeyMap defines the keybindings for the switcher and the active carousel
type KeyMap struct {
	carousels.KeyMap

	NextImpl key.Binding
	PrevImpl key.Binding
	Scroll   key.Binding
	Tab      key.Binding
	Custom   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the default keymap
var DefaultKeyMap = KeyMap{
	KeyMap: carousels.DefaultKeyMap,
	NextImpl: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next implementation"),
	),
	PrevImpl: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous implementation"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "ScrollView"),
	),
	Tab: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "TabView"),
	),
	Custom: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Custom"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.NextImpl, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.PageBack, k.PageFwd, k.First, k.Last, k.Cancel},
		{k.NextImpl, k.PrevImpl, k.Scroll, k.Tab, k.Custom},
		{k.Help, k.Quit},
	}
}
