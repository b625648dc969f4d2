package carousels

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings shared by every carousel
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	PageBack key.Binding
	PageFwd  key.Binding
	First    key.Binding
	Last     key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap is the default carousel keymap
var DefaultKeyMap = KeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	PageBack: key.NewBinding(
		key.WithKeys("pgup", "H"),
		key.WithHelp("pgup", "jump back"),
	),
	PageFwd: key.NewBinding(
		key.WithKeys("pgdown", "L"),
		key.WithHelp("pgdn", "jump forward"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
}
