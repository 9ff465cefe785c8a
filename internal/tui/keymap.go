package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keys the host handles itself. Every other key goes to
// the deck.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the host key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
