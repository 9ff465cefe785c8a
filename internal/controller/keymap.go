package controller

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to semantic commands. Navigation bindings are matched
// on keydown, command bindings on keypress.
type KeyMap struct {
	Previous    key.Binding
	Next        key.Binding
	First       key.Binding
	Last        key.Binding
	GoTo        key.Binding
	HideOverlay key.Binding

	Blackout   key.Binding
	Mirrored   key.Binding
	Presenter  key.Binding
	FullScreen key.Binding
	Help       key.Binding
	Pause      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("pgup", "left", "up", "shift+space", "k"),
			key.WithHelp("←/↑/pgup", "previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("pgdown", "right", "down", "space", "j"),
			key.WithHelp("→/↓/pgdn/space", "next slide"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last slide"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("N enter", "go to slide N"),
		),
		HideOverlay: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to slideshow"),
		),
		Blackout: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blackout"),
		),
		Mirrored: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mirrored"),
		),
		Presenter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "presenter mode"),
		),
		FullScreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full screen"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "help"),
		),
		Pause: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "pause"),
		),
	}
}
