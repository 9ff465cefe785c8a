package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/deckshow/internal/events"
)

// keyFromMsg converts a terminal key to the bus payload. The second result
// reports whether the key produces a character and so also raises keypress.
func keyFromMsg(msg tea.KeyMsg) (events.Key, bool) {
	k := events.Key{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return k, false
		}
		k.Name = string(msg.Runes)
		k.Rune = msg.Runes[0]
		return k, true
	case tea.KeySpace:
		k.Name = "space"
		k.Rune = ' '
		return k, true
	}

	name := tea.Key{Type: msg.Type}.String()
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		k.Ctrl = true
		name = rest
	}
	if rest, ok := strings.CutPrefix(name, "shift+"); ok {
		k.Shift = true
		name = rest
	}
	k.Name = name
	return k, false
}
