package events

// Key is the payload of keydown and keypress. Name uses the terminal key
// vocabulary ("left", "pgup", "enter", "space", "a").
type Key struct {
	Name  string
	Rune  rune
	Alt   bool
	Shift bool
	Ctrl  bool
}

// String returns the key with its modifiers, e.g. "alt+left" or
// "shift+space", so a Key can be matched against key bindings.
func (k Key) String() string {
	s := k.Name
	if k.Shift {
		s = "shift+" + s
	}
	if k.Alt {
		s = "alt+" + s
	}
	if k.Ctrl {
		s = "ctrl+" + s
	}
	return s
}

// Pointer is the payload of touch and click events.
type Pointer struct {
	X float64
	Y float64
}

// Scroll is the payload of wheel events. Positive DeltaY scrolls down.
type Scroll struct {
	DeltaY float64
}

// RemoteMessage is the payload of message events.
type RemoteMessage struct {
	Data   string
	Origin string
}
