// Package mode holds the presentation mode state machine: the set of
// independent boolean display modes and the page orientation that follows
// presenter mode.
package mode

import (
	"sort"

	"github.com/agbru/deckshow/internal/geometry"
)

// Mode names one display mode.
type Mode string

const (
	Presenter Mode = "presenter"
	Blackout  Mode = "blackout"
	Mirrored  Mode = "mirrored"
	Paused    Mode = "pause"
	Help      Mode = "help"
)

// All lists every mode in a stable order.
var All = []Mode{Presenter, Blackout, Mirrored, Paused, Help}

// ClassPrefix and ClassSuffix frame the container class of a mode.
const (
	ClassPrefix = "remark-container--"
	ClassSuffix = "-mode"
)

// Class returns the container class that marks m as active.
func (m Mode) Class() string { return ClassPrefix + string(m) + ClassSuffix }

// Set maps every mode to its flag. Flags are independent.
type Set map[Mode]bool

// NewSet returns a set with every mode off.
func NewSet() Set {
	s := make(Set, len(All))
	for _, m := range All {
		s[m] = false
	}
	return s
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Classes projects the active modes onto container classes, sorted.
func (s Set) Classes() []string {
	var out []string
	for m, on := range s {
		if on {
			out = append(out, m.Class())
		}
	}
	sort.Strings(out)
	return out
}

// State is the read-only view of the machine handed to the view and
// scaling side.
type State interface {
	Active(m Mode) bool
	Orientation() geometry.Orientation
	Snapshot() Set
	Classes() []string
}

// Option configures a Machine.
type Option func(*Machine)

// WithOnChange installs a hook called for every mode written by Toggle,
// Set, HideOverlay or ForcePresenter.
func WithOnChange(fn func(m Mode, on bool)) Option {
	return func(mc *Machine) { mc.onChange = fn }
}

// WithOrientationSink installs a hook receiving the page orientation each
// time presenter mode is written.
func WithOrientationSink(fn func(geometry.Orientation)) Option {
	return func(mc *Machine) { mc.orientationSink = fn }
}

// Machine owns the mode set. Every transition triggers exactly one call to
// the rescale function.
type Machine struct {
	set             Set
	orientation     geometry.Orientation
	rescale         func()
	onChange        func(Mode, bool)
	orientationSink func(geometry.Orientation)
}

// NewMachine creates a machine with every mode off and landscape orientation.
func NewMachine(rescale func(), opts ...Option) *Machine {
	if rescale == nil {
		rescale = func() {}
	}
	mc := &Machine{
		set:         NewSet(),
		orientation: geometry.Landscape,
		rescale:     rescale,
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc
}

// Toggle flips m.
func (mc *Machine) Toggle(m Mode) {
	mc.write(m, !mc.set[m])
	mc.rescale()
}

// Set writes an explicit state for m.
func (mc *Machine) Set(m Mode, on bool) {
	mc.write(m, on)
	mc.rescale()
}

// TogglePresenter always flips presenter mode.
func (mc *Machine) TogglePresenter() { mc.Toggle(Presenter) }

// ForcePresenter turns presenter mode on. It returns false without touching
// anything when presenter mode is already active.
func (mc *Machine) ForcePresenter() bool {
	if mc.set[Presenter] {
		return false
	}
	mc.Set(Presenter, true)
	return true
}

// HideOverlay clears blackout and help in a single transition.
func (mc *Machine) HideOverlay() {
	mc.write(Blackout, false)
	mc.write(Help, false)
	mc.rescale()
}

// Active reports whether m is on.
func (mc *Machine) Active(m Mode) bool { return mc.set[m] }

// Orientation returns the page orientation.
func (mc *Machine) Orientation() geometry.Orientation { return mc.orientation }

// Snapshot returns a copy of the mode set.
func (mc *Machine) Snapshot() Set { return mc.set.Clone() }

// Classes returns the container classes of the active modes.
func (mc *Machine) Classes() []string { return mc.set.Classes() }

func (mc *Machine) write(m Mode, on bool) {
	mc.set[m] = on
	if m == Presenter {
		mc.orientation = geometry.Landscape
		if on {
			mc.orientation = geometry.Portrait
		}
		if mc.orientationSink != nil {
			mc.orientationSink(mc.orientation)
		}
	}
	if mc.onChange != nil {
		mc.onChange(m, on)
	}
}

var _ State = (*Machine)(nil)
