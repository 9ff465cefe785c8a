package orchestration

// Options are the deck options the engine reads at construction.
type Options struct {
	Ratio              string
	ProgressBar        bool
	Controls           bool
	AllowControl       bool
	ControlsLayout     string
	ControlsBackArrows bool
	ControlsTutorial   bool
	SlideNumber        bool
	Folio              bool
	Transition         string
	TransitionSpeed    string
}

// DefaultOptions returns the options used when a deck sets none.
func DefaultOptions() Options {
	return Options{
		Ratio:          "4:3",
		Controls:       true,
		AllowControl:   true,
		ControlsLayout: "dots",
		SlideNumber:    true,
	}
}

// ShowControls reports whether the controls widget is built.
func (o Options) ShowControls() bool { return o.Controls && o.AllowControl }

// ShowSlideNumber reports whether the slide number widget is built.
func (o Options) ShowSlideNumber() bool { return o.SlideNumber && !o.Folio }
