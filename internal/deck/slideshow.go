package deck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/mode"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/view"
)

// SlideShow owns the deck. It is driven from the bus goroutine.
type SlideShow struct {
	bus     *events.Bus
	slides  []Slide
	current int
	opts    orchestration.Options
	state   map[mode.Mode]bool
	logger  logging.Logger
}

// Option configures a SlideShow.
type Option func(*SlideShow)

// WithOptions sets the initial deck options.
func WithOptions(o orchestration.Options) Option {
	return func(s *SlideShow) { s.opts = o }
}

// WithLogger sets the deck logger.
func WithLogger(l logging.Logger) Option {
	return func(s *SlideShow) { s.logger = l }
}

// New creates an empty deck subscribed to the navigation commands on bus.
func New(bus *events.Bus, opts ...Option) *SlideShow {
	s := &SlideShow{
		bus:     bus,
		current: -1,
		opts:    orchestration.DefaultOptions(),
		state:   make(map[mode.Mode]bool),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.subscribe()
	return s
}

func (s *SlideShow) subscribe() {
	s.bus.On(events.GoToSlide, func(ev events.Event) error {
		if len(ev.Args) == 0 {
			return errors.New("goToSlide: missing slide reference")
		}
		return s.GoToSlide(fmt.Sprint(ev.Args[0]))
	})
	s.bus.On(events.GoToSlideNumber, func(ev events.Event) error {
		if len(ev.Args) == 0 {
			return errors.New("goToSlideNumber: missing slide number")
		}
		return s.GoToSlideNumber(fmt.Sprint(ev.Args[0]))
	})
	s.bus.On(events.GoToPreviousSlide, func(events.Event) error { return s.GoToPreviousSlide() })
	s.bus.On(events.GoToNextSlide, func(events.Event) error { return s.GoToNextSlide() })
	s.bus.On(events.GoToFirstSlide, func(events.Event) error { return s.GoToFirstSlide() })
	s.bus.On(events.GoToLastSlide, func(events.Event) error { return s.GoToLastSlide() })
}

// Load replaces the slide list with the slides parsed from r and emits
// slidesChanged. The current index is clamped to the new list.
func (s *SlideShow) Load(r io.Reader) error {
	slides, err := Parse(r)
	if err != nil {
		return fmt.Errorf("parsing deck: %w", err)
	}
	return s.SetSlides(slides)
}

// LoadFile loads the deck from path.
func (s *SlideShow) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Load(f)
}

// SetSlides replaces the slide list and emits slidesChanged.
func (s *SlideShow) SetSlides(slides []Slide) error {
	s.slides = slides
	switch {
	case len(slides) == 0:
		s.current = -1
	case s.current >= len(slides):
		s.current = len(slides) - 1
	}
	s.logger.Info("deck loaded", logging.Int("slides", len(slides)))
	return s.bus.Emit(events.SlidesChanged)
}

// Options returns the deck options.
func (s *SlideShow) Options() orchestration.Options { return s.opts }

// SetOptions applies changed options by name and emits propertiesChanged
// with the accepted changes.
func (s *SlideShow) SetOptions(changes map[string]string) error {
	accepted := make(map[string]string, len(changes))
	for k, v := range changes {
		switch k {
		case "ratio":
			s.opts.Ratio = v
		case "transition":
			s.opts.Transition = v
		case "transitionSpeed":
			s.opts.TransitionSpeed = v
		case "controlsLayout":
			s.opts.ControlsLayout = v
		default:
			s.logger.Warn("ignoring unknown deck option", logging.String("option", k))
			continue
		}
		accepted[k] = v
	}
	if len(accepted) == 0 {
		return nil
	}
	return s.bus.Emit(events.PropertiesChanged, accepted)
}

// Slides returns the slides as view handles.
func (s *SlideShow) Slides() []view.Slide {
	out := make([]view.Slide, len(s.slides))
	for i, sl := range s.slides {
		out[i] = sl
	}
	return out
}

// Slide returns slide i.
func (s *SlideShow) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(s.slides) {
		return Slide{}, false
	}
	return s.slides[i], true
}

// Len returns the number of slides.
func (s *SlideShow) Len() int { return len(s.slides) }

// CurrentSlideIndex returns the shown slide, or -1.
func (s *SlideShow) CurrentSlideIndex() int { return s.current }

// UpdateState records a display mode change.
func (s *SlideShow) UpdateState(m mode.Mode, on bool) { s.state[m] = on }

// State reports the last recorded state of a display mode.
func (s *SlideShow) State(m mode.Mode) bool { return s.state[m] }

// GoToSlide navigates to a 1-based slide number or a slide name.
func (s *SlideShow) GoToSlide(ref string) error {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	if ref == "" {
		return s.goTo(0)
	}
	for _, sl := range s.slides {
		if sl.Name() == ref {
			return s.goTo(sl.index)
		}
	}
	return s.GoToSlideNumber(ref)
}

// GoToSlideNumber navigates to a 1-based slide number. Unknown numbers are
// ignored.
func (s *SlideShow) GoToSlideNumber(number string) error {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		s.logger.Debug("ignoring slide reference", logging.String("ref", number))
		return nil
	}
	return s.goTo(n - 1)
}

// GoToPreviousSlide navigates one slide back.
func (s *SlideShow) GoToPreviousSlide() error { return s.goTo(s.current - 1) }

// GoToNextSlide navigates one slide forward.
func (s *SlideShow) GoToNextSlide() error { return s.goTo(s.current + 1) }

// GoToFirstSlide navigates to the first slide.
func (s *SlideShow) GoToFirstSlide() error { return s.goTo(0) }

// GoToLastSlide navigates to the last slide.
func (s *SlideShow) GoToLastSlide() error { return s.goTo(len(s.slides) - 1) }

// goTo hides the current slide and shows slide i. Out of range targets and
// the current slide are ignored.
func (s *SlideShow) goTo(i int) error {
	if i == s.current || i < 0 || i >= len(s.slides) {
		return nil
	}
	var errs []error
	if s.current != -1 {
		errs = append(errs, s.bus.Emit(events.HideSlide, s.current))
	}
	s.current = i
	errs = append(errs, s.bus.Emit(events.ShowSlide, i))
	return errors.Join(errs...)
}

var _ orchestration.SlideShow = (*SlideShow)(nil)
