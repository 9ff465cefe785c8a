//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"time"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/mode"
	"github.com/agbru/deckshow/internal/surface"
	"github.com/agbru/deckshow/internal/view"
)

// Forwarder publishes a raw host event. The engine passes the bus Emit
// method so hosts never see the bus itself.
type Forwarder func(name events.Name, args ...any) error

// Container is the rendering surface the engine is bound to: either the
// host's root surface or an embedded sub-region of it.
type Container interface {
	// Region returns the root region the engine attaches its children to.
	Region() *surface.Region
	// ClientSize returns the live inner size of the container.
	ClientSize() geometry.Box
	// Listen forwards the named events raised on the container itself.
	Listen(names []events.Name, forward Forwarder)
}

// Host is the environment the container lives in.
type Host interface {
	// IsRoot reports whether c is the host's root surface.
	IsRoot(c Container) bool
	// Listen forwards the named events raised at host scope.
	Listen(names []events.Name, forward Forwarder)
	// Every calls fn on the engine goroutine at the given interval until
	// the returned cancel function is called.
	Every(interval time.Duration, fn func()) (cancel func())
}

// Capability is one resolved full-screen operation.
type Capability func() error

// FeatureProbe resolves host capabilities whose naming varies between
// hosts. A nil Capability means the host lacks it.
type FeatureProbe interface {
	RequestFullScreen(c Container) Capability
	CancelFullScreen() Capability
	// FullScreenElement returns the container currently in full screen, or nil.
	FullScreenElement() Container
}

// PrintEvent describes the page a print pass lays slides out on.
type PrintEvent struct {
	PageWidth  float64
	PageHeight float64
	Portrait   bool
}

// Printer notifies the engine of print passes and receives the page
// orientation that follows presenter mode.
type Printer interface {
	OnPrint(fn func(PrintEvent))
	SetPageOrientation(o geometry.Orientation)
}

// SlideShow is the deck authority. It owns the slide list, the options and
// the current index.
type SlideShow interface {
	Options() Options
	Slides() []view.Slide
	CurrentSlideIndex() int
	GoToPreviousSlide() error
	GoToNextSlide() error
	UpdateState(m mode.Mode, on bool)
}

// Widget is a piece of chrome attached to the slides area.
type Widget interface {
	Region() *surface.Region
}

// WidgetFactory builds the optional widgets. A nil Widget is skipped.
type WidgetFactory interface {
	ProgressBar(bus *events.Bus, show SlideShow) Widget
	Controls(bus *events.Bus, show SlideShow, opts Options) Widget
	SlideNumber(bus *events.Bus, show SlideShow) Widget
}

// NullFeatureProbe reports no full-screen capability at all.
type NullFeatureProbe struct{}

func (NullFeatureProbe) RequestFullScreen(Container) Capability { return nil }
func (NullFeatureProbe) CancelFullScreen() Capability { return nil }
func (NullFeatureProbe) FullScreenElement() Container { return nil }

// NullPrinter never prints and ignores orientation changes.
type NullPrinter struct{}

func (NullPrinter) OnPrint(func(PrintEvent)) {}
func (NullPrinter) SetPageOrientation(geometry.Orientation) {}

// NullWidgetFactory builds no widgets.
type NullWidgetFactory struct{}

func (NullWidgetFactory) ProgressBar(*events.Bus, SlideShow) Widget { return nil }
func (NullWidgetFactory) Controls(*events.Bus, SlideShow, Options) Widget { return nil }
func (NullWidgetFactory) SlideNumber(*events.Bus, SlideShow) Widget { return nil }

// Verify interface compliance.
var (
	_ FeatureProbe  = NullFeatureProbe{}
	_ Printer       = NullPrinter{}
	_ WidgetFactory = NullWidgetFactory{}
)
