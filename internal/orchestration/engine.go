package orchestration

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/agbru/deckshow/internal/errors"
	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/mode"
	"github.com/agbru/deckshow/internal/scaler"
	"github.com/agbru/deckshow/internal/surface"
	"github.com/agbru/deckshow/internal/view"
)

// ResizePollInterval is the geometry poll period for embedded containers.
const ResizePollInterval = 10 * time.Millisecond

// Print layout constants.
const (
	PortraitSlideHeightRatio = 0.4
	PortraitSlideTop         = 20
	PortraitNotesGap         = 40
)

// Presenter layout fractions of the container.
const (
	presenterSlidesFraction  = 0.6
	presenterPreviewFraction = 0.4
)

// Region classes written by the engine.
const (
	ClassContainer   = "remark-container"
	ClassFolio       = "remark-container--folio"
	ClassSlidesArea  = "remark-slides-area"
	ClassPreviewArea = "remark-preview-area"
	ClassBackdrop    = "remark-backdrop"
	ClassHelp        = "remark-help"
	ClassPause       = "remark-pause"
	ClassPauseText   = "remark-pause__text"

	AttrTransition      = "data-remark-transition"
	AttrTransitionSpeed = "data-remark-transition-speed"
	AttrPosition        = "position"
)

var (
	rootHostEvents      = []events.Name{events.HashChange, events.Resize, events.KeyDown, events.KeyPress, events.Wheel, events.Message}
	rootContainerEvents = []events.Name{events.TouchStart, events.TouchMove, events.TouchEnd, events.Click, events.ContextMenu}

	embeddedHostEvents      = []events.Name{events.Resize}
	embeddedContainerEvents = []events.Name{events.KeyDown, events.KeyPress, events.Wheel, events.TouchStart, events.TouchMove, events.TouchEnd}
)

// NavigationIntent is the direction a tap resolves to.
type NavigationIntent int

const (
	Previous NavigationIntent = iota
	Next
)

func (n NavigationIntent) String() string {
	if n == Previous {
		return "previous"
	}
	return "next"
}

// IntentForTap resolves a tap at x against the container width: the left
// half navigates back, the right half forward.
func IntentForTap(x float64, container geometry.Box) NavigationIntent {
	if x < container.Half() {
		return Previous
	}
	return Next
}

// Areas groups the child regions the engine creates in its container.
type Areas struct {
	Slides   *surface.Region
	Preview  *surface.Region
	Notes    *surface.Region
	Backdrop *surface.Region
	Help     *surface.Region
	Pause    *surface.Region
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithFeatureProbe sets the full-screen capability probe.
func WithFeatureProbe(p FeatureProbe) Option {
	return func(e *Engine) { e.probe = p }
}

// WithPrinter sets the print collaborator.
func WithPrinter(p Printer) Option {
	return func(e *Engine) { e.printer = p }
}

// WithWidgets sets the widget factory.
func WithWidgets(w WidgetFactory) Option {
	return func(e *Engine) { e.widgets = w }
}

// WithScaler replaces the default scaler.
func WithScaler(s *scaler.Scaler) Option {
	return func(e *Engine) { e.scaler = s }
}

// WithRescaleObserver installs a hook called after every rescale pass.
func WithRescaleObserver(fn func()) Option {
	return func(e *Engine) { e.onRescale = fn }
}

// WithHelpText replaces the help overlay content.
func WithHelpText(text string) Option {
	return func(e *Engine) { e.helpText = text }
}

// Engine is the presentation orchestration engine. All methods and bus
// handlers run on the host's event goroutine.
type Engine struct {
	bus       *events.Bus
	container Container
	host      Host
	show      SlideShow

	probe     FeatureProbe
	printer   Printer
	widgets   WidgetFactory
	scaler    *scaler.Scaler
	logger    logging.Logger
	onRescale func()
	helpText  string

	embedded bool
	areas    Areas
	modes    *mode.Machine
	views    *view.Manager
	notes    *view.NotesView

	requestFullScreen Capability
	cancelFullScreen  Capability

	cancelPoll func()
}

// New binds an engine to container and performs the initial pass:
// configure container, configure children, compute dimensions, rescale,
// build slide views, register events, wire full screen.
func New(bus *events.Bus, container Container, host Host, show SlideShow, opts ...Option) (*Engine, error) {
	e := &Engine{
		bus:       bus,
		container: container,
		host:      host,
		show:      show,
		probe:     NullFeatureProbe{},
		printer:   NullPrinter{},
		widgets:   NullWidgetFactory{},
		logger:    logging.Nop(),
		helpText:  DefaultHelpText,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scaler == nil {
		e.scaler = scaler.New(scaler.WithLogger(e.logger))
	}
	if ratio := show.Options().Ratio; ratio != "" {
		if err := e.scaler.SetRatio(ratio); err != nil {
			return nil, apperrors.WrapError(err, "configuring ratio")
		}
	}
	e.modes = mode.NewMachine(e.scaleElements,
		mode.WithOnChange(show.UpdateState),
		mode.WithOrientationSink(e.printer.SetPageOrientation),
	)

	e.configureContainer()
	e.configureChildren()
	e.updateDimensions()
	if err := e.updateSlideViews(); err != nil {
		e.Close()
		return nil, fmt.Errorf("building slide views: %w", err)
	}
	e.registerEvents()
	e.handleFullScreen()

	e.logger.Info("presentation engine ready",
		logging.Bool("embedded", e.embedded),
		logging.Int("slides", e.views.Len()),
		logging.String("ratio", e.scaler.Ratio().String()),
	)
	return e, nil
}

// Close stops the geometry poll. The engine must not be used afterwards.
func (e *Engine) Close() {
	if e.cancelPoll != nil {
		e.cancelPoll()
		e.cancelPoll = nil
	}
}

// Embedded reports whether the container is a sub-region of the host.
func (e *Engine) Embedded() bool { return e.embedded }

// Modes returns the read-only mode state.
func (e *Engine) Modes() mode.State { return e.modes }

// Views returns a snapshot of the slide views.
func (e *Engine) Views() []*view.SlideView { return e.views.Views() }

// Areas returns the child regions.
func (e *Engine) Areas() Areas { return e.areas }

// Scaler returns the engine scaler.
func (e *Engine) Scaler() *scaler.Scaler { return e.scaler }

func (e *Engine) configureContainer() {
	region := e.container.Region()
	region.AddClass(ClassContainer)
	if e.show.Options().Folio {
		region.AddClass(ClassFolio)
	}

	emit := Forwarder(e.bus.Emit)
	if e.host.IsRoot(e.container) {
		e.host.Listen(rootHostEvents, emit)
		e.container.Listen(rootContainerEvents, emit)
	} else {
		e.embedded = true
		region.SetAttr(AttrPosition, "absolute")
		e.host.Listen(embeddedHostEvents, emit)
		e.container.Listen(embeddedContainerEvents, emit)
		e.startResizePoll()
	}

	e.bus.On(events.Tap, e.handleTap)
}

// startResizePoll emits resize whenever the container size changes. A
// running poll is replaced.
func (e *Engine) startResizePoll() {
	e.Close()
	last := e.container.ClientSize().Key()
	e.cancelPoll = e.host.Every(ResizePollInterval, func() {
		current := e.container.ClientSize().Key()
		if current == last {
			return
		}
		last = current
		if err := e.bus.Emit(events.Resize); err != nil {
			e.logger.Error("resize handlers failed", err)
		}
	})
}

func (e *Engine) configureChildren() {
	region := e.container.Region()
	opts := e.show.Options()

	e.areas.Slides = surface.NewRegion("slides-area", ClassSlidesArea)
	region.Append(e.areas.Slides)

	e.areas.Preview = surface.NewRegion("preview-area", ClassPreviewArea)
	region.Append(e.areas.Preview)

	e.views = view.NewManager(e.bus, e.show, e.scaler, e.areas.Slides, e.areas.Preview,
		view.WithLogger(e.logger))
	e.notes = view.NewNotesView(e.bus, e.views.Views)
	e.areas.Notes = e.notes.Area()
	region.Append(e.areas.Notes)

	e.areas.Backdrop = surface.NewRegion("backdrop", ClassBackdrop)
	region.Append(e.areas.Backdrop)

	e.areas.Help = surface.NewRegion("help", ClassHelp)
	e.areas.Help.SetContent(e.helpText)
	region.Append(e.areas.Help)

	e.areas.Pause = surface.NewRegion("pause", ClassPause)
	text := surface.NewRegion("pause-text", ClassPauseText)
	text.SetContent("Paused")
	e.areas.Pause.Append(text)
	region.Append(e.areas.Pause)

	e.bus.On(events.PropertiesChanged, e.handlePropertiesChanged)
	e.bus.On(events.Resize, func(events.Event) error {
		e.scaleElements()
		return nil
	})
	e.printer.OnPrint(e.handlePrint)

	if opts.ProgressBar {
		e.attachWidget(e.widgets.ProgressBar(e.bus, e.show))
	}
	if opts.ShowControls() {
		e.attachWidget(e.widgets.Controls(e.bus, e.show, opts))
	}
	if opts.ShowSlideNumber() {
		e.attachWidget(e.widgets.SlideNumber(e.bus, e.show))
	}

	e.setTransition()
}

func (e *Engine) attachWidget(w Widget) {
	if w == nil {
		return
	}
	e.areas.Slides.Append(w.Region())
}

func (e *Engine) setTransition() {
	opts := e.show.Options()
	if opts.Transition != "" {
		e.areas.Slides.SetAttr(AttrTransition, opts.Transition)
	}
	if opts.TransitionSpeed != "" {
		e.areas.Slides.SetAttr(AttrTransitionSpeed, opts.TransitionSpeed)
	}
}

func (e *Engine) updateDimensions() {
	dims := e.scaler.Dimensions()
	e.areas.Help.SetSize(dims.Width, dims.Height)
	e.scaleElements()
}

// updateSlideViews rebuilds the views and scales them before the current
// one is shown, so the preview copy is taken from a scaled view.
func (e *Engine) updateSlideViews() error {
	e.views.Rebuild()
	e.updateDimensions()
	err := e.views.ShowCurrent()
	e.scalePreview()
	return err
}

// scalePreview fits the preview copy taken by the last show into the
// preview area.
func (e *Engine) scalePreview() {
	if _, preview := e.layout(e.container.ClientSize()); !preview.Degenerate() {
		e.views.ScalePreview(preview)
	}
}

// layout splits the container between the slides and preview areas.
// Outside presenter mode the preview area gets nothing.
func (e *Engine) layout(size geometry.Box) (slides, preview geometry.Box) {
	if !e.modes.Active(mode.Presenter) {
		return size, geometry.Box{}
	}
	return size.Scale(presenterSlidesFraction), size.Scale(presenterPreviewFraction)
}

// scaleElements is the single rescale pass: mode classes, area sizes, every
// slide view, the preview copy and the help overlay.
func (e *Engine) scaleElements() {
	if e.views == nil {
		return
	}
	e.syncModeClasses()

	size := e.container.ClientSize()
	slides, preview := e.layout(size)
	e.areas.Slides.SetSize(slides.Width, slides.Height)
	e.areas.Preview.SetSize(preview.Width, preview.Height)

	e.views.Scale(slides)
	e.scalePreview()
	e.scaler.ScaleToFit(e.areas.Help, size)

	if e.onRescale != nil {
		e.onRescale()
	}
}

func (e *Engine) syncModeClasses() {
	region := e.container.Region()
	for m, on := range e.modes.Snapshot() {
		region.SetClass(m.Class(), on)
	}
}

func (e *Engine) registerEvents() {
	e.bus.On(events.SlidesChanged, func(events.Event) error {
		err := e.updateSlideViews()
		e.setTransition()
		return err
	})
	e.bus.On(events.HideSlide, func(ev events.Event) error {
		i, err := slideIndex(ev)
		if err != nil {
			return err
		}
		return e.views.Hide(i)
	})
	e.bus.On(events.ShowSlide, func(ev events.Event) error {
		i, err := slideIndex(ev)
		if err != nil {
			return err
		}
		err = e.views.Show(i)
		e.scalePreview()
		return err
	})
	e.bus.On(events.ForcePresenterMode, func(events.Event) error {
		e.modes.ForcePresenter()
		return nil
	})
	e.bus.On(events.TogglePresenterMode, func(events.Event) error {
		e.modes.TogglePresenter()
		return e.bus.Emit(events.ToggledPresenter, e.show.CurrentSlideIndex()+1)
	})
	e.bus.On(events.ToggleHelp, func(ev events.Event) error {
		e.toggleMode(mode.Help, ev)
		return nil
	})
	e.bus.On(events.ToggleBlackout, func(ev events.Event) error {
		e.toggleMode(mode.Blackout, ev)
		return nil
	})
	e.bus.On(events.ToggleMirrored, func(ev events.Event) error {
		e.toggleMode(mode.Mirrored, ev)
		return nil
	})
	e.bus.On(events.TogglePause, func(ev events.Event) error {
		e.toggleMode(mode.Paused, ev)
		return nil
	})
	e.bus.On(events.HideOverlay, func(events.Event) error {
		e.modes.HideOverlay()
		return nil
	})
}

// toggleMode sets m to the explicit boolean payload when present and flips
// it otherwise.
func (e *Engine) toggleMode(m mode.Mode, ev events.Event) {
	if on, ok := ev.Bool(0); ok {
		e.modes.Set(m, on)
		return
	}
	e.modes.Toggle(m)
}

func slideIndex(ev events.Event) (int, error) {
	i, ok := ev.Int(0)
	if !ok {
		return 0, fmt.Errorf("%s: missing slide index", ev.Name)
	}
	return i, nil
}

func (e *Engine) handleTap(ev events.Event) error {
	x, ok := ev.Float(0)
	if !ok {
		return errors.New("tap: missing x position")
	}
	if IntentForTap(x, e.container.ClientSize()) == Previous {
		return e.show.GoToPreviousSlide()
	}
	return e.show.GoToNextSlide()
}

func (e *Engine) handlePropertiesChanged(ev events.Event) error {
	if len(ev.Args) == 0 {
		return nil
	}
	changes, ok := ev.Args[0].(map[string]string)
	if !ok {
		return fmt.Errorf("propertiesChanged: unexpected payload %T", ev.Args[0])
	}
	if ratio, ok := changes["ratio"]; ok {
		if err := e.scaler.SetRatio(ratio); err != nil {
			e.logger.Warn("ignoring ratio change", logging.String("ratio", ratio), logging.Err(err))
		}
		e.updateDimensions()
	}
	_, transition := changes["transition"]
	_, speed := changes["transitionSpeed"]
	if transition || speed {
		e.setTransition()
	}
	return nil
}

// handlePrint lays every view out on the reported page without touching the
// screen geometry. Portrait pages keep room below each slide for notes.
func (e *Engine) handlePrint(p PrintEvent) {
	slideHeight := p.PageHeight
	if p.Portrait {
		slideHeight = p.PageHeight * PortraitSlideHeightRatio
	}
	page := geometry.Box{Width: p.PageWidth, Height: slideHeight}
	for _, v := range e.views.Views() {
		v.Scale(page)
		if p.Portrait {
			v.Scalable().SetTop(PortraitSlideTop)
			v.Notes().SetTop(slideHeight + PortraitNotesGap)
		}
	}
	e.logger.Debug("print layout applied",
		logging.Float64("page_width", p.PageWidth),
		logging.Float64("slide_height", slideHeight),
		logging.Bool("portrait", p.Portrait),
	)
}

// handleFullScreen resolves the capabilities once and subscribes the toggle.
func (e *Engine) handleFullScreen() {
	e.requestFullScreen = e.probe.RequestFullScreen(e.container)
	e.cancelFullScreen = e.probe.CancelFullScreen()
	if e.requestFullScreen == nil && e.cancelFullScreen == nil {
		e.logger.Warn("full screen toggle disabled", logging.Err(apperrors.ErrMissingFullScreenCapability))
	}

	e.bus.On(events.ToggleFullScreen, func(events.Event) error {
		var err error
		switch {
		case e.probe.FullScreenElement() == nil && e.requestFullScreen != nil:
			err = e.requestFullScreen()
		case e.cancelFullScreen != nil:
			err = e.cancelFullScreen()
		}
		if err != nil {
			e.logger.Warn("full screen toggle failed", logging.Err(err))
		}
		e.scaleElements()
		return nil
	})
}
