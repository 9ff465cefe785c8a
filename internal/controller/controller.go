// Package controller is the default command mapping: it translates raw
// host events (keys, touches, wheel, remote messages, location changes)
// into the semantic commands the deck and the engine consume.
package controller

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/location"
	"github.com/agbru/deckshow/internal/logging"
)

// TapThreshold is the largest horizontal travel, in surface units, that
// still counts as a tap rather than a swipe.
const TapThreshold = 10

var gotoSlideMessage = regexp.MustCompile(`^gotoSlide:(\d+)$`)

// remoteCommands are the commands a remote message may trigger verbatim.
var remoteCommands = map[string]events.Name{
	string(events.ToggleBlackout):      events.ToggleBlackout,
	string(events.ToggleMirrored):      events.ToggleMirrored,
	string(events.TogglePresenterMode): events.TogglePresenterMode,
	string(events.TogglePause):         events.TogglePause,
	string(events.ToggleHelp):          events.ToggleHelp,
	string(events.ToggleFullScreen):    events.ToggleFullScreen,
	string(events.HideOverlay):         events.HideOverlay,
	string(events.GoToNextSlide):       events.GoToNextSlide,
	string(events.GoToPreviousSlide):   events.GoToPreviousSlide,
	string(events.GoToFirstSlide):      events.GoToFirstSlide,
	string(events.GoToLastSlide):       events.GoToLastSlide,
}

// Config selects which inputs the controller maps.
type Config struct {
	// Embedded disables location driven navigation.
	Embedded bool
	// AllowControl enables keyboard, touch, wheel and click mapping.
	AllowControl bool
	// Click maps click to next slide and contextmenu to previous slide.
	Click bool
	// Scroll maps the wheel to slide navigation.
	Scroll bool
	// Touch maps touch gestures to swipes and taps.
	Touch bool
}

// DefaultConfig enables every input except click navigation.
func DefaultConfig() Config {
	return Config{AllowControl: true, Scroll: true, Touch: true}
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeyMap replaces the default bindings.
func WithKeyMap(km KeyMap) Option {
	return func(c *Controller) { c.keys = km }
}

// WithLogger sets the controller logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller maps raw events to commands.
type Controller struct {
	bus    *events.Bus
	loc    *location.Store
	cfg    Config
	keys   KeyMap
	logger logging.Logger

	digits      strings.Builder
	touchStartX float64
	touchEndX   float64
}

// New subscribes the controller to the raw events on bus.
func New(bus *events.Bus, loc *location.Store, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		bus:    bus,
		loc:    loc,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	bus.On(events.HashChange, c.handleHashChange)
	bus.On(events.Message, c.handleMessage)
	if cfg.AllowControl {
		bus.On(events.KeyDown, c.handleKeyDown)
		bus.On(events.KeyPress, c.handleKeyPress)
		if cfg.Touch {
			bus.On(events.TouchStart, c.handleTouchStart)
			bus.On(events.TouchMove, c.handleTouchMove)
			bus.On(events.TouchEnd, c.handleTouchEnd)
		}
		if cfg.Scroll {
			bus.On(events.Wheel, c.handleWheel)
		}
		if cfg.Click {
			bus.On(events.Click, func(events.Event) error { return c.bus.Emit(events.GoToNextSlide) })
			bus.On(events.ContextMenu, func(events.Event) error { return c.bus.Emit(events.GoToPreviousSlide) })
		}
	}
	return c
}

// KeyMap returns the active bindings.
func (c *Controller) KeyMap() KeyMap { return c.keys }

// Start performs the initial navigation: the first slide when embedded,
// the slide referenced by the location otherwise.
func (c *Controller) Start() error {
	if c.cfg.Embedded {
		return c.bus.Emit(events.GoToSlide, 1)
	}
	return c.bus.Emit(events.GoToSlide, c.loc.Ref())
}

func (c *Controller) handleHashChange(events.Event) error {
	if c.cfg.Embedded {
		return nil
	}
	return c.bus.Emit(events.GoToSlide, c.loc.Ref())
}

func keyPayload(ev events.Event) (events.Key, error) {
	if len(ev.Args) == 0 {
		return events.Key{}, errors.New(string(ev.Name) + ": missing key")
	}
	k, ok := ev.Args[0].(events.Key)
	if !ok {
		return events.Key{}, errors.New(string(ev.Name) + ": unexpected payload")
	}
	return k, nil
}

func (c *Controller) handleKeyDown(ev events.Event) error {
	k, err := keyPayload(ev)
	if err != nil {
		return err
	}
	switch {
	case key.Matches(k, c.keys.Previous):
		return c.bus.Emit(events.GoToPreviousSlide)
	case key.Matches(k, c.keys.Next):
		return c.bus.Emit(events.GoToNextSlide)
	case key.Matches(k, c.keys.First):
		return c.bus.Emit(events.GoToFirstSlide)
	case key.Matches(k, c.keys.Last):
		return c.bus.Emit(events.GoToLastSlide)
	case key.Matches(k, c.keys.HideOverlay):
		return c.bus.Emit(events.HideOverlay)
	case key.Matches(k, c.keys.GoTo):
		if c.digits.Len() == 0 {
			return nil
		}
		number := c.digits.String()
		c.digits.Reset()
		return c.bus.Emit(events.GoToSlideNumber, number)
	}
	return nil
}

func (c *Controller) handleKeyPress(ev events.Event) error {
	k, err := keyPayload(ev)
	if err != nil {
		return err
	}
	if k.Alt || k.Ctrl {
		return nil
	}
	if unicode.IsDigit(k.Rune) {
		c.digits.WriteRune(k.Rune)
		return nil
	}
	switch {
	case key.Matches(k, c.keys.Blackout):
		return c.bus.Emit(events.ToggleBlackout)
	case key.Matches(k, c.keys.Mirrored):
		return c.bus.Emit(events.ToggleMirrored)
	case key.Matches(k, c.keys.Presenter):
		return c.bus.Emit(events.TogglePresenterMode)
	case key.Matches(k, c.keys.FullScreen):
		return c.bus.Emit(events.ToggleFullScreen)
	case key.Matches(k, c.keys.Help):
		return c.bus.Emit(events.ToggleHelp)
	case key.Matches(k, c.keys.Pause):
		return c.bus.Emit(events.TogglePause)
	}
	return nil
}

func pointerX(ev events.Event) (float64, bool) {
	if len(ev.Args) == 0 {
		return 0, false
	}
	switch p := ev.Args[0].(type) {
	case events.Pointer:
		return p.X, true
	case float64:
		return p, true
	}
	return 0, false
}

func (c *Controller) handleTouchStart(ev events.Event) error {
	if x, ok := pointerX(ev); ok {
		c.touchStartX, c.touchEndX = x, x
	}
	return nil
}

func (c *Controller) handleTouchMove(ev events.Event) error {
	if x, ok := pointerX(ev); ok {
		c.touchEndX = x
	}
	return nil
}

func (c *Controller) handleTouchEnd(ev events.Event) error {
	if x, ok := pointerX(ev); ok {
		c.touchEndX = x
	}
	delta := c.touchStartX - c.touchEndX
	switch {
	case math.Abs(delta) < TapThreshold:
		return c.bus.Emit(events.Tap, c.touchEndX)
	case delta > 0:
		return c.bus.Emit(events.GoToNextSlide)
	default:
		return c.bus.Emit(events.GoToPreviousSlide)
	}
}

func (c *Controller) handleWheel(ev events.Event) error {
	if len(ev.Args) == 0 {
		return nil
	}
	s, ok := ev.Args[0].(events.Scroll)
	if !ok {
		return nil
	}
	switch {
	case s.DeltaY > 0:
		return c.bus.Emit(events.GoToNextSlide)
	case s.DeltaY < 0:
		return c.bus.Emit(events.GoToPreviousSlide)
	}
	return nil
}

func (c *Controller) handleMessage(ev events.Event) error {
	if len(ev.Args) == 0 {
		return nil
	}
	var data string
	switch m := ev.Args[0].(type) {
	case events.RemoteMessage:
		data = m.Data
	case string:
		data = m
	default:
		return nil
	}
	data = strings.TrimSpace(data)

	if m := gotoSlideMessage.FindStringSubmatch(data); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return err
		}
		return c.bus.Emit(events.GoToSlide, n)
	}
	if name, ok := remoteCommands[data]; ok {
		return c.bus.Emit(name)
	}
	c.logger.Debug("ignoring remote message", logging.String("data", data))
	return nil
}
