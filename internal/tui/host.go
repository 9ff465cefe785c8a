package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/surface"
)

// One terminal cell in engine units. The engine lays slides out in units;
// the renderer divides by these to get cells.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// headerRows is the status line above the panes, hidden in full screen.
const headerRows = 1

type listeners map[events.Name][]orchestration.Forwarder

func (l listeners) add(names []events.Name, forward orchestration.Forwarder) {
	for _, n := range names {
		l[n] = append(l[n], forward)
	}
}

func (l listeners) forward(name events.Name, args []any) error {
	var errs []error
	for _, f := range l[name] {
		errs = append(errs, f(name, args...))
	}
	return errors.Join(errs...)
}

// Pane is a rectangle of the terminal that a deck can be bound to. It
// implements orchestration.Container.
type Pane struct {
	region    *surface.Region
	listeners listeners
	x, y      int
	w, h      int
}

func newPane(id string) *Pane {
	return &Pane{region: surface.NewRegion(id), listeners: listeners{}}
}

// Region returns the pane's root region.
func (p *Pane) Region() *surface.Region { return p.region }

// ClientSize returns the pane size in engine units.
func (p *Pane) ClientSize() geometry.Box {
	return geometry.Box{Width: float64(p.w) * CellWidth, Height: float64(p.h) * CellHeight}
}

// Listen forwards the named events raised inside the pane.
func (p *Pane) Listen(names []events.Name, forward orchestration.Forwarder) {
	p.listeners.add(names, forward)
}

// Bounds returns the pane rectangle in cells.
func (p *Pane) Bounds() (x, y, w, h int) { return p.x, p.y, p.w, p.h }

func (p *Pane) contains(col, row int) bool {
	return col >= p.x && col < p.x+p.w && row >= p.y && row < p.y+p.h
}

func (p *Pane) pointer(col, row int) events.Pointer {
	return events.Pointer{
		X: float64(col-p.x) * CellWidth,
		Y: float64(row-p.y) * CellHeight,
	}
}

type timer struct {
	interval time.Duration
	fn       func()
}

// timerMsg fires one Every registration.
type timerMsg struct{ id int }

// Host is the terminal the deck runs in. The deck is bound either to the
// whole window (root) or to the left pane of a split layout (embedded). It
// implements orchestration.Host and orchestration.FeatureProbe; every method
// runs on the bubbletea update goroutine.
type Host struct {
	cols, rows   int
	embedPercent int
	root         *Pane
	deck         *Pane
	fullScreen   *Pane
	listeners    listeners
	timers       map[int]timer
	nextTimer    int
	pending      []tea.Cmd
	pressed      bool
	logger       logging.Logger
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithEmbedded binds the deck to a left pane taking percent of the width.
func WithEmbedded(percent int) HostOption {
	return func(h *Host) { h.embedPercent = percent }
}

// WithLogger sets the host logger.
func WithLogger(l logging.Logger) HostOption {
	return func(h *Host) { h.logger = l }
}

// NewHost creates a host for a terminal of cols by rows cells.
func NewHost(cols, rows int, opts ...HostOption) *Host {
	h := &Host{
		root:      newPane("root"),
		listeners: listeners{},
		timers:    map[int]timer{},
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.deck = h.root
	if h.embedPercent > 0 && h.embedPercent < 100 {
		h.deck = newPane("embedded")
		h.root.region.Append(h.deck.region)
	}
	h.Resize(cols, rows)
	return h
}

// Deck returns the container the engine binds to.
func (h *Host) Deck() *Pane { return h.deck }

// Root returns the window pane.
func (h *Host) Root() *Pane { return h.root }

// Embedded reports whether the deck pane is a sub-region of the window.
func (h *Host) Embedded() bool { return h.deck != h.root }

// Size returns the terminal size in cells.
func (h *Host) Size() (cols, rows int) { return h.cols, h.rows }

// IsRoot reports whether c is the window pane.
func (h *Host) IsRoot(c orchestration.Container) bool {
	p, ok := c.(*Pane)
	return ok && p == h.root
}

// Listen forwards the named events raised at window scope.
func (h *Host) Listen(names []events.Name, forward orchestration.Forwarder) {
	h.listeners.add(names, forward)
}

// Every schedules fn on the update goroutine until cancel is called.
func (h *Host) Every(interval time.Duration, fn func()) (cancel func()) {
	id := h.nextTimer
	h.nextTimer++
	h.timers[id] = timer{interval: interval, fn: fn}
	h.pending = append(h.pending, tickTimer(id, interval))
	return func() { delete(h.timers, id) }
}

func tickTimer(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return timerMsg{id: id} })
}

func (h *Host) fire(id int) {
	t, ok := h.timers[id]
	if !ok {
		return
	}
	t.fn()
	if _, still := h.timers[id]; still {
		h.pending = append(h.pending, tickTimer(id, t.interval))
	}
}

// drain returns the commands scheduled since the last call.
func (h *Host) drain() []tea.Cmd {
	cmds := h.pending
	h.pending = nil
	return cmds
}

// Resize records a new terminal size and lays the panes out again.
func (h *Host) Resize(cols, rows int) {
	h.cols, h.rows = max(cols, 0), max(rows, 0)
	h.layout()
}

func (h *Host) layout() {
	top := headerRows
	if h.fullScreen != nil {
		top = 0
	}
	height := max(h.rows-top, 0)

	h.root.x, h.root.y, h.root.w, h.root.h = 0, top, h.cols, height
	if h.deck == h.root {
		return
	}
	width := h.cols * h.embedPercent / 100
	if h.fullScreen == h.deck {
		width = h.cols
	}
	h.deck.x, h.deck.y, h.deck.w, h.deck.h = 0, top, width, height
}

// dispatch raises name at window scope and, when p is non-nil, on p.
func (h *Host) dispatch(name events.Name, p *Pane, args ...any) {
	err := h.listeners.forward(name, args)
	if p != nil {
		err = errors.Join(err, p.listeners.forward(name, args))
	}
	if err != nil {
		h.logger.Warn("event handlers failed", logging.String("event", string(name)), logging.Err(err))
	}
}

// HandleResize applies a window size change.
func (h *Host) HandleResize(cols, rows int) {
	h.Resize(cols, rows)
	h.dispatch(events.Resize, nil)
}

// HandleKey raises keydown for every key and keypress for printable ones.
func (h *Host) HandleKey(msg tea.KeyMsg) {
	k, printable := keyFromMsg(msg)
	h.dispatch(events.KeyDown, h.deck, k)
	if printable {
		h.dispatch(events.KeyPress, h.deck, k)
	}
}

// HandleMouse maps the wheel to wheel events, the left button to a touch
// sequence ending in click, and the right button to contextmenu.
func (h *Host) HandleMouse(msg tea.MouseMsg) {
	var target *Pane
	if h.deck.contains(msg.X, msg.Y) {
		target = h.deck
	}
	pt := h.deck.pointer(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		h.dispatch(events.Wheel, target, events.Scroll{DeltaY: -1})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		h.dispatch(events.Wheel, target, events.Scroll{DeltaY: 1})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		h.pressed = true
		h.dispatch(events.TouchStart, target, pt)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		h.dispatch(events.ContextMenu, target, pt)
	case msg.Action == tea.MouseActionMotion && h.pressed:
		h.dispatch(events.TouchMove, target, pt)
	case msg.Action == tea.MouseActionRelease && h.pressed:
		h.pressed = false
		h.dispatch(events.TouchEnd, target, pt)
		h.dispatch(events.Click, target, pt)
	}
}

// HandleRemote raises a remote control message at window scope.
func (h *Host) HandleRemote(m events.RemoteMessage) {
	h.dispatch(events.Message, nil, m)
}

// RequestFullScreen returns the capability that grows c to the window.
func (h *Host) RequestFullScreen(c orchestration.Container) orchestration.Capability {
	p, ok := c.(*Pane)
	if !ok {
		return nil
	}
	return func() error {
		h.fullScreen = p
		h.layout()
		return nil
	}
}

// CancelFullScreen returns the capability that restores the layout.
func (h *Host) CancelFullScreen() orchestration.Capability {
	return func() error {
		h.fullScreen = nil
		h.layout()
		return nil
	}
}

// FullScreenElement returns the pane in full screen, or nil.
func (h *Host) FullScreenElement() orchestration.Container {
	if h.fullScreen == nil {
		return nil
	}
	return h.fullScreen
}

// Verify interface compliance.
var (
	_ orchestration.Container    = (*Pane)(nil)
	_ orchestration.Host         = (*Host)(nil)
	_ orchestration.FeatureProbe = (*Host)(nil)
)
