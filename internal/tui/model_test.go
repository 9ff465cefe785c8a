package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/deckshow/internal/controller"
	"github.com/agbru/deckshow/internal/deck"
	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/location"
	"github.com/agbru/deckshow/internal/mode"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/widgets"
)

const testDeck = "# One\n???\nnote one\n---\n# Two\n???\nnote two\n---\n# Three\n"

type harness struct {
	host   *Host
	show   *deck.SlideShow
	engine *orchestration.Engine
	model  Model
}

func newHarness(t *testing.T, opts ...HostOption) *harness {
	t.Helper()
	bus := events.NewBus()
	host := NewHost(120, 40, opts...)
	show := deck.New(bus)
	if err := show.Load(strings.NewReader(testDeck)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	engine, err := orchestration.New(bus, host.Deck(), host, show,
		orchestration.WithFeatureProbe(host),
		orchestration.WithWidgets(widgets.NewFactory()),
	)
	if err != nil {
		t.Fatalf("orchestration.New: %v", err)
	}
	t.Cleanup(engine.Close)

	cfg := controller.DefaultConfig()
	cfg.Embedded = host.Embedded()
	ctrl := controller.New(bus, location.New(""), cfg)
	if err := ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return &harness{
		host:   host,
		show:   show,
		engine: engine,
		model:  NewModel(host, engine.Modes(), show, "dev"),
	}
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_NavigatesWithKeys(t *testing.T) {
	h := newHarness(t)
	if got := h.show.CurrentSlideIndex(); got != 0 {
		t.Fatalf("start index = %d, want 0", got)
	}
	if view := h.model.View(); !strings.Contains(view, "# One") || !strings.Contains(view, "1 / 3") {
		t.Errorf("initial view missing slide or position:\n%s", view)
	}

	h.send(tea.KeyMsg{Type: tea.KeyRight})
	if got := h.show.CurrentSlideIndex(); got != 1 {
		t.Fatalf("index after right = %d, want 1", got)
	}
	view := h.model.View()
	if !strings.Contains(view, "# Two") || strings.Contains(view, "# One") {
		t.Errorf("view after right:\n%s", view)
	}

	h.send(runes("3"))
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.show.CurrentSlideIndex(); got != 2 {
		t.Errorf("index after 3 enter = %d, want 2", got)
	}
}

func TestModel_TogglesModes(t *testing.T) {
	h := newHarness(t)
	modes := h.engine.Modes()

	h.send(runes("p"))
	if !modes.Active(mode.Presenter) {
		t.Fatal("p should enable presenter mode")
	}
	view := h.model.View()
	for _, want := range []string{"# One", "# Two", "note one", "presenter"} {
		if !strings.Contains(view, want) {
			t.Errorf("presenter view missing %q:\n%s", want, view)
		}
	}

	h.send(runes("b"))
	if !modes.Active(mode.Blackout) {
		t.Fatal("b should enable blackout")
	}
	if strings.Contains(h.model.View(), "# One") {
		t.Error("blackout still shows the slide")
	}

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	if modes.Active(mode.Blackout) {
		t.Error("esc should hide the overlay")
	}
}

func TestModel_FullScreenHidesHeader(t *testing.T) {
	h := newHarness(t, WithEmbedded(50))
	if !strings.Contains(h.model.View(), "Embedded deck") {
		t.Error("embedded layout should show the side panel")
	}

	h.host.HandleKey(runes("f"))
	if h.host.FullScreenElement() == nil {
		t.Fatal("f should request full screen")
	}
	view := h.model.View()
	if strings.Contains(view, "deckshow") || strings.Contains(view, "Embedded deck") {
		t.Errorf("full screen view still shows host chrome:\n%s", view)
	}
}

func TestModel_RemoteMessage(t *testing.T) {
	h := newHarness(t)
	h.send(RemoteMsg{Data: "gotoSlide:3", Origin: "remote:test"})
	if got := h.show.CurrentSlideIndex(); got != 2 {
		t.Errorf("index after remote goto = %d, want 2", got)
	}
}

func TestModel_WindowResize(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 60, Height: 20})
	if cols, rows := h.host.Size(); cols != 60 || rows != 20 {
		t.Errorf("host size = %dx%d, want 60x20", cols, rows)
	}
	for i, l := range strings.Split(h.model.View(), "\n") {
		if w := len([]rune(stripANSI(l))); w > 60 {
			t.Errorf("line %d is %d cells wide", i, w)
		}
	}
}

func TestModel_QuitKey(t *testing.T) {
	h := newHarness(t)
	cmd := h.send(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if got := h.show.CurrentSlideIndex(); got != 0 {
		t.Errorf("quit key reached the deck, index = %d", got)
	}
}

func TestModel_EmbeddedPollScheduled(t *testing.T) {
	h := newHarness(t, WithEmbedded(50))
	if h.model.Init() == nil {
		t.Fatal("Init should schedule the clock and the resize poll")
	}
	if n := len(h.host.drain()); n != 0 {
		t.Errorf("Init left %d pending commands", n)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
