package widgets

import (
	"strings"
	"testing"

	"github.com/agbru/deckshow/internal/deck"
	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/orchestration"
)

func newDeck(t *testing.T, n int) (*deck.SlideShow, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	show := deck.New(bus)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "slide"
	}
	if err := show.SetSlides(deck.ParseString(strings.Join(parts, "\n---\n"))); err != nil {
		t.Fatal(err)
	}
	return show, bus
}

func TestBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{-1, "░░░░"},
		{2, "████"},
	}
	for _, tt := range tests {
		if got := Bar(tt.fraction, 4); got != tt.want {
			t.Errorf("Bar(%v, 4) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	show, bus := newDeck(t, 4)
	w := NewFactory().ProgressBar(bus, show)

	if got, _ := w.Region().Attr("progress"); got != "0.000" {
		t.Errorf("initial progress = %q", got)
	}
	_ = show.GoToSlide("2")
	if got, _ := w.Region().Attr("progress"); got != "0.500" {
		t.Errorf("progress = %q, want 0.500", got)
	}
	if !strings.HasPrefix(w.Region().Content(), strings.Repeat("█", ProgressBarWidth/2)) {
		t.Errorf("bar = %q", w.Region().Content())
	}
}

func TestSlideNumber(t *testing.T) {
	t.Parallel()
	show, bus := newDeck(t, 3)
	w := NewFactory().SlideNumber(bus, show)
	if w.Region().Content() != "" {
		t.Errorf("number before navigation = %q", w.Region().Content())
	}
	_ = show.GoToLastSlide()
	if got := w.Region().Content(); got != "3 / 3" {
		t.Errorf("number = %q, want 3 / 3", got)
	}
}

func TestControls(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		opts   orchestration.Options
		target string
		want   string
	}{
		{"dots", orchestration.Options{ControlsLayout: "dots"}, "2", "○ ● ○"},
		{"dots with arrows", orchestration.Options{ControlsLayout: "dots", ControlsBackArrows: true}, "2", "‹ ○ ● ○ ›"},
		{"arrow on last slide", orchestration.Options{ControlsLayout: "arrows"}, "3", ""},
		{"arrow", orchestration.Options{ControlsLayout: "arrows"}, "1", "›"},
		{"tutorial", orchestration.Options{ControlsLayout: "arrows", ControlsTutorial: true}, "1", "›  ← → to navigate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			show, bus := newDeck(t, 3)
			w := NewFactory().Controls(bus, show, tt.opts)
			_ = show.GoToSlide(tt.target)
			if got := w.Region().Content(); got != tt.want {
				t.Errorf("controls = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestControls_TutorialDisappearsAfterNavigation(t *testing.T) {
	t.Parallel()
	show, bus := newDeck(t, 3)
	w := NewFactory().Controls(bus, show, orchestration.Options{ControlsLayout: "dots", ControlsTutorial: true})
	_ = show.GoToFirstSlide()
	_ = show.GoToNextSlide()
	_ = show.GoToPreviousSlide()
	if strings.Contains(w.Region().Content(), "navigate") {
		t.Errorf("tutorial still shown: %q", w.Region().Content())
	}
}
