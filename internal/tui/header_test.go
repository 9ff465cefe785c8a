package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/mode"
)

type fakeModes map[mode.Mode]bool

func (f fakeModes) Active(m mode.Mode) bool           { return f[m] }
func (f fakeModes) Orientation() geometry.Orientation { return geometry.Landscape }
func (f fakeModes) Snapshot() mode.Set                { return mode.Set(f).Clone() }
func (f fakeModes) Classes() []string                 { return mode.Set(f).Classes() }

func TestHeaderModel_View(t *testing.T) {
	h := NewHeaderModel("v1.2.0")
	h.SetWidth(80)
	h.SetSlide(2, 10)
	h.SetModes(fakeModes{mode.Presenter: true, mode.Mirrored: true}, time.Now())

	view := h.View()
	for _, want := range []string{"deckshow v1.2.0", "3 / 10", "presenter mirrored"} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q: %q", want, view)
		}
	}
}

func TestHeaderModel_NoSlides(t *testing.T) {
	h := NewHeaderModel("dev")
	h.SetWidth(60)
	h.SetSlide(-1, 0)
	view := h.View()
	if !strings.Contains(view, "no slides") {
		t.Errorf("header = %q, want no slides", view)
	}
	if strings.Contains(view, "dev") {
		t.Errorf("dev version should be hidden: %q", view)
	}
}

func TestHeaderModel_ClockStopsWhilePaused(t *testing.T) {
	h := NewHeaderModel("dev")
	start := h.startTime

	h.SetModes(fakeModes{mode.Paused: true}, start.Add(10*time.Second))
	if got := h.Elapsed(start.Add(time.Minute)); got != 10*time.Second {
		t.Errorf("elapsed while paused = %v, want 10s", got)
	}

	h.SetModes(fakeModes{}, start.Add(40*time.Second))
	if got := h.Elapsed(start.Add(50 * time.Second)); got != 20*time.Second {
		t.Errorf("elapsed after resume = %v, want 20s", got)
	}
}
