package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/deckshow/internal/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_BusObserver(t *testing.T) {
	t.Parallel()

	c := New()
	bus := events.NewBus(events.WithObserver(c.BusObserver()))
	_ = bus.Emit(events.GoToNextSlide)
	_ = bus.Emit(events.GoToNextSlide)
	_ = bus.Emit(events.Resize)

	if got := testutil.ToFloat64(c.busEvents.WithLabelValues(string(events.GoToNextSlide))); got != 2 {
		t.Errorf("goToNextSlide count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.busEvents.WithLabelValues(string(events.Resize))); got != 1 {
		t.Errorf("resize count = %v, want 1", got)
	}
}

func TestCollector_RescaleObserver(t *testing.T) {
	t.Parallel()

	c := New()
	obs := c.RescaleObserver()
	obs(1.5, false)
	obs(1, true)
	obs(0.5, false)

	if got := testutil.ToFloat64(c.rescales); got != 2 {
		t.Errorf("rescales = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.degenerate); got != 1 {
		t.Errorf("degenerate = %v, want 1", got)
	}
}

func TestCollector_Track(t *testing.T) {
	t.Parallel()

	c := New()
	bus := events.NewBus()
	c.Track(bus)
	_ = bus.Emit(events.AfterShowSlide, 0)
	_ = bus.Emit(events.AfterShowSlide, 3)

	if got := testutil.ToFloat64(c.slideShows); got != 2 {
		t.Errorf("slide shows = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.currentSlide); got != 4 {
		t.Errorf("current slide = %v, want 4", got)
	}
}

func TestCollector_RemoteClients(t *testing.T) {
	t.Parallel()

	c := New()
	c.RemoteConnected()
	c.RemoteConnected()
	c.RemoteDisconnected()
	if got := testutil.ToFloat64(c.remoteClients); got != 1 {
		t.Errorf("remote clients = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	t.Parallel()

	c := New()
	c.RescaleObserver()(1, false)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"deckshow_rescales_total 1", "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.RemoteConnected()
	if got := testutil.ToFloat64(b.remoteClients); got != 0 {
		t.Errorf("second collector saw %v clients", got)
	}
}
