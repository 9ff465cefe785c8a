// Package metrics exposes the presentation's activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/scaler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "deckshow"

// Collector owns a private registry so several presentations (and tests)
// never collide on registration.
type Collector struct {
	registry      *prometheus.Registry
	busEvents     *prometheus.CounterVec
	rescales      prometheus.Counter
	degenerate    prometheus.Counter
	slideShows    prometheus.Counter
	currentSlide  prometheus.Gauge
	remoteClients prometheus.Gauge
}

// New creates a Collector with Go runtime and process metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		busEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bus_events_total",
			Help:      "Events emitted on the presentation bus.",
		}, []string{"event"}),
		rescales: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rescales_total",
			Help:      "Scale factors computed.",
		}),
		degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "degenerate_rescales_total",
			Help:      "Scale computations skipped because a box had a zero side.",
		}),
		slideShows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "slide_shows_total",
			Help:      "Slides shown.",
		}),
		currentSlide: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "current_slide",
			Help:      "1-based number of the slide on screen.",
		}),
		remoteClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "remote_clients",
			Help:      "Connected remote control clients.",
		}),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.busEvents, c.rescales, c.degenerate, c.slideShows, c.currentSlide, c.remoteClients,
	)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// BusObserver counts emissions by event name.
func (c *Collector) BusObserver() events.Observer {
	return func(name events.Name, _ int) {
		c.busEvents.WithLabelValues(string(name)).Inc()
	}
}

// RescaleObserver counts computed scale factors.
func (c *Collector) RescaleObserver() scaler.Observer {
	return func(_ float64, degenerate bool) {
		if degenerate {
			c.degenerate.Inc()
			return
		}
		c.rescales.Inc()
	}
}

// Track follows afterShowSlide to count shown slides.
func (c *Collector) Track(bus events.Subscriber) {
	bus.On(events.AfterShowSlide, func(ev events.Event) error {
		if i, ok := ev.Int(0); ok {
			c.slideShows.Inc()
			c.currentSlide.Set(float64(i + 1))
		}
		return nil
	})
}

// RemoteConnected and RemoteDisconnected track remote control clients.
func (c *Collector) RemoteConnected()    { c.remoteClients.Inc() }
func (c *Collector) RemoteDisconnected() { c.remoteClients.Dec() }
