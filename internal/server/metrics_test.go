package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/metrics"
)

func TestMetrics_WritePrometheus(t *testing.T) {
	m := NewMetrics(metrics.New())
	m.IncrementActiveRequests()
	m.observe(http.MethodPost, http.StatusAccepted)

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body := rec.Body.String()
	for _, want := range []string{
		"deckshow_active_requests 1",
		`deckshow_requests_total{code="202",method="POST"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestServer_metricsMiddleware(t *testing.T) {
	s := &Server{metrics: NewMetrics(metrics.New())}
	var during float64
	h := s.metricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		during = testutil.ToFloat64(s.metrics.activeRequests)
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/remote", http.NoBody))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if during != 1 {
		t.Errorf("active requests while serving = %v, want 1", during)
	}
	if got := testutil.ToFloat64(s.metrics.activeRequests); got != 0 {
		t.Errorf("active requests after = %v, want 0", got)
	}
	if got := testutil.ToFloat64(s.metrics.requests.WithLabelValues("POST", "418")); got != 1 {
		t.Errorf("requests_total{POST,418} = %v, want 1", got)
	}
}

func TestServer_handleMetrics(t *testing.T) {
	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusMethodNotAllowed},
		{http.MethodPut, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			s := &Server{metrics: NewMetrics(metrics.New()), logger: logging.Nop()}
			rec := httptest.NewRecorder()
			s.handleMetrics(rec, httptest.NewRequest(tt.method, "/metrics", http.NoBody))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && !strings.Contains(rec.Body.String(), "deckshow_") {
				t.Error("response should contain deckshow metrics")
			}
		})
	}
}
