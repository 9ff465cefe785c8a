// Package server exposes metrics and remote control of a running
// presentation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/metrics"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// ShutdownTimeout bounds the graceful shutdown once the context is done.
const ShutdownTimeout = 5 * time.Second

// RemoteSender delivers a remote control message to the presentation. It is
// called from connection goroutines and must be safe for concurrent use.
type RemoteSender func(events.RemoteMessage) error

// Server serves /healthz, /metrics and the /remote endpoints.
type Server struct {
	addr      string
	router    *mux.Router
	metrics   *Metrics
	collector *metrics.Collector
	send      RemoteSender
	logger    logging.Logger
	security  SecurityConfig
	upgrader  websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics serves c's registry on /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.collector = c }
}

// WithRemote enables the remote control endpoints.
func WithRemote(send RemoteSender) Option {
	return func(s *Server) { s.send = send }
}

// WithSecurity replaces the default security policy.
func WithSecurity(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// New creates a server for addr. Routes for metrics and remote control are
// only mounted when the matching option is given.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		logger:   logging.Nop(),
		security: DefaultSecurityConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.collector != nil {
		s.metrics = NewMetrics(s.collector)
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.security.allowedOrigin(origin) != ""
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.wrap(s.handleHealth)).Methods(http.MethodGet)
	if s.metrics != nil {
		r.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	}
	if s.send != nil {
		r.HandleFunc("/remote", s.wrap(s.handleRemote)).Methods(http.MethodGet)
		r.HandleFunc("/remote/goto/{slide:[0-9]+}", s.wrap(s.handleGoto)).Methods(http.MethodPost, http.MethodOptions)
		r.HandleFunc("/remote/command/{command}", s.wrap(s.handleCommand)).Methods(http.MethodPost, http.MethodOptions)
	}
	return r
}

func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	if s.metrics != nil {
		h = s.metricsMiddleware(h)
	}
	return SecurityMiddleware(s.security, h)
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		s.metrics.observe(r.Method, rec.code)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Warn("metrics: method not allowed", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) handleGoto(w http.ResponseWriter, r *http.Request) {
	s.deliver(w, "http", "gotoSlide:"+mux.Vars(r)["slide"])
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	s.deliver(w, "http", mux.Vars(r)["command"])
}

func (s *Server) deliver(w http.ResponseWriter, origin, data string) {
	if err := s.send(events.RemoteMessage{Data: data, Origin: origin}); err != nil {
		s.logger.Error("remote message rejected", err, logging.String("data", data))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleRemote upgrades to a websocket and forwards every text frame as a
// remote message. Each frame is answered with "ok" or the error text.
func (s *Server) handleRemote(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("remote upgrade failed", logging.Err(err))
		return
	}
	defer conn.Close()

	id := "remote:" + uuid.NewString()
	if s.collector != nil {
		s.collector.RemoteConnected()
		defer s.collector.RemoteDisconnected()
	}
	if s.security.MaxMessageSize > 0 {
		conn.SetReadLimit(s.security.MaxMessageSize)
	}
	s.logger.Info("remote client connected", logging.String("client", id))

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("remote read ended", logging.String("client", id), logging.Err(err))
			}
			break
		}
		if kind != websocket.TextMessage {
			continue
		}
		reply := "ok"
		if err := s.send(events.RemoteMessage{Data: strings.TrimSpace(string(payload)), Origin: id}); err != nil {
			reply = err.Error()
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			break
		}
	}
	s.logger.Info("remote client disconnected", logging.String("client", id))
}
