package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds how long a WebSocket write may block on
	// a slow client before the connection is dropped.
	writeWait = 10 * time.Second

	// pingPeriod is the keepalive interval for idle WebSocket
	// connections.
	pingPeriod = 30 * time.Second
)

// Server exposes live run monitoring over HTTP: suite events
// via WebSocket (/ws) and SSE (/events), plus a JSON dashboard
// snapshot (/dashboard).
type Server struct {
	mu        sync.RWMutex
	collector *EventCollector
	dashboard *Dashboard
	clients   map[chan []byte]struct{}
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
}

// NewServer creates a monitoring server around the given
// collector and dashboard.
func NewServer(
	addr string,
	collector *EventCollector,
	dashboard *Dashboard,
) *Server {
	s := &Server{
		addr:      addr,
		collector: collector,
		dashboard: dashboard,
		clients:   make(map[chan []byte]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from arbitrary origins
			// during local runs.
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}

	s.collector.OnEvent(func(event SuiteEvent) {
		s.dashboard.UpdateFromEvent(event)
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	return s
}

// Handler returns the HTTP handler serving all monitoring
// endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/events", s.handleSSE)
	mux.HandleFunc("/dashboard", s.handleDashboard)
	mux.HandleFunc(
		"/health",
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		},
	)
	return mux
}

// Start begins serving and blocks until ctx is cancelled or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		_ = s.server.Close()
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) subscribe() chan []byte {
	ch := make(chan []byte, 32)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.mu.Lock()
	delete(s.clients, ch)
	s.mu.Unlock()
	close(ch)
}

// handleWS upgrades the connection and streams events until
// the client disconnects.
func (s *Server) handleWS(
	w http.ResponseWriter,
	r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Initial dashboard state so clients render immediately.
	snap := s.dashboard.Snapshot()
	if data, err := json.Marshal(snap); err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(
			websocket.TextMessage, data,
		); err != nil {
			return
		}
	}

	// Reader goroutine: discard client frames, surface close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return

		case data, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(
				time.Now().Add(writeWait),
			)
			if err := conn.WriteMessage(
				websocket.TextMessage, data,
			); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(
				time.Now().Add(writeWait),
			)
			if err := conn.WriteMessage(
				websocket.PingMessage, nil,
			); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleSSE(
	w http.ResponseWriter,
	r *http.Request,
) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(
			w,
			"streaming not supported",
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Send initial dashboard state.
	snap := s.dashboard.Snapshot()
	if data, err := json.Marshal(snap); err == nil {
		fmt.Fprintf(
			w, "event: dashboard\ndata: %s\n\n", data,
		)
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case data, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(
				w, "event: suite\ndata: %s\n\n", data,
			)
			flusher.Flush()
		}
	}
}

func (s *Server) handleDashboard(
	w http.ResponseWriter,
	_ *http.Request,
) {
	w.Header().Set("Content-Type", "application/json")
	snap := s.dashboard.Snapshot()
	_ = json.NewEncoder(w).Encode(snap)
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.clients {
		select {
		case ch <- data:
		default:
			// Client too slow, skip.
		}
	}
}
