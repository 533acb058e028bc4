// Package server streams game events to websocket spectators. The table
// publishes events through its observer interface; the server fans them
// out as JSON to every connected client.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/blackjack/internal/game"
)

// Server broadcasts game events to websocket spectators
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	logger      *log.Logger
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
	httpServer  *http.Server
}

// NewServer creates a spectator server listening on addr
func NewServer(addr string, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// Spectator feed is open; origin checks belong on a fronting proxy
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		logger:      logger.WithPrefix("server"),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Handler returns the HTTP handler serving the websocket endpoint at /ws
// and a health check at /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves the spectator feed. Blocks until Stop is called or the
// listener fails; a stopped server returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.logger.Info("starting spectator server", "addr", s.addr)
	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Handler()}
	return s.httpServer.ListenAndServe()
}

// Stop shuts the listener down and disconnects all spectators
func (s *Server) Stop() error {
	s.cancel()

	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
	}

	s.mu.Lock()
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
	return nil
}

// HandleEvent implements game.Observer by broadcasting the event to all
// connected spectators. Events that fail to encode are dropped.
func (s *Server) HandleEvent(event game.GameEvent) {
	msg, err := encodeEvent(event)
	if err != nil {
		s.logger.Error("failed to encode event", "type", event.EventType(), "error", err)
		return
	}

	// Snapshot under the lock; Send may close a stalled connection, which
	// re-enters the lock to deregister it
	s.mu.RLock()
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.RUnlock()

	for _, conn := range conns {
		conn.Send(msg)
	}
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.logger, s.removeConnection)

	s.mu.Lock()
	s.connections[client] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("spectator connected", "total", total)

	client.Start()
}

func (s *Server) removeConnection(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("spectator disconnected", "total", total)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
