// Package server exposes the Hearts engine over WebSocket. The server
// holds no game state between messages: every request loads the
// session snapshot from storage, advances the game and saves it back,
// so any instance can serve any session.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/cardtable/hearts/internal/server/storage"
)

// Server is the WebSocket front end for the session manager.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	sessions *Sessions
	logger   *log.Logger

	mu          sync.Mutex
	connections map[*websocket.Conn]bool
	httpServer  *http.Server
}

// NewServer creates a server for the given listen address.
func NewServer(addr string, sessions *Sessions, logger *log.Logger) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// Sessions are capability-style ids, not cookies, so
			// cross-origin pages cannot hijack a game they don't know.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions:    sessions,
		logger:      logger.WithPrefix("server"),
		connections: make(map[*websocket.Conn]bool),
	}
}

// Start runs the server until Stop is called or the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.mu.Lock()
	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}
	s.mu.Unlock()

	s.logger.Info("starting WebSocket server", "addr", s.addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down and closes all connections.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	srv := s.httpServer
	s.mu.Unlock()

	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	s.mu.Lock()
	s.connections[conn] = true
	s.mu.Unlock()
	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	defer func() {
		s.mu.Lock()
		delete(s.connections, conn)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("client disconnected", "remote", conn.RemoteAddr())
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read error", "error", err)
			}
			return
		}
		s.handleMessage(r.Context(), conn, &msg)
	}
}

func (s *Server) handleMessage(ctx context.Context, conn *websocket.Conn, msg *Message) {
	var (
		view *GameStateData
		err  error
	)

	switch msg.Type {
	case MessageTypeNewGame:
		view, err = s.sessions.NewGame(ctx)

	case MessageTypeResume:
		var data ResumeData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			view, err = s.sessions.Resume(ctx, data.SessionID)
		}

	case MessageTypePlayCard:
		var data PlayCardData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			view, err = s.sessions.PlayCard(ctx, data.SessionID, data.Card)
		}

	case MessageTypeContinue:
		var data ContinueData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			view, err = s.sessions.Continue(ctx, data.SessionID)
		}

	default:
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}

	if err != nil {
		s.sendError(conn, msg, err)
		return
	}
	s.send(conn, msg, MessageTypeGameState, view)
}

func (s *Server) sendError(conn *websocket.Conn, req *Message, err error) {
	code := "internal_error"
	if errors.Is(err, storage.ErrNotFound) {
		code = "session_not_found"
	}
	s.logger.Warn("request failed", "type", req.Type, "error", err)
	s.send(conn, req, MessageTypeError, ErrorData{Code: code, Message: err.Error()})
}

func (s *Server) send(conn *websocket.Conn, req *Message, messageType MessageType, data interface{}) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		s.logger.Error("failed to encode message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = req.RequestID
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Warn("write error", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}
