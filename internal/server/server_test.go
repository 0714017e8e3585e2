package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/hearts/internal/game"
)

func newTestServer(t *testing.T) (*httptest.Server, *websocket.Conn) {
	t.Helper()

	srv := NewServer("", newTestSessions(t), testLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWebSocket)
	mux.HandleFunc("/health", srv.handleHealth)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return ts, conn
}

func sendMessage(t *testing.T, conn *websocket.Conn, messageType MessageType, data interface{}) {
	t.Helper()
	msg, err := NewMessage(messageType, data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))
}

func readGameState(t *testing.T, conn *websocket.Conn) *GameStateData {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, MessageTypeGameState, msg.Type)

	var view GameStateData
	require.NoError(t, json.Unmarshal(msg.Data, &view))
	return &view
}

func TestServerNewGameOverWebSocket(t *testing.T) {
	_, conn := newTestServer(t)

	sendMessage(t, conn, MessageTypeNewGame, struct{}{})
	view := readGameState(t, conn)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, game.AwaitingHuman.String(), view.State)
	assert.Len(t, view.Hand, 13)
}

func TestServerPlaysTrickOverWebSocket(t *testing.T) {
	_, conn := newTestServer(t)

	sendMessage(t, conn, MessageTypeNewGame, struct{}{})
	view := readGameState(t, conn)

	sendMessage(t, conn, MessageTypePlayCard, PlayCardData{
		SessionID: view.SessionID,
		Card:      legalCard(t, view),
	})
	after := readGameState(t, conn)
	assert.Len(t, after.Hand, 12)

	sendMessage(t, conn, MessageTypeContinue, ContinueData{SessionID: view.SessionID})
	next := readGameState(t, conn)
	assert.Equal(t, game.AwaitingHuman.String(), next.State)
}

func TestServerResumeUnknownSession(t *testing.T) {
	_, conn := newTestServer(t)

	sendMessage(t, conn, MessageTypeResume, ResumeData{SessionID: "nope"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, MessageTypeError, msg.Type)

	var errData ErrorData
	require.NoError(t, json.Unmarshal(msg.Data, &errData))
	assert.Equal(t, "session_not_found", errData.Code)
}

func TestServerRejectsUnknownMessageType(t *testing.T) {
	_, conn := newTestServer(t)

	sendMessage(t, conn, MessageType("juggle"), struct{}{})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageTypeError, msg.Type)
}

func TestServerEchoesRequestID(t *testing.T) {
	_, conn := newTestServer(t)

	msg, err := NewMessage(MessageTypeNewGame, struct{}{})
	require.NoError(t, err)
	msg.RequestID = "req-42"
	require.NoError(t, conn.WriteJSON(msg))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "req-42", reply.RequestID)
}

func TestServerHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
