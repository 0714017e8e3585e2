package server

import (
	"encoding/json"
	"time"

	"github.com/cardtable/hearts/internal/game"
)

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client to server messages
	MessageTypeNewGame  MessageType = "new_game"
	MessageTypeResume   MessageType = "resume"
	MessageTypePlayCard MessageType = "play_card"
	MessageTypeContinue MessageType = "continue"

	// Server to client messages
	MessageTypeGameState MessageType = "game_state"
	MessageTypeError     MessageType = "error"
)

// String returns the string representation of the message type.
func (mt MessageType) String() string {
	return string(mt)
}

// Message is the base WebSocket message envelope.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type ResumeData struct {
	SessionID string `json:"sessionId"`
}

type PlayCardData struct {
	SessionID string `json:"sessionId"`
	Card      string `json:"card"`
}

type ContinueData struct {
	SessionID string `json:"sessionId"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TrickView shows the cards on the table, indexed by seat. Empty
// strings mark seats that have not played.
type TrickView struct {
	Cards  [game.NumPlayers]string `json:"cards"`
	Leader int                     `json:"leader"`
}

// GameStateData is the full view the client needs to render a game.
// The human only ever sees their own cards.
type GameStateData struct {
	SessionID    string                  `json:"sessionId"`
	State        string                  `json:"state"`
	HandNumber   int                     `json:"handNumber"`
	Players      [game.NumPlayers]string `json:"players"`
	Hand         []string                `json:"hand"`
	Trick        TrickView               `json:"trick"`
	Leader       int                     `json:"leader"`
	HeartsBroken bool                    `json:"heartsBroken"`
	OpenTwoClubs bool                    `json:"openTwoClubs"`
	HandPoints   [game.NumPlayers]int    `json:"handPoints"`
	Totals       [game.NumPlayers]int    `json:"totals"`
	Scores       [][game.NumPlayers]int  `json:"scores,omitempty"`
	Message      string                  `json:"message"`
	// MoveResult is set when a play was rejected; the client should
	// re-prompt without advancing.
	MoveResult string `json:"moveResult,omitempty"`
}
