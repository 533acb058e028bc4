package server

import (
	"encoding/json"
	"time"

	"github.com/lox/blackjack/internal/game"
)

// Envelope is the wire format for spectator events. Data carries the
// event struct itself, keyed by its event type.
type Envelope struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// encodeEvent wraps a game event in an envelope and marshals it
func encodeEvent(event game.GameEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		Type:      event.EventType().String(),
		Timestamp: event.Timestamp(),
		Data:      data,
	})
}
