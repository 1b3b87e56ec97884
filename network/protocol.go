package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/antigen/event"
)

// MessageType identifies a server-to-client frame
type MessageType string

const (
	MsgHello    MessageType = "hello"    // Sent once on connect
	MsgSnapshot MessageType = "snapshot" // Periodic world state
	MsgError    MessageType = "error"    // Rejected command
)

// Envelope wraps every server-to-client frame
type Envelope struct {
	Type  MessageType `json:"type"`
	Seq   uint64      `json:"seq"`
	Data  any         `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// HelloData tells a client who it is and what it may send
type HelloData struct {
	PeerID     uint32   `json:"peer_id"`
	IntervalMS int64    `json:"interval_ms"`
	Commands   []string `json:"commands"`
}

// Command is a client-to-server frame
// Payload fields may be nested under "payload" or inlined next to "type"
type Command struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var errEmptyCommand = errors.New("command without type")

// ParseCommand decodes a raw text frame into a simulation event
func ParseCommand(data []byte) (event.GameEvent, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return event.GameEvent{}, fmt.Errorf("decoding command: %w", err)
	}
	if cmd.Type == "" {
		return event.GameEvent{}, errEmptyCommand
	}

	payload := cmd.Payload
	if len(payload) == 0 {
		payload = data
	}
	return event.DecodeRemote(cmd.Type, payload)
}

// encode marshals an envelope for the wire
func encode(env Envelope) ([]byte, error) {
	b, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", env.Type, err)
	}
	return b, nil
}
