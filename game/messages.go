// File: game/messages.go
package game

import (
	"fmt"

	"github.com/lguibr/updown/utils"
)

const (
	MessageTypeGameState = "gameState"
	MessageTypeTouch     = "touch"
)

// MessageHeader identifies a message type before full unmarshalling.
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// TouchPhase is the stage of a touch gesture.
type TouchPhase string

const (
	TouchBegin TouchPhase = "begin"
	TouchMove  TouchPhase = "move"
	TouchEnd   TouchPhase = "end"
)

// TouchMessage carries one input sample from a client, in world coordinates.
type TouchMessage struct {
	MessageType string     `json:"messageType"` // "touch"
	Phase       TouchPhase `json:"phase"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
}

func NewTouchMessage(phase TouchPhase, position utils.Vector) TouchMessage {
	return TouchMessage{MessageType: MessageTypeTouch, Phase: phase, X: position.X, Y: position.Y}
}

func (m TouchMessage) Position() utils.Vector { return utils.Vector{X: m.X, Y: m.Y} }

// Validate rejects messages a session cannot apply.
func (m TouchMessage) Validate() error {
	if m.MessageType != MessageTypeTouch {
		return fmt.Errorf("unexpected message type %q", m.MessageType)
	}
	switch m.Phase {
	case TouchBegin, TouchMove, TouchEnd:
		return nil
	default:
		return fmt.Errorf("unknown touch phase %q", m.Phase)
	}
}

// ApplyTouch routes a validated touch message to the matching handler.
func (s *Session) ApplyTouch(m TouchMessage) error {
	if err := m.Validate(); err != nil {
		return err
	}
	switch m.Phase {
	case TouchBegin:
		s.OnTouchBegin(m.Position())
	case TouchMove:
		s.OnTouchMove(m.Position())
	case TouchEnd:
		s.OnTouchEnd(m.Position())
	}
	return nil
}
