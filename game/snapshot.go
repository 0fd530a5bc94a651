// File: game/snapshot.go
package game

import "github.com/lguibr/updown/utils"

// Snapshot is the read-only view of a session sent to presenters.
type Snapshot struct {
	MessageType string     `json:"messageType"` // "gameState"
	Frame       uint64     `json:"frame"`
	Elapsed     float64    `json:"elapsed"`
	Score       int        `json:"score"`
	Wave        int        `json:"wave"`
	Phase       Phase      `json:"phase"`
	World       utils.Rect `json:"world"`
	Ball        Ball       `json:"ball"`
	Paddle      Paddle     `json:"paddle"`
	Enemies     []Enemy    `json:"enemies"`
	Emphasis    float64    `json:"emphasis"`
	Effects     []Request  `json:"effects,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		MessageType: MessageTypeGameState,
		Frame:       s.frame,
		Elapsed:     s.elapsed,
		Score:       s.Score(),
		Wave:        s.Wave(),
		Phase:       s.Phase(),
		World:       s.world.Bounds,
		Ball:        s.Ball(),
		Paddle:      s.Paddle(),
		Enemies:     s.Enemies(),
		Emphasis:    s.Emphasis(),
	}
}
