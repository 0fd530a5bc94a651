// File: game/effects.go
package game

import "github.com/lguibr/updown/utils"

// Strength is the intensity of a haptic feedback request.
type Strength string

const (
	StrengthSelection Strength = "selection"
	StrengthLight     Strength = "light"
	StrengthMedium    Strength = "medium"
	StrengthHeavy     Strength = "heavy"
	StrengthError     Strength = "error"
	StrengthSuccess   Strength = "success"
	StrengthWarning   Strength = "warning"
)

// EffectKind names a visual effect the presenter plays at a position.
type EffectKind string

const (
	EffectSpark          EffectKind = "spark"
	EffectEnemyDestroyed EffectKind = "enemyDestroyed"
	EffectBorderShake    EffectKind = "borderShake"
	EffectPaddleShake    EffectKind = "paddleShake"
)

// Waveform of a synthesized tone.
type Waveform string

const (
	WaveformSine     Waveform = "sine"
	WaveformTriangle Waveform = "triangle"
)

// Tone describes a sound the presenter should play.
type Tone struct {
	Frequency float64  `json:"frequency"`
	Waveform  Waveform `json:"waveform"`
}

var (
	ToneBounce = Tone{Frequency: 1046.0 / 5, Waveform: WaveformSine}
	ToneHit    = Tone{Frequency: 1046.0 / 4.8, Waveform: WaveformSine}
	TonePaddle = Tone{Frequency: 1046.0 / 4.5, Waveform: WaveformTriangle}
)

// Presenter consumes the side-effect requests of a session. Implementations
// must return immediately; timing and animation belong to the presenter.
type Presenter interface {
	RequestFeedback(strength Strength)
	RequestEffect(kind EffectKind, position utils.Vector, color utils.Color)
	RequestSound(tone Tone, volume float64)
}

// RequestType discriminates the entries of a Queue.
type RequestType string

const (
	RequestFeedback RequestType = "feedback"
	RequestEffect   RequestType = "effect"
	RequestSound    RequestType = "sound"
)

// Request is one queued side effect. Only the fields of its Type are set.
type Request struct {
	Type     RequestType   `json:"type"`
	Strength Strength      `json:"strength,omitempty"`
	Kind     EffectKind    `json:"kind,omitempty"`
	Position *utils.Vector `json:"position,omitempty"`
	Color    *utils.Color  `json:"color,omitempty"`
	Tone     *Tone         `json:"tone,omitempty"`
	Volume   float64       `json:"volume,omitempty"`
}

// Queue is a FIFO Presenter drained by the host once per frame.
type Queue struct {
	requests []Request
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) RequestFeedback(strength Strength) {
	q.requests = append(q.requests, Request{Type: RequestFeedback, Strength: strength})
}

func (q *Queue) RequestEffect(kind EffectKind, position utils.Vector, color utils.Color) {
	q.requests = append(q.requests, Request{Type: RequestEffect, Kind: kind, Position: &position, Color: &color})
}

func (q *Queue) RequestSound(tone Tone, volume float64) {
	q.requests = append(q.requests, Request{Type: RequestSound, Tone: &tone, Volume: volume})
}

// Drain returns the pending requests in emission order and empties the queue.
func (q *Queue) Drain() []Request {
	drained := q.requests
	q.requests = nil
	return drained
}

func (q *Queue) Len() int { return len(q.requests) }
