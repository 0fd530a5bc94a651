// File: game/paddle.go
package game

import (
	"github.com/lguibr/updown/utils"
)

// Paddle is the kinematic body the player drags. It is moved directly by
// touch input and never integrated by physics.
type Paddle struct {
	Position utils.Vector `json:"position"`
	Rotation float64      `json:"rotation"` // radians
	Size     utils.Size   `json:"size"`
	Moving   bool         `json:"moving"`
}

// NewPaddle places the paddle centered horizontally, PaddleOffset above the
// bottom of the world.
func NewPaddle(cfg utils.Config, world World) *Paddle {
	return &Paddle{
		Position: utils.Vector{X: world.Center().X, Y: world.Bounds.MinY() + cfg.PaddleOffset},
		Size:     utils.Size{Width: cfg.PaddleWidth, Height: cfg.PaddleHeight},
	}
}

func (p *Paddle) Body() Body { return PlayerBody() }

// Bounds ignores rotation.
func (p *Paddle) Bounds() utils.Rect { return utils.NewCenteredRect(p.Position, p.Size) }

func (p *Paddle) TouchBegin(position utils.Vector) {
	p.Position = position
	p.Moving = true
}

// TouchMove eases the rotation toward the drag direction, divided by divisor,
// then moves the paddle to target. The direction vector takes the y delta as
// its x component, so a vertical drag yields no tilt.
func (p *Paddle) TouchMove(target utils.Vector, damping, divisor float64) {
	delta := utils.Vector{X: target.Y - p.Position.Y, Y: target.X - p.Position.X}
	goal := delta.Normalize().Angle() / divisor
	p.Rotation = utils.Lerp(p.Rotation, goal, damping)
	p.Position = target
}

func (p *Paddle) TouchEnd() { p.Moving = false }
