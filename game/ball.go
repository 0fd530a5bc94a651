// File: game/ball.go
package game

import (
	"github.com/lguibr/updown/utils"
)

// Ball is the single projectile of a session. Its contact shape is a circle of
// ContactRadius around Position+ContactOffset, larger than the visible square.
type Ball struct {
	Position      utils.Vector `json:"position"`
	Velocity      utils.Vector `json:"velocity"`
	Size          float64      `json:"size"`
	ContactRadius float64      `json:"contactRadius"`
	ContactOffset utils.Vector `json:"contactOffset"`
	Color         utils.Color  `json:"color"`
}

func NewBall(cfg utils.Config, position utils.Vector) *Ball {
	return &Ball{
		Position:      position,
		Size:          cfg.BallSize,
		ContactRadius: cfg.BallContactRadius,
		Color:         utils.ColorWhite,
	}
}

func (b *Ball) Body() Body { return BallBody() }

// Bounds is the visible square.
func (b *Ball) Bounds() utils.Rect {
	return utils.NewCenteredRect(b.Position, utils.Size{Width: b.Size, Height: b.Size})
}

// ContactCenter is the center of the contact circle in world space.
func (b *Ball) ContactCenter() utils.Vector { return b.Position.Add(b.ContactOffset) }

func (b *Ball) IsResting() bool { return b.Velocity.IsZero() }

// ApplyImpulse adds impulse*scale to the velocity.
func (b *Ball) ApplyImpulse(impulse utils.Vector, scale float64) {
	b.Velocity = b.Velocity.Add(impulse.Scale(scale))
}

// LaunchImpulse draws a launch direction: a horizontal component in [-10, 5]
// or [5, 10] and a vertical component of ±10.
func LaunchImpulse(r utils.Random) utils.Vector {
	var x int
	if utils.RandomBool(r) {
		x = utils.RandomIntRange(r, -10, 5)
	} else {
		x = utils.RandomIntRange(r, 5, 10)
	}
	y := -10.0
	if utils.RandomBool(r) {
		y = 10
	}
	return utils.Vector{X: float64(x), Y: y}
}

// FlipRandomly negates each velocity component independently with
// probability one half.
func (b *Ball) FlipRandomly(r utils.Random) {
	if utils.RandomBool(r) {
		b.Velocity.X = -b.Velocity.X
	}
	if utils.RandomBool(r) {
		b.Velocity.Y = -b.Velocity.Y
	}
}

// Reverse negates both velocity components.
func (b *Ball) Reverse() { b.Velocity = b.Velocity.Neg() }
