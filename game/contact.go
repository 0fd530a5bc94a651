// File: game/contact.go
package game

import (
	"github.com/lguibr/updown/utils"
)

// Interaction is the transition a contact pair resolves to.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionEnemyBall
	InteractionEnemyEdge
	InteractionPlayer
	InteractionBallWorld
)

var interactionNames = [...]string{"none", "enemyBall", "enemyEdge", "player", "ballWorld"}

func (i Interaction) String() string {
	if i < InteractionNone || i > InteractionBallWorld {
		return "unknown"
	}
	return interactionNames[i]
}

// Contact is a classified pair. Primary is the body whose category ranks
// highest in the order enemy, player, ball, edge, world.
type Contact struct {
	Interaction Interaction
	Primary     Body
	Other       Body
}

// InvolvesBall reports whether either side is the ball.
func (c Contact) InvolvesBall() bool {
	return c.Primary.Category == CategoryBall || c.Other.Category == CategoryBall
}

// Classify resolves an unordered pair. Swapping a and b never changes the
// interaction.
func Classify(a, b Body) Contact {
	if !a.Category.Valid() || !b.Category.Valid() {
		return Contact{Interaction: InteractionNone, Primary: a, Other: b}
	}
	primary, other := a, b
	if b.Category.precedence() < a.Category.precedence() {
		primary, other = b, a
	}
	c := Contact{Interaction: InteractionNone, Primary: primary, Other: other}

	switch primary.Category {
	case CategoryEnemy:
		switch other.Category {
		case CategoryBall:
			c.Interaction = InteractionEnemyBall
		case CategoryEdge:
			c.Interaction = InteractionEnemyEdge
		}
	case CategoryPlayer:
		c.Interaction = InteractionPlayer
	case CategoryBall:
		if other.Category == CategoryWorld {
			c.Interaction = InteractionBallWorld
		}
	}
	return c
}

// OnContact applies the transition for one contact event. Stale enemy ids and
// unrecognized pairs are ignored without side effects.
func (s *Session) OnContact(a, b Body, point utils.Vector) {
	c := Classify(a, b)

	var enemy *Enemy
	switch c.Interaction {
	case InteractionNone:
		return
	case InteractionEnemyBall, InteractionEnemyEdge:
		found, ok := s.wave.Enemy(c.Primary.ID)
		if !ok {
			return
		}
		enemy = found
	}

	s.presenter.RequestFeedback(StrengthSelection)
	s.playSound(ToneBounce, 1)
	if c.InvolvesBall() {
		s.presenter.RequestEffect(EffectSpark, point, s.ball.Color)
	}

	switch c.Interaction {
	case InteractionEnemyBall:
		s.destroyEnemy(enemy)
	case InteractionEnemyEdge:
		s.repositionEnemy(enemy, point)
	case InteractionBallWorld:
		s.presenter.RequestFeedback(StrengthLight)
		s.presenter.RequestEffect(EffectBorderShake, point, utils.ColorWhite)
	case InteractionPlayer:
		s.presenter.RequestEffect(EffectPaddleShake, s.paddle.Position, utils.ColorWhite)
		if c.Other.Category == CategoryBall {
			s.presenter.RequestFeedback(StrengthMedium)
		}
	}
}

func (s *Session) destroyEnemy(e *Enemy) {
	if _, ok := s.wave.Destroy(e.ID); !ok {
		return
	}
	s.presenter.RequestEffect(EffectEnemyDestroyed, e.Position, e.Color)
	s.ball.FlipRandomly(s.rng)
	s.presenter.RequestFeedback(StrengthHeavy)
}

// repositionEnemy moves an enemy that touched a boundary edge one enemy size
// from the contact point toward the world center on each axis. Points outside
// the world send the enemy back to the center.
func (s *Session) repositionEnemy(e *Enemy, point utils.Vector) {
	center := s.world.Center()
	if !s.world.Contains(point) {
		e.Position = center
		return
	}
	step := utils.Vector{X: sign(center.X-point.X) * e.Size, Y: sign(center.Y-point.Y) * e.Size}
	e.Position = s.world.KeepInside(point.Add(step))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
