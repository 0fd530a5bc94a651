// File: arena/arena.go
package arena

import (
	"github.com/lguibr/updown/game"
	"github.com/lguibr/updown/utils"
)

// Arena is the physics host of a session. Each Tick it integrates the ball
// under gravity, bounces it off the paddle and the world walls, reports every
// newly begun contact to the session and then steps the session.
type Arena struct {
	session *game.Session
	cfg     utils.Config
	tracker *ContactTracker
	wave    int
}

type contactEvent struct {
	key   ContactKey
	a, b  game.Body
	point utils.Vector
}

func New(session *game.Session) *Arena {
	return &Arena{
		session: session,
		cfg:     session.Config(),
		tracker: NewContactTracker(),
		wave:    session.Wave(),
	}
}

func (a *Arena) Session() *game.Session { return a.session }

// ActiveContacts is the number of pairs currently touching.
func (a *Arena) ActiveContacts() int { return a.tracker.Len() }

// Tick runs one frame of dt seconds.
func (a *Arena) Tick(dt float64) {
	// A new wave reuses enemy ids from 0.
	if wave := a.session.Wave(); wave != a.wave {
		a.tracker.ClearAll()
		a.wave = wave
	}

	a.integrate(dt)
	events := a.detect()

	touching := make(map[ContactKey]bool, len(events))
	for _, ev := range events {
		if _, gone := a.destroyedEnemy(ev); gone {
			continue
		}
		touching[ev.key] = true
		if !a.tracker.Begin(ev.key) {
			continue
		}
		a.session.OnContact(ev.a, ev.b, ev.point)

		// A destroyed enemy takes its contacts with it.
		if body, gone := a.destroyedEnemy(ev); gone {
			for _, key := range a.tracker.ActiveFor(body) {
				a.tracker.End(key)
				delete(touching, key)
			}
		}
	}
	a.tracker.Retain(touching)

	a.session.Step(dt)
}

// destroyedEnemy returns the enemy side of ev when that enemy is no longer in
// the wave. Enemy ids stay stable until the next Step.
func (a *Arena) destroyedEnemy(ev contactEvent) (game.Body, bool) {
	for _, body := range [2]game.Body{ev.a, ev.b} {
		if body.Category != game.CategoryEnemy {
			continue
		}
		if _, ok := a.session.Enemy(body.ID); !ok {
			return body, true
		}
	}
	return game.Body{}, false
}

func (a *Arena) integrate(dt float64) {
	ball := a.session.Ball()
	velocity := ball.Velocity.Add(utils.Vector{Y: a.cfg.GravityY * dt})
	velocity = capSpeed(velocity, a.cfg.MaxBallSpeed)
	a.session.SetBallMotion(ball.Position.Add(velocity.Scale(dt)), velocity)
}

// detect collects the overlapping pairs of this frame. Physical responses
// (paddle and wall bounces) are applied here; gameplay responses are left to
// the session.
func (a *Arena) detect() []contactEvent {
	var events []contactEvent
	add := func(x, y game.Body, point utils.Vector) {
		events = append(events, contactEvent{key: NewContactKey(x, y), a: x, b: y, point: point})
	}

	ball := a.session.Ball()
	center := ball.ContactCenter()
	world := a.session.World().Bounds
	enemies := a.session.Enemies()

	for i := range enemies {
		if point, ok := circleHitsRect(center, ball.ContactRadius, enemies[i].Bounds()); ok {
			add(ball.Body(), enemies[i].Body(), point)
		}
	}

	paddle := a.session.Paddle()
	if point, ok := circleHitsRect(center, ball.ContactRadius, paddle.Bounds()); ok {
		a.bounceOffPaddle(ball, paddle)
		add(paddle.Body(), ball.Body(), point)
	}

	ball = a.session.Ball()
	if velocity, hit := reflectInto(ball.Position, ball.Velocity, ball.Size/2, world); hit {
		a.session.SetBallMotion(ball.Position, velocity)
		add(ball.Body(), game.WorldBody(), world.Clamp(ball.Position))
	}

	w := a.session.World()
	for i := range enemies {
		bounds := enemies[i].Bounds()
		for _, edge := range crossedEdges(bounds, world) {
			point := w.KeepInside(edgePoint(world, edge, enemies[i].Position))
			add(enemies[i].Body(), game.EdgeBody(edge), point)
		}
	}
	return events
}

// bounceOffPaddle sends a ball that is falling onto the paddle back up,
// multiplied by the paddle restitution and capped at MaxBallSpeed.
func (a *Arena) bounceOffPaddle(ball game.Ball, paddle game.Paddle) {
	if ball.Velocity.Y >= 0 || ball.Position.Y < paddle.Position.Y {
		return
	}
	velocity := utils.Vector{X: ball.Velocity.X, Y: -ball.Velocity.Y * a.cfg.PaddleRestitution}
	a.session.SetBallMotion(ball.Position, capSpeed(velocity, a.cfg.MaxBallSpeed))
}
