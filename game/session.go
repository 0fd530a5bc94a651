// File: game/session.go
package game

import (
	"github.com/lguibr/updown/utils"
)

// Session is the gameplay core: one world, ball, paddle and wave. It is not
// safe for concurrent use; hosts call it from a single goroutine, running the
// contact events of a frame before that frame's Step.
type Session struct {
	cfg       utils.Config
	rng       utils.Random
	presenter Presenter

	world    World
	ball     *Ball
	paddle   *Paddle
	wave     *Wave
	emphasis utils.Decay

	frame   uint64
	elapsed float64
}

// NewSession starts a game: score 0, one red enemy as wide as the scene at the
// world center, and the ball launched from the paddle. A nil presenter is
// replaced by a Queue.
func NewSession(cfg utils.Config, rng utils.Random, presenter Presenter) *Session {
	if presenter == nil {
		presenter = NewQueue()
	}
	world := NewWorld(cfg.WorldSize())
	paddle := NewPaddle(cfg, world)
	s := &Session{
		cfg:       cfg,
		rng:       rng,
		presenter: presenter,
		world:     world,
		paddle:    paddle,
		ball:      NewBall(cfg, paddle.Position),
		wave:      NewWave(),
		emphasis:  utils.NewDecay(cfg.EmphasisDecay),
	}
	s.wave.Add(NewEnemy(world.Center(), cfg.SceneWidth, VertexCount(0), utils.ColorRed))
	s.relaunch()
	return s
}

// Step advances one frame after the host has delivered the frame's contacts.
func (s *Session) Step(dt float64) {
	s.frame++
	s.elapsed += dt

	s.ball.ContactOffset = utils.Zero
	s.world.Contain(s.ball)
	s.emphasis.Step()
	if s.wave.CheckCleared() {
		s.spawnWave()
	}
}

// spawnWave fills the world with score+1 enemies in its upper half and serves
// the ball again.
func (s *Session) spawnWave() {
	s.wave.Restart()
	score := s.wave.Score()
	count := score + 1
	size := s.world.Bounds.Size.Width * s.cfg.EnemyCoverage / float64(count)
	sides := VertexCount(score)
	bounds := s.world.Bounds
	for i := 0; i < count; i++ {
		position := utils.Vector{
			X: utils.RandomRange(s.rng, bounds.MinX(), bounds.MaxX()),
			Y: utils.RandomRange(s.rng, bounds.Center().Y, bounds.MaxY()),
		}
		color := utils.RandomHue(s.rng, 1, 1, 1)
		s.wave.Add(NewEnemy(position, size, sides, color))
	}
	s.relaunch()
	s.presenter.RequestFeedback(StrengthSuccess)
	s.playSound(ToneBounce, 1)
	s.wave.Begin()
}

// relaunch puts the ball on the paddle and applies a fresh launch impulse.
func (s *Session) relaunch() {
	s.ball.Position = s.paddle.Position
	s.ball.Velocity = utils.Zero
	s.ball.ApplyImpulse(LaunchImpulse(s.rng), s.cfg.ImpulseScale)
}

func (s *Session) playSound(tone Tone, volume float64) {
	s.emphasis.Set(volume)
	s.presenter.RequestSound(tone, volume)
}

// OnTouchBegin grabs the paddle. A resting ball gets a launch impulse where
// it lies.
func (s *Session) OnTouchBegin(position utils.Vector) {
	if s.ball.IsResting() {
		s.ball.ApplyImpulse(LaunchImpulse(s.rng), s.cfg.ImpulseScale)
	}
	s.paddle.TouchBegin(position)
}

// OnTouchMove drags the paddle to sit TouchOffsetY above the finger.
func (s *Session) OnTouchMove(position utils.Vector) {
	target := position.Add(utils.Vector{Y: s.cfg.TouchOffsetY})
	s.paddle.TouchMove(target, s.cfg.RotationDamping, s.cfg.RotationDivisor)
}

func (s *Session) OnTouchEnd(utils.Vector) { s.paddle.TouchEnd() }

// Suspend silences the emphasis signal, as when the app goes to background.
func (s *Session) Suspend() { s.emphasis.Set(0) }

// SetBallMotion lets the physics host write back the integrated ball state.
func (s *Session) SetBallMotion(position, velocity utils.Vector) {
	s.ball.Position = position
	s.ball.Velocity = velocity
}

func (s *Session) Config() utils.Config { return s.cfg }
func (s *Session) Score() int           { return s.wave.Score() }
func (s *Session) Wave() int            { return s.wave.Number() }
func (s *Session) Phase() Phase         { return s.wave.Phase() }
func (s *Session) World() World         { return s.world }
func (s *Session) Ball() Ball           { return *s.ball }
func (s *Session) Paddle() Paddle       { return *s.paddle }
func (s *Session) Emphasis() float64    { return s.emphasis.Value }
func (s *Session) Frame() uint64        { return s.frame }
func (s *Session) Elapsed() float64     { return s.elapsed }
func (s *Session) LiveEnemies() int     { return s.wave.Live() }

// Enemies returns copies of the live enemies ordered by id.
func (s *Session) Enemies() []Enemy {
	live := s.wave.Enemies()
	out := make([]Enemy, len(live))
	for i, e := range live {
		out[i] = *e
	}
	return out
}

func (s *Session) Enemy(id int) (Enemy, bool) {
	e, ok := s.wave.Enemy(id)
	if !ok {
		return Enemy{}, false
	}
	return *e, true
}
