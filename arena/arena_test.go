// File: arena/arena_test.go
package arena

import (
	"testing"

	"github.com/lguibr/updown/game"
	"github.com/lguibr/updown/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func newTestArena(t *testing.T, cfg utils.Config) (*Arena, *game.Queue) {
	t.Helper()
	queue := game.NewQueue()
	session := game.NewSession(cfg, utils.NewRandom(1), queue)
	return New(session), queue
}

func countRequests(requests []game.Request, kind game.EffectKind, strength game.Strength) int {
	n := 0
	for _, r := range requests {
		if (kind != "" && r.Kind == kind) || (strength != "" && r.Strength == strength) {
			n++
		}
	}
	return n
}

func TestTickIntegratesGravity(t *testing.T) {
	cfg := utils.DefaultConfig()
	a, _ := newTestArena(t, cfg)
	a.Session().SetBallMotion(utils.NewVector(100, -250), utils.Zero)

	a.Tick(frame)

	ball := a.Session().Ball()
	assert.InDelta(t, cfg.GravityY*frame, ball.Velocity.Y, 1e-9)
	assert.InDelta(t, -250+cfg.GravityY*frame*frame, ball.Position.Y, 1e-9)
	assert.Equal(t, 100.0, ball.Position.X)
}

func TestTickDestroysTouchedEnemy(t *testing.T) {
	a, queue := newTestArena(t, utils.DefaultConfig())
	queue.Drain()
	a.Session().SetBallMotion(utils.Zero, utils.Zero)

	a.Tick(frame)

	s := a.Session()
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 2, s.LiveEnemies(), "the cleared wave is respawned within the same tick")
	assert.Equal(t, 2, s.Wave())
	assert.Equal(t, 1, countRequests(queue.Drain(), game.EffectEnemyDestroyed, ""))
}

func TestTickDropsContactsOfDestroyedEnemy(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GravityY = 0
	cfg.EnemyCoverage = 0.05
	a, _ := newTestArena(t, cfg)
	s := a.Session()
	world := s.World().Bounds

	// Clear the opening wave, then park the two new enemies in the bottom
	// corners, away from the paddle and from each other.
	for _, e := range s.Enemies() {
		s.OnContact(game.BallBody(), e.Body(), e.Position)
	}
	s.Step(frame)
	require.Equal(t, 2, s.LiveEnemies())
	s.OnContact(game.EnemyBody(0), game.EdgeBody(utils.EdgeLeft), utils.NewVector(world.MinX()+1, world.MinY()+1))
	s.OnContact(game.EnemyBody(1), game.EdgeBody(utils.EdgeRight), utils.NewVector(world.MaxX()-1, world.MinY()+1))

	target, ok := s.Enemy(0)
	require.True(t, ok)
	s.SetBallMotion(target.Position, utils.Zero)
	a.Tick(frame)

	assert.Equal(t, 2, s.Score())
	assert.Equal(t, 1, s.LiveEnemies())
	assert.Empty(t, a.tracker.ActiveFor(game.EnemyBody(0)))
	assert.Equal(t, 0, a.ActiveContacts())

	s.SetBallMotion(target.Position, utils.Zero)
	a.Tick(frame)
	assert.Equal(t, 2, s.Score(), "a destroyed enemy is not hit again")
}

func TestTickPaddleBounce(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GravityY = 0
	a, queue := newTestArena(t, cfg)
	queue.Drain()

	paddle := a.Session().Paddle()
	start := paddle.Position.Add(utils.NewVector(0, cfg.PaddleHeight/2+5))
	a.Session().SetBallMotion(start, utils.NewVector(30, -100))

	a.Tick(frame)

	ball := a.Session().Ball()
	assert.InDelta(t, 100*cfg.PaddleRestitution, ball.Velocity.Y, 1e-9)
	assert.Equal(t, 30.0, ball.Velocity.X)
	requests := queue.Drain()
	assert.Equal(t, 1, countRequests(requests, game.EffectPaddleShake, ""))
	assert.Equal(t, 1, countRequests(requests, "", game.StrengthMedium))
}

func TestTickPaddleBounceIsCapped(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GravityY = 0
	a, _ := newTestArena(t, cfg)

	paddle := a.Session().Paddle()
	a.Session().SetBallMotion(paddle.Position.Add(utils.NewVector(0, 30)), utils.NewVector(0, -1000))

	a.Tick(frame)

	assert.InDelta(t, cfg.MaxBallSpeed, a.Session().Ball().Velocity.Length(), 1e-6)
}

func TestTickReportsContactOncePerBegin(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GravityY = 0
	a, queue := newTestArena(t, cfg)
	queue.Drain()
	s := a.Session()
	onPaddle := s.Paddle().Position.Add(utils.NewVector(0, 10))

	s.SetBallMotion(onPaddle, utils.Zero)
	a.Tick(frame)
	a.Tick(frame)
	a.Tick(frame)
	assert.Equal(t, 1, countRequests(queue.Drain(), game.EffectPaddleShake, ""))

	s.SetBallMotion(utils.NewVector(100, -250), utils.Zero)
	a.Tick(frame)
	assert.Zero(t, countRequests(queue.Drain(), game.EffectPaddleShake, ""))

	s.SetBallMotion(onPaddle, utils.Zero)
	a.Tick(frame)
	assert.Equal(t, 1, countRequests(queue.Drain(), game.EffectPaddleShake, ""))
}

func TestTickWallBounce(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.GravityY = 0
	a, queue := newTestArena(t, cfg)
	queue.Drain()
	s := a.Session()
	world := s.World().Bounds

	s.SetBallMotion(utils.NewVector(world.MinX()+3, -300), utils.NewVector(-100, 0))
	a.Tick(frame)

	ball := s.Ball()
	assert.Equal(t, 100.0, ball.Velocity.X)
	assert.True(t, s.World().Contains(ball.Position))
	requests := queue.Drain()
	assert.Equal(t, 1, countRequests(requests, game.EffectBorderShake, ""))
	assert.Equal(t, 1, countRequests(requests, "", game.StrengthLight))
}

func TestTickKeepsEnemiesInside(t *testing.T) {
	a, _ := newTestArena(t, utils.DefaultConfig())
	s := a.Session()

	// Clear a few waves so enemies spawn near the edges.
	for round := 0; round < 3; round++ {
		for _, e := range s.Enemies() {
			s.OnContact(game.BallBody(), e.Body(), e.Position)
		}
		s.Step(frame)
	}
	require.Greater(t, s.LiveEnemies(), 1)

	for i := 0; i < 10; i++ {
		s.SetBallMotion(utils.NewVector(0, -250), utils.Zero)
		a.Tick(frame)
	}
	for _, e := range s.Enemies() {
		assert.True(t, s.World().Contains(e.Position), "enemy %d at %v", e.ID, e.Position)
	}
}

func TestCrossedEdges(t *testing.T) {
	world := utils.NewCenteredRect(utils.Zero, utils.Size{Width: 100, Height: 100})
	testCases := []struct {
		name     string
		inner    utils.Rect
		expected []utils.Edge
	}{
		{"inside", utils.NewCenteredRect(utils.Zero, utils.Size{Width: 10, Height: 10}), []utils.Edge{}},
		{"left", utils.NewCenteredRect(utils.NewVector(-48, 0), utils.Size{Width: 10, Height: 10}), []utils.Edge{utils.EdgeLeft}},
		{"top right", utils.NewCenteredRect(utils.NewVector(48, 48), utils.Size{Width: 10, Height: 10}), []utils.Edge{utils.EdgeRight, utils.EdgeTop}},
		{"too wide", utils.NewCenteredRect(utils.NewVector(0, -48), utils.Size{Width: 200, Height: 10}), []utils.Edge{utils.EdgeBottom}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, crossedEdges(tc.inner, world))
		})
	}
}

func TestCircleHitsRect(t *testing.T) {
	rect := utils.NewCenteredRect(utils.Zero, utils.Size{Width: 10, Height: 10})

	point, ok := circleHitsRect(utils.NewVector(8, 0), 3, rect)
	assert.True(t, ok)
	assert.Equal(t, utils.NewVector(5, 0), point)

	_, ok = circleHitsRect(utils.NewVector(8, 8), 3, rect)
	assert.False(t, ok, "corner distance is sqrt(18)")

	point, ok = circleHitsRect(utils.NewVector(1, 1), 1, rect)
	assert.True(t, ok)
	assert.Equal(t, utils.NewVector(1, 1), point)
}
