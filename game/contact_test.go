package game

import (
	"testing"

	"github.com/lguibr/updown/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTable(t *testing.T) {
	all := []Body{WorldBody(), PlayerBody(), EnemyBody(3), BallBody(), EdgeBody(utils.EdgeTop)}
	expected := map[[2]Category]Interaction{
		{CategoryEnemy, CategoryBall}:    InteractionEnemyBall,
		{CategoryEnemy, CategoryEdge}:    InteractionEnemyEdge,
		{CategoryPlayer, CategoryBall}:   InteractionPlayer,
		{CategoryPlayer, CategoryWorld}:  InteractionPlayer,
		{CategoryPlayer, CategoryEdge}:   InteractionPlayer,
		{CategoryPlayer, CategoryPlayer}: InteractionPlayer,
		{CategoryBall, CategoryWorld}:    InteractionBallWorld,
	}

	for _, a := range all {
		for _, b := range all {
			a, b := a, b
			t.Run(a.String()+"_"+b.String(), func(t *testing.T) {
				want, ok := expected[[2]Category{a.Category, b.Category}]
				if !ok {
					want, ok = expected[[2]Category{b.Category, a.Category}]
				}
				if !ok {
					want = InteractionNone
				}
				assert.Equal(t, want, Classify(a, b).Interaction)
				assert.Equal(t, Classify(a, b).Interaction, Classify(b, a).Interaction, "classification must be symmetric")
			})
		}
	}
}

func TestClassifyPrimaryIsHighestPrecedence(t *testing.T) {
	c := Classify(BallBody(), EnemyBody(7))
	assert.Equal(t, EnemyBody(7), c.Primary)
	assert.Equal(t, BallBody(), c.Other)

	c = Classify(WorldBody(), PlayerBody())
	assert.Equal(t, PlayerBody(), c.Primary)
}

func TestClassifyUnknownCategory(t *testing.T) {
	bogus := Body{Category: Category(42)}
	assert.Equal(t, InteractionNone, Classify(bogus, BallBody()).Interaction)
	assert.Equal(t, InteractionNone, Classify(PlayerBody(), bogus).Interaction)
	assert.Equal(t, "unknown", bogus.Category.String())
}

func TestOnContactEnemyBall(t *testing.T) {
	s, queue := newTestSession(t)
	before := s.Ball().Velocity
	point := utils.NewVector(3, 4)

	s.OnContact(BallBody(), EnemyBody(0), point)

	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 0, s.LiveEnemies())
	assert.Equal(t, PhaseWaveCleared, s.Phase())
	// Scripted coin flips always land true, so both axes flip.
	assert.Equal(t, before.Neg(), s.Ball().Velocity)
	assert.Equal(t, 1.0, s.Emphasis())

	requests := queue.Drain()
	assert.Equal(t, []string{
		"feedback:selection",
		"sound",
		"effect:spark",
		"effect:enemyDestroyed",
		"feedback:heavy",
	}, requestTypes(requests))

	destroyed := requests[3]
	require.NotNil(t, destroyed.Position)
	require.NotNil(t, destroyed.Color)
	assert.Equal(t, utils.Zero, *destroyed.Position)
	assert.Equal(t, utils.ColorRed, *destroyed.Color)
	assert.Equal(t, point, *requests[2].Position)
}

func TestOnContactStaleEnemyIsNoOp(t *testing.T) {
	s, queue := newTestSession(t)
	s.OnContact(EnemyBody(0), BallBody(), utils.Zero)
	queue.Drain()
	velocity := s.Ball().Velocity

	s.OnContact(EnemyBody(0), BallBody(), utils.Zero)
	s.OnContact(BallBody(), EnemyBody(99), utils.Zero)
	s.OnContact(EnemyBody(99), EdgeBody(utils.EdgeLeft), utils.Zero)

	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 0, s.LiveEnemies())
	assert.Equal(t, velocity, s.Ball().Velocity)
	assert.Empty(t, queue.Drain())
}

func TestOnContactEnemyEdge(t *testing.T) {
	s, queue := newTestSession(t)
	s.OnContact(EnemyBody(0), BallBody(), utils.Zero)
	s.Step(1.0 / 60)
	require.Equal(t, 2, s.LiveEnemies())
	queue.Drain()

	enemy, ok := s.Enemy(0)
	require.True(t, ok)
	bounds := s.World().Bounds

	t.Run("point inside moves toward center", func(t *testing.T) {
		point := utils.NewVector(bounds.MinX(), 10)
		s.OnContact(EdgeBody(utils.EdgeLeft), EnemyBody(0), point)

		moved, _ := s.Enemy(0)
		assert.InDelta(t, bounds.MinX()+enemy.Size, moved.Position.X, 1e-9)
		assert.InDelta(t, 10-enemy.Size, moved.Position.Y, 1e-9)
		assert.True(t, s.World().Contains(moved.Position))
		assert.Equal(t, []string{"feedback:selection", "sound"}, requestTypes(queue.Drain()))
	})

	t.Run("large step stays inside", func(t *testing.T) {
		point := utils.NewVector(bounds.MaxX()-1, bounds.MaxY()-1)
		big := s.wave.enemies[1]
		big.Size = 10 * bounds.Size.Height
		s.OnContact(EnemyBody(1), EdgeBody(utils.EdgeTop), point)

		moved, _ := s.Enemy(1)
		assert.True(t, s.World().Contains(moved.Position))
		assert.Equal(t, bounds.MinX(), moved.Position.X)
		assert.Equal(t, bounds.MinY(), moved.Position.Y)
	})

	t.Run("point outside resets to center", func(t *testing.T) {
		s.OnContact(EnemyBody(0), EdgeBody(utils.EdgeRight), utils.NewVector(bounds.MaxX()+50, 0))
		moved, _ := s.Enemy(0)
		assert.Equal(t, s.World().Center(), moved.Position)
	})

	assert.Equal(t, 1, s.Score())
}

func TestOnContactBallWorld(t *testing.T) {
	s, queue := newTestSession(t)
	ball := s.Ball()

	s.OnContact(WorldBody(), BallBody(), utils.NewVector(0, 100))

	assert.Equal(t, ball, s.Ball())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, []string{
		"feedback:selection",
		"sound",
		"effect:spark",
		"feedback:light",
		"effect:borderShake",
	}, requestTypes(queue.Drain()))
}

func TestOnContactPlayer(t *testing.T) {
	testCases := []struct {
		name     string
		other    Body
		expected []string
	}{
		{
			name:  "ball",
			other: BallBody(),
			expected: []string{
				"feedback:selection", "sound", "effect:spark", "effect:paddleShake", "feedback:medium",
			},
		},
		{
			name:     "world",
			other:    WorldBody(),
			expected: []string{"feedback:selection", "sound", "effect:paddleShake"},
		},
		{
			name:     "edge",
			other:    EdgeBody(utils.EdgeBottom),
			expected: []string{"feedback:selection", "sound", "effect:paddleShake"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, queue := newTestSession(t)
			paddle := s.Paddle()
			s.OnContact(tc.other, PlayerBody(), utils.Zero)

			assert.Equal(t, tc.expected, requestTypes(queue.Drain()))
			assert.Equal(t, paddle, s.Paddle())
		})
	}
}

func TestOnContactUnrecognizedPair(t *testing.T) {
	s, queue := newTestSession(t)
	s.OnContact(BallBody(), EdgeBody(utils.EdgeLeft), utils.Zero)
	s.OnContact(WorldBody(), WorldBody(), utils.Zero)
	s.OnContact(Body{Category: Category(-1)}, BallBody(), utils.Zero)

	assert.Empty(t, queue.Drain())
	assert.Equal(t, 0.0, s.Emphasis())
}
