// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickPeriod      time.Duration `json:"tickPeriod" toml:"tick_period"`           // Time between simulation frames
	BroadcastPeriod time.Duration `json:"broadcastPeriod" toml:"broadcast_period"` // Time between snapshot broadcasts
	Seed            int64         `json:"seed" toml:"seed"`                        // Random seed, 0 seeds from the clock

	// Scene & World
	SceneWidth  float64 `json:"sceneWidth" toml:"scene_width"`   // Scene size in points
	SceneHeight float64 `json:"sceneHeight" toml:"scene_height"` // Scene size in points
	WorldScale  float64 `json:"worldScale" toml:"world_scale"`   // World bounds relative to the scene
	GravityY    float64 `json:"gravityY" toml:"gravity_y"`       // Vertical acceleration applied to the ball (points/s²)

	// Ball
	BallSize          float64 `json:"ballSize" toml:"ball_size"`                    // Visual square size
	BallContactRadius float64 `json:"ballContactRadius" toml:"ball_contact_radius"` // Contact-only circle, larger than the visual size
	ImpulseScale      float64 `json:"impulseScale" toml:"impulse_scale"`            // Velocity gained per launch impulse unit
	MaxBallSpeed      float64 `json:"maxBallSpeed" toml:"max_ball_speed"`           // Speed cap applied by the arena after paddle hits

	// Paddle
	PaddleWidth       float64 `json:"paddleWidth" toml:"paddle_width"`
	PaddleHeight      float64 `json:"paddleHeight" toml:"paddle_height"`
	PaddleOffset      float64 `json:"paddleOffset" toml:"paddle_offset"`           // Distance from the bottom of the world
	PaddleRestitution float64 `json:"paddleRestitution" toml:"paddle_restitution"` // Bounce multiplier on paddle hits
	TouchOffsetY      float64 `json:"touchOffsetY" toml:"touch_offset_y"`          // Paddle sits this far above a dragging finger
	RotationDamping   float64 `json:"rotationDamping" toml:"rotation_damping"`     // Lerp factor toward the target rotation
	RotationDivisor   float64 `json:"rotationDivisor" toml:"rotation_divisor"`     // Target rotation is the drag angle divided by this

	// Enemies & Effects
	EnemyCoverage float64 `json:"enemyCoverage" toml:"enemy_coverage"` // Enemy size = world width * coverage / (score + 1)
	EmphasisDecay float64 `json:"emphasisDecay" toml:"emphasis_decay"` // Per-frame decay of the sound emphasis

	// Server
	ServerAddr string `json:"serverAddr" toml:"server_addr"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		TickPeriod:      16 * time.Millisecond,
		BroadcastPeriod: 33 * time.Millisecond,
		Seed:            0,

		// Scene & World
		SceneWidth:  390,
		SceneHeight: 844,
		WorldScale:  0.92,
		GravityY:    -StandardGravity * PointsPerMeter / 4,

		// Ball
		BallSize:          17,
		BallContactRadius: 20,
		ImpulseScale:      30,
		MaxBallSpeed:      1200,

		// Paddle
		PaddleWidth:       115,
		PaddleHeight:      15,
		PaddleOffset:      50,
		PaddleRestitution: 2,
		TouchOffsetY:      30,
		RotationDamping:   0.1,
		RotationDivisor:   4,

		// Enemies & Effects
		EnemyCoverage: 0.8,
		EmphasisDecay: 0.6,

		ServerAddr: ":3001",
	}
}

// SceneSize returns the scene dimensions.
func (c Config) SceneSize() Size { return Size{Width: c.SceneWidth, Height: c.SceneHeight} }

// WorldSize returns the playable area, the scene scaled by WorldScale.
func (c Config) WorldSize() Size { return c.SceneSize().Scale(c.WorldScale) }

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.TickPeriod > 0, "tick_period must be positive, got %s", c.TickPeriod)
	check(c.BroadcastPeriod > 0, "broadcast_period must be positive, got %s", c.BroadcastPeriod)
	check(c.SceneWidth > 0 && c.SceneHeight > 0, "scene size must be positive, got %vx%v", c.SceneWidth, c.SceneHeight)
	check(c.WorldScale > 0 && c.WorldScale <= 1, "world_scale must be in (0, 1], got %v", c.WorldScale)
	check(c.BallSize > 0, "ball_size must be positive, got %v", c.BallSize)
	check(c.BallContactRadius > 0, "ball_contact_radius must be positive, got %v", c.BallContactRadius)
	check(c.ImpulseScale > 0, "impulse_scale must be positive, got %v", c.ImpulseScale)
	check(c.MaxBallSpeed > 0, "max_ball_speed must be positive, got %v", c.MaxBallSpeed)
	check(c.PaddleWidth > 0 && c.PaddleHeight > 0, "paddle size must be positive, got %vx%v", c.PaddleWidth, c.PaddleHeight)
	check(c.PaddleRestitution > 0, "paddle_restitution must be positive, got %v", c.PaddleRestitution)
	check(c.RotationDamping >= 0 && c.RotationDamping <= 1, "rotation_damping must be in [0, 1], got %v", c.RotationDamping)
	check(c.RotationDivisor != 0, "rotation_divisor must not be zero")
	check(c.EnemyCoverage > 0, "enemy_coverage must be positive, got %v", c.EnemyCoverage)
	check(c.EmphasisDecay >= 0 && c.EmphasisDecay < 1, "emphasis_decay must be in [0, 1), got %v", c.EmphasisDecay)

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return cfg, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
