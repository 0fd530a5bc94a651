// File: utils/random.go
package utils

import (
	"math/rand"
	"time"
)

// Random is the subset of *rand.Rand the simulation draws from. Tests swap in
// scripted sources.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded source; seed 0 seeds from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomBool is a fair coin flip.
func RandomBool(r Random) bool { return r.Intn(2) == 0 }

// RandomRange draws uniformly from [min, max).
func RandomRange(r Random, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// RandomIntRange draws uniformly from the closed range [min, max].
func RandomIntRange(r Random, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
