package game

import (
	"testing"

	"github.com/lguibr/updown/utils"
)

// scriptedRandom replays fixed draws in a loop. Empty scripts return 0 for
// Intn (every coin flip lands true) and 0.5 for Float64.
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// newTestSession builds a session with default config, a scripted random
// source and a fresh queue, with the startup requests already drained.
func newTestSession(t *testing.T) (*Session, *Queue) {
	t.Helper()
	queue := NewQueue()
	s := NewSession(utils.DefaultConfig(), &scriptedRandom{}, queue)
	queue.Drain()
	return s, queue
}

func requestTypes(requests []Request) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		switch r.Type {
		case RequestFeedback:
			out[i] = "feedback:" + string(r.Strength)
		case RequestEffect:
			out[i] = "effect:" + string(r.Kind)
		case RequestSound:
			out[i] = "sound"
		}
	}
	return out
}
