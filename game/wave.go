// File: game/wave.go
package game

import "sort"

// Phase of the wave state machine.
type Phase string

const (
	PhaseInWave      Phase = "inWave"
	PhaseWaveCleared Phase = "waveCleared"
)

// Wave owns the score and the live enemies, keyed by spawn index.
type Wave struct {
	score     int
	number    int
	phase     Phase
	nextIndex int
	enemies   map[int]*Enemy
}

func NewWave() *Wave {
	return &Wave{
		number:  1,
		phase:   PhaseInWave,
		enemies: make(map[int]*Enemy),
	}
}

func (w *Wave) Score() int   { return w.score }
func (w *Wave) Number() int  { return w.number }
func (w *Wave) Phase() Phase { return w.phase }
func (w *Wave) Live() int    { return len(w.enemies) }

// Add assigns the next spawn index to e and makes it live.
func (w *Wave) Add(e *Enemy) int {
	e.ID = w.nextIndex
	e.Alive = true
	w.enemies[e.ID] = e
	w.nextIndex++
	return e.ID
}

func (w *Wave) Enemy(id int) (*Enemy, bool) {
	e, ok := w.enemies[id]
	return e, ok
}

// Destroy removes a live enemy and scores a point. Unknown ids change nothing.
func (w *Wave) Destroy(id int) (*Enemy, bool) {
	e, ok := w.enemies[id]
	if !ok {
		return nil, false
	}
	delete(w.enemies, id)
	e.Alive = false
	w.score++
	w.CheckCleared()
	return e, true
}

// CheckCleared moves to PhaseWaveCleared once no enemy is left.
func (w *Wave) CheckCleared() bool {
	if len(w.enemies) == 0 {
		w.phase = PhaseWaveCleared
	}
	return w.phase == PhaseWaveCleared
}

// Restart empties the wave and rewinds the spawn index for a new batch.
func (w *Wave) Restart() {
	w.nextIndex = 0
	for id := range w.enemies {
		delete(w.enemies, id)
	}
}

// Begin returns to PhaseInWave after a batch was spawned.
func (w *Wave) Begin() {
	w.phase = PhaseInWave
	w.number++
}

// Enemies returns the live enemies ordered by spawn index.
func (w *Wave) Enemies() []*Enemy {
	list := make([]*Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
