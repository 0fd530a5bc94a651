// File: game/world.go
package game

import (
	"math"

	"github.com/lguibr/updown/utils"
)

// World is the fixed playable rectangle of a session.
type World struct {
	Bounds utils.Rect `json:"bounds"`
}

// NewWorld centers a world of the given size on the origin.
func NewWorld(size utils.Size) World {
	return World{Bounds: utils.NewCenteredRect(utils.Zero, size)}
}

func (w World) Body() Body { return WorldBody() }

func (w World) Center() utils.Vector { return w.Bounds.Center() }

func (w World) Contains(p utils.Vector) bool { return w.Bounds.Contains(p) }

// Contain pulls an escaped ball back in. The ball lands a quarter of the way
// from the center to the nearest edge midpoint, shifted by its offset from that
// midpoint and kept half its size away from the bounds, and its velocity is
// reversed, so a resting ball stays at rest. It reports whether a correction
// happened.
func (w World) Contain(b *Ball) bool {
	if w.Contains(b.Position) {
		return false
	}
	center := w.Center()
	_, midpoint := w.Bounds.NearestEdge(b.Position)
	offset := midpoint.Sub(b.Position)
	target := center.Add(midpoint.Sub(center).Scale(0.25)).Add(offset)
	b.Position = w.KeepInside(w.Bounds.Inset(b.Size/2).Clamp(target))
	b.Reverse()
	return true
}

// KeepInside clamps p onto the bounds and nudges points on a maximum edge
// just inside, so the result always satisfies Contains.
func (w World) KeepInside(p utils.Vector) utils.Vector {
	p = w.Bounds.Clamp(p)
	if p.X >= w.Bounds.MaxX() {
		p.X = math.Nextafter(w.Bounds.MaxX(), w.Bounds.MinX())
	}
	if p.Y >= w.Bounds.MaxY() {
		p.Y = math.Nextafter(w.Bounds.MaxY(), w.Bounds.MinY())
	}
	return p
}
