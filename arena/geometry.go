// File: arena/geometry.go
package arena

import (
	"math"

	"github.com/lguibr/updown/utils"
)

// circleHitsRect reports whether a circle overlaps a rectangle, returning the
// point of the rectangle closest to the circle center.
func circleHitsRect(center utils.Vector, radius float64, rect utils.Rect) (utils.Vector, bool) {
	closest := rect.Clamp(center)
	if closest.Sub(center).LengthSquared() <= radius*radius {
		return closest, true
	}
	return closest, false
}

// crossedEdges lists the world edges that inner pokes through. Axes on which
// inner is larger than the world are skipped: it cannot be pushed clear of
// both sides at once.
func crossedEdges(inner, world utils.Rect) []utils.Edge {
	edges := make([]utils.Edge, 0, 2)
	if inner.Size.Width < world.Size.Width {
		if inner.MinX() < world.MinX() {
			edges = append(edges, utils.EdgeLeft)
		}
		if inner.MaxX() > world.MaxX() {
			edges = append(edges, utils.EdgeRight)
		}
	}
	if inner.Size.Height < world.Size.Height {
		if inner.MaxY() > world.MaxY() {
			edges = append(edges, utils.EdgeTop)
		}
		if inner.MinY() < world.MinY() {
			edges = append(edges, utils.EdgeBottom)
		}
	}
	return edges
}

// edgePoint projects p onto the line of a world edge, within the edge span.
func edgePoint(world utils.Rect, edge utils.Edge, p utils.Vector) utils.Vector {
	p = world.Clamp(p)
	switch edge {
	case utils.EdgeLeft:
		p.X = world.MinX()
	case utils.EdgeRight:
		p.X = world.MaxX()
	case utils.EdgeTop:
		p.Y = world.MaxY()
	case utils.EdgeBottom:
		p.Y = world.MinY()
	}
	return p
}

// capSpeed scales v down to max when it is faster.
func capSpeed(v utils.Vector, max float64) utils.Vector {
	speed := v.Length()
	if speed <= max || speed == 0 {
		return v
	}
	return v.Scale(max / speed)
}

// reflectInto makes the velocity of a square of the given half size point back
// into world on every axis where the square pokes out. It reports whether any
// component was changed.
func reflectInto(position, velocity utils.Vector, half float64, world utils.Rect) (utils.Vector, bool) {
	hit := false
	if position.X-half < world.MinX() && velocity.X < 0 {
		velocity.X = math.Abs(velocity.X)
		hit = true
	}
	if position.X+half > world.MaxX() && velocity.X > 0 {
		velocity.X = -math.Abs(velocity.X)
		hit = true
	}
	if position.Y-half < world.MinY() && velocity.Y < 0 {
		velocity.Y = math.Abs(velocity.Y)
		hit = true
	}
	if position.Y+half > world.MaxY() && velocity.Y > 0 {
		velocity.Y = -math.Abs(velocity.Y)
		hit = true
	}
	return velocity, hit
}
