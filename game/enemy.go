// File: game/enemy.go
package game

import (
	"math"

	"github.com/lguibr/updown/utils"
)

// Enemy is a regular polygon target. Size is the side of its square bounds.
type Enemy struct {
	ID       int          `json:"id"`
	Position utils.Vector `json:"position"`
	Size     float64      `json:"size"`
	Sides    int          `json:"sides"`
	Color    utils.Color  `json:"color"`
	Alive    bool         `json:"alive"`
}

// VertexCount is the polygon vertex count used for enemies spawned at score.
// Higher scores produce rounder enemies.
func VertexCount(score int) int {
	return int(math.Round(float64(score+100) / 25))
}

func NewEnemy(position utils.Vector, size float64, sides int, color utils.Color) *Enemy {
	return &Enemy{
		Position: position,
		Size:     size,
		Sides:    sides,
		Color:    color,
		Alive:    true,
	}
}

func (e *Enemy) Body() Body { return EnemyBody(e.ID) }

func (e *Enemy) Bounds() utils.Rect {
	return utils.NewCenteredRect(e.Position, utils.Size{Width: e.Size, Height: e.Size})
}

// Vertices returns the polygon outline in world space. Vertex i sits at
// 360/n*i + 45 degrees on the circle inscribed in the bounds.
func (e *Enemy) Vertices() []utils.Vector {
	if e.Sides <= 0 {
		return nil
	}
	radius := e.Size / 2
	step := 360 / float64(e.Sides)
	vertices := make([]utils.Vector, e.Sides)
	for i := range vertices {
		angle := (step*float64(i) + 45) * utils.DegreesToRadians
		vertices[i] = e.Position.Add(utils.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(radius))
	}
	return vertices
}
