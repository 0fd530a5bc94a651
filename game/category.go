// File: game/category.go
package game

import (
	"strconv"

	"github.com/lguibr/updown/utils"
)

// Category is the semantic role of a body in a contact event.
type Category int

const (
	CategoryWorld Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryBall
	CategoryEdge
)

var categoryNames = [...]string{"world", "player", "enemy", "ball", "edge"}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

func (c Category) Valid() bool { return c >= CategoryWorld && c <= CategoryEdge }

// precedence orders categories for dispatch: the lowest value handles the pair.
func (c Category) precedence() int {
	switch c {
	case CategoryEnemy:
		return 0
	case CategoryPlayer:
		return 1
	case CategoryBall:
		return 2
	case CategoryEdge:
		return 3
	case CategoryWorld:
		return 4
	default:
		return 5
	}
}

// Body identifies one side of a contact. ID is the enemy spawn index or the
// boundary edge; singletons ignore it.
type Body struct {
	Category Category `json:"category"`
	ID       int      `json:"id"`
}

func WorldBody() Body  { return Body{Category: CategoryWorld} }
func PlayerBody() Body { return Body{Category: CategoryPlayer} }
func BallBody() Body   { return Body{Category: CategoryBall} }

func EnemyBody(id int) Body { return Body{Category: CategoryEnemy, ID: id} }

func EdgeBody(edge utils.Edge) Body { return Body{Category: CategoryEdge, ID: int(edge)} }

func (b Body) String() string {
	switch b.Category {
	case CategoryEnemy:
		return "enemy#" + strconv.Itoa(b.ID)
	case CategoryEdge:
		return "edge:" + utils.Edge(b.ID).String()
	default:
		return b.Category.String()
	}
}
