// File: utils/rect.go
package utils

// Edge names a side of a rectangle. The order is also the tie-break order of
// nearest-edge queries.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

var edgeNames = [...]string{"left", "right", "top", "bottom"}

func (e Edge) String() string {
	if e < EdgeLeft || e > EdgeBottom {
		return "unknown"
	}
	return edgeNames[e]
}

// Rect is an axis-aligned rectangle. Origin is the minimum corner; Y grows up.
type Rect struct {
	Origin Vector `json:"origin"`
	Size   Size   `json:"size"`
}

// NewCenteredRect builds a rectangle of the given size centered on center.
func NewCenteredRect(center Vector, size Size) Rect {
	return Rect{
		Origin: Vector{center.X - size.Width/2, center.Y - size.Height/2},
		Size:   size,
	}
}

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

func (r Rect) Center() Vector {
	return Vector{r.Origin.X + r.Size.Width/2, r.Origin.Y + r.Size.Height/2}
}

// Contains is half-open: the minimum edges belong to the rectangle, the
// maximum edges do not.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

func (r Rect) Left() Vector   { return Vector{r.MinX(), r.Center().Y} }
func (r Rect) Right() Vector  { return Vector{r.MaxX(), r.Center().Y} }
func (r Rect) Top() Vector    { return Vector{r.Center().X, r.MaxY()} }
func (r Rect) Bottom() Vector { return Vector{r.Center().X, r.MinY()} }

// EdgeMidpoint returns the midpoint of the named side.
func (r Rect) EdgeMidpoint(e Edge) Vector {
	switch e {
	case EdgeLeft:
		return r.Left()
	case EdgeRight:
		return r.Right()
	case EdgeTop:
		return r.Top()
	default:
		return r.Bottom()
	}
}

// EdgeMidpoints lists the side midpoints as left, right, top, bottom.
func (r Rect) EdgeMidpoints() []Vector {
	return []Vector{r.Left(), r.Right(), r.Top(), r.Bottom()}
}

// NearestEdge picks the side whose midpoint is closest to p.
func (r Rect) NearestEdge(p Vector) (Edge, Vector) {
	index, midpoint := Nearest(p, r.EdgeMidpoints())
	return Edge(index), midpoint
}

// Inset shrinks the rectangle by margin on every side. Margins larger than half
// a dimension collapse that dimension onto the center line.
func (r Rect) Inset(margin float64) Rect {
	center := r.Center()
	w := r.Size.Width - 2*margin
	h := r.Size.Height - 2*margin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return NewCenteredRect(center, Size{w, h})
}

// Clamp moves p onto the closed rectangle.
func (r Rect) Clamp(p Vector) Vector {
	return Vector{ClampF(p.X, r.MinX(), r.MaxX()), ClampF(p.Y, r.MinY(), r.MaxY())}
}
