// File: utils/polygon.go
package utils

// PolygonContains tests p against a simple polygon by ray casting. Points on
// an edge may fall either way.
func PolygonContains(vertices []Vector, p Vector) bool {
	inside := false
	for i, j := 0, len(vertices)-1; i < len(vertices); j, i = i, i+1 {
		a, b := vertices[i], vertices[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
