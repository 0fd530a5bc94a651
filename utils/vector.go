// File: utils/vector.go
package utils

import "math"

// Vector is a 2D point or displacement in world space.
type Vector struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Zero is the origin / null displacement.
var Zero = Vector{}

func NewVector(x, y float64) Vector { return Vector{X: x, Y: y} }

func (v Vector) Add(other Vector) Vector { return Vector{v.X + other.X, v.Y + other.Y} }

func (v Vector) Sub(other Vector) Vector { return Vector{v.X - other.X, v.Y - other.Y} }

func (v Vector) Scale(factor float64) Vector { return Vector{v.X * factor, v.Y * factor} }

// Mul multiplies component-wise.
func (v Vector) Mul(other Vector) Vector { return Vector{v.X * other.X, v.Y * other.Y} }

// Div divides component-wise. A zero component in other yields ±Inf or NaN like
// plain float division.
func (v Vector) Div(other Vector) Vector { return Vector{v.X / other.X, v.Y / other.Y} }

func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y} }

func (v Vector) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSquared avoids the square root for comparisons.
func (v Vector) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns a unit vector with the same direction, or the zero vector
// when v has no length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length}
}

// Angle is atan2(y, x) in [-π, π]; 0 points right.
func (v Vector) Angle() float64 { return math.Atan2(v.Y, v.X) }

func (v Vector) Distance(other Vector) float64 { return v.Sub(other).Length() }

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

func (s Size) Scale(factor float64) Size { return Size{s.Width * factor, s.Height * factor} }

// Vector reinterprets the size as a displacement.
func (s Size) Vector() Vector { return Vector{s.Width, s.Height} }

// Lerp interpolates between two scalars; t is not clamped.
func Lerp(a, b, t float64) float64 { return a + t*(b-a) }

func LerpVector(a, b Vector, t float64) Vector {
	return Vector{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

func LerpSize(a, b Size, t float64) Size {
	return Size{Lerp(a.Width, b.Width, t), Lerp(a.Height, b.Height, t)}
}

func LerpRect(a, b Rect, t float64) Rect {
	return Rect{Origin: LerpVector(a.Origin, b.Origin, t), Size: LerpSize(a.Size, b.Size, t)}
}

// Nearest returns the index and value of the candidate closest to point.
// Ties keep the earliest candidate. It returns -1 for an empty slice.
func Nearest(point Vector, candidates []Vector) (int, Vector) {
	best := -1
	bestDistance := math.Inf(1)
	for i, candidate := range candidates {
		d := candidate.Sub(point).LengthSquared()
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	if best < 0 {
		return -1, Vector{}
	}
	return best, candidates[best]
}

func ClampF(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
