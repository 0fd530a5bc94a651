// File: utils/constants.go
package utils

import "math"

const (
	PointsPerMeter  = 150
	StandardGravity = 9.8

	// DegreesToRadians converts polygon vertex angles.
	DegreesToRadians = math.Pi / 180
)
