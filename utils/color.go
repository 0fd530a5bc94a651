// File: utils/color.go
package utils

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is hue/saturation/brightness/alpha, every channel in [0, 1].
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var (
	ColorRed   = Color{H: 0, S: 1, B: 1, A: 1}
	ColorWhite = Color{H: 0, S: 0, B: 1, A: 1}
	ColorBlack = Color{H: 0, S: 0, B: 0, A: 1}
)

// RandomHue picks a uniformly random hue with the given saturation, brightness
// and alpha.
func RandomHue(r Random, saturation, brightness, alpha float64) Color {
	return Color{H: r.Float64(), S: saturation, B: brightness, A: alpha}
}

// WithHue keeps the hue of c and replaces the other channels.
func (c Color) WithHue(saturation, brightness, alpha float64) Color {
	return Color{H: c.H, S: saturation, B: brightness, A: alpha}
}

// RGB converts to 8-bit red, green and blue; alpha is dropped. Hue wraps
// around [0, 1).
func (c Color) RGB() [3]int {
	h := math.Mod(c.H, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	r, g, b := colorful.Hsv(h*360, ClampF(c.S, 0, 1), ClampF(c.B, 0, 1)).RGB255()
	return [3]int{int(r), int(g), int(b)}
}
