// File: utils/decay.go
package utils

// Decay is a scalar that shrinks geometrically toward zero, one Step at a time.
type Decay struct {
	Value  float64 `json:"value"`
	Factor float64 `json:"factor"`
}

func NewDecay(factor float64) Decay { return Decay{Factor: factor} }

// Set replaces the current value.
func (d *Decay) Set(value float64) { d.Value = value }

// Step multiplies the value by Factor while it is above zero.
func (d *Decay) Step() {
	if d.Value > 0 {
		d.Value *= d.Factor
	}
}
