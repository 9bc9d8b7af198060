package decision

import "math"

// Score is a probability-like value in [0,1].
//
// Invariants:
//   - Value is always between 0.0 and 1.0 inclusive
//   - NaN inputs become the neutral 0.5
type Score struct {
	value float64
}

// Neutral is the maximum-uncertainty score.
var Neutral = Score{value: 0.5}

// NewScore clamps v into [0,1]. Out-of-range signals are saturated rather
// than rejected because upstream scores are untrusted.
func NewScore(v float64) Score {
	switch {
	case math.IsNaN(v):
		return Neutral
	case v < 0:
		return Score{value: 0}
	case v > 1:
		return Score{value: 1}
	default:
		return Score{value: v}
	}
}

// Value returns the score.
func (s Score) Value() float64 {
	return s.value
}

// Inverted returns 1 - s.
func (s Score) Inverted() Score {
	return Score{value: 1 - s.value}
}

// Rounded returns the score rounded half away from zero to places decimals.
func (s Score) Rounded(places int) float64 {
	p := math.Pow10(places)
	return math.Round(s.value*p) / p
}
