package mathutil

import "math"

// IsFinite returns true for every float64 except NaN and the infinities.
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsInteger reports whether f has no fractional part.
// Infinities count as integers here, screen them with IsFinite first.
func IsInteger(f float64) bool {
	return f == math.Trunc(f)
}

// IsEven reports whether an integer-valued f is divisible by two.
func IsEven(f float64) bool {
	return math.Mod(f, 2) == 0
}

// FloatSign returns -1, 0, or 1. Both zeros map to 0.
func FloatSign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
