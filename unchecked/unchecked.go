// Package unchecked implements integer arithmetic directly on float64 values,
// without validity checks of any kind.
//
// Every function assumes its arguments are exact integers within
// [MinValue, MaxValue], that divisors are nonzero, and that the mathematical
// result is representable. Violating a precondition is undefined behavior:
// the functions are free to return any value. Callers who cannot guarantee
// the preconditions should use the safeint package instead, which performs
// the checks and reports failures in-band.
package unchecked

import (
	"math"

	mu "github.com/avdva/safeint/internal/mathutil"
)

const (
	// MaxValue is the largest integer a float64 represents exactly: 2^53 - 1.
	MaxValue = 1<<53 - 1
	// MinValue is the smallest such integer, -(2^53 - 1).
	MinValue = -MaxValue
)

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Sub returns a - b.
func Sub(a, b float64) float64 {
	return a - b
}

// Mul returns a * b.
func Mul(a, b float64) float64 {
	return a * b
}

// Pow returns a to the power of b, rounding toward zero when a negative
// exponent implies a fractional result:
//	b > 0:  a^b
//	b == 0: 1 (a == 0 with b <= 0 violates the preconditions)
//	b < 0:  1 for a == 1, ±1 by parity of b for a == -1, 0 otherwise.
func Pow(a, b float64) float64 {
	switch {
	case b > 0:
		return math.Pow(a, b)
	case b == 0:
		return 1
	case a == 1:
		return 1
	case a == -1:
		if mu.IsEven(b) {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// Div returns a / b rounded toward negative infinity.
func Div(a, b float64) float64 {
	return math.Floor(a / b)
}

// Mod returns a - b*Div(a, b). The result has the sign of b, or is zero.
// It is derived from the truncated remainder: b*Quo(a, b) never exceeds |a|,
// so that product stays exact, while b*Div(a, b) can leave the exact range
// when a and b have opposite signs near the boundary.
func Mod(a, b float64) float64 {
	mod := Rem(a, b)
	if mod != 0 && (mod < 0) != (b < 0) {
		mod += b
	}
	return mod
}

// Quo returns a / b rounded toward zero.
func Quo(a, b float64) float64 {
	return math.Trunc(a / b)
}

// Rem returns a - b*Quo(a, b). The result has the sign of a, or is zero.
func Rem(a, b float64) float64 {
	return a - b*Quo(a, b)
}

// DivBy is Div with the arguments reversed: DivBy(b, a) = Div(a, b).
func DivBy(b, a float64) float64 {
	return Div(a, b)
}

// ModBy is Mod with the arguments reversed.
func ModBy(b, a float64) float64 {
	return Mod(a, b)
}

// QuoBy is Quo with the arguments reversed.
func QuoBy(b, a float64) float64 {
	return Quo(a, b)
}

// RemBy is Rem with the arguments reversed.
func RemBy(b, a float64) float64 {
	return Rem(a, b)
}

// DivMod returns Div(a, b) and Mod(a, b), dividing once.
// The floored pair is derived from the truncated one for the same reason
// Mod is: the truncated product b*quo cannot leave the exact range.
func DivMod(a, b float64) (div, mod float64) {
	div = math.Trunc(a / b)
	mod = a - b*div
	if mod != 0 && (mod < 0) != (b < 0) {
		div--
		mod += b
	}
	return div, mod
}

// QuoRem returns Quo(a, b) and Rem(a, b), dividing once.
func QuoRem(a, b float64) (quo, rem float64) {
	quo = math.Trunc(a / b)
	return quo, a - b*quo
}

// DivModBy is DivMod with the arguments reversed.
func DivModBy(b, a float64) (div, mod float64) {
	return DivMod(a, b)
}

// QuoRemBy is QuoRem with the arguments reversed.
func QuoRemBy(b, a float64) (quo, rem float64) {
	return QuoRem(a, b)
}

// Round rounds half toward positive infinity: Round(3.5) = 4, Round(-3.5) = -3.
// The input may be any finite float, not only an integer.
// The half test compares against the floor instead of evaluating f+0.5,
// which double-rounds both for odd integers near 2^53 and for the
// half-adjacent values like 0.49999999999999994.
func Round(f float64) float64 {
	if mu.IsInteger(f) {
		return f
	}
	fl := math.Floor(f)
	if f-fl >= 0.5 {
		return fl + 1
	}
	return fl
}

// Ceiling rounds toward positive infinity.
func Ceiling(f float64) float64 {
	return math.Ceil(f)
}

// Truncate rounds toward zero. math.Trunc covers the full float64 range,
// so no ceiling/floor dance around word-sized magnitudes is needed.
func Truncate(f float64) float64 {
	return math.Trunc(f)
}

// Floor rounds toward negative infinity.
func Floor(f float64) float64 {
	return math.Floor(f)
}

// Abs returns the absolute value of f.
func Abs(f float64) float64 {
	return math.Abs(f)
}

// Neg returns -f.
func Neg(f float64) float64 {
	return -f
}

// Sign returns -1, 0, or 1.
func Sign(f float64) float64 {
	return mu.FloatSign(f)
}

// FromInt64 converts n to its float64 representation.
// Lossless for |n| <= MaxValue.
func FromInt64(n int64) float64 {
	return float64(n)
}

// Int64 converts an integer-valued f back to int64.
// Lossless for integers within [MinValue, MaxValue].
func Int64(f float64) int64 {
	return int64(f)
}
