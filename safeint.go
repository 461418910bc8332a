// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package safeint implements exact integer arithmetic on top of float64.
//
// A SafeInt is either a defined integer within ±(2^53 - 1), the range a
// float64 represents without precision loss, or the single undefined value.
// Every operation is total: arguments that would overflow the range, divide
// by zero, or are already undefined produce the undefined value instead of a
// silently wrong result. The undefined value is absorbing, once it appears
// it propagates through all arithmetic.
//
// Values are immutable and compared with ==. The numeric kernels live in the
// unchecked subpackage, which callers with validated inputs may use directly
// to skip the checks.
package safeint

import (
	mu "github.com/avdva/safeint/internal/mathutil"
	"github.com/avdva/safeint/unchecked"
)

const (
	// MaxValue is the largest defined value, 2^53 - 1 = 9007199254740991.
	MaxValue = unchecked.MaxValue
	// MinValue is the smallest defined value, -(2^53 - 1).
	MinValue = unchecked.MinValue
)

var (
	// Undefined is the result of any invalid operation.
	// It is also the zero value of the SafeInt type.
	Undefined = SafeInt{}
	// Max is the largest defined value.
	Max = defined(MaxValue)
	// Min is the smallest defined value.
	Min = defined(MinValue)

	Zero = defined(0)
	One  = defined(1)
	Two  = defined(2)
)

// SafeInt is an exact integer in [MinValue, MaxValue], or the undefined
// value. The zero SafeInt is undefined. SafeInts are comparable with ==:
// all undefined values are equal to each other and unequal to every defined
// value, however they were produced.
type SafeInt struct {
	v   float64
	def bool
}

func defined(v float64) SafeInt {
	return SafeInt{v: v, def: true}
}

// wrap validates an operation result. NaN, infinities and values outside
// [MinValue, MaxValue] collapse to Undefined. Negative zero is normalized,
// so that every defined payload is a single == class.
func wrap(f float64) SafeInt {
	if !mu.IsFinite(f) || f < MinValue || f > MaxValue {
		return Undefined
	}
	if f == 0 {
		return Zero
	}
	return defined(f)
}

// New returns a SafeInt for n, or Undefined if |n| exceeds MaxValue.
func New(n int64) SafeInt {
	if n < MinValue || n > MaxValue {
		return Undefined
	}
	return defined(unchecked.FromInt64(n))
}

// Round converts a float to a SafeInt, rounding half toward positive
// infinity. NaN, infinities and out-of-range values give Undefined.
func Round(f float64) SafeInt {
	return wrap(unchecked.Round(f))
}

// Ceiling converts a float to a SafeInt, rounding toward positive infinity.
// NaN, infinities and out-of-range values give Undefined.
func Ceiling(f float64) SafeInt {
	return wrap(unchecked.Ceiling(f))
}

// Truncate converts a float to a SafeInt, rounding toward zero.
// NaN, infinities and out-of-range values give Undefined.
func Truncate(f float64) SafeInt {
	return wrap(unchecked.Truncate(f))
}

// Floor converts a float to a SafeInt, rounding toward negative infinity.
// NaN, infinities and out-of-range values give Undefined.
func Floor(f float64) SafeInt {
	return wrap(unchecked.Floor(f))
}

// IsDefined reports whether s holds an integer.
func (s SafeInt) IsDefined() bool {
	return s.def
}

// Int64 returns the value as an int64. ok is false for Undefined.
func (s SafeInt) Int64() (value int64, ok bool) {
	if !s.def {
		return 0, false
	}
	return unchecked.Int64(s.v), true
}

// Float64 returns the value as a float64. ok is false for Undefined.
func (s SafeInt) Float64() (value float64, ok bool) {
	if !s.def {
		return 0, false
	}
	return s.v, true
}

// Add returns s + other, or Undefined if either operand is undefined or the
// sum leaves [MinValue, MaxValue].
func (s SafeInt) Add(other SafeInt) SafeInt {
	if !s.def || !other.def {
		return Undefined
	}
	return wrap(unchecked.Add(s.v, other.v))
}

// Sub returns s - other, or Undefined if either operand is undefined or the
// difference leaves [MinValue, MaxValue].
func (s SafeInt) Sub(other SafeInt) SafeInt {
	if !s.def || !other.def {
		return Undefined
	}
	return wrap(unchecked.Sub(s.v, other.v))
}

// Mul returns s * other, or Undefined if either operand is undefined or the
// product leaves [MinValue, MaxValue].
func (s SafeInt) Mul(other SafeInt) SafeInt {
	if !s.def || !other.def {
		return Undefined
	}
	return wrap(unchecked.Mul(s.v, other.v))
}

// Pow returns s raised to the power of other. A negative exponent rounds the
// mathematical result toward zero, so any base other than 0, 1 and -1 gives
// Zero. Zero raised to a non-positive power is Undefined, as is an undefined
// operand or an out-of-range result.
func (s SafeInt) Pow(other SafeInt) SafeInt {
	if !s.def || !other.def {
		return Undefined
	}
	if s.v == 0 && other.v <= 0 {
		return Undefined
	}
	return wrap(unchecked.Pow(s.v, other.v))
}

// Abs returns the absolute value. Undefined propagates.
func (s SafeInt) Abs() SafeInt {
	if !s.def {
		return Undefined
	}
	return wrap(unchecked.Abs(s.v))
}

// Neg returns -s. Undefined propagates; the range is symmetric, so negation
// of a defined value never overflows.
func (s SafeInt) Neg() SafeInt {
	if !s.def {
		return Undefined
	}
	return wrap(unchecked.Neg(s.v))
}

// Sign returns Zero, One, or New(-1) for a defined value, Undefined otherwise.
func (s SafeInt) Sign() SafeInt {
	if !s.def {
		return Undefined
	}
	return wrap(unchecked.Sign(s.v))
}

// Eq returns true if both values are undefined, or both are defined and
// numerically equal. It is identical to the == operator.
func (s SafeInt) Eq(other SafeInt) bool {
	return s == other
}

// Cmp compares two values.
// Returns -1 if s < other, 0 if s == other, 1 if s > other.
// Undefined equals Undefined; against a defined value it sorts before
// everything if undefinedFirst is true, and after everything otherwise.
func (s SafeInt) Cmp(other SafeInt, undefinedFirst bool) int {
	if s.def != other.def {
		if !s.def { // s is the undefined one
			if undefinedFirst {
				return -1
			}
			return 1
		}
		if undefinedFirst {
			return 1
		}
		return -1
	}
	if !s.def {
		return 0
	}
	return int(mu.FloatSign(s.v - other.v))
}
