package safeint

import "github.com/avdva/safeint/unchecked"

// The division family comes in two flavors: Div/Mod round the quotient
// toward negative infinity, Quo/Rem round it toward zero. Both satisfy
// a == b*q + r for defined operands with a nonzero divisor. A quotient of
// integer operands never leaves [MinValue, MaxValue] (|b| >= 1 implies
// |q| <= |a|, and |r| < |b|), so unlike Add/Mul there is no overflow case,
// only the zero-divisor one.

func (s SafeInt) divOK(other SafeInt) bool {
	return s.def && other.def && other.v != 0
}

// Div returns s / other rounded toward negative infinity.
// Undefined if either operand is undefined or other is zero.
func (s SafeInt) Div(other SafeInt) SafeInt {
	if !s.divOK(other) {
		return Undefined
	}
	return wrap(unchecked.Div(s.v, other.v))
}

// Mod returns the remainder of the floored division s / other; the result
// has the sign of other, or is zero.
// Undefined if either operand is undefined or other is zero.
func (s SafeInt) Mod(other SafeInt) SafeInt {
	if !s.divOK(other) {
		return Undefined
	}
	return wrap(unchecked.Mod(s.v, other.v))
}

// Quo returns s / other rounded toward zero.
// Undefined if either operand is undefined or other is zero.
func (s SafeInt) Quo(other SafeInt) SafeInt {
	if !s.divOK(other) {
		return Undefined
	}
	return wrap(unchecked.Quo(s.v, other.v))
}

// Rem returns the remainder of the truncated division s / other; the result
// has the sign of s, or is zero.
// Undefined if either operand is undefined or other is zero.
func (s SafeInt) Rem(other SafeInt) SafeInt {
	if !s.divOK(other) {
		return Undefined
	}
	return wrap(unchecked.Rem(s.v, other.v))
}

// DivBy is Div with the receiver as the divisor: b.DivBy(a) = a.Div(b).
func (s SafeInt) DivBy(dividend SafeInt) SafeInt {
	return dividend.Div(s)
}

// ModBy is Mod with the receiver as the divisor: b.ModBy(a) = a.Mod(b).
func (s SafeInt) ModBy(dividend SafeInt) SafeInt {
	return dividend.Mod(s)
}

// QuoBy is Quo with the receiver as the divisor: b.QuoBy(a) = a.Quo(b).
func (s SafeInt) QuoBy(dividend SafeInt) SafeInt {
	return dividend.Quo(s)
}

// RemBy is Rem with the receiver as the divisor: b.RemBy(a) = a.Rem(b).
func (s SafeInt) RemBy(dividend SafeInt) SafeInt {
	return dividend.Rem(s)
}

// DivMod returns Div(s, other) and Mod(s, other), dividing once.
// Both results are Undefined if either operand is undefined or other is zero.
func (s SafeInt) DivMod(other SafeInt) (div, mod SafeInt) {
	if !s.divOK(other) {
		return Undefined, Undefined
	}
	d, m := unchecked.DivMod(s.v, other.v)
	return wrap(d), wrap(m)
}

// QuoRem returns Quo(s, other) and Rem(s, other), dividing once.
// Both results are Undefined if either operand is undefined or other is zero.
func (s SafeInt) QuoRem(other SafeInt) (quo, rem SafeInt) {
	if !s.divOK(other) {
		return Undefined, Undefined
	}
	q, r := unchecked.QuoRem(s.v, other.v)
	return wrap(q), wrap(r)
}

// DivModBy is DivMod with the receiver as the divisor.
func (s SafeInt) DivModBy(dividend SafeInt) (div, mod SafeInt) {
	return dividend.DivMod(s)
}

// QuoRemBy is QuoRem with the receiver as the divisor.
func (s SafeInt) QuoRemBy(dividend SafeInt) (quo, rem SafeInt) {
	return dividend.QuoRem(s)
}
