// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Kind tags the active member of a Value.
type Kind uint8

const (
	// KindReal marks a value whose imaginary part is structurally absent.
	KindReal Kind = iota
	// KindComplex marks a value carrying a full complex128 payload.
	KindComplex
)

// String returns "real" or "complex".
func (k Kind) String() string {
	if k == KindComplex {
		return "complex"
	}

	return "real"
}

// Value is the Real|Complex sum type. The zero Value is Real(0).
//
// A KindReal value always has a zero imaginary part; a KindComplex value may
// also have one (e.g. i·i) and keeps its kind, so callers can tell that
// complex arithmetic happened.
type Value struct {
	kind Kind
	z    complex128
}

// Real wraps a float64.
func Real(x float64) Value { return Value{kind: KindReal, z: complex(x, 0)} }

// Complex wraps a complex128.
func Complex(z complex128) Value { return Value{kind: KindComplex, z: z} }

// Kind returns the active member tag.
func (v Value) Kind() Kind { return v.kind }

// IsReal reports whether v is tagged KindReal.
func (v Value) IsReal() bool { return v.kind == KindReal }

// Float64 returns the real payload. ok is false for a complex value with a
// non-zero imaginary part.
func (v Value) Float64() (x float64, ok bool) {
	if v.kind == KindReal || imag(v.z) == 0 {
		return real(v.z), true
	}

	return real(v.z), false
}

// Complex128 returns v as a complex number regardless of its kind.
func (v Value) Complex128() complex128 { return v.z }

// Re returns the real part.
func (v Value) Re() float64 { return real(v.z) }

// Im returns the imaginary part (always 0 for KindReal).
func (v Value) Im() float64 { return imag(v.z) }

// IsZero reports whether v is exactly 0+0i.
func (v Value) IsZero() bool { return v.z == Zero }

// String formats reals with the shortest round-trip representation and
// complex numbers as "a+bi".
func (v Value) String() string {
	if v.kind == KindReal {
		return strconv.FormatFloat(real(v.z), 'g', -1, 64)
	}
	re := strconv.FormatFloat(real(v.z), 'g', -1, 64)
	im := strconv.FormatFloat(imag(v.z), 'g', -1, 64)
	if imag(v.z) >= 0 || math.IsNaN(imag(v.z)) {
		im = "+" + im
	}

	return re + im + "i"
}

// both reports whether v and w are both real.
func both(v, w Value) bool { return v.kind == KindReal && w.kind == KindReal }

// Add returns v + w.
func (v Value) Add(w Value) Value {
	if both(v, w) {
		return Real(real(v.z) + real(w.z))
	}

	return Complex(v.z + w.z)
}

// Sub returns v - w.
func (v Value) Sub(w Value) Value {
	if both(v, w) {
		return Real(real(v.z) - real(w.z))
	}

	return Complex(v.z - w.z)
}

// Mul returns v · w.
func (v Value) Mul(w Value) Value {
	if both(v, w) {
		return Real(real(v.z) * real(w.z))
	}

	return Complex(v.z * w.z)
}

// Div returns v / w, or ErrDivisionByZero when w is exactly zero.
func (v Value) Div(w Value) (Value, error) {
	if w.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	if both(v, w) {
		return Real(real(v.z) / real(w.z)), nil
	}

	return Complex(v.z / w.z), nil
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.kind == KindReal {
		return Real(-real(v.z))
	}

	return Complex(-v.z)
}

// Pow returns v^w. Two reals stay real except for a negative base with a
// non-integer exponent, which is promoted to the principal complex power.
func (v Value) Pow(w Value) Value {
	if both(v, w) {
		base, exp := real(v.z), real(w.z)
		if base >= 0 || exp == math.Trunc(exp) {
			return Real(math.Pow(base, exp))
		}

		return Complex(cmplx.Pow(v.z, w.z))
	}
	if v.z == complex(math.E, 0) {
		// e^z goes straight to Exp; cmplx.Pow would route it through Log.
		return Complex(cmplx.Exp(w.z))
	}

	return Complex(cmplx.Pow(v.z, w.z))
}

// Apply lifts a scalar function onto v: fr runs for real values, fc for
// complex ones. A nil fr forces the complex path.
func (v Value) Apply(fr func(float64) float64, fc func(complex128) complex128) Value {
	if v.kind == KindReal && fr != nil {
		return Real(fr(real(v.z)))
	}

	return Complex(fc(v.z))
}

// ApproxEqual reports whether v and w agree component-wise within tol.
// Kinds are not compared: Real(1) ≈ Complex(1+0i).
func (v Value) ApproxEqual(w Value, tol float64) bool {
	return ApproxEqual(v.z, w.z, tol)
}
