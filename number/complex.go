// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Zero is the additive identity, kept as a named value to avoid 0+0i literals in kernels.
const Zero complex128 = 0

// Div returns a/b, or ErrDivisionByZero when b is exactly 0+0i.
//
// Complexity: O(1).
func Div(a, b complex128) (complex128, error) {
	if b == Zero {
		return Zero, ErrDivisionByZero
	}

	return a / b, nil
}

// Conj returns the complex conjugate of z.
func Conj(z complex128) complex128 { return cmplx.Conj(z) }

// Abs returns the modulus |z|.
func Abs(z complex128) float64 { return cmplx.Abs(z) }

// Abs2 returns |z|² without the square root.
func Abs2(z complex128) float64 {
	re, im := real(z), imag(z)

	return re*re + im*im
}

// Arg returns the phase of z in (-π, π].
// cmplx.Phase reports -π for a negative real with a negative-zero imaginary
// part; that case is folded onto +π so the range is half-open as documented.
func Arg(z complex128) float64 {
	p := cmplx.Phase(z)
	if p == -math.Pi {
		return math.Pi
	}

	return p
}

// Sqrt returns the principal square root of z.
func Sqrt(z complex128) complex128 { return cmplx.Sqrt(z) }

// Exp returns e^z.
func Exp(z complex128) complex128 { return cmplx.Exp(z) }

// Polar returns the modulus and phase of z, phase in (-π, π].
func Polar(z complex128) (r, phi float64) { return Abs(z), Arg(z) }

// FromPolar builds r·e^{iφ}.
func FromPolar(r, phi float64) complex128 {
	sin, cos := math.Sincos(phi)

	return complex(r*cos, r*sin)
}

// ApproxEqual reports whether a and b agree component-wise within tol.
func ApproxEqual(a, b complex128, tol float64) bool {
	return scalar.EqualWithinAbs(real(a), real(b), tol) &&
		scalar.EqualWithinAbs(imag(a), imag(b), tol)
}

// IsFinite reports whether both components of z are finite.
func IsFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
