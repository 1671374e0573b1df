// SPDX-License-Identifier: MIT

package bloch

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/number"
)

// NewAmplitudes returns (cos(θ/2), e^{iφ}·sin(θ/2)).
func NewAmplitudes(theta, phi float64) Amplitudes {
	sin, cos := math.Sincos(theta / 2)

	return Amplitudes{
		Zero: complex(cos, 0),
		One:  number.FromPolar(sin, phi),
	}
}

// ThetaFromAmplitude0 recovers theta = 2·acos(a0) from the real |0⟩ amplitude.
func ThetaFromAmplitude0(a0 float64) (float64, error) {
	if !(a0 >= -1 && a0 <= 1) {
		return 0, ErrAmplitudeOutOfRange
	}

	return 2 * math.Acos(a0), nil
}

// ThetaFromAmplitude1 recovers theta = 2·asin(a1) from the modulus of the |1⟩
// amplitude. Negative input yields a negative theta; callers pass moduli.
func ThetaFromAmplitude1(a1 float64) (float64, error) {
	if !(a1 >= -1 && a1 <= 1) {
		return 0, ErrAmplitudeOutOfRange
	}

	return 2 * math.Asin(a1), nil
}

// AnglesFromAmplitudes returns the angles of an arbitrary non-zero state.
//
// The pair need not be normalised and may carry a global phase:
// theta = 2·atan2(|β|, |α|) and phi = arg β − arg α folded into [0, 2π).
// Phi is 0 at either pole, where the relative phase is undefined.
func AnglesFromAmplitudes(a Amplitudes) (Angles, error) {
	r0, r1 := number.Abs(a.Zero), number.Abs(a.One)
	if r0 == 0 && r1 == 0 {
		return Angles{}, blochErrorf(opAnglesFromAmplitudes, ErrZeroVector)
	}

	var phi float64
	if r0 != 0 && r1 != 0 {
		phi = wrapTwoPi(number.Arg(a.One) - number.Arg(a.Zero))
	}

	return Angles{Theta: 2 * math.Atan2(r1, r0), Phi: phi}, nil
}

// Point returns the Bloch vector (2·Re(ᾱβ), 2·Im(ᾱβ), |α|² − |β|²) divided by
// the squared norm of the pair. The zero state maps to the origin.
func (a Amplitudes) Point() r3.Vec {
	n := number.Abs2(a.Zero) + number.Abs2(a.One)
	if n == 0 {
		return r3.Vec{}
	}
	ab := number.Conj(a.Zero) * a.One

	return r3.Vec{
		X: 2 * real(ab) / n,
		Y: 2 * imag(ab) / n,
		Z: (number.Abs2(a.Zero) - number.Abs2(a.One)) / n,
	}
}
