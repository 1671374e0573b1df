// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/number"
)

// orientationOf derives the Bloch-sphere rotation from a paired decomposition.
//
// With v1 = (a, b) and v2 = (c, d):
//
//	off = c·conj(d) − a·conj(b)
//	X = Re(off), Y = −Im(off), Z = |c|² − |a|²
//	angle = arg(λ1) − arg(λ2)
//
// For orthonormal eigenvectors this is exactly the Bloch vector of v2, so the
// axis is unit length whenever the input is unitary and non-degenerate.
func orientationOf(e Eigen) Orientation {
	a, b := e.Vector1[0], e.Vector1[1]
	c, d := e.Vector2[0], e.Vector2[1]
	off := c*number.Conj(d) - a*number.Conj(b)

	return Orientation{
		X:             real(off),
		Y:             -imag(off),
		Z:             number.Abs2(c) - number.Abs2(a),
		RotationAngle: number.Arg(e.Value1) - number.Arg(e.Value2),
	}
}

// Axis returns the rotation axis as a gonum r3 vector.
func (o Orientation) Axis() r3.Vec {
	return r3.Vec{X: o.X, Y: o.Y, Z: o.Z}
}

// Canonical returns the same rotation with the angle folded into (−π, π] and
// the axis flipped into the upper hemisphere (angle negated with it).
//
// Upper hemisphere means z > eps, or z ≈ 0 and y > eps, or z ≈ 0, y ≈ 0 and
// x ≥ −eps, with eps = DefaultEpsilon unless overridden.
func (o Orientation) Canonical(opts ...Option) Orientation {
	eps := gatherOptions(opts...).eps

	angle := wrapAngle(o.RotationAngle)
	if !upperHemisphere(o.X, o.Y, o.Z, eps) {
		o.X, o.Y, o.Z = -o.X, -o.Y, -o.Z
		angle = wrapAngle(-angle)
	}
	o.RotationAngle = angle

	return o
}

// wrapAngle folds a into (−π, π].
func wrapAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}

	return a
}

func upperHemisphere(x, y, z, eps float64) bool {
	switch {
	case z > eps:
		return true
	case z < -eps:
		return false
	case y > eps:
		return true
	case y < -eps:
		return false
	default:
		return x >= -eps
	}
}
