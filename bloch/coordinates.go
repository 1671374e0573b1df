// SPDX-License-Identifier: MIT

package bloch

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const twoPi = 2 * math.Pi

// AnglesToPoint returns the unit-sphere point for (theta, phi).
func AnglesToPoint(theta, phi float64) r3.Vec {
	return AnglesToPointRadius(theta, phi, 1)
}

// AnglesToPointRadius returns the point at distance r in direction (theta, phi):
// x = r·sinθ·cosφ, y = r·sinθ·sinφ, z = r·cosθ.
func AnglesToPointRadius(theta, phi, r float64) r3.Vec {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)

	return r3.Vec{X: r * sinT * cosP, Y: r * sinT * sinP, Z: r * cosT}
}

// Point returns the unit-sphere point for a.
func (a Angles) Point() r3.Vec { return AnglesToPoint(a.Theta, a.Phi) }

// Amplitudes returns the normalised amplitude pair for a.
func (a Angles) Amplitudes() Amplitudes { return NewAmplitudes(a.Theta, a.Phi) }

// PointToAngles returns the angles of the direction of p.
//
// p is renormalised first, so any non-zero vector is accepted. Theta is
// acos(z) and phi is the angle of the projected (x, y) from +x, mirrored to
// 2π − φ when y < 0. At the poles the projection is the zero vector and phi
// comes out as π/2; any phi describes the pole.
func PointToAngles(p r3.Vec) (Angles, error) {
	n := r3.Norm(p)
	if n == 0 {
		return Angles{}, blochErrorf(opPointToAngles, ErrZeroVector)
	}
	u := r3.Scale(1/n, p)

	theta := math.Acos(clampUnit(u.Z))

	// A zero projection normalises to zero, giving acos(0).
	var cosPhi float64
	if xy := math.Hypot(u.X, u.Y); xy > 0 {
		cosPhi = clampUnit(u.X / xy)
	}
	phi := math.Acos(cosPhi)
	if u.Y < 0 {
		phi = twoPi - phi
	}

	return Angles{Theta: theta, Phi: wrapTwoPi(phi)}, nil
}

// clampUnit clamps x into [-1, 1] so rounding never pushes acos/asin to NaN.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// wrapTwoPi folds x into [0, 2π). A value that rounds to 2π becomes 0.
func wrapTwoPi(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	if x >= twoPi {
		return 0
	}

	return x
}
