// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (gates, seeded random unitaries).
//   • Keep Must* wrappers so table tests stay one line per assertion.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/matrix"
	"github.com/katalvlaran/blochsphere/number"
)

// tol is the tolerance for closed-form results on exact gate input.
const tol = 1e-9

// looseTol covers random unitaries, where near-polar axes lose a few digits
// in the ratio quadratic.
const looseTol = 1e-7

// s is √½, the recurring entry of Hadamard-family eigenvectors.
var s = math.Sqrt2 / 2

// namedGate pairs a gate with a label for table-driven subtests.
type namedGate struct {
	name string
	m    matrix.Matrix2x2
}

// gates lists the fixed gate constants.
func gates() []namedGate {
	return []namedGate{
		{"I", matrix.Identity},
		{"X", matrix.PauliX},
		{"Y", matrix.PauliY},
		{"Z", matrix.PauliZ},
		{"H", matrix.Hadamard},
	}
}

// randomRotation is a seeded (axis, angle) sample with the angle in (0.1, 3.0)
// so that Canonical maps it to itself when the axis is in the upper hemisphere.
type randomRotation struct {
	axis  r3.Vec
	angle float64
}

// randomRotations draws n deterministic rotations.
func randomRotations(n int, seed int64) []randomRotation {
	rng := rand.New(rand.NewSource(seed))
	out := make([]randomRotation, 0, n)
	for len(out) < n {
		v := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if r3.Norm(v) < 1e-3 {
			continue
		}
		out = append(out, randomRotation{axis: r3.Unit(v), angle: 0.1 + 2.9*rng.Float64()})
	}

	return out
}

// nearPoleRotations lists axes within ε of ±z, ε from 1e-4 down to 1e-10,
// where the eigenvector ratio quadratic is badly scaled.
func nearPoleRotations() []randomRotation {
	var out []randomRotation
	for _, eps := range []float64{1e-4, 1e-5, 1e-6, 1e-7, 1e-8, 1e-9, 1e-10} {
		for _, sign := range []float64{1, -1} {
			for _, phi := range []float64{0, 1.3, 4.0} {
				sin, cos := math.Sincos(phi)
				axis := r3.Vec{X: eps * cos, Y: eps * sin, Z: sign * math.Sqrt(1-eps*eps)}
				for _, angle := range []float64{2.8598, 1.1, -0.7} {
					out = append(out, randomRotation{axis: axis, angle: angle})
				}
			}
		}
	}

	return out
}

// unitaryOf builds U(angle, axis) with an extra global phase e^{iγ}.
func unitaryOf(r randomRotation, gamma float64) matrix.Matrix2x2 {
	u := matrix.CreateUnitary(r.angle, r.axis.X, r.axis.Y, r.axis.Z)

	return matrix.Scale(u, number.Complex(number.FromPolar(1, gamma)))
}

// MustEigen runs CalculateEigen or fails the test.
func MustEigen(t testing.TB, m matrix.Matrix2x2, opts ...matrix.Option) matrix.Eigen {
	t.Helper()
	e, err := matrix.CalculateEigen(m, opts...)
	require.NoError(t, err)

	return e
}

// MustOrientation runs CalculateOrientation or fails the test.
func MustOrientation(t testing.TB, m matrix.Matrix2x2, opts ...matrix.Option) matrix.Orientation {
	t.Helper()
	o, err := matrix.CalculateOrientation(m, opts...)
	require.NoError(t, err)

	return o
}

// requireVector compares two complex vectors component-wise.
func requireVector(t testing.TB, want, got matrix.Vector, eps float64) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, eps), "want %v, got %v", want, got)
}

// requireVec compares two r3 vectors component-wise.
func requireVec(t testing.TB, want, got r3.Vec, eps float64) {
	t.Helper()
	require.InDeltaf(t, want.X, got.X, eps, "x: want %v, got %v", want, got)
	require.InDeltaf(t, want.Y, got.Y, eps, "y: want %v, got %v", want, got)
	require.InDeltaf(t, want.Z, got.Z, eps, "z: want %v, got %v", want, got)
}

// blochVector is the reference (2Re(ᾱβ), 2Im(ᾱβ), |α|²−|β|²) of a unit vector.
func blochVector(v matrix.Vector) r3.Vec {
	ab := number.Conj(v[0]) * v[1]

	return r3.Vec{X: 2 * real(ab), Y: 2 * imag(ab), Z: number.Abs2(v[0]) - number.Abs2(v[1])}
}
