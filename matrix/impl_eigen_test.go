// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/matrix"
	"github.com/katalvlaran/blochsphere/number"
)

func TestCalculateEigenVectors_KnownGates(t *testing.T) {
	h1, h2 := math.Cos(math.Pi/8), math.Sin(math.Pi/8)

	cases := []struct {
		name   string
		m      matrix.Matrix2x2
		v1, v2 matrix.Vector
	}{
		{"Identity", matrix.Identity, matrix.Vector{1, 0}, matrix.Vector{0, 1}},
		{"PauliZ", matrix.PauliZ, matrix.Vector{1, 0}, matrix.Vector{0, 1}},
		{"PauliX", matrix.PauliX, matrix.Vector{complex(s, 0), complex(s, 0)}, matrix.Vector{complex(s, 0), complex(-s, 0)}},
		{"PauliY", matrix.PauliY, matrix.Vector{complex(s, 0), complex(0, s)}, matrix.Vector{complex(s, 0), complex(0, -s)}},
		{"Hadamard", matrix.Hadamard, matrix.Vector{complex(h1, 0), complex(h2, 0)}, matrix.Vector{complex(h2, 0), complex(-h1, 0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs, err := matrix.CalculateEigenVectors(tc.m)
			require.NoError(t, err)
			requireVector(t, tc.v1, vs.Vector1, tol)
			requireVector(t, tc.v2, vs.Vector2, tol)
		})
	}
}

func TestCalculateEigenVectors_UnitNorm(t *testing.T) {
	for i, r := range randomRotations(64, 7) {
		vs, err := matrix.CalculateEigenVectors(unitaryOf(r, float64(i)*0.37))
		require.NoError(t, err)
		require.InDelta(t, 1.0, vs.Vector1.Norm2(), tol)
		require.InDelta(t, 1.0, vs.Vector2.Norm2(), tol)
	}
}

func TestCalculateEigenVectors_UpperTriangularShortcut(t *testing.T) {
	// m10 == 0 exactly: (1,0) is an eigenvector regardless of the rest.
	vs, err := matrix.CalculateEigenVectors(matrix.FromComplex(2, 5+1i, 0, -3))
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{1, 0}, vs.Vector1)
	require.Equal(t, matrix.Vector{0, 1}, vs.Vector2)
}

func TestCalculateEigenVectors_DivisionByZero(t *testing.T) {
	// m01 == 0 with m10 != 0 leaves the ratio quadratic without a leading term.
	_, err := matrix.CalculateEigenVectors(matrix.FromReal(1, 0, 1, 2))
	require.Error(t, err)
	require.True(t, errors.Is(err, number.ErrDivisionByZero))
	require.True(t, strings.HasPrefix(err.Error(), "EigenVectors: "), err.Error())

	_, err = matrix.CalculateOrientation(matrix.FromReal(1, 0, 1, 2))
	require.ErrorIs(t, err, number.ErrDivisionByZero)
}

func TestCalculateEigenVectors_NonFinite(t *testing.T) {
	_, err := matrix.CalculateEigenVectors(matrix.FromComplex(1, complex(math.NaN(), 0), 1, 1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.CalculateEigen(matrix.FromComplex(1, 1, cmplx.Inf(), 1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestCalculateEigen_EigenEquation(t *testing.T) {
	check := func(t *testing.T, m matrix.Matrix2x2, eps float64) {
		e := MustEigen(t, m)
		for _, p := range e.Pairs() {
			requireVector(t, p.Vector.Scale(p.Value), matrix.MatVec(m, p.Vector), eps)
		}
	}

	for _, g := range gates() {
		t.Run(g.name, func(t *testing.T) { check(t, g.m, tol) })
	}
	t.Run("random", func(t *testing.T) {
		for i, r := range randomRotations(64, 11) {
			check(t, unitaryOf(r, float64(i)*0.21), looseTol)
		}
	})
}

func TestCalculateEigen_NearPoleAxes(t *testing.T) {
	for i, r := range nearPoleRotations() {
		u := unitaryOf(r, 0.9*float64(i))
		for _, p := range MustEigen(t, u).Pairs() {
			requireVector(t, p.Vector.Scale(p.Value), matrix.MatVec(u, p.Vector), 1e-6)
		}
	}

	// Without a global phase conj(λ1) is λ2, so conjugate pairing trades the
	// vectors near the poles exactly as it does elsewhere.
	for _, r := range nearPoleRotations() {
		u := unitaryOf(r, 0)
		direct := MustEigen(t, u)
		legacy := MustEigen(t, u, matrix.WithConjugatePairing())
		requireVector(t, direct.Vector2, legacy.Vector1, tol)
		requireVector(t, direct.Vector1, legacy.Vector2, tol)
	}
}

func TestCalculateEigen_PairingIgnoresEpsilon(t *testing.T) {
	u := matrix.CreateUnitary(2.8598, 1e-8, 0, -math.Sqrt(1-1e-16))
	for _, eps := range []float64{0, 1e-12, 1e-9, 1e-3} {
		e := MustEigen(t, u, matrix.WithEpsilon(eps))
		for _, p := range e.Pairs() {
			requireVector(t, p.Vector.Scale(p.Value), matrix.MatVec(u, p.Vector), 1e-6)
		}
	}
}

func TestQuadraticRoots_SmallRootAccuracy(t *testing.T) {
	// r² scaled by 1e-10: roots ≈ 1e-10·(1 − 1e-20) and −1e10. The naive
	// formula loses the small root to cancellation.
	a, b, c := complex(1e-10, 0), complex(1, 0), complex(-1e-10, 0)
	r1, r2, err := matrix.QuadraticRoots_TestOnly(a, b, c)
	require.NoError(t, err)
	require.InDelta(t, 1e-10, real(r1), 1e-22)
	require.InDelta(t, -1e10, real(r2), 1)

	r1, r2, err = matrix.QuadraticRoots_TestOnly(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(0), r1)
	require.Equal(t, complex128(0), r2)
}

func TestCalculateEigen_Values(t *testing.T) {
	e := MustEigen(t, matrix.PauliX)
	require.True(t, number.ApproxEqual(1, e.Value1, tol))
	require.True(t, number.ApproxEqual(-1, e.Value2, tol))

	// U(θ, n) has eigenvalues e^{∓iθ/2}; their product is det U = 1.
	u := matrix.CreateUnitary(1.2, 0, 1, 0)
	e = MustEigen(t, u)
	require.True(t, number.ApproxEqual(1, e.Value1*e.Value2, tol))
	require.InDelta(t, 0.6, math.Abs(number.Arg(e.Value1)), tol)
	require.True(t, number.ApproxEqual(number.Conj(e.Value1), e.Value2, tol))
}

func TestCalculateEigen_ConjugatePairing(t *testing.T) {
	u := matrix.CreateUnitary(math.Pi/2, 0, 1, 0)

	direct := MustEigen(t, u)
	legacy := MustEigen(t, u, matrix.WithConjugatePairing())

	// Eigenvalues keep root order; only the vectors trade places.
	require.Equal(t, direct.Value1, legacy.Value1)
	require.Equal(t, direct.Value2, legacy.Value2)
	requireVector(t, direct.Vector2, legacy.Vector1, tol)
	requireVector(t, direct.Vector1, legacy.Vector2, tol)

	// The legacy pairing reports the opposite axis with the same angle.
	od := MustOrientation(t, u)
	ol := MustOrientation(t, u, matrix.WithConjugatePairing())
	requireVec(t, r3.Scale(-1, od.Axis()), ol.Axis(), tol)
	require.InDelta(t, od.RotationAngle, ol.RotationAngle, tol)
}

func TestCalculateEigen_RepeatedEigenvalue(t *testing.T) {
	// A global phase times I: every vector is an eigenvector, no swap needed.
	m := matrix.Scale(matrix.Identity, number.Complex(1i))
	e := MustEigen(t, m)
	require.True(t, number.ApproxEqual(1i, e.Value1, tol))
	require.True(t, number.ApproxEqual(1i, e.Value2, tol))
	require.Equal(t, matrix.Vector{1, 0}, e.Vector1)
}
