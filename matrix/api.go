// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points: constructors, the gate
//     constants and the three eigen facades.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of the underlying kernels.
//   - Finite-value validation is performed once, at the facade boundary.
//
// AI-Hints:
//   - Build input with FromComplex for literal matrices, New when entries come
//     from the expression evaluator (keeps their real/complex kind).
//   - CalculateOrientation(m).Canonical() gives a stable axis direction for display.

package matrix

import (
	"math"

	"github.com/katalvlaran/blochsphere/number"
)

// ---------- Constructors ----------

// New builds a matrix from four tagged values in row-major order.
func New(m00, m01, m10, m11 number.Value) Matrix2x2 {
	return Matrix2x2{data: [dim * dim]number.Value{m00, m01, m10, m11}}
}

// FromComplex builds a matrix of KindComplex entries.
func FromComplex(m00, m01, m10, m11 complex128) Matrix2x2 {
	return New(number.Complex(m00), number.Complex(m01), number.Complex(m10), number.Complex(m11))
}

// FromReal builds a matrix of KindReal entries.
func FromReal(m00, m01, m10, m11 float64) Matrix2x2 {
	return New(number.Real(m00), number.Real(m01), number.Real(m10), number.Real(m11))
}

// FromRows builds a matrix of KindComplex entries from a row-major array.
// It is the inverse of Matrix2x2.Rows.
func FromRows(rows [dim][dim]complex128) Matrix2x2 {
	return FromComplex(rows[0][0], rows[0][1], rows[1][0], rows[1][1])
}

// ---------- Gates ----------

var (
	// Identity is I.
	Identity = FromReal(1, 0, 0, 1)

	// PauliX is the bit-flip gate [[0 1] [1 0]].
	PauliX = FromReal(0, 1, 1, 0)

	// PauliY is [[0 −i] [i 0]].
	PauliY = New(number.Real(0), number.Complex(-1i), number.Complex(1i), number.Real(0))

	// PauliZ is the phase-flip gate [[1 0] [0 −1]].
	PauliZ = FromReal(1, 0, 0, -1)

	// Hadamard is (X + Z)/√2.
	Hadamard = FromReal(math.Sqrt2/2, math.Sqrt2/2, math.Sqrt2/2, -math.Sqrt2/2)
)

// CreateUnitary returns U(θ, n̂) = cos(θ/2)·I − i·sin(θ/2)·(x·X + y·Y + z·Z),
// the SU(2) element rotating the Bloch sphere by θ about (x, y, z).
//
// Notes:
//   - (x, y, z) is used as given; pass a unit vector for a unitary result.
//   - Entries along the z axis come out as exact zeros, so CalculateEigenVectors
//     takes its basis shortcut for z-axis rotations.
func CreateUnitary(theta, x, y, z float64) Matrix2x2 {
	sin, cos := math.Sincos(theta / 2)

	gen := Add(Add(Scale(PauliX, number.Real(x)), Scale(PauliY, number.Real(y))), Scale(PauliZ, number.Real(z)))

	return Sub(Scale(Identity, number.Real(cos)), Scale(gen, number.Complex(complex(0, sin))))
}

// ---------- Eigen facades ----------

// CalculateEigenVectors returns two unit eigenvectors of m in root order.
//
// Implementation:
//   - Stage 1: ValidateFinite(m).
//   - Stage 2: delegate to eigenVectors (basis shortcut, ratio quadratic,
//     ratio → unit vector).
//
// Behavior highlights:
//   - The vectors are NOT paired with eigenvalues; use CalculateEigen for that.
//   - For a diagonal or upper-triangular m the result is (1,0)/(0,1).
//
// Errors:
//   - ErrNaNInf for non-finite entries.
//   - number.ErrDivisionByZero (wrapped "EigenVectors: ...") for lower-triangular
//     m with m01 == 0 and m10 != 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func CalculateEigenVectors(m Matrix2x2) (EigenVectors, error) {
	if err := ValidateFinite(m); err != nil {
		return EigenVectors{}, matrixErrorf(opEigenVectors, err)
	}
	vs, err := eigenVectors(m)
	if err != nil {
		return EigenVectors{}, matrixErrorf(opEigenVectors, err)
	}

	return vs, nil
}

// CalculateEigen returns eigenvalues and eigenvectors paired so that
// M·VectorK ≈ ValueK·VectorK: of the two possible pairings, the one with
// the smaller worst-case residual is kept.
//
// Inputs:
//   - m: any finite 2x2 matrix.
//   - opts: WithConjugatePairing. WithEpsilon has no effect on pairing.
//
// Errors:
//   - Same as CalculateEigenVectors, tagged "Eigen: ...".
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Eigenvalues keep quadratic-root order; only the vectors are swapped.
func CalculateEigen(m Matrix2x2, opts ...Option) (Eigen, error) {
	if err := ValidateFinite(m); err != nil {
		return Eigen{}, matrixErrorf(opEigen, err)
	}
	e, err := pairEigen(m, gatherOptions(opts...))
	if err != nil {
		return Eigen{}, matrixErrorf(opEigen, err)
	}

	return e, nil
}

// CalculateOrientation maps m to the rotation it performs on the Bloch sphere.
//
// Behavior highlights:
//   - Axis = Bloch vector of the eigenvector paired with Value2; angle =
//     arg(Value1) − arg(Value2). The raw axis sign depends on root order; call
//     Canonical for a stable representation.
//   - Unitarity is the caller's contract; non-unitary input yields an axis of
//     arbitrary length.
//
// Errors:
//   - Same as CalculateEigen, tagged "Orientation: ...".
func CalculateOrientation(m Matrix2x2, opts ...Option) (Orientation, error) {
	e, err := CalculateEigen(m, opts...)
	if err != nil {
		return Orientation{}, matrixErrorf(opOrientation, err)
	}

	return orientationOf(e), nil
}
