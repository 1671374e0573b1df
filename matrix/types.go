// SPDX-License-Identifier: MIT

// Package matrix: domain types of the eigen solver.
// This file contains ONLY types and their trivial accessors. Constructors
// live in api.go, kernels in impl_*.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/blochsphere/number"
)

// dim is the fixed matrix order.
const dim = 2

// Matrix2x2 is an immutable 2x2 matrix of real-or-complex entries stored in
// row-major order. The zero value is the zero matrix.
//
// Entries keep their number.Kind so that a matrix typed as "1 0 / 0 -1"
// stays real through the linear-algebra kernels; the eigen kernels operate on
// complex128 views obtained through C.
type Matrix2x2 struct {
	data [dim * dim]number.Value // data[i*dim+j]
}

// At returns the entry at (i, j), or ErrOutOfRange.
// Complexity: O(1).
func (m Matrix2x2) At(i, j int) (number.Value, error) {
	if i < 0 || i >= dim || j < 0 || j >= dim {
		return number.Value{}, ErrOutOfRange
	}

	return m.data[i*dim+j], nil
}

// C returns the entry at (i, j) as complex128. It panics on an invalid index,
// which is a programmer error in the fixed-shape kernels.
func (m Matrix2x2) C(i, j int) complex128 {
	if i < 0 || i >= dim || j < 0 || j >= dim {
		panic(fmt.Sprintf("matrix: C(%d, %d) out of range", i, j))
	}

	return m.data[i*dim+j].Complex128()
}

// Rows returns a complex128 copy of the entries, row by row.
func (m Matrix2x2) Rows() [dim][dim]complex128 {
	return [dim][dim]complex128{
		{m.data[0].Complex128(), m.data[1].Complex128()},
		{m.data[2].Complex128(), m.data[3].Complex128()},
	}
}

// IsReal reports whether every entry is tagged number.KindReal.
func (m Matrix2x2) IsReal() bool {
	for _, v := range m.data {
		if !v.IsReal() {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether m and o agree entry-wise within tol.
func (m Matrix2x2) ApproxEqual(o Matrix2x2, tol float64) bool {
	for k := range m.data {
		if !m.data[k].ApproxEqual(o.data[k], tol) {
			return false
		}
	}

	return true
}

// String renders "[[m00 m01] [m10 m11]]".
func (m Matrix2x2) String() string {
	return fmt.Sprintf("[[%s %s] [%s %s]]", m.data[0], m.data[1], m.data[2], m.data[3])
}

// Vector is a 2-component complex column vector. Eigenvectors produced by
// this package are unit vectors (|v0|² + |v1|² = 1).
type Vector [dim]complex128

// Norm2 returns |v0|² + |v1|².
func (v Vector) Norm2() float64 {
	return number.Abs2(v[0]) + number.Abs2(v[1])
}

// Scale returns c·v.
func (v Vector) Scale(c complex128) Vector {
	return Vector{c * v[0], c * v[1]}
}

// ApproxEqual reports whether v and w agree component-wise within tol.
func (v Vector) ApproxEqual(w Vector, tol float64) bool {
	return number.ApproxEqual(v[0], w[0], tol) && number.ApproxEqual(v[1], w[1], tol)
}

// EigenPair couples an eigenvalue with its eigenvector.
type EigenPair struct {
	Value  complex128
	Vector Vector
}

// EigenVectors is the result of CalculateEigenVectors: two unit eigenvectors
// in root order (+d, then -d), not yet paired with eigenvalues.
type EigenVectors struct {
	Vector1 Vector
	Vector2 Vector
}

// Eigen is a consistently paired eigendecomposition: M·VectorK ≈ ValueK·VectorK
// under the default pairing policy.
type Eigen struct {
	Value1  complex128
	Value2  complex128
	Vector1 Vector
	Vector2 Vector
}

// Pairs returns the decomposition as two EigenPair values.
func (e Eigen) Pairs() [2]EigenPair {
	return [2]EigenPair{
		{Value: e.Value1, Vector: e.Vector1},
		{Value: e.Value2, Vector: e.Vector2},
	}
}

// Orientation is a rotation of the Bloch sphere: axis (X, Y, Z) and a
// right-handed RotationAngle in radians. For unitary input the axis is a unit
// vector; the angle is arg(λ1) − arg(λ2) and lies in (−2π, 2π).
type Orientation struct {
	X             float64
	Y             float64
	Z             float64
	RotationAngle float64
}
