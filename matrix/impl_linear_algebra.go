// SPDX-License-Identifier: MIT
// Package matrix: fixed-shape linear-algebra kernels over Matrix2x2.
//
// Purpose:
//   - Provide the small algebra the eigen solver, CreateUnitary and the
//     unitarity checks are built from.
//   - Define operation tags shared by all kernels for error wrapping.
//
// Notes:
//   - Shapes are fixed, so none of these kernels can fail on dimensions; they
//     return values, not errors. Fallible kernels (eigen) live in impl_eigen.go.
//   - Entry kinds are preserved: real ⊕ real stays real (see number.Value).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blochsphere/number"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEigenVectors = "EigenVectors"
	opEigen        = "Eigen"
	opOrientation  = "Orientation"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return X{}, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith applies f entry-wise to a and b in row-major order.
func zipWith(a, b Matrix2x2, f func(x, y number.Value) number.Value) Matrix2x2 {
	var out Matrix2x2
	for k := range out.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out
}

// Add returns a + b.
// Complexity: O(1) (4 entries).
func Add(a, b Matrix2x2) Matrix2x2 {
	return zipWith(a, b, number.Value.Add)
}

// Sub returns a − b.
// Complexity: O(1) (4 entries).
func Sub(a, b Matrix2x2) Matrix2x2 {
	return zipWith(a, b, number.Value.Sub)
}

// Scale returns alpha·m.
func Scale(m Matrix2x2, alpha number.Value) Matrix2x2 {
	var out Matrix2x2
	for k := range out.data {
		out.data[k] = alpha.Mul(m.data[k])
	}

	return out
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: for each (i, j) accumulate a[i,0]·b[0,j] + a[i,1]·b[1,j]
//     in fixed k order.
//
// Determinism:
//   - Fixed i→j→k loop order; identical inputs give bit-identical output.
//
// Complexity:
//   - Time O(1) (8 multiplications), Space O(1).
func Mul(a, b Matrix2x2) Matrix2x2 {
	var out Matrix2x2
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			sum := a.data[i*dim].Mul(b.data[j])
			for k := 1; k < dim; k++ {
				sum = sum.Add(a.data[i*dim+k].Mul(b.data[k*dim+j]))
			}
			out.data[i*dim+j] = sum
		}
	}

	return out
}

// MatVec returns m·v.
func MatVec(m Matrix2x2, v Vector) Vector {
	return Vector{
		m.C(0, 0)*v[0] + m.C(0, 1)*v[1],
		m.C(1, 0)*v[0] + m.C(1, 1)*v[1],
	}
}

// Dagger returns the conjugate transpose m†. Real entries stay real.
func Dagger(m Matrix2x2) Matrix2x2 {
	conj := func(v number.Value) number.Value {
		return v.Apply(func(x float64) float64 { return x }, number.Conj)
	}

	return Matrix2x2{data: [dim * dim]number.Value{
		conj(m.data[0]), conj(m.data[2]),
		conj(m.data[1]), conj(m.data[3]),
	}}
}

// Trace returns m00 + m11.
func Trace(m Matrix2x2) number.Value {
	return m.data[0].Add(m.data[3])
}

// Det returns m00·m11 − m01·m10.
func Det(m Matrix2x2) number.Value {
	return m.data[0].Mul(m.data[3]).Sub(m.data[1].Mul(m.data[2]))
}

// IsUnitary reports whether m†m ≈ I within eps (DefaultEpsilon, or WithEpsilon).
//
// Notes:
//   - The eigen solver does not call this; unitarity is the caller's contract.
func IsUnitary(m Matrix2x2, opts ...Option) bool {
	o := gatherOptions(opts...)

	return Mul(Dagger(m), m).ApproxEqual(Identity, o.eps)
}
