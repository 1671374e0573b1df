// SPDX-License-Identifier: MIT
// Package matrix: closed-form eigen kernels for 2x2 complex matrices.
//
// Purpose:
//   - Solve the two quadratics behind a 2x2 eigendecomposition: the
//     eigenvector ratio y/x and the characteristic polynomial.
//   - Pair the two results so that M·vK ≈ λK·vK.
//
// Notes:
//   - No iteration, no convergence tolerance: every kernel is O(1).
//   - Unitarity is NOT checked; for non-normal input the eigenvectors are
//     still unit length but not orthogonal.

package matrix

import (
	"math"

	"github.com/katalvlaran/blochsphere/number"
)

// quadraticRoots returns the roots of a·r² + b·r + c = 0 in the order
// (−b + d)/(2a), (−b − d)/(2a), with d the principal square root of the
// discriminant.
//
// Implementation:
//   - Stage 1: of the two numerators −b ± d take the larger in modulus and
//     divide it by 2a.
//   - Stage 2: recover the other root from the product of roots, 2c/(−b ∓ d),
//     so that a root near zero never comes from cancelling −b against d.
//
// Errors:
//   - number.ErrDivisionByZero when a == 0 (the linear case is not solved).
//
// Complexity:
//   - Time O(1), Space O(1).
func quadraticRoots(a, b, c complex128) (complex128, complex128, error) {
	if a == number.Zero {
		return 0, 0, number.ErrDivisionByZero
	}
	d := number.Sqrt(b*b - 4*a*c)
	plus, minus := -b+d, -b-d

	// Both numerators vanish only for b = d = 0, i.e. c = 0: a double root at 0.
	if plus == number.Zero && minus == number.Zero {
		return 0, 0, nil
	}
	if number.Abs(plus) >= number.Abs(minus) {
		return plus / (2 * a), 2 * c / plus, nil
	}

	return 2 * c / minus, minus / (2 * a), nil
}

// ratioToVector maps an eigenvector ratio y/x to the unit vector
// (cos θ, sin θ·e^{iφ}) with θ = atan|ratio| and φ = arg ratio.
//
// Notes:
//   - |ratio| ≥ 0 keeps θ in [0, π/2], so the first component is real and
//     non-negative. The output is normalised by construction.
func ratioToVector(ratio complex128) Vector {
	r, phi := number.Polar(ratio)
	sin, cos := math.Sincos(math.Atan(r))

	return Vector{
		complex(cos, 0),
		complex(sin, 0) * number.FromPolar(1, phi),
	}
}

// eigenVectors computes the two unit eigenvectors of m.
//
// Implementation:
//   - Stage 1: basis shortcut. If m10 == 0 exactly, (1,0) is an eigenvector
//     and (0,1) is returned alongside it.
//   - Stage 2: writing v = (1, r), m·v = λv eliminates λ and leaves
//     m01·r² + (m00 − m11)·r − m10 = 0; solve it with quadraticRoots.
//   - Stage 3: map each root to a unit vector via ratioToVector.
//
// Errors:
//   - number.ErrDivisionByZero when m01 == 0 and m10 != 0 (lower-triangular
//     input with a single finite ratio).
//
// Complexity:
//   - Time O(1), Space O(1).
func eigenVectors(m Matrix2x2) (EigenVectors, error) {
	m00, m01, m10, m11 := m.C(0, 0), m.C(0, 1), m.C(1, 0), m.C(1, 1)

	// m·(1,0) = (m00, m10): a zero second component makes (1,0) an eigenvector.
	if m10 == number.Zero {
		return EigenVectors{
			Vector1: Vector{1, 0},
			Vector2: Vector{0, 1},
		}, nil
	}

	r1, r2, err := quadraticRoots(m01, m00-m11, -m10)
	if err != nil {
		return EigenVectors{}, err
	}

	return EigenVectors{
		Vector1: ratioToVector(r1),
		Vector2: ratioToVector(r2),
	}, nil
}

// eigenValues returns the roots of λ² − tr(m)·λ + det(m) = 0.
// The leading coefficient is 1, so this kernel cannot fail.
func eigenValues(m Matrix2x2) (complex128, complex128) {
	tr := Trace(m).Complex128()
	det := Det(m).Complex128()
	l1, l2, _ := quadraticRoots(1, -tr, det)

	return l1, l2
}

// pairEigen combines eigenvalues and eigenvectors into a consistent Eigen.
//
// Implementation:
//   - Stage 1: compute both eigenvalues and both eigenvectors.
//   - Stage 2: take the worst residual ‖M·v − λ·v‖ of the root-order pairing
//     and of the swapped pairing (λ replaced by conj(λ) under
//     WithConjugatePairing).
//   - Stage 3: keep the pairing with the smaller residual; eigenvalues keep
//     root order, only the vectors move.
//
// Determinism:
//   - Same input and options give the same pairing. Ties keep root order.
//
// Notes:
//   - The decision is relative, not thresholded: near-polar axes lose digits
//     in the ratio quadratic, yet the right pairing still wins by orders of
//     magnitude.
//   - With a repeated eigenvalue both pairings tie and no swap happens; any
//     pairing is then correct.
func pairEigen(m Matrix2x2, o Options) (Eigen, error) {
	vs, err := eigenVectors(m)
	if err != nil {
		return Eigen{}, matrixErrorf(opEigenVectors, err)
	}
	l1, l2 := eigenValues(m)

	e := Eigen{Value1: l1, Value2: l2, Vector1: vs.Vector1, Vector2: vs.Vector2}

	w1, w2 := l1, l2
	if o.conjugatePairing {
		w1, w2 = number.Conj(l1), number.Conj(l2)
	}
	kept := math.Max(residual(m, e.Vector1, w1), residual(m, e.Vector2, w2))
	swapped := math.Max(residual(m, e.Vector2, w1), residual(m, e.Vector1, w2))
	if swapped < kept {
		e.Vector1, e.Vector2 = e.Vector2, e.Vector1
	}

	return e, nil
}

// residual returns the largest component modulus of M·v − λ·v.
func residual(m Matrix2x2, v Vector, lambda complex128) float64 {
	mv, lv := MatVec(m, v), v.Scale(lambda)

	return math.Max(number.Abs(mv[0]-lv[0]), number.Abs(mv[1]-lv[1]))
}
