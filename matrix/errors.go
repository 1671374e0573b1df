// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an op tag
// via matrixErrorf) and tests check them via errors.Is. No kernel panics on
// user-triggered conditions; panics are reserved for programmer errors
// (invalid option values, out-of-range C(i, j) indices).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Division by zero is NOT redeclared here: the scalar layer owns it
// (number.ErrDivisionByZero) and the eigen kernels wrap it with their op tag.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside [0, 2).
	// The checked indexer At returns this; the unchecked C panics instead.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are
	// required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotUnitary signals that M†M differs from I by more than eps.
	// The eigen solver itself never returns it; ValidateUnitary does.
	ErrNotUnitary = errors.New("matrix: matrix is not unitary within eps")
)
