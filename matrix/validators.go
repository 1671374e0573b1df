// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the numeric checks
//    callers may run before handing a matrix to the eigen solver.
//  - Return sentinel errors wrapped with a validator tag so errors.Is works.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//  - CalculateEigenVectors runs ValidateFinite itself; ValidateUnitary is
//    opt-in because the solver accepts any 2x2 input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/blochsphere/number"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFinite ensures no entry has a NaN or ±Inf component.
//
// Returns: nil or wrapped ErrNaNInf naming the first offending (i, j).
// Complexity: O(1).
func ValidateFinite(m Matrix2x2) error {
	for k, v := range m.data {
		if !number.IsFinite(v.Complex128()) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: (%d,%d)", k/dim, k%dim), ErrNaNInf)
		}
	}

	return nil
}

// ValidateUnitary ensures m†m equals I within eps.
//
// Inputs: matrix and a non-negative tolerance.
// Errors: ErrNaNInf for non-finite entries, ErrNotUnitary otherwise.
// Complexity: O(1).
// AI-Hints: Matrices entered with three decimals need eps around 1e-3.
func ValidateUnitary(m Matrix2x2, eps float64) error {
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if !IsUnitary(m, WithEpsilon(eps)) {
		return validatorErrorf("ValidateUnitary", ErrNotUnitary)
	}

	return nil
}
