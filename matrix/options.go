// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the eigen solver and the
// unitarity checks. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a ...Option list.
//
// Notes:
//   - eps is the single tolerance knob. It drives IsUnitary/ValidateUnitary
//     and the hemisphere test of Orientation.Canonical. Eigenpairing is
//     decided by comparing residuals and does not use it.
//   - conjugatePairing switches the eigenpair residuals to the historical
//     variant that measures M·vK against conj(λK)·vK. For SU(2)
//     input λ2 = conj(λ1), so that variant pairs v1 with λ2; it is kept for
//     callers that depend on the old axis sign.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by numeric checks.
	DefaultEpsilon = 1e-9

	// DefaultConjugatePairing selects the direct eigen-equation check M·v1 ≈ λ1·v1.
	DefaultConjugatePairing = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps              float64 // >= 0; DefaultEpsilon
	conjugatePairing bool    // DefaultConjugatePairing
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by the unitarity checks
// and Orientation canonicalisation.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Matrices typed in by hand (e.g. 0.7071 for √½) are only unitary to ~1e-4;
//     pass WithEpsilon(1e-3) to IsUnitary for such input.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithConjugatePairing makes CalculateEigen measure M·vK against conj(λK)·vK
// when deciding whether to swap the eigenvectors.
//
// Notes:
//   - For SU(2) matrices this deliberately pairs each eigenvector with the
//     other eigenvalue, which flips the sign of the resulting orientation axis.
func WithConjugatePairing() Option {
	return func(o *Options) { o.conjugatePairing = true }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:              DefaultEpsilon,
		conjugatePairing: DefaultConjugatePairing,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
