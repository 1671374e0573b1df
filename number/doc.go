// SPDX-License-Identifier: MIT

// Package number holds the scalar layer shared by the Bloch engine:
// complex128 primitives with an explicit division-by-zero error and a
// principal-branch phase in (-π, π], plus Value, a tagged Real|Complex sum
// type used wherever user input may produce either kind.
//
// Values are immutable. Arithmetic on two real operands stays real unless
// the operation leaves the real line (a negative base raised to a
// non-integer power), in which case the result is promoted to complex.
//
//	v, err := number.Real(1).Div(number.Complex(1i)) // -1i
//	if errors.Is(err, number.ErrDivisionByZero) { ... }
package number
