// SPDX-License-Identifier: MIT

package number

import "errors"

var (
	// ErrDivisionByZero is returned when a divisor is exactly 0+0i.
	// Near-zero divisors are not rejected; they are a numeric concern of the caller.
	ErrDivisionByZero = errors.New("number: division by zero")

	// ErrNotReal signals that a real operand was required but the value
	// carries a non-zero imaginary part.
	ErrNotReal = errors.New("number: value is not real")
)
