// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blochsphere/number"
)

var (
	// ErrInvalidExpression is returned by Eval on an expression that failed to parse.
	ErrInvalidExpression = errors.New("expr: invalid expression")

	// ErrEmptyExpression is returned when there is nothing to evaluate.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrStackUnderflow is returned when an operator or function lacks operands ("2+").
	ErrStackUnderflow = errors.New("expr: missing operand")

	// ErrUnboundVariable is returned by Eval when the expression has a free
	// variable; use EvalAt.
	ErrUnboundVariable = errors.New("expr: unbound variable")

	// ErrNotReal is returned by floor and ceil on a value with an imaginary
	// part. It is the scalar layer's sentinel, so errors.Is matches either name.
	ErrNotReal = number.ErrNotReal
)

// Operation tags for error wrapping.
const (
	opParse       = "Parse"
	opEval        = "Eval"
	opParseMatrix = "ParseMatrix"
)

// exprErrorf wraps err with an operation tag; err must be non-nil.
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
