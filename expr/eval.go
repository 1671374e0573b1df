// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/blochsphere/number"
)

// Eval evaluates an expression without a free variable.
//
// Errors:
//   - ErrInvalidExpression (wrapping the parse reason) if !Valid().
//   - ErrEmptyExpression for blank input.
//   - ErrUnboundVariable if HasVariable().
//   - ErrStackUnderflow when an operator lacks operands.
//   - number.ErrDivisionByZero, ErrNotReal from the operators themselves.
func (e Expression) Eval() (number.Value, error) {
	return e.eval(nil)
}

// EvalAt evaluates the expression with the free variable bound to x.
func (e Expression) EvalAt(x number.Value) (number.Value, error) {
	return e.eval(&x)
}

func (e Expression) eval(x *number.Value) (number.Value, error) {
	if !e.valid {
		return number.Value{}, e.Err()
	}
	if len(e.rpn) == 0 {
		return number.Value{}, exprErrorf(opEval, ErrEmptyExpression)
	}

	stack := make([]number.Value, 0, len(e.rpn))
	for _, t := range e.rpn {
		switch t.kind {
		case tokNumber:
			stack = append(stack, t.value)

		case tokVariable:
			if x == nil {
				return number.Value{}, exprErrorf(opEval, fmt.Errorf("%w %q", ErrUnboundVariable, t.text))
			}
			stack = append(stack, *x)

		default:
			if len(stack) < t.op.arity {
				return number.Value{}, exprErrorf(opEval, fmt.Errorf("%w for %q at %d", ErrStackUnderflow, t.op.name, t.pos))
			}

			var (
				v   number.Value
				err error
			)
			if t.op.arity == 1 {
				v, err = t.op.unary(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			} else {
				a, b := stack[len(stack)-2], stack[len(stack)-1]
				v, err = t.op.binary(a, b)
				stack = stack[:len(stack)-2]
			}
			if err != nil {
				return number.Value{}, exprErrorf(opEval, fmt.Errorf("%s: %w", t.op.name, err))
			}
			stack = append(stack, v)
		}
	}

	if len(stack) != 1 {
		return number.Value{}, exprErrorf(opEval, fmt.Errorf("%w: %d values left", ErrInvalidExpression, len(stack)))
	}

	return stack[0], nil
}

// Evaluate parses and evaluates s in one step.
func Evaluate(s string) (number.Value, error) {
	return Parse(s).Eval()
}

// EvaluateAt parses s and evaluates it at the real point x.
func EvaluateAt(s string, x float64) (number.Value, error) {
	return Parse(s).EvalAt(number.Real(x))
}

// EvaluateReal parses s and returns its value, which must be real.
func EvaluateReal(s string) (float64, error) {
	v, err := Evaluate(s)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float64()
	if !ok {
		return 0, exprErrorf(opEval, fmt.Errorf("%w: %s", ErrNotReal, v))
	}

	return f, nil
}
