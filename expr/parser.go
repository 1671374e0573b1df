// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/blochsphere/number"
)

var (
	errUnmatchedClose = errors.New("unmatched ')'")
	errUnmatchedOpen  = errors.New("unmatched '('")
)

// Expression is a parsed expression in postfix form. The zero Expression is
// invalid. Expressions are immutable and safe for concurrent evaluation.
type Expression struct {
	source string
	infix  string
	rpn    []token
	valid  bool
	err    error
	hasVar bool
}

// Parse reads a LaTeX-flavoured expression. It never fails; check Valid or
// let Eval report the problem.
func Parse(s string) Expression {
	return parse(s, latexToInfix(s))
}

// ParseInfix reads a plain infix expression with no LaTeX rewriting.
func ParseInfix(s string) Expression {
	return parse(s, strings.Join(strings.Fields(s), ""))
}

// Valid reports whether parsing succeeded.
func (e Expression) Valid() bool { return e.valid }

// Err returns the parse error of an invalid expression, or nil.
func (e Expression) Err() error {
	if e.valid {
		return nil
	}
	if e.err == nil {
		return exprErrorf(opParse, ErrInvalidExpression)
	}

	return e.err
}

// Source returns the text passed to Parse.
func (e Expression) Source() string { return e.source }

// Infix returns the normalised infix text the tokenizer saw.
func (e Expression) Infix() string { return e.infix }

// HasVariable reports whether the expression mentions the free variable.
func (e Expression) HasVariable() bool { return e.hasVar }

// String renders the postfix form with space-separated tokens, e.g. "2 3 4 * +".
func (e Expression) String() string {
	parts := make([]string, len(e.rpn))
	for i, t := range e.rpn {
		if t.op != nil {
			parts[i] = t.op.name
		} else {
			parts[i] = t.text
		}
	}

	return strings.Join(parts, " ")
}

func parse(source, infix string) Expression {
	e := Expression{source: source, infix: infix}

	raw, err := tokenize(infix)
	if err != nil {
		e.err = exprErrorf(opParse, fmt.Errorf("%w: %v", ErrInvalidExpression, err))
		return e
	}

	rpn, err := shunt(normalize(raw))
	if err != nil {
		e.err = exprErrorf(opParse, fmt.Errorf("%w: %v", ErrInvalidExpression, err))
		return e
	}

	e.rpn, e.valid = rpn, true
	for _, t := range rpn {
		if t.kind == tokVariable {
			e.hasVar = true
			break
		}
	}

	return e
}

// normalize resolves the role of signs and inserts implicit products.
//
//   - A sign at the start or right after "(" gets a 0 in front: "-2^2" is 0-2^2.
//   - A sign after an operator or function is unary: "-" becomes neg and "+"
//     is dropped, so "2*-3" is 2*neg(3).
//   - Two adjacent operands multiply: "2x", "2(1+i)", "(a)(b)", "2cos(pi)".
func normalize(in []token) []token {
	out := make([]token, 0, len(in)+4)
	for _, t := range in {
		isSign := t.kind == tokOperator && (t.text == "+" || t.text == "-")

		var prev *token
		if len(out) > 0 {
			prev = &out[len(out)-1]
		}

		switch {
		case isSign && (prev == nil || prev.kind == tokLParen):
			out = append(out, token{kind: tokNumber, text: "0", pos: t.pos, value: number.Real(0)})
			out = append(out, t)
			continue

		case isSign && (prev.kind == tokOperator || prev.kind == tokFunction):
			if t.text == "-" {
				out = append(out, token{kind: tokOperator, text: "-", pos: t.pos, op: operators[negName]})
			}
			continue

		case prev != nil && prev.endsOperand() && t.startsOperand():
			out = append(out, token{kind: tokOperator, text: "*", pos: t.pos, op: operators["*"]})
		}
		out = append(out, t)
	}

	return out
}

// isPrefix reports whether t applies to the operand that follows it.
func isPrefix(t token) bool {
	return t.kind == tokFunction || t.kind == tokOperator && t.op.arity == 1
}

// shunt converts normalised infix tokens to postfix with the shunting-yard
// algorithm. Prefix operators (functions and neg) are pushed without popping.
func shunt(in []token) ([]token, error) {
	out := make([]token, 0, len(in))
	stack := make([]token, 0, 8)

	for _, t := range in {
		switch {
		case t.kind == tokNumber || t.kind == tokVariable:
			out = append(out, t)

		case t.kind == tokLParen || isPrefix(t):
			stack = append(stack, t)

		case t.kind == tokOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokLParen {
					break
				}
				if top.op.prec < t.op.prec || top.op.prec == t.op.prec && t.op.assoc == assocRight {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case t.kind == tokRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokLParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w at %d", errUnmatchedClose, t.pos)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokLParen {
			return nil, fmt.Errorf("%w at %d", errUnmatchedOpen, top.pos)
		}
		out = append(out, top)
	}

	return out, nil
}
