// Package expr parses and evaluates the algebraic expressions users type into
// the state and matrix panels.
//
// Input is LaTeX-flavoured by default: \frac{a}{b}, \sqrt{x}, \left( \right),
// \cdot, \pi and braces are rewritten to plain infix before tokenising.
// ParseInfix skips that step.
//
// The grammar is deliberately forgiving: implicit multiplication ("2x",
// "2(3)", "ipi", "2cos(pi)"), a leading sign ("-2^2" is -4) and a sign after
// an operator ("2*-3") are all accepted. Parsing never fails outright; an
// unparsable input yields an Expression whose Valid reports false, and Eval
// then returns ErrInvalidExpression with the reason attached.
//
// Values are number.Value: results stay real until a complex operand (the
// constant i, a square root of a negative number, ...) enters.
//
//	v, err := expr.Evaluate(`e^{i\pi}`) // -1+0i
//	f := expr.Parse("x^2+1")
//	y, err := f.EvalAt(number.Real(3)) // 10
package expr
