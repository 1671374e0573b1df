// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/blochsphere/number"
)

type assoc uint8

const (
	assocLeft assoc = iota
	assocRight
)

// Precedence levels. Functions bind tightest; neg shares the level of * and /
// so that "2*-3" groups as 2*(-3) while "-x" after an operator still binds
// looser than "^".
const (
	precAdd  = 7
	precMul  = 8
	precNeg  = 8
	precPow  = 9
	precFunc = 10
)

// operator is one row of the operator table. Exactly one of unary/binary is set.
type operator struct {
	name   string
	prec   int
	assoc  assoc
	arity  int
	unary  func(number.Value) (number.Value, error)
	binary func(a, b number.Value) (number.Value, error)
	isFunc bool
}

// negName is the internal name of the unary minus; it cannot be typed.
const negName = "neg"

var (
	// operators maps every operator and function name to its row.
	operators = buildTable()

	// constants are the named values recognised by the tokenizer.
	constants = map[string]number.Value{
		"e":  number.Real(math.E),
		"pi": number.Real(math.Pi),
		"i":  number.Complex(1i),
	}

	// names lists function and constant names, longest first, for splitting
	// identifier runs such as "ipi" or "sinx".
	names = buildNames()
)

func buildTable() map[string]*operator {
	t := make(map[string]*operator)

	bin := func(name string, prec int, f func(a, b number.Value) (number.Value, error)) {
		t[name] = &operator{name: name, prec: prec, assoc: assocLeft, arity: 2, binary: f}
	}
	fn := func(name string, f func(number.Value) (number.Value, error)) {
		t[name] = &operator{name: name, prec: precFunc, assoc: assocRight, arity: 1, unary: f, isFunc: true}
	}
	lift := func(fr func(float64) float64, fc func(complex128) complex128) func(number.Value) (number.Value, error) {
		return func(v number.Value) (number.Value, error) { return v.Apply(fr, fc), nil }
	}
	recip := func(f func(number.Value) (number.Value, error)) func(number.Value) (number.Value, error) {
		return func(v number.Value) (number.Value, error) {
			d, err := f(v)
			if err != nil {
				return number.Value{}, err
			}

			return number.Real(1).Div(d)
		}
	}

	bin("+", precAdd, func(a, b number.Value) (number.Value, error) { return a.Add(b), nil })
	bin("-", precAdd, func(a, b number.Value) (number.Value, error) { return a.Sub(b), nil })
	bin("*", precMul, func(a, b number.Value) (number.Value, error) { return a.Mul(b), nil })
	bin("/", precMul, func(a, b number.Value) (number.Value, error) { return a.Div(b) })
	bin("^", precPow, func(a, b number.Value) (number.Value, error) { return a.Pow(b), nil })
	bin("^+", precPow, func(a, b number.Value) (number.Value, error) { return a.Pow(b), nil })
	bin("^-", precPow, func(a, b number.Value) (number.Value, error) { return a.Pow(b.Neg()), nil })

	t[negName] = &operator{name: negName, prec: precNeg, assoc: assocRight, arity: 1,
		unary: func(v number.Value) (number.Value, error) { return v.Neg(), nil }}

	sin := lift(math.Sin, cmplx.Sin)
	cos := lift(math.Cos, cmplx.Cos)
	tan := lift(math.Tan, cmplx.Tan)
	sinh := lift(math.Sinh, cmplx.Sinh)
	cosh := lift(math.Cosh, cmplx.Cosh)
	tanh := lift(math.Tanh, cmplx.Tanh)

	fn("sin", sin)
	fn("cos", cos)
	fn("tan", tan)
	fn("sec", recip(cos))
	fn("csc", recip(sin))
	fn("cot", recip(tan))
	fn("sinh", sinh)
	fn("cosh", cosh)
	fn("tanh", tanh)
	fn("sech", recip(cosh))
	fn("csch", recip(sinh))
	fn("coth", recip(tanh))
	fn("floor", realOnly(math.Floor))
	fn("ceil", realOnly(math.Ceil))
	fn("sqrt", sqrt)
	fn("exp", lift(math.Exp, cmplx.Exp))
	fn("ln", ln)
	fn("abs", abs)

	return t
}

func buildNames() []string {
	out := make([]string, 0, len(operators)+len(constants))
	for name, op := range operators {
		if op.isFunc {
			out = append(out, name)
		}
	}
	for name := range constants {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}

		return out[i] < out[j]
	})

	return out
}

// realOnly lifts a real function that has no complex extension.
func realOnly(f func(float64) float64) func(number.Value) (number.Value, error) {
	return func(v number.Value) (number.Value, error) {
		x, ok := v.Float64()
		if !ok {
			return number.Value{}, ErrNotReal
		}

		return number.Real(f(x)), nil
	}
}

// sqrt stays real for non-negative reals and takes the principal branch otherwise.
func sqrt(v number.Value) (number.Value, error) {
	if x, ok := v.Float64(); ok && v.IsReal() && x >= 0 {
		return number.Real(math.Sqrt(x)), nil
	}

	return number.Complex(number.Sqrt(v.Complex128())), nil
}

// ln stays real for non-negative reals (ln 0 = -Inf) and is complex otherwise.
func ln(v number.Value) (number.Value, error) {
	if x, ok := v.Float64(); ok && v.IsReal() && x >= 0 {
		return number.Real(math.Log(x)), nil
	}

	return number.Complex(cmplx.Log(v.Complex128())), nil
}

// abs is always real.
func abs(v number.Value) (number.Value, error) {
	return number.Real(number.Abs(v.Complex128())), nil
}
