// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/matrix"
)

// num prints x with prec decimals and no negative zero.
func num(x float64, prec int) string {
	return strconv.FormatFloat(scalar.Round(x, prec), 'f', prec, 64)
}

// cnum prints z as "re+imi", dropping a zero part.
func cnum(z complex128, prec int) string {
	re, im := scalar.Round(real(z), prec), scalar.Round(imag(z), prec)
	switch {
	case im == 0:
		return num(re, prec)
	case re == 0:
		return num(im, prec) + "i"
	case im < 0:
		return num(re, prec) + num(im, prec) + "i"
	}

	return num(re, prec) + "+" + num(im, prec) + "i"
}

func vec(p r3.Vec, prec int) string {
	return "(" + num(p.X, prec) + ", " + num(p.Y, prec) + ", " + num(p.Z, prec) + ")"
}

func cvec(v matrix.Vector, prec int) string {
	return "(" + cnum(v[0], prec) + ", " + cnum(v[1], prec) + ")"
}

func cmat(m matrix.Matrix2x2, prec int) string {
	r := m.Rows()

	return "[[" + cnum(r[0][0], prec) + " " + cnum(r[0][1], prec) + "] [" +
		cnum(r[1][0], prec) + " " + cnum(r[1][1], prec) + "]]"
}
