// SPDX-License-Identifier: MIT
package number_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blochsphere/number"
	"github.com/stretchr/testify/require"
)

func TestValue_KindsAreSticky(t *testing.T) {
	two, three := number.Real(2), number.Real(3)

	sum := two.Add(three)
	require.Equal(t, number.KindReal, sum.Kind())
	x, ok := sum.Float64()
	require.True(t, ok)
	require.Equal(t, 5.0, x)

	i := number.Complex(1i)
	sq := i.Mul(i)
	require.Equal(t, number.KindComplex, sq.Kind())
	require.True(t, sq.ApproxEqual(number.Real(-1), tol))
	x, ok = sq.Float64()
	require.True(t, ok, "zero imaginary part converts back to float64")
	require.Equal(t, -1.0, x)

	_, ok = i.Float64()
	require.False(t, ok)
}

func TestValue_Div(t *testing.T) {
	q, err := number.Real(1).Div(number.Real(4))
	require.NoError(t, err)
	require.Equal(t, number.Real(0.25), q)

	q, err = number.Real(1).Div(number.Complex(1i))
	require.NoError(t, err)
	require.True(t, q.ApproxEqual(number.Complex(-1i), tol))

	_, err = number.Real(1).Div(number.Real(0))
	require.ErrorIs(t, err, number.ErrDivisionByZero)
	_, err = number.Complex(1i).Div(number.Complex(0))
	require.ErrorIs(t, err, number.ErrDivisionByZero)
}

func TestValue_Pow(t *testing.T) {
	for _, tc := range []struct {
		name      string
		base, exp number.Value
		want      number.Value
		kind      number.Kind
	}{
		{"integer power", number.Real(2), number.Real(12), number.Real(4096), number.KindReal},
		{"negative exponent", number.Real(2), number.Real(-1), number.Real(0.5), number.KindReal},
		{"negative base, integer exponent", number.Real(-2), number.Real(3), number.Real(-8), number.KindReal},
		{"negative base, fractional exponent", number.Real(-1), number.Real(0.5), number.Complex(1i), number.KindComplex},
		{"euler", number.Real(math.E), number.Complex(complex(0, math.Pi)), number.Real(-1), number.KindComplex},
		{"euler half", number.Real(math.E), number.Complex(complex(0, math.Pi/2)), number.Complex(1i), number.KindComplex},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.base.Pow(tc.exp)
			require.Equal(t, tc.kind, got.Kind())
			require.True(t, got.ApproxEqual(tc.want, tol), "got %v want %v", got, tc.want)
		})
	}
}

func TestValue_NegAndApply(t *testing.T) {
	require.Equal(t, number.Real(-3), number.Real(3).Neg())
	require.Equal(t, number.Complex(-1-2i), number.Complex(1+2i).Neg())

	r := number.Real(0).Apply(math.Cos, nil)
	require.Equal(t, number.Real(1), r)

	c := number.Real(-4).Apply(nil, number.Sqrt)
	require.Equal(t, number.KindComplex, c.Kind())
	require.True(t, c.ApproxEqual(number.Complex(2i), tol))
}

func TestValue_String(t *testing.T) {
	require.Equal(t, "5", number.Real(5).String())
	require.Equal(t, "0.5", number.Real(0.5).String())
	require.Equal(t, "1+2i", number.Complex(1+2i).String())
	require.Equal(t, "1-2i", number.Complex(1-2i).String())
	require.Equal(t, "real", number.KindReal.String())
	require.Equal(t, "complex", number.KindComplex.String())
}

func TestValue_ZeroValueIsRealZero(t *testing.T) {
	var v number.Value
	require.True(t, v.IsReal())
	require.True(t, v.IsZero())
	require.Equal(t, 0.0, v.Re())
	require.Equal(t, 0.0, v.Im())
}
