// SPDX-License-Identifier: MIT

package bloch_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/bloch"
)

func TestNewAmplitudes(t *testing.T) {
	s := math.Sqrt2 / 2

	a := bloch.NewAmplitudes(math.Pi/2, 0)
	require.InDelta(t, s, real(a.Zero), tol)
	require.InDelta(t, s, real(a.One), tol)

	a = bloch.StateMinus.Amplitudes()
	require.InDelta(t, s, real(a.Zero), tol)
	require.InDelta(t, -s, real(a.One), tol)

	a = bloch.NewAmplitudes(math.Pi/2, math.Pi/2)
	require.InDelta(t, 0, real(a.One), tol)
	require.InDelta(t, s, imag(a.One), tol)

	// Normalised with a real, non-negative |0⟩ amplitude.
	a = bloch.NewAmplitudes(2.1, 5.3)
	require.InDelta(t, 1, cmplx.Abs(a.Zero)*cmplx.Abs(a.Zero)+cmplx.Abs(a.One)*cmplx.Abs(a.One), tol)
	require.Equal(t, 0.0, imag(a.Zero))
	require.GreaterOrEqual(t, real(a.Zero), 0.0)
}

func TestThetaFromAmplitudes(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.5, math.Pi} {
		a := bloch.NewAmplitudes(theta, 0)

		got0, err := bloch.ThetaFromAmplitude0(real(a.Zero))
		require.NoError(t, err)
		require.InDelta(t, theta, got0, 1e-7)

		got1, err := bloch.ThetaFromAmplitude1(cmplx.Abs(a.One))
		require.NoError(t, err)
		// θ/2 ∈ [0, π/2], where sin is invertible.
		require.InDelta(t, theta, got1, 1e-7)
	}

	for _, bad := range []float64{1.0001, -1.5, math.NaN()} {
		_, err := bloch.ThetaFromAmplitude0(bad)
		require.ErrorIs(t, err, bloch.ErrAmplitudeOutOfRange)
		_, err = bloch.ThetaFromAmplitude1(bad)
		require.ErrorIs(t, err, bloch.ErrAmplitudeOutOfRange)
	}
}

func TestAnglesFromAmplitudes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, want := range []bloch.Angles{{Theta: 0.7, Phi: 0.2}, {Theta: 2.9, Phi: 6.1}, bloch.StateMinus} {
			got, err := bloch.AnglesFromAmplitudes(want.Amplitudes())
			require.NoError(t, err)
			require.InDelta(t, want.Theta, got.Theta, tol)
			require.InDelta(t, want.Phi, got.Phi, tol)
		}
	})

	t.Run("global phase and scale", func(t *testing.T) {
		a := bloch.NewAmplitudes(1.2, 4.0)
		g := 3 * cmplx.Exp(1.7i)
		got, err := bloch.AnglesFromAmplitudes(bloch.Amplitudes{Zero: g * a.Zero, One: g * a.One})
		require.NoError(t, err)
		require.InDelta(t, 1.2, got.Theta, tol)
		require.InDelta(t, 4.0, got.Phi, tol)
	})

	t.Run("poles", func(t *testing.T) {
		got, err := bloch.AnglesFromAmplitudes(bloch.Amplitudes{Zero: 0, One: -1i})
		require.NoError(t, err)
		require.InDelta(t, math.Pi, got.Theta, tol)
		require.Equal(t, 0.0, got.Phi)
	})

	t.Run("zero state", func(t *testing.T) {
		_, err := bloch.AnglesFromAmplitudes(bloch.Amplitudes{})
		require.ErrorIs(t, err, bloch.ErrZeroVector)
	})
}

func TestAmplitudesPoint(t *testing.T) {
	for _, a := range []bloch.Angles{bloch.State0, bloch.State1, bloch.StatePlus, {Theta: 1, Phi: 2}} {
		requireVec(t, a.Point(), a.Amplitudes().Point(), tol)
	}

	// Unnormalised input is scaled back onto the sphere.
	requireVec(t, r3.Vec{Y: 1}, bloch.Amplitudes{Zero: 2, One: 2i}.Point(), tol)
	require.Equal(t, r3.Vec{}, bloch.Amplitudes{}.Point())
}
