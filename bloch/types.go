// SPDX-License-Identifier: MIT

package bloch

// Angles locates a pure state on the Bloch sphere.
// Theta is the polar angle in [0, π] measured from |0⟩ (+z); Phi is the
// azimuth in [0, 2π) measured from +x towards +y.
type Angles struct {
	Theta float64
	Phi   float64
}

// Amplitudes is the state α|0⟩ + β|1⟩. Values built by NewAmplitudes are
// normalised with a real, non-negative α; AnglesFromAmplitudes accepts any
// non-zero pair.
type Amplitudes struct {
	Zero complex128
	One  complex128
}
