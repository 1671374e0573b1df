// SPDX-License-Identifier: MIT

package bloch

import "math"

// HelperRadius is the radius of the theta and phi helper arcs drawn around
// the state arrow.
const HelperRadius = 0.6

// Thresholds below which a helper label does not fit its arc.
const (
	minPhiSector  = 0.02
	minThetaLabel = 0.2
)

// ProjectedRadius is the radius of the phi helper arc in the equatorial plane:
// helperRadius·cos(max(π/2 − θ, 0)). It equals helperRadius on and below the
// equator and shrinks to 0 at θ = 0.
func ProjectedRadius(theta, helperRadius float64) float64 {
	return helperRadius * math.Cos(math.Max(math.Pi/2-theta, 0))
}

// Labels describes the angle helpers for a state.
type Labels struct {
	ProjectedRadius float64
	PhiVisible      bool // sector area large enough for the φ label
	ThetaVisible    bool
}

// HelperLabels computes the helper-arc geometry for a at HelperRadius.
func HelperLabels(a Angles) Labels {
	r := ProjectedRadius(a.Theta, HelperRadius)

	return Labels{
		ProjectedRadius: r,
		PhiVisible:      r*r*a.Phi/math.Pi > minPhiSector,
		ThetaVisible:    a.Theta > minThetaLabel,
	}
}
