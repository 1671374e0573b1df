// Package bloch converts between the three views of a single-qubit pure
// state: spherical angles (theta, phi), a point on the unit Bloch sphere and
// the amplitude pair (cos(θ/2), e^{iφ}·sin(θ/2)).
//
// It also carries the small amount of geometry a Bloch-sphere front end
// needs around those conversions: rotating a state point about an axis
// (quaternion based), the arc drawn around a rotation axis, the helper-arc
// radius for the phi label, the four preset states and the text fields of a
// state input panel.
//
// Points are gonum r3.Vec values. PointToAngles renormalises its input, so a
// dragged point slightly off the sphere is fine; the origin is rejected with
// ErrZeroVector.
//
//	a, _ := bloch.PointToAngles(r3.Vec{X: 1})  // θ = π/2, φ = 0
//	amp := bloch.NewAmplitudes(a.Theta, a.Phi) // (√½, √½)
package bloch
