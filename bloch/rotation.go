// SPDX-License-Identifier: MIT

package bloch

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// RotatePoint rotates p by angle (right-handed, radians) about axis using the
// unit quaternion q = cos(α/2) + sin(α/2)·n̂, p' = q·p·q*. The axis need not be
// unit length; p keeps its length.
func RotatePoint(p, axis r3.Vec, angle float64) (r3.Vec, error) {
	n, err := unitAxis(axis)
	if err != nil {
		return r3.Vec{}, blochErrorf(opRotatePoint, err)
	}

	sin, cos := math.Sincos(angle / 2)
	q := quat.Number{Real: cos, Imag: sin * n.X, Jmag: sin * n.Y, Kmag: sin * n.Z}
	v := quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	r := quat.Mul(quat.Mul(q, v), quat.Conj(q))

	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}, nil
}

// Arc is the circle a state point travels when rotated about an axis through
// the origin: it lies in the plane orthogonal to the axis through Center.
type Arc struct {
	// Center is the closest point to p on the axis line.
	Center r3.Vec
	// Radius is the distance from p to Center.
	Radius float64
	// Angle is the swept rotation angle.
	Angle float64
	// Visible is false when p lies on the axis and the arc degenerates.
	Visible bool
}

// NewArc returns the rotation arc of p about axis for the given angle.
func NewArc(p, axis r3.Vec, angle float64) (Arc, error) {
	n, err := unitAxis(axis)
	if err != nil {
		return Arc{}, blochErrorf(opNewArc, err)
	}

	cosine := r3.Dot(p, n)
	center := r3.Scale(cosine, n)

	return Arc{
		Center:  center,
		Radius:  r3.Norm(r3.Sub(p, center)),
		Angle:   angle,
		Visible: !scalar.EqualWithinAbsOrRel(math.Abs(cosine), r3.Norm(p), 1e-12, 1e-12),
	}, nil
}

func unitAxis(axis r3.Vec) (r3.Vec, error) {
	n := r3.Norm(axis)
	if n == 0 {
		return r3.Vec{}, ErrZeroVector
	}

	return r3.Scale(1/n, axis), nil
}
