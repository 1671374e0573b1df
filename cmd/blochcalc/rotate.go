// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/bloch"
	"github.com/katalvlaran/blochsphere/matrix"
)

// runRotate applies a matrix to a state twice: as a rotation of the Bloch
// point about the matrix's orientation, and as a matrix-vector product. For
// a unitary matrix both points agree.
func runRotate(a *app, fs *pflag.FlagSet, args []string) error {
	mf := addMatrixFlags(fs)
	sf := addStateFlags(fs)
	if err := a.parse(fs, args); err != nil {
		return err
	}

	m, err := mf.matrix()
	if err != nil {
		return err
	}
	ang, err := sf.angles()
	if err != nil {
		return err
	}
	opts := mf.options(a)

	o, err := matrix.CalculateOrientation(m, opts...)
	if err != nil {
		return err
	}
	p := ang.Point()
	rotated, err := bloch.RotatePoint(p, o.Axis(), o.RotationAngle)
	if err != nil {
		return err
	}
	arc, err := bloch.NewArc(p, o.Axis(), o.RotationAngle)
	if err != nil {
		return err
	}

	amp := ang.Amplitudes()
	psi := matrix.MatVec(m, matrix.Vector{amp.Zero, amp.One})
	direct := bloch.Amplitudes{Zero: psi[0], One: psi[1]}.Point()

	prec := a.cfg.Precision
	printState(a, "", ang)
	fmt.Fprintf(a.out, "%-15s%s\n", "rotated", vec(rotated, prec))
	fmt.Fprintf(a.out, "%-15s%s\n", "applied", vec(direct, prec))
	if arc.Visible {
		fmt.Fprintf(a.out, "%-15scenter %s radius %s angle %s\n", "arc", vec(arc.Center, prec), num(arc.Radius, prec), num(arc.Angle, prec))
	} else {
		fmt.Fprintf(a.out, "%-15snone (state on the axis)\n", "arc")
	}

	if out, err := bloch.PointToAngles(rotated); err == nil {
		printState(a, "new ", out)
	}

	if d := r3.Norm(r3.Sub(rotated, direct)); d > 1e-6 {
		a.log.Warn().Float64("distance", d).Msg("rotation and matrix product disagree; is the matrix unitary?")
	}

	return nil
}
