// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/blochsphere/matrix"
)

// runOrient prints the eigen decomposition of a matrix and the rotation it
// performs, raw and canonical.
func runOrient(a *app, fs *pflag.FlagSet, args []string) error {
	mf := addMatrixFlags(fs)
	if err := a.parse(fs, args); err != nil {
		return err
	}

	m, err := mf.matrix()
	if err != nil {
		return err
	}
	opts := mf.options(a)

	if !matrix.IsUnitary(m, opts...) {
		a.log.Warn().Str("matrix", m.String()).Msg("matrix is not unitary; the orientation is not a rotation")
	}

	e, err := matrix.CalculateEigen(m, opts...)
	if err != nil {
		return err
	}
	o, err := matrix.CalculateOrientation(m, opts...)
	if err != nil {
		return err
	}
	c := o.Canonical(opts...)

	prec := a.cfg.Precision
	fmt.Fprintf(a.out, "matrix     %s\n", cmat(m, prec))
	for i, p := range e.Pairs() {
		fmt.Fprintf(a.out, "lambda%d    %s  v%d %s\n", i+1, cnum(p.Value, prec), i+1, cvec(p.Vector, prec))
	}
	fmt.Fprintf(a.out, "axis       %s\n", vec(o.Axis(), prec))
	fmt.Fprintf(a.out, "angle      %s\n", num(o.RotationAngle, prec))
	fmt.Fprintf(a.out, "canonical  %s %s\n", vec(c.Axis(), prec), num(c.RotationAngle, prec))

	a.log.Debug().
		Float64("x", o.X).Float64("y", o.Y).Float64("z", o.Z).
		Float64("angle", o.RotationAngle).
		Msg("orientation")

	return nil
}
