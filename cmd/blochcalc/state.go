// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/blochsphere/bloch"
)

// runState prints every representation of one state.
func runState(a *app, fs *pflag.FlagSet, args []string) error {
	sf := addStateFlags(fs)
	if err := a.parse(fs, args); err != nil {
		return err
	}

	ang, err := sf.angles()
	if err != nil {
		return err
	}
	printState(a, "", ang)

	l := bloch.HelperLabels(ang)
	a.log.Debug().
		Float64("projected_radius", l.ProjectedRadius).
		Bool("phi_label", l.PhiVisible).
		Bool("theta_label", l.ThetaVisible).
		Msg("helper arcs")

	return nil
}

// printState writes angles, point, amplitudes and panel fields, each line
// label prefixed by prefix.
func printState(a *app, prefix string, ang bloch.Angles) {
	prec := a.cfg.Precision
	amp := ang.Amplitudes()
	f := bloch.FormatFieldsPrec(ang, prec)

	fmt.Fprintf(a.out, "%-15s%s %s\n", prefix+"angles", num(ang.Theta, prec), num(ang.Phi, prec))
	fmt.Fprintf(a.out, "%-15s%s\n", prefix+"point", vec(ang.Point(), prec))
	fmt.Fprintf(a.out, "%-15s%s %s\n", prefix+"amplitudes", cnum(amp.Zero, prec), cnum(amp.One, prec))
	fmt.Fprintf(a.out, "%-15s%s |0> + exp(%s) %s |1>\n", prefix+"fields", f.Amplitude0, f.Phase, f.Amplitude1)
}
