// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/blochsphere/bloch"
	"github.com/katalvlaran/blochsphere/expr"
	"github.com/katalvlaran/blochsphere/matrix"
)

// matrixFlags selects a matrix by gate preset or by four entry expressions.
type matrixFlags struct {
	gate      string
	entries   [2][2]string
	conjugate bool
}

func addMatrixFlags(fs *pflag.FlagSet) *matrixFlags {
	f := &matrixFlags{}
	fs.StringVar(&f.gate, "gate", "", "gate preset: X, Y, Z, H")
	fs.StringVar(&f.entries[0][0], "m00", "", "entry (0,0) expression")
	fs.StringVar(&f.entries[0][1], "m01", "", "entry (0,1) expression")
	fs.StringVar(&f.entries[1][0], "m10", "", "entry (1,0) expression")
	fs.StringVar(&f.entries[1][1], "m11", "", "entry (1,1) expression")
	fs.BoolVar(&f.conjugate, "conjugate-pairing", false, "pair eigenvectors by the conjugate eigenvalue (legacy)")

	return f
}

func (f *matrixFlags) matrix() (matrix.Matrix2x2, error) {
	if f.gate != "" {
		if f.entries != ([2][2]string{}) {
			return matrix.Matrix2x2{}, fmt.Errorf("%w: --gate cannot be combined with --m00, --m01, --m10, --m11", errUsage)
		}
		g, ok := expr.ParseGate(f.gate)
		if !ok {
			return matrix.Matrix2x2{}, fmt.Errorf("%w: unknown gate %q", errUsage, f.gate)
		}
		f.entries, _ = expr.GateEntries(g)
	}
	if f.entries == ([2][2]string{}) {
		return matrix.Matrix2x2{}, fmt.Errorf("%w: give --gate or --m00, --m01, --m10, --m11", errUsage)
	}

	return expr.ParseMatrix(f.entries)
}

func (f *matrixFlags) options(a *app) []matrix.Option {
	opts := a.cfg.MatrixOptions()
	if f.conjugate {
		opts = append(opts, matrix.WithConjugatePairing())
	}

	return opts
}

// stateFlags selects a state by preset, angles, point or panel fields.
type stateFlags struct {
	preset     string
	theta, phi string
	point      string
	amplitude0 string
	amplitude1 string
	phaseText  string
}

func addStateFlags(fs *pflag.FlagSet) *stateFlags {
	f := &stateFlags{}
	fs.StringVar(&f.preset, "preset", "", "state preset: 0, 1, +, -")
	fs.StringVar(&f.theta, "theta", "", "polar angle expression")
	fs.StringVar(&f.phi, "phi", "0", "azimuth expression")
	fs.StringVar(&f.point, "point", "", "point as x,y,z expressions")
	fs.StringVar(&f.amplitude0, "amplitude0", "", "|0> amplitude field text")
	fs.StringVar(&f.amplitude1, "amplitude1", "", "|1> amplitude field text")
	fs.StringVar(&f.phaseText, "phase-text", "i0", "phase field text, e.g. i1.571")

	return f
}

func (f *stateFlags) angles() (bloch.Angles, error) {
	given := 0
	for _, s := range []string{f.preset, f.theta, f.point, f.amplitude0 + f.amplitude1} {
		if s != "" {
			given++
		}
	}
	if given != 1 {
		return bloch.Angles{}, fmt.Errorf("%w: give exactly one of --preset, --theta, --point, --amplitude0/--amplitude1", errUsage)
	}

	switch {
	case f.preset != "":
		a, ok := bloch.Preset(f.preset)
		if !ok {
			return bloch.Angles{}, fmt.Errorf("%w: unknown preset %q", errUsage, f.preset)
		}
		return a, nil

	case f.theta != "":
		theta, err := expr.EvaluateReal(f.theta)
		if err != nil {
			return bloch.Angles{}, fmt.Errorf("theta: %w", err)
		}
		phi, err := expr.EvaluateReal(f.phi)
		if err != nil {
			return bloch.Angles{}, fmt.Errorf("phi: %w", err)
		}
		return bloch.Angles{Theta: theta, Phi: phi}, nil

	case f.point != "":
		p, err := parsePoint(f.point)
		if err != nil {
			return bloch.Angles{}, err
		}
		return bloch.PointToAngles(p)
	}

	fields := bloch.Fields{Amplitude0: f.amplitude0, Phase: f.phaseText, Amplitude1: f.amplitude1}
	edited := bloch.FieldAmplitude0
	if f.amplitude0 == "" {
		edited = bloch.FieldAmplitude1
	}

	return bloch.ParseFields(fields, edited)
}

func parsePoint(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("%w: --point wants x,y,z, got %q", errUsage, s)
	}
	var xyz [3]float64
	for i, part := range parts {
		v, err := expr.EvaluateReal(part)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("point[%d]: %w", i, err)
		}
		xyz[i] = v
	}

	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
