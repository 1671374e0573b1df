// SPDX-License-Identifier: MIT

package bloch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision is the number of decimals FormatFields renders.
const DefaultPrecision = 3

// Field names one text box of the state input panel
// "[amplitude0] |0⟩ + exp([phase]) [amplitude1] |1⟩".
type Field uint8

const (
	FieldAmplitude0 Field = iota
	FieldPhase
	FieldAmplitude1
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldAmplitude0:
		return "amplitude0"
	case FieldPhase:
		return "phase"
	case FieldAmplitude1:
		return "amplitude1"
	default:
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
}

// Fields holds the panel's text. Phase is rendered with a leading "i"
// (the exponent of e), e.g. "i1.571".
type Fields struct {
	Amplitude0 string
	Phase      string
	Amplitude1 string
}

// FormatFields renders a with DefaultPrecision decimals.
func FormatFields(a Angles) Fields {
	return FormatFieldsPrec(a, DefaultPrecision)
}

// FormatFieldsPrec renders cos(θ/2), "i"+φ and sin(θ/2) with prec decimals.
func FormatFieldsPrec(a Angles, prec int) Fields {
	sin, cos := math.Sincos(a.Theta / 2)

	return Fields{
		Amplitude0: formatFixed(cos, prec),
		Phase:      "i" + formatFixed(a.Phi, prec),
		Amplitude1: formatFixed(sin, prec),
	}
}

// ParseFields turns panel text back into angles.
//
// Theta comes from whichever amplitude the user edited: amplitude1 via
// 2·asin, anything else via 2·acos of amplitude0. Phi is the phase text with
// its first "i" removed, folded into [0, 2π).
//
// A negative amplitude gives a theta outside [0, π] (2·acos(−0.5) = 4π/3,
// 2·asin(−0.5) = −π/3). Such a theta is folded back into range with φ moved
// by π, which describes the same state up to a global phase.
func ParseFields(f Fields, edited Field) (Angles, error) {
	var (
		theta float64
		err   error
	)
	switch edited {
	case FieldAmplitude1:
		theta, err = parseWith(FieldAmplitude1, f.Amplitude1, ThetaFromAmplitude1)
	default:
		theta, err = parseWith(FieldAmplitude0, f.Amplitude0, ThetaFromAmplitude0)
	}
	if err != nil {
		return Angles{}, err
	}

	phi, err := parseNumber(FieldPhase, strings.Replace(f.Phase, "i", "", 1))
	if err != nil {
		return Angles{}, err
	}

	return foldAngles(theta, phi), nil
}

// foldAngles maps theta into [0, π] and phi into [0, 2π) without changing the
// state beyond a global phase: θ' = −θ or 2π − θ, with φ' = φ + π.
func foldAngles(theta, phi float64) Angles {
	switch {
	case theta < 0:
		theta, phi = -theta, phi+math.Pi
	case theta > math.Pi:
		theta, phi = twoPi-theta, phi+math.Pi
	}

	return Angles{Theta: theta, Phi: wrapTwoPi(phi)}
}

func parseWith(field Field, text string, toTheta func(float64) (float64, error)) (float64, error) {
	x, err := parseNumber(field, text)
	if err != nil {
		return 0, err
	}
	theta, err := toTheta(x)
	if err != nil {
		return 0, blochErrorf(opParseFields, fmt.Errorf("%s %q: %w", field, text, err))
	}

	return theta, nil
}

func parseNumber(field Field, text string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, blochErrorf(opParseFields, fmt.Errorf("%s %q: %w", field, text, ErrInvalidField))
	}

	return x, nil
}

// formatFixed is JavaScript-style toFixed without negative zero.
func formatFixed(x float64, prec int) string {
	return strconv.FormatFloat(scalar.Round(x, prec), 'f', prec, 64)
}
