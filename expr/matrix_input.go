// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/blochsphere/matrix"
	"github.com/katalvlaran/blochsphere/number"
)

// Gate names a preset for the four matrix entry cells.
type Gate uint8

const (
	GateX Gate = iota
	GateY
	GateZ
	GateH
	GateClear
)

var gateNames = [...]string{"X", "Y", "Z", "H", "Clear"}

// String returns the preset label.
func (g Gate) String() string {
	if int(g) < len(gateNames) {
		return gateNames[g]
	}

	return fmt.Sprintf("Gate(%d)", uint8(g))
}

// ParseGate looks a preset up by label, case-insensitively.
func ParseGate(s string) (Gate, bool) {
	for i, name := range gateNames {
		if strings.EqualFold(s, name) {
			return Gate(i), true
		}
	}

	return 0, false
}

// GateEntries returns the entry texts a preset fills in, row-major.
// The second result is false for an unknown gate.
func GateEntries(g Gate) ([2][2]string, bool) {
	switch g {
	case GateX:
		return [2][2]string{{"0", "1"}, {"1", "0"}}, true
	case GateY:
		return [2][2]string{{"0", "-i"}, {"i", "0"}}, true
	case GateZ:
		return [2][2]string{{"1", "0"}, {"0", "-1"}}, true
	case GateH:
		return [2][2]string{{"sqrt(1/2)", "sqrt(1/2)"}, {"sqrt(1/2)", "-sqrt(1/2)"}}, true
	case GateClear:
		return [2][2]string{}, true
	}

	return [2][2]string{}, false
}

// ParseMatrix evaluates four entry expressions into a matrix. Entries keep
// their kind: "1" stays real, "i" makes the entry complex.
//
// Errors carry the entry position: ParseMatrix: entry (1,0) "2+": ...
// A blank cell yields ErrEmptyExpression.
func ParseMatrix(entries [2][2]string) (matrix.Matrix2x2, error) {
	var vals [4]number.Value
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := Evaluate(entries[i][j])
			if err != nil {
				return matrix.Matrix2x2{}, exprErrorf(opParseMatrix, fmt.Errorf("entry (%d,%d) %q: %w", i, j, entries[i][j], err))
			}
			vals[2*i+j] = v
		}
	}

	return matrix.New(vals[0], vals[1], vals[2], vals[3]), nil
}

// GateMatrix is ParseMatrix of GateEntries(g).
func GateMatrix(g Gate) (matrix.Matrix2x2, error) {
	entries, ok := GateEntries(g)
	if !ok {
		return matrix.Matrix2x2{}, exprErrorf(opParseMatrix, fmt.Errorf("%w: unknown gate %s", ErrInvalidExpression, g))
	}

	return ParseMatrix(entries)
}
