// SPDX-License-Identifier: MIT

package bloch

import (
	"math"
	"strings"
)

// Preset states offered by the state selector.
var (
	State0     = Angles{Theta: 0, Phi: 0}
	State1     = Angles{Theta: math.Pi, Phi: 0}
	StatePlus  = Angles{Theta: math.Pi / 2, Phi: 0}
	StateMinus = Angles{Theta: math.Pi / 2, Phi: math.Pi}
)

var presets = map[string]Angles{
	"0": State0,
	"1": State1,
	"+": StatePlus,
	"-": StateMinus,
}

// Preset looks a state up by label. It accepts the bare labels "0", "1", "+"
// and "-" as well as their ket forms "|0>", "|+⟩" and so on.
func Preset(name string) (Angles, bool) {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "|")
	name = strings.TrimSuffix(strings.TrimSuffix(name, ">"), "⟩")
	a, ok := presets[name]

	return a, ok
}
