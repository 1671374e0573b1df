// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot exposes the resolved options to external tests.
type OptionsSnapshot struct {
	Eps              float64
	ConjugatePairing bool
}

// ResolveOptions_TestOnly runs gatherOptions and copies the result out.
func ResolveOptions_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ConjugatePairing: o.conjugatePairing}
}

// QuadraticRoots_TestOnly exposes quadraticRoots.
var QuadraticRoots_TestOnly = quadraticRoots
