// Package blochsphere is the numeric engine of a single-qubit Bloch-sphere
// visualiser: what a 2x2 gate does to the sphere, where a state sits on it,
// and how the text a user types becomes numbers.
//
// The engine is split into small, dependency-ordered packages:
//
//	number/  the Real|Complex scalar and complex128 helpers
//	matrix/  Matrix2x2, gate constants, closed-form eigen solver and Orientation
//	bloch/   angles ⇄ point ⇄ amplitudes, presets, panel fields, rotation arcs
//	expr/    LaTeX-flavoured expression parser and the matrix entry panel
//
// cmd/blochcalc drives all of them from the command line; internal/config and
// internal/logger carry its environment and zerolog setup.
//
// Quick example:
//
//	m, _ := expr.ParseMatrix([2][2]string{{`\frac{1}{\sqrt{2}}`, `\frac{1}{\sqrt{2}}`},
//		{`\frac{1}{\sqrt{2}}`, `-\frac{1}{\sqrt{2}}`}})
//	o, _ := matrix.CalculateOrientation(m)
//	p, _ := bloch.RotatePoint(bloch.State0.Point(), o.Axis(), o.RotationAngle)
//	// p ≈ (1, 0, 0): Hadamard takes |0⟩ to |+⟩.
//
// All kernels are pure functions over small value types and are safe for
// concurrent use.
package blochsphere
