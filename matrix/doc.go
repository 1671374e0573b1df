// Package matrix solves the 2x2 complex eigenproblem behind single-qubit gates
// and maps a gate to the rotation it performs on the Bloch sphere.
//
// The matrix package provides:
//
//   - Matrix2x2, an immutable value type whose entries keep their real or
//     complex kind, plus the gate constants (Identity, Pauli X/Y/Z, Hadamard)
//     and CreateUnitary for an arbitrary axis and angle.
//   - CalculateEigenVectors, CalculateEigen and CalculateOrientation, all in
//     closed form: two quadratic solves, no iteration.
//   - A small fixed-shape algebra (Add, Sub, Mul, Scale, MatVec, Dagger,
//     Trace, Det) and the IsUnitary/ValidateUnitary checks.
//
// Every kernel is O(1) and allocation-free; matrices are passed by value and
// never mutated, so all functions are safe for concurrent use.
//
//	o, err := matrix.CalculateOrientation(matrix.Hadamard)
//	if err != nil { ... }
//	c := o.Canonical() // axis (1/√2, 0, 1/√2), angle π
package matrix
