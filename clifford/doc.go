// Package clifford conjugates Pauli operators by the Clifford gates
// used in hardware-tailored measurement circuits.
//
// What:
//
//   - Single-qubit conjugations X, Y, Z, H, S, Sdg and the compositions
//     HS, SH, HSH (operator order: HS applies S first, then H). Each
//     rewrites one qubit of a Pauli in place, phase included.
//   - Two-qubit conjugations CX and CZ.
//   - Gate: the symplectic 2x2 bit matrix of a single-qubit Clifford,
//     restricted here to the six matrices that matter for diagonalizing
//     commuting operator families: I, H, S, HS, SH, HSH.
//
// Convention:
//
//	Conjugation means P -> U P U†. All phase bookkeeping happens in the
//	stored Y = iXZ convention of package pauli, so S(X) yields Y with a
//	clean displayed phase and CX(XZ) yields -YY.
//
// Complexity:
//
//	Each conjugation touches a constant number of bits, O(1).
//
// Errors:
//
//   - pauli.ErrQubitIndex: qubit outside the operator.
//   - ErrSameQubit: CX or CZ with control == target.
//   - ErrUnknownGate: Gate.Apply on a matrix outside the six values.
package clifford
