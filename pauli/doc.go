// Package pauli implements the binary symplectic representation of
// n-qubit Pauli operators: two 64-bit fields mark the X and Z components
// per qubit, and a mod-4 phase tracks the global factor i^k.
//
// What:
//
//   - Phase: the factor i^k as an immutable value in [0,4).
//   - Pauli: an operator such as "-iZZXY" as (x bits, z bits, n, phase),
//     with per-qubit accessors, weight counts and text (de)serialization.
//   - Commutator / CommutesLocally: symplectic commutation tests.
//   - Mul: the Pauli group product with exact phase bookkeeping.
//
// Phase convention:
//
//	The stored phase treats Y as iXZ, so "Y" parses to x=1, z=1 with one
//	stored quarter turn. Phase() reports the displayed phase (Y primitive),
//	XZPhase() the stored one. String() always renders the displayed phase.
//
// Complexity:
//
//	Every operation is a handful of word-level bit instructions, O(1) in
//	the operator length (capped at MaxQubits = 64).
//
// Errors:
//
//   - ErrQubitCount: requested length outside [0, MaxQubits].
//   - ErrQubitIndex: qubit index outside [0, n) on a setter or factory.
//   - ErrInvalidCharacter: operator string character outside {I,X,Y,Z}.
package pauli
