// Package htcircuit searches for the single-qubit layer of a
// hardware-tailored readout circuit: local Clifford gates that rotate a
// family of Pauli operators into the stabilizer group of a given graph
// state.
//
// What:
//
//   - BuildSystem: derives the parity equations a valid layer must
//     satisfy, one equation per (qubit, operator) pair.
//   - Find: solves the equations with a pseudo-boolean SAT solver and
//     returns one gate per qubit, or reports that no layer exists.
//
// Method:
//
//	Write operator j as bit vectors r (X components) and s (Z
//	components). A layer of gates with per-qubit matrix entries
//	axx, axz, azx, azz maps these to r' = Axx r + Axz s and
//	s' = Azx r + Azz s. The image lies in the stabilizer group of the
//	graph with adjacency A exactly when s' = A r', which spelled out
//	per qubit i is the GF(2) equation
//
//	    azx_i r_i + azz_i s_i + sum over neighbors k of i of
//	    (axx_k r_k + axz_k s_k)  =  0   (mod 2).
//
//	Each equation becomes a pseudo-boolean constraint "sum of selected
//	variables minus twice a slack counter equals zero"; invertibility
//	of every per-qubit matrix (axx azz + axz azx = 1) is enforced with
//	two linearized products and an exactly-one clause pair. Any
//	satisfying assignment decodes directly into the six named gates of
//	package clifford.
//
// Errors:
//
//   - ErrOperatorLength: an operator does not span the graph's vertices.
//   - ErrInfeasible: the equations are unsatisfiable; no layer exists
//     for this graph, so callers try the next candidate graph.
//   - ErrSolver: the solver gave no verdict (resource limits, internal
//     failure); distinct from infeasibility so callers can abort.
package htcircuit
