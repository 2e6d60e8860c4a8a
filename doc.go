// Package htgrouper is your in-memory toolkit for binary-symplectic
// Pauli algebra and hardware-tailored measurement grouping — from phase
// bookkeeping to solver-backed circuit search.
//
// 🚀 What is htgrouper?
//
//	A compact library that brings together:
//		• Pauli operators: 64-qubit words as X/Z bit masks with exact i^k phases
//		• Clifford conjugation: X, Y, Z, H, S, Sdg, HS, SH, HSH, CX, CZ truth tables
//		• Graph states: adjacency masks, local complementation, stabilizer generators
//		• Circuit search: one GF(2) feasibility query per layer, solved as
//		  pseudo-Boolean constraints
//		• Grouping: greedy hamiltonian partitioning with a shot-reduction estimate
//
// ✨ Why choose htgrouper?
//
//   - Bit-level core – every Pauli and every graph row is one machine word
//   - Exact semantics – phases, commutators and gate tables pinned by tests
//   - Value types – operators copy freely; concurrent grouping stays safe
//   - Honest errors – infeasible is an error you can errors.Is, never a panic
//
// Under the hood, everything is organized under five subpackages:
//
//	pauli/      — Phase and Pauli primitives, parsing, products, commutators
//	clifford/   — single-qubit conjugations, CX/CZ, and the 2×2 GF(2) Gate
//	graphstate/ — Graph shapes, rewrites, subgraph enumeration, stabilizers
//	htcircuit/  — the equation builder and the solver-backed layer finder
//	grouper/    — hamiltonian grouping over candidate graphs + R estimate
//
// Quick ASCII example:
//
//	    XX ──┐            0───1      measure XX, YY, ZZ together:
//	    YY ──┼──► graph             prepare the edge state, then one
//	    ZZ ──┘            (K2)      single-qubit Clifford per wire.
//
// A hamiltonian term joins a group when it commutes with every member
// and at least one candidate graph still admits such a layer.
//
//	go get github.com/Abduliqc/htgrouper
package htgrouper
