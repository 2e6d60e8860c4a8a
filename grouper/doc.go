// Package grouper partitions a Pauli hamiltonian into simultaneously
// measurable collections, each tied to the hardware-compatible graph
// states that can read it out.
//
// What:
//
//   - Term / Hamiltonian: weighted Pauli operators on a fixed qubit
//     count.
//   - Group: the greedy grouping loop. Each collection keeps exactly
//     the candidate graphs that still admit a hardware-tailored
//     circuit (htcircuit.Find) for all of its members.
//   - EstimatedShotReduction: the R-hat estimate comparing a grouping
//     against measuring every operator on its own.
//
// Why:
//
//	Expectation-value estimation pays one shot budget per measured
//	group. Grouping commuting operators that share a readout circuit
//	multiplies the effective budget; tailoring the circuits to the
//	device connectivity keeps the groups implementable.
//
// Algorithm:
//
//	Terms are taken largest magnitude first (Options.SortByMagnitude)
//	and placed into the first existing collection where the operator
//	commutes with every member and at least one of the collection's
//	graphs still admits a circuit for the grown set; the graphs that
//	stop working are dropped at that moment. A term no collection
//	accepts opens a new one, filtered against the full candidate list.
//	Grouping with only the edgeless graph yields the classic
//	tensor-product-basis baseline.
//
// Errors:
//
//   - ErrNoGraphs: Group needs at least one candidate graph.
//   - ErrGraphSize: a candidate graph does not span the hamiltonian.
//   - ErrOperatorLength: a term does not span the hamiltonian.
//   - htcircuit.ErrSolver: propagated when feasibility cannot be
//     decided; infeasibility itself is not an error, it just drops
//     graphs.
package grouper
