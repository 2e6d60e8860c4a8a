// Package graphstate models graph states by their adjacency structure:
// one 64-bit neighbor mask per vertex, plus the standard graph-state
// machinery on top.
//
// What:
//
//   - Graph: a simple undirected graph on up to MaxVertices vertices
//     with edge-level editing (AddEdge, ToggleEdge, AddPath, ...).
//   - Shape constructors: New, Complete, Star, Linear, Cycle, Grid and
//     Pusteblume.
//   - State-preserving rewrites: LocalComplement (the graph-state
//     equivalence move), Swap and Permuted for vertex relabeling.
//   - Edge-set algebra: Union, Intersect, Subtract.
//   - Compress/Decompress: the upper-triangle edge bits packed into a
//     single word, for graphs with at most 11 vertices.
//   - Subgraphs: enumeration of edge subsets, the search space for
//     hardware-tailored measurement circuits.
//   - Stabilizers: the generators X_v * prod(Z_u, u adjacent to v) of
//     the associated graph state.
//
// Why:
//
//	Measuring a commuting family of Pauli operators jointly means
//	rotating it into the stabilizer group of some graph state that the
//	hardware can prepare. This package supplies the graphs and their
//	stabilizers; package htcircuit searches for the rotation.
//
// Complexity:
//
//	Edge operations are O(1) word operations; LocalComplement and Swap
//	are O(n) words; Subgraphs is exponential in the edge count by
//	nature (2^m subsets).
//
// Errors:
//
//   - ErrVertexCount: vertex count outside [0, MaxVertices], or a shape
//     constraint violated (Pusteblume needs 5 vertices).
//   - ErrVertexIndex: vertex outside [0, n) on an editing operation.
//   - ErrSizeMismatch: set algebra across different vertex counts.
//   - ErrPermutation: Permuted with a mapping that is not a bijection.
//   - ErrCompress: more than 11 vertices, upper triangle exceeds 64 bits.
//   - ErrEdgeCount: subgraph enumeration beyond 2^62 subsets.
package graphstate
