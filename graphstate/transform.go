package graphstate

import (
	"fmt"
	"math/bits"
)

// LocalComplement toggles every edge between neighbors of v. Applied to
// a graph state, this is the move that preserves the state up to local
// Cliffords, so all graphs in one local-complementation orbit measure
// the same families.
func (g *Graph) LocalComplement(v int) error {
	if err := g.check(v); err != nil {
		return err
	}
	nb := g.rows[v]
	for mask := nb; mask != 0; mask &= mask - 1 {
		u := bits.TrailingZeros64(mask)
		g.rows[u] ^= nb &^ (1 << u)
	}
	return nil
}

// Swap relabels two vertices in place.
func (g *Graph) Swap(a, b int) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	g.rows[a], g.rows[b] = g.rows[b], g.rows[a]
	for v := range g.rows {
		bitA := g.rows[v] >> a & 1
		bitB := g.rows[v] >> b & 1
		if bitA != bitB {
			g.rows[v] ^= 1<<a | 1<<b
		}
	}
	return nil
}

// Permuted returns the relabeled graph: the edge a-b maps to
// mapping[a]-mapping[b]. The mapping must use every vertex exactly
// once.
func (g *Graph) Permuted(mapping []int) (*Graph, error) {
	if len(mapping) != g.n {
		return nil, fmt.Errorf("%w: %d entries for %d vertices", ErrPermutation, len(mapping), g.n)
	}
	var seen uint64
	for _, m := range mapping {
		if m < 0 || m >= g.n || seen>>m&1 == 1 {
			return nil, fmt.Errorf("%w: vertex %d", ErrPermutation, m)
		}
		seen |= 1 << m
	}
	out, err := New(g.n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(mapping[e[0]], mapping[e[1]])
	}
	return out, nil
}

// Union returns the graph holding every edge of a or b.
func Union(a, b *Graph) (*Graph, error) {
	return merge(a, b, func(x, y uint64) uint64 { return x | y })
}

// Intersect returns the graph holding the edges present in both a
// and b.
func Intersect(a, b *Graph) (*Graph, error) {
	return merge(a, b, func(x, y uint64) uint64 { return x & y })
}

// Subtract returns the graph holding the edges of a that are absent
// from b.
func Subtract(a, b *Graph) (*Graph, error) {
	return merge(a, b, func(x, y uint64) uint64 { return x &^ y })
}

func merge(a, b *Graph, op func(x, y uint64) uint64) (*Graph, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("%w: %d and %d", ErrSizeMismatch, a.n, b.n)
	}
	out, err := New(a.n)
	if err != nil {
		return nil, err
	}
	for v := range out.rows {
		out.rows[v] = op(a.rows[v], b.rows[v])
	}
	return out, nil
}

// Compress packs the upper-triangle edge bits into one word, row by
// row; Decompress restores the graph. Fits vertex counts up to 11.
func (g *Graph) Compress() (uint64, error) {
	if g.n*(g.n-1)/2 > 64 {
		return 0, fmt.Errorf("%w: %d vertices", ErrCompress, g.n)
	}
	var code uint64
	index := 0
	for a := 0; a < g.n-1; a++ {
		for b := a + 1; b < g.n; b++ {
			if g.HasEdge(a, b) {
				code |= 1 << index
			}
			index++
		}
	}
	return code, nil
}

// Decompress restores an n-vertex graph from its Compress code.
func Decompress(n int, code uint64) (*Graph, error) {
	if n*(n-1)/2 > 64 {
		return nil, fmt.Errorf("%w: %d vertices", ErrCompress, n)
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	index := 0
	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			if code>>index&1 == 1 {
				_ = g.AddEdge(a, b)
			}
			index++
		}
	}
	return g, nil
}

// Subgraphs enumerates every spanning subgraph whose edge count lies in
// [minEdges, maxEdges]: all subsets of the edge set on the full vertex
// set. The subset count is 2^EdgeCount(), so keep the base graph small.
func (g *Graph) Subgraphs(minEdges, maxEdges int) ([]*Graph, error) {
	edges := g.Edges()
	m := len(edges)
	if m > 62 {
		return nil, fmt.Errorf("%w: %d", ErrEdgeCount, m)
	}
	var subgraphs []*Graph
	total := uint64(1) << m
	for subset := uint64(0); subset < total; subset++ {
		count := bits.OnesCount64(subset)
		if count < minEdges || count > maxEdges {
			continue
		}
		sub, err := New(g.n)
		if err != nil {
			return nil, err
		}
		for j, e := range edges {
			if subset>>j&1 == 1 {
				_ = sub.AddEdge(e[0], e[1])
			}
		}
		subgraphs = append(subgraphs, sub)
	}
	return subgraphs, nil
}

// AllSubgraphs enumerates every spanning subgraph without an edge
// bound.
func (g *Graph) AllSubgraphs() ([]*Graph, error) {
	return g.Subgraphs(0, g.EdgeCount())
}
