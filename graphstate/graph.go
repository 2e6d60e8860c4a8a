package graphstate

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxVertices is the largest supported vertex count; neighbor sets live
// in single 64-bit masks, matching pauli.MaxQubits.
const MaxVertices = 64

var (
	// ErrVertexCount is returned for vertex counts a constructor cannot
	// accommodate.
	ErrVertexCount = errors.New("graphstate: vertex count out of range")

	// ErrVertexIndex is returned for vertices outside [0, n).
	ErrVertexIndex = errors.New("graphstate: vertex index out of range")

	// ErrSizeMismatch is returned by edge-set algebra on graphs of
	// different vertex count.
	ErrSizeMismatch = errors.New("graphstate: graphs differ in vertex count")

	// ErrPermutation is returned by Permuted when the mapping is not a
	// bijection on [0, n).
	ErrPermutation = errors.New("graphstate: mapping is not a permutation")

	// ErrCompress is returned when the upper triangle does not fit a
	// 64-bit code (more than 11 vertices).
	ErrCompress = errors.New("graphstate: too many vertices to compress")

	// ErrEdgeCount is returned by Subgraphs when the subset count would
	// overflow the enumeration.
	ErrEdgeCount = errors.New("graphstate: too many edges to enumerate subgraphs")
)

// Graph is a simple undirected graph on n vertices, one neighbor bit
// mask per vertex. The zero-vertex graph is valid and marks the
// edgeless "measure everything locally" setting.
type Graph struct {
	n    int
	rows []uint64
}

// New returns the empty graph on n vertices.
func New(n int) (*Graph, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d", ErrVertexCount, n)
	}
	return &Graph{n: n, rows: make([]uint64, n)}, nil
}

// Complete returns the graph with every pair of vertices joined.
func Complete(n int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	all := lowMask(n)
	for v := 0; v < n; v++ {
		g.rows[v] = all &^ (1 << v)
	}
	return g, nil
}

// Star returns the graph joining center to every other vertex.
func Star(n, center int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	if center < 0 || center >= n {
		return nil, fmt.Errorf("%w: center %d of %d", ErrVertexIndex, center, n)
	}
	g.rows[center] = lowMask(n) &^ (1 << center)
	for v := 0; v < n; v++ {
		if v != center {
			g.rows[v] = 1 << center
		}
	}
	return g, nil
}

// Linear returns the path 0-1-...-(n-1).
func Linear(n int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v+1 < n; v++ {
		_ = g.AddEdge(v, v+1)
	}
	return g, nil
}

// Cycle returns the path 0-1-...-(n-1) closed into a ring.
func Cycle(n int) (*Graph, error) {
	g, err := Linear(n)
	if err != nil {
		return nil, err
	}
	if n > 1 {
		_ = g.AddEdge(0, n-1)
	}
	return g, nil
}

// Pusteblume returns the dandelion on n >= 5 vertices: vertices 1-3
// hang off vertex 0, everything else off vertex 3.
func Pusteblume(n int) (*Graph, error) {
	if n < 5 {
		return nil, fmt.Errorf("%w: pusteblume needs 5 vertices, got %d", ErrVertexCount, n)
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for v := 1; v < 4; v++ {
		_ = g.AddEdge(0, v)
	}
	for v := 4; v < n; v++ {
		_ = g.AddEdge(3, v)
	}
	return g, nil
}

// Grid returns the rows x cols lattice with 4-connectivity: vertex
// r*cols+c joins its horizontal and vertical neighbors. Square-lattice
// devices expose exactly this coupling shape.
func Grid(rows, cols int) (*Graph, error) {
	if rows < 0 || cols < 0 || rows > MaxVertices || cols > MaxVertices {
		return nil, fmt.Errorf("%w: %d x %d grid", ErrVertexCount, rows, cols)
	}
	g, err := New(rows * cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				_ = g.AddEdge(v, v+1)
			}
			if r+1 < rows {
				_ = g.AddEdge(v, v+cols)
			}
		}
	}
	return g, nil
}

// Vertices returns the vertex count n.
func (g *Graph) Vertices() int { return g.n }

// HasEdge reports whether a and b are joined; out-of-range vertices
// read as unconnected.
func (g *Graph) HasEdge(a, b int) bool {
	if a < 0 || a >= g.n || b < 0 {
		return false
	}
	return (g.rows[a]>>b)&1 == 1
}

// Neighbors returns the bit mask of vertices adjacent to v; bit u is
// set when the edge v-u exists. Out-of-range vertices have no
// neighbors.
func (g *Graph) Neighbors(v int) uint64 {
	if v < 0 || v >= g.n {
		return 0
	}
	return g.rows[v]
}

// Degree returns the number of edges at v.
func (g *Graph) Degree(v int) int { return bits.OnesCount64(g.Neighbors(v)) }

func (g *Graph) check(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d of %d", ErrVertexIndex, v, g.n)
	}
	return nil
}

// AddEdge joins a and b. Self-loops are silently skipped.
func (g *Graph) AddEdge(a, b int) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	g.rows[a] |= 1 << b
	g.rows[b] |= 1 << a
	return nil
}

// RemoveEdge disconnects a and b.
func (g *Graph) RemoveEdge(a, b int) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	g.rows[a] &^= 1 << b
	g.rows[b] &^= 1 << a
	return nil
}

// ToggleEdge flips the edge between a and b. Self-loops are skipped.
func (g *Graph) ToggleEdge(a, b int) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	g.rows[a] ^= 1 << b
	g.rows[b] ^= 1 << a
	return nil
}

// RemoveEdgesTo disconnects v from all its neighbors.
func (g *Graph) RemoveEdgesTo(v int) error {
	if err := g.check(v); err != nil {
		return err
	}
	g.rows[v] = 0
	clear := ^(uint64(1) << v)
	for u := range g.rows {
		g.rows[u] &= clear
	}
	return nil
}

// AddPath joins consecutive vertices of the walk. Fewer than two
// vertices is a no-op.
func (g *Graph) AddPath(vertices ...int) error {
	if len(vertices) < 2 {
		return nil
	}
	for i := 0; i+1 < len(vertices); i++ {
		if err := g.AddEdge(vertices[i], vertices[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, row := range g.rows {
		total += bits.OnesCount64(row)
	}
	return total / 2
}

// Edges lists the edges as vertex pairs {a, b} with a < b, ordered by
// the upper triangle row by row. Compress packs edge bits in the same
// order.
func (g *Graph) Edges() [][2]int {
	edges := make([][2]int, 0, g.EdgeCount())
	for a := 0; a < g.n-1; a++ {
		for b := a + 1; b < g.n; b++ {
			if g.HasEdge(a, b) {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return edges
}

// Clear removes every edge.
func (g *Graph) Clear() {
	for v := range g.rows {
		g.rows[v] = 0
	}
}

// Clone returns an independent copy.
func (g *Graph) Clone() *Graph {
	rows := make([]uint64, g.n)
	copy(rows, g.rows)
	return &Graph{n: g.n, rows: rows}
}

// Equal reports whether both graphs have the same vertex count and
// edge set.
func (g *Graph) Equal(o *Graph) bool {
	if g.n != o.n {
		return false
	}
	for v := range g.rows {
		if g.rows[v] != o.rows[v] {
			return false
		}
	}
	return true
}

// lowMask returns a word with the low n bits set.
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}
