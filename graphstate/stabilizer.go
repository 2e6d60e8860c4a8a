package graphstate

import (
	"math/bits"

	"github.com/Abduliqc/htgrouper/pauli"
)

// Stabilizers returns the graph-state generators, one per vertex v:
// X on v and Z on every neighbor of v.
func (g *Graph) Stabilizers() []pauli.Pauli {
	out := make([]pauli.Pauli, g.n)
	for v := 0; v < g.n; v++ {
		p, _ := pauli.Identity(g.n)
		_ = p.SetX(v, true)
		for mask := g.rows[v]; mask != 0; mask &= mask - 1 {
			_ = p.SetZ(bits.TrailingZeros64(mask), true)
		}
		out[v] = p
	}
	return out
}

// InStabilizerGroup reports whether p lies in the stabilizer group of
// the graph state, up to phase: the product of the generators selected
// by p's X components must reproduce p's Z components. Operators of a
// different length are never members.
func (g *Graph) InStabilizerGroup(p pauli.Pauli) bool {
	if p.Qubits() != g.n {
		return false
	}
	var z uint64
	for mask := p.XBits(); mask != 0; mask &= mask - 1 {
		z ^= g.rows[bits.TrailingZeros64(mask)]
	}
	return z == p.ZBits()
}
