package grouper

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Abduliqc/htgrouper/graphstate"
	"github.com/Abduliqc/htgrouper/htcircuit"
	"github.com/Abduliqc/htgrouper/pauli"
)

var (
	// ErrNoGraphs is returned by Group when no candidate graph is given.
	ErrNoGraphs = errors.New("grouper: at least one candidate graph is required")

	// ErrGraphSize is returned when a candidate graph does not span the
	// hamiltonian's qubits.
	ErrGraphSize = errors.New("grouper: graph vertex count does not match hamiltonian")

	// ErrOperatorLength is returned when a term does not span the
	// hamiltonian's qubits.
	ErrOperatorLength = errors.New("grouper: term length does not match hamiltonian")
)

// Term is one weighted operator of a hamiltonian.
type Term struct {
	Op          pauli.Pauli
	Coefficient float64
}

// Hamiltonian is a weighted sum of Pauli operators on Qubits qubits.
type Hamiltonian struct {
	Qubits int
	Terms  []Term
}

// Collection is one simultaneously measurable set: pairwise commuting
// terms plus every candidate graph that still admits a single-qubit
// Clifford layer measuring all of them. Graphs may be empty when no
// candidate accommodates the terms; such a collection cannot be
// measured with the given connectivity.
type Collection struct {
	Terms  []Term
	Graphs []*graphstate.Graph
}

// Ops lists the operators of the collection's terms, in insertion
// order.
func (c Collection) Ops() []pauli.Pauli {
	ops := make([]pauli.Pauli, len(c.Terms))
	for i, t := range c.Terms {
		ops[i] = t.Op
	}
	return ops
}

// Options tunes the grouping loop.
type Options struct {
	// SortByMagnitude places terms with large |coefficient| first, so
	// the heaviest operators claim the roomiest collections. Disable to
	// keep the hamiltonian's own term order.
	SortByMagnitude bool
}

// DefaultOptions returns the standard configuration: magnitude-sorted
// insertion.
func DefaultOptions() Options {
	return Options{SortByMagnitude: true}
}

// Group partitions the hamiltonian into measurable collections using
// the given candidate graphs. A nil opts selects DefaultOptions. The
// returned collections own their graphs; mutating them leaves the
// candidates untouched.
func Group(h Hamiltonian, graphs []*graphstate.Graph, opts *Options) ([]Collection, error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	for i, g := range graphs {
		if g.Vertices() != h.Qubits {
			return nil, fmt.Errorf("%w: graph %d has %d vertices, want %d",
				ErrGraphSize, i, g.Vertices(), h.Qubits)
		}
	}
	for i, t := range h.Terms {
		if t.Op.Qubits() != h.Qubits {
			return nil, fmt.Errorf("%w: term %d spans %d qubits, want %d",
				ErrOperatorLength, i, t.Op.Qubits(), h.Qubits)
		}
	}

	terms := make([]Term, len(h.Terms))
	copy(terms, h.Terms)
	if opts.SortByMagnitude {
		sort.SliceStable(terms, func(i, j int) bool {
			return math.Abs(terms[i].Coefficient) > math.Abs(terms[j].Coefficient)
		})
	}

	var collections []Collection
	for _, term := range terms {
		placed, err := place(collections, term)
		if err != nil {
			return nil, err
		}
		if placed {
			continue
		}
		surviving, err := filterGraphs(graphs, []pauli.Pauli{term.Op})
		if err != nil {
			return nil, err
		}
		owned := make([]*graphstate.Graph, len(surviving))
		for i, g := range surviving {
			owned[i] = g.Clone()
		}
		collections = append(collections, Collection{Terms: []Term{term}, Graphs: owned})
	}
	return collections, nil
}

// place tries to grow the first collection that accepts the term: the
// operator must commute with every member and leave at least one of
// the collection's graphs feasible.
func place(collections []Collection, term Term) (bool, error) {
	for ci := range collections {
		c := &collections[ci]
		if !commutesWithAll(c.Terms, term.Op) {
			continue
		}
		candidate := append(c.Ops(), term.Op)
		surviving, err := filterGraphs(c.Graphs, candidate)
		if err != nil {
			return false, err
		}
		if len(surviving) == 0 {
			continue
		}
		c.Terms = append(c.Terms, term)
		c.Graphs = surviving
		return true, nil
	}
	return false, nil
}

func commutesWithAll(terms []Term, op pauli.Pauli) bool {
	for _, t := range terms {
		if pauli.Commutator(t.Op, op) == 1 {
			return false
		}
	}
	return true
}

// filterGraphs keeps the graphs admitting a circuit for ops. Solver
// failures abort, infeasibility just filters.
func filterGraphs(graphs []*graphstate.Graph, ops []pauli.Pauli) ([]*graphstate.Graph, error) {
	var surviving []*graphstate.Graph
	for _, g := range graphs {
		_, err := htcircuit.Find(g, ops)
		switch {
		case err == nil:
			surviving = append(surviving, g)
		case errors.Is(err, htcircuit.ErrInfeasible):
		default:
			return nil, err
		}
	}
	return surviving, nil
}
