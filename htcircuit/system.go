package htcircuit

import (
	"errors"
	"fmt"

	"github.com/Abduliqc/htgrouper/graphstate"
	"github.com/Abduliqc/htgrouper/pauli"
)

var (
	// ErrOperatorLength is returned when an operator does not span
	// exactly the graph's vertex count.
	ErrOperatorLength = errors.New("htcircuit: operator length does not match graph")

	// ErrInfeasible is returned by Find when no single-qubit layer
	// rotates the operators into the graph state's stabilizer group.
	ErrInfeasible = errors.New("htcircuit: no single-qubit Clifford layer exists")

	// ErrSolver is returned when the solver fails without a verdict.
	ErrSolver = errors.New("htcircuit: solver failure")
)

// Role selects one entry of a per-qubit gate matrix; together with a
// qubit index it names one unknown of the equation system.
type Role uint8

// The four matrix entries, in the order they are laid out per qubit.
const (
	RoleXX Role = iota
	RoleXZ
	RoleZX
	RoleZZ
)

func (r Role) String() string {
	switch r {
	case RoleXX:
		return "axx"
	case RoleXZ:
		return "axz"
	case RoleZX:
		return "azx"
	case RoleZZ:
		return "azz"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Var is one unknown: a gate matrix entry on one qubit.
type Var struct {
	Qubit int
	Role  Role
}

func (v Var) String() string { return fmt.Sprintf("%v%d", v.Role, v.Qubit) }

// Equation lists the unknowns whose sum must be even, ordered by
// (qubit, role). All coefficients are one; an empty equation holds
// trivially.
type Equation []Var

// System is the full set of parity equations for one (graph, operator
// family) pair: Equations[i*Operators+j] constrains qubit i of
// operator j.
type System struct {
	Qubits    int
	Operators int
	Equations []Equation
}

// BuildSystem derives the equation system tying a candidate
// single-qubit layer to the graph: for every qubit i and operator j,
// the layer's image of the operator must reproduce on qubit i the Z
// component that the stabilizer group element with the same X
// components carries.
func BuildSystem(g *graphstate.Graph, ops []pauli.Pauli) (*System, error) {
	n := g.Vertices()
	for j, op := range ops {
		if op.Qubits() != n {
			return nil, fmt.Errorf("%w: operator %d spans %d qubits, graph has %d vertices",
				ErrOperatorLength, j, op.Qubits(), n)
		}
	}
	sys := &System{
		Qubits:    n,
		Operators: len(ops),
		Equations: make([]Equation, 0, n*len(ops)),
	}
	for i := 0; i < n; i++ {
		for j := range ops {
			var eq Equation
			for k := 0; k < n; k++ {
				switch {
				case k == i:
					if ops[j].X(i) {
						eq = append(eq, Var{Qubit: i, Role: RoleZX})
					}
					if ops[j].Z(i) {
						eq = append(eq, Var{Qubit: i, Role: RoleZZ})
					}
				case g.HasEdge(i, k):
					if ops[j].X(k) {
						eq = append(eq, Var{Qubit: k, Role: RoleXX})
					}
					if ops[j].Z(k) {
						eq = append(eq, Var{Qubit: k, Role: RoleXZ})
					}
				}
			}
			sys.Equations = append(sys.Equations, eq)
		}
	}
	return sys, nil
}
