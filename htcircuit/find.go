package htcircuit

import (
	"fmt"
	"math/bits"

	"github.com/crillab/gophersat/solver"

	"github.com/Abduliqc/htgrouper/clifford"
	"github.com/Abduliqc/htgrouper/graphstate"
	"github.com/Abduliqc/htgrouper/pauli"
)

// literal maps an unknown to its 1-based solver literal; the four
// entries of qubit q occupy 4q+1..4q+4.
func literal(q int, r Role) int { return 4*q + int(r) + 1 }

// Find returns a single-qubit Clifford layer, one gate per vertex, that
// rotates every operator into the stabilizer group of the graph state.
// It fails with ErrInfeasible when no layer exists for this graph and
// with ErrSolver when the solver gives no verdict.
//
// Every returned gate is one of the six named clifford values: the
// invertible 2x2 matrices over GF(2) are exactly those six.
func Find(g *graphstate.Graph, ops []pauli.Pauli) ([]clifford.Gate, error) {
	sys, err := BuildSystem(g, ops)
	if err != nil {
		return nil, err
	}
	layer := make([]clifford.Gate, sys.Qubits)
	if sys.Qubits == 0 {
		return layer, nil
	}
	if sys.Operators == 0 {
		for q := range layer {
			layer[q] = clifford.GateI
		}
		return layer, nil
	}
	model, err := solve(constraints(sys))
	if err != nil {
		return nil, err
	}
	for q := range layer {
		layer[q] = clifford.Gate{
			XX: model[literal(q, RoleXX)-1],
			XZ: model[literal(q, RoleXZ)-1],
			ZX: model[literal(q, RoleZX)-1],
			ZZ: model[literal(q, RoleZZ)-1],
		}
	}
	return layer, nil
}

// constraints encodes the system as pseudo-boolean constraints over
// 1-based literals: gate entries first (4 per qubit), then the two
// product variables per qubit, then one slack counter per parity
// equation.
func constraints(sys *System) []solver.PBConstr {
	n := sys.Qubits
	constrs := make([]solver.PBConstr, 0, 8*n+2*len(sys.Equations))

	// axx*azz + axz*azx = 1 per qubit: linearize both products and
	// demand exactly one of them.
	for q := 0; q < n; q++ {
		pa := 4*n + 2*q + 1
		pb := 4*n + 2*q + 2
		constrs = append(constrs, product(pa, literal(q, RoleXX), literal(q, RoleZZ))...)
		constrs = append(constrs, product(pb, literal(q, RoleXZ), literal(q, RoleZX))...)
		constrs = append(constrs, solver.PropClause(pa, pb), solver.PropClause(-pa, -pb))
	}

	// Each parity equation becomes sum(vars) - 2*slack = 0 with the
	// slack counter in binary: slack weights -2, -4, ..., wide enough
	// for len(eq)/2.
	next := 6*n + 1
	for _, eq := range sys.Equations {
		if len(eq) == 0 {
			continue
		}
		width := bits.Len(uint(len(eq) / 2))
		lits := make([]int, 0, len(eq)+width)
		weights := make([]int, 0, len(eq)+width)
		for _, v := range eq {
			lits = append(lits, literal(v.Qubit, v.Role))
			weights = append(weights, 1)
		}
		for b := 0; b < width; b++ {
			lits = append(lits, next)
			weights = append(weights, -(2 << b))
			next++
		}
		constrs = append(constrs, solver.Eq(lits, weights, 0)...)
	}
	return constrs
}

// product emits the clauses tying w to u AND v.
func product(w, u, v int) []solver.PBConstr {
	return []solver.PBConstr{
		solver.PropClause(-w, u),
		solver.PropClause(-w, v),
		solver.PropClause(w, -u, -v),
	}
}

// solve runs the SAT search. Solver panics are translated into
// ErrSolver rather than crossing the package boundary.
func solve(constrs []solver.PBConstr) (model []bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("%w: %v", ErrSolver, r)
		}
	}()
	s := solver.New(solver.ParsePBConstrs(constrs))
	switch s.Solve() {
	case solver.Sat:
		return s.Model(), nil
	case solver.Unsat:
		return nil, ErrInfeasible
	default:
		return nil, fmt.Errorf("%w: no verdict", ErrSolver)
	}
}
