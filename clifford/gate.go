package clifford

import (
	"errors"
	"fmt"

	"github.com/Abduliqc/htgrouper/pauli"
)

// ErrUnknownGate is returned by Gate.Apply for matrices outside the six
// named values.
var ErrUnknownGate = errors.New("clifford: gate matrix has no circuit realization here")

// Gate is the symplectic bit matrix of a single-qubit Clifford: it maps
// an operator's (x, z) component pair on one qubit to
//
//	x' = XX*x + XZ*z    (mod 2)
//	z' = ZX*x + ZZ*z    (mod 2)
//
// ignoring phases. Exactly six matrices are of interest for
// simultaneous measurement and each carries a named value below; they
// are the ones realizable with H and S alone.
type Gate struct {
	XX, XZ bool
	ZX, ZZ bool
}

// The six single-qubit gates, named by their circuit (operator order,
// rightmost applied first).
var (
	GateI   = Gate{XX: true, ZZ: true}
	GateH   = Gate{XZ: true, ZX: true}
	GateS   = Gate{XX: true, ZX: true, ZZ: true}
	GateHS  = Gate{XX: true, XZ: true, ZX: true}
	GateSH  = Gate{XZ: true, ZX: true, ZZ: true}
	GateHSH = Gate{XX: true, XZ: true, ZZ: true}
)

// Symplectic reports whether the matrix preserves the commutation
// relations, i.e. has determinant 1 over GF(2).
func (g Gate) Symplectic() bool {
	return (g.XX && g.ZZ) != (g.XZ && g.ZX)
}

// String returns the circuit name for the six known gates and the raw
// matrix rows otherwise.
func (g Gate) String() string {
	switch g {
	case GateI:
		return "I"
	case GateH:
		return "H"
	case GateS:
		return "S"
	case GateHS:
		return "HS"
	case GateSH:
		return "SH"
	case GateHSH:
		return "HSH"
	}
	bit := func(v bool) byte {
		if v {
			return '1'
		}
		return '0'
	}
	return fmt.Sprintf("Gate[%c%c;%c%c]", bit(g.XX), bit(g.XZ), bit(g.ZX), bit(g.ZZ))
}

// Apply conjugates qubit q of the operator by the gate, phases
// included. Matrices outside the six named values have no realization
// registered and fail with ErrUnknownGate.
func (g Gate) Apply(p *pauli.Pauli, q int) error {
	switch g {
	case GateI:
		return check(p, q)
	case GateH:
		return H(p, q)
	case GateS:
		return S(p, q)
	case GateHS:
		return HS(p, q)
	case GateSH:
		return SH(p, q)
	case GateHSH:
		return HSH(p, q)
	}
	return fmt.Errorf("%w: %v", ErrUnknownGate, g)
}
