package clifford

import (
	"errors"
	"fmt"

	"github.com/Abduliqc/htgrouper/pauli"
)

// ErrSameQubit is returned by CX and CZ when both wires name the same
// qubit.
var ErrSameQubit = errors.New("clifford: control and target must differ")

func check(p *pauli.Pauli, q int) error {
	if q < 0 || q >= p.Qubits() {
		return fmt.Errorf("clifford: qubit %d of %d: %w", q, p.Qubits(), pauli.ErrQubitIndex)
	}
	return nil
}

// X conjugates by the Pauli X gate on qubit q: a Z or Y component there
// flips the sign.
func X(p *pauli.Pauli, q int) error {
	if err := check(p, q); err != nil {
		return err
	}
	if p.Z(q) {
		p.AddPhase(2)
	}
	return nil
}

// Y conjugates by the Pauli Y gate on qubit q: an X or Z component
// there flips the sign.
func Y(p *pauli.Pauli, q int) error {
	if err := check(p, q); err != nil {
		return err
	}
	if p.X(q) != p.Z(q) {
		p.AddPhase(2)
	}
	return nil
}

// Z conjugates by the Pauli Z gate on qubit q: an X or Y component
// there flips the sign.
func Z(p *pauli.Pauli, q int) error {
	if err := check(p, q); err != nil {
		return err
	}
	if p.X(q) {
		p.AddPhase(2)
	}
	return nil
}

// H conjugates by the Hadamard gate on qubit q, exchanging the X and Z
// components; a Y there flips the sign.
func H(p *pauli.Pauli, q int) error {
	if err := check(p, q); err != nil {
		return err
	}
	x, z := p.X(q), p.Z(q)
	_ = p.SetX(q, z)
	_ = p.SetZ(q, x)
	if x && z {
		p.AddPhase(2)
	}
	return nil
}

// S conjugates by the phase gate on qubit q: X -> Y, Y -> -X, Z -> Z.
func S(p *pauli.Pauli, q int) error {
	if err := check(p, q); err != nil {
		return err
	}
	if p.X(q) {
		p.AddPhase(1)
		_ = p.SetZ(q, !p.Z(q))
	}
	return nil
}

// Sdg conjugates by the adjoint phase gate on qubit q: X -> -Y, Y -> X,
// Z -> Z.
func Sdg(p *pauli.Pauli, q int) error {
	if err := check(p, q); err != nil {
		return err
	}
	if p.X(q) {
		p.AddPhase(-1)
		_ = p.SetZ(q, !p.Z(q))
	}
	return nil
}

// HS conjugates by the product H*S on qubit q (S first, then H):
// X -> -Y, Y -> -Z, Z -> X.
func HS(p *pauli.Pauli, q int) error {
	if err := S(p, q); err != nil {
		return err
	}
	return H(p, q)
}

// SH conjugates by the product S*H on qubit q (H first, then S):
// X -> Z, Y -> X, Z -> Y.
func SH(p *pauli.Pauli, q int) error {
	if err := H(p, q); err != nil {
		return err
	}
	return S(p, q)
}

// HSH conjugates by the product H*S*H on qubit q:
// X -> X, Y -> Z, Z -> -Y.
func HSH(p *pauli.Pauli, q int) error {
	if err := H(p, q); err != nil {
		return err
	}
	if err := S(p, q); err != nil {
		return err
	}
	return H(p, q)
}

// CX conjugates by the controlled-X gate: an X component spreads from
// the control to the target, a Z component from the target to the
// control. No phase is picked up.
func CX(p *pauli.Pauli, control, target int) error {
	if control == target {
		return fmt.Errorf("%w: qubit %d", ErrSameQubit, control)
	}
	if err := check(p, control); err != nil {
		return err
	}
	if err := check(p, target); err != nil {
		return err
	}
	if p.X(control) {
		_ = p.SetX(target, !p.X(target))
	}
	if p.Z(target) {
		_ = p.SetZ(control, !p.Z(control))
	}
	return nil
}

// CZ conjugates by the controlled-Z gate: an X component on either
// qubit spreads a Z onto the other, and a simultaneous XX picks up a
// sign.
func CZ(p *pauli.Pauli, a, b int) error {
	if a == b {
		return fmt.Errorf("%w: qubit %d", ErrSameQubit, a)
	}
	if err := check(p, a); err != nil {
		return err
	}
	if err := check(p, b); err != nil {
		return err
	}
	xa, xb := p.X(a), p.X(b)
	if xa && xb {
		p.AddPhase(2)
	}
	if xb {
		_ = p.SetZ(a, !p.Z(a))
	}
	if xa {
		_ = p.SetZ(b, !p.Z(b))
	}
	return nil
}
