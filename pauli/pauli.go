package pauli

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxQubits is the largest operator length a Pauli can hold: each
// component lives in a single 64-bit word.
const MaxQubits = 64

var (
	// ErrQubitCount is returned for operator lengths outside [0, MaxQubits].
	ErrQubitCount = errors.New("pauli: qubit count out of range")

	// ErrQubitIndex is returned for qubit indices outside [0, n).
	ErrQubitIndex = errors.New("pauli: qubit index out of range")

	// ErrInvalidCharacter is returned when an operator string contains a
	// character outside {I, X, Y, Z}.
	ErrInvalidCharacter = errors.New("pauli: invalid character in operator string")
)

// Pauli is an n-qubit Pauli operator in binary symplectic form: bit q of
// x marks an X component on qubit q, bit q of z a Z component, and a
// qubit carrying both is a Y. The phase field stores the global factor
// in the convention where Y is written as iXZ.
//
// Pauli is a small value type; pass it by value and compare with ==.
// Two operators are equal exactly when length, components and stored
// phase all coincide. The zero value is the empty operator on 0 qubits.
type Pauli struct {
	x, z  uint64
	n     int
	phase Phase
}

// Identity returns the identity operator on n qubits.
func Identity(n int) (Pauli, error) {
	if n < 0 || n > MaxQubits {
		return Pauli{}, fmt.Errorf("%w: %d", ErrQubitCount, n)
	}
	return Pauli{n: n}, nil
}

// SingleX returns the n-qubit operator with a single X on the given
// qubit.
func SingleX(n, qubit int) (Pauli, error) {
	p, err := Identity(n)
	if err != nil {
		return Pauli{}, err
	}
	if err = p.SetX(qubit, true); err != nil {
		return Pauli{}, err
	}
	return p, nil
}

// SingleZ returns the n-qubit operator with a single Z on the given
// qubit.
func SingleZ(n, qubit int) (Pauli, error) {
	p, err := Identity(n)
	if err != nil {
		return Pauli{}, err
	}
	if err = p.SetZ(qubit, true); err != nil {
		return Pauli{}, err
	}
	return p, nil
}

// Parse builds an operator from its text form: an optional phase prefix
// "-i", "i", "-" or "+", followed by one character per qubit from
// {I, X, Y, Z}. Examples: "XIIXZ", "-XYYYX", "iXIX", "+ZZ".
//
// The first operator character maps to qubit 0. Every Y contributes a
// stored quarter turn under the Y = iXZ convention, so the displayed
// phase of the result matches the prefix. Strings longer than MaxQubits
// fail with ErrQubitCount, characters outside the alphabet with
// ErrInvalidCharacter.
func Parse(s string) (Pauli, error) {
	var p Pauli
	body := s
	switch {
	case strings.HasPrefix(s, "-i"):
		p.phase = NewPhase(3)
		body = s[2:]
	case strings.HasPrefix(s, "i"):
		p.phase = NewPhase(1)
		body = s[1:]
	case strings.HasPrefix(s, "-"):
		p.phase = NewPhase(2)
		body = s[1:]
	case strings.HasPrefix(s, "+"):
		body = s[1:]
	}
	if len(body) > MaxQubits {
		return Pauli{}, fmt.Errorf("%w: %d", ErrQubitCount, len(body))
	}
	p.n = len(body)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case 'I':
		case 'X':
			p.x |= 1 << i
		case 'Y':
			p.x |= 1 << i
			p.z |= 1 << i
		case 'Z':
			p.z |= 1 << i
		default:
			return Pauli{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, body[i], i)
		}
	}
	p.phase = p.phase.Plus(p.yCount())
	return p, nil
}

// Qubits returns the operator length n.
func (p Pauli) Qubits() int { return p.n }

// X reports whether the operator has an X component (X or Y) on the
// given qubit. Indices outside [0, n) read as false.
func (p Pauli) X(qubit int) bool {
	return qubit >= 0 && (p.x>>qubit)&1 == 1
}

// Z reports whether the operator has a Z component (Z or Y) on the
// given qubit. Indices outside [0, n) read as false.
func (p Pauli) Z(qubit int) bool {
	return qubit >= 0 && (p.z>>qubit)&1 == 1
}

// SetX sets or clears the X component on the given qubit.
func (p *Pauli) SetX(qubit int, on bool) error {
	if qubit < 0 || qubit >= p.n {
		return fmt.Errorf("%w: %d of %d", ErrQubitIndex, qubit, p.n)
	}
	if on {
		p.x |= 1 << qubit
	} else {
		p.x &^= 1 << qubit
	}
	return nil
}

// SetZ sets or clears the Z component on the given qubit.
func (p *Pauli) SetZ(qubit int, on bool) error {
	if qubit < 0 || qubit >= p.n {
		return fmt.Errorf("%w: %d of %d", ErrQubitIndex, qubit, p.n)
	}
	if on {
		p.z |= 1 << qubit
	} else {
		p.z &^= 1 << qubit
	}
	return nil
}

// Phase returns the displayed phase, the one String renders: the stored
// exponent minus one quarter turn per Y, so that "Y" reads as phase 1
// rather than the stored iXZ.
func (p Pauli) Phase() Phase { return p.phase.Minus(p.yCount()) }

// XZPhase returns the stored phase in the Y = iXZ convention.
func (p Pauli) XZPhase() Phase { return p.phase }

// AddPhase advances the stored phase by k quarter turns; k may be
// negative.
func (p *Pauli) AddPhase(k int) { p.phase = p.phase.Plus(k) }

// Weight returns the number of qubits with a non-identity component.
func (p Pauli) Weight() int { return bits.OnesCount64(p.x | p.z) }

// IdentityCount returns the number of identity positions, n - Weight().
func (p Pauli) IdentityCount() int { return p.n - p.Weight() }

// IsIdentity reports whether every component is the identity. The phase
// is ignored.
func (p Pauli) IsIdentity() bool { return p.x|p.z == 0 }

// XBits returns the raw X-component field; bit q is set when qubit q
// carries X or Y.
func (p Pauli) XBits() uint64 { return p.x }

// ZBits returns the raw Z-component field; bit q is set when qubit q
// carries Z or Y.
func (p Pauli) ZBits() uint64 { return p.z }

// IdentityBits returns the bit field marking identity positions; bits at
// and above n stay zero.
func (p Pauli) IdentityBits() uint64 { return ^(p.x | p.z) & lowMask(p.n) }

// Word renders the bare operator letters, one per qubit from
// {I, X, Y, Z}, without a phase prefix.
func (p Pauli) Word() string {
	const letters = "IXZY" // indexed by x + 2z
	b := make([]byte, p.n)
	for q := 0; q < p.n; q++ {
		i := 0
		if p.X(q) {
			i |= 1
		}
		if p.Z(q) {
			i |= 2
		}
		b[q] = letters[i]
	}
	return string(b)
}

// String renders the operator with its displayed phase prefix, e.g.
// "-iZZXY". The prefix is empty for phase 1, and the output parses back
// to an equal operator via Parse.
func (p Pauli) String() string { return p.Phase().String() + p.Word() }

// Commutator returns 0 when a and b commute and 1 when they
// anticommute: the parity of popcount((a.x & b.z) XOR (b.x & a.z)).
// Operators of different length are compared as if the shorter were
// padded with identities.
func Commutator(a, b Pauli) int {
	return bits.OnesCount64((a.x&b.z)^(b.x&a.z)) & 1
}

// CommutesLocally reports whether the restrictions of a and b to the
// qubits selected by mask commute, i.e. the masked symplectic product
// has even parity. Two operators can commute globally yet anticommute
// on a restriction, and the other way round.
func CommutesLocally(a, b Pauli, mask uint64) bool {
	return bits.OnesCount64(((a.x&b.z)^(b.x&a.z))&mask)&1 == 0
}

// Mul returns the group product a*b. The result spans the longer of the
// two operators, the shorter acting as identity beyond its length. The
// stored phase composes as phase(a) + phase(b) + 2*popcount(a.z & b.x),
// the sign collected by commuting each Z of a past each X of b.
func Mul(a, b Pauli) Pauli {
	n := a.n
	if b.n > n {
		n = b.n
	}
	return Pauli{
		x:     a.x ^ b.x,
		z:     a.z ^ b.z,
		n:     n,
		phase: a.phase.Add(b.phase).Plus(2 * bits.OnesCount64(a.z&b.x)),
	}
}

func (p Pauli) yCount() int { return bits.OnesCount64(p.x & p.z) }

// lowMask returns a word with the low n bits set.
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}
