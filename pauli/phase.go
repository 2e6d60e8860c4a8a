package pauli

// Phase is the global phase i^k of a Pauli operator, stored as the
// exponent k modulo 4 (1, i, -1, -i for k = 0, 1, 2, 3).
//
// Phase is an immutable value: arithmetic returns fresh values and
// normalizes into [0,4), so negative and oversized exponents wrap.
type Phase uint8

// NewPhase returns the phase i^k for an arbitrary integer k.
// NewPhase(-1) == NewPhase(3), NewPhase(6) == NewPhase(2).
func NewPhase(k int) Phase {
	return Phase((k%4 + 4) % 4)
}

// Plus returns the phase advanced by k quarter turns.
func (p Phase) Plus(k int) Phase { return NewPhase(int(p) + k) }

// Minus returns the phase moved back by k quarter turns.
func (p Phase) Minus(k int) Phase { return NewPhase(int(p) - k) }

// Add returns the product phase i^p * i^q.
func (p Phase) Add(q Phase) Phase { return NewPhase(int(p) + int(q)) }

// Sub returns the quotient phase i^p / i^q.
func (p Phase) Sub(q Phase) Phase { return NewPhase(int(p) - int(q)) }

// Int returns the exponent k in [0,4).
func (p Phase) Int() int { return int(p & 3) }

// String renders the conventional prefix: "" for 1, "i" for i,
// "-" for -1 and "-i" for -i.
func (p Phase) String() string {
	switch p & 3 {
	case 1:
		return "i"
	case 2:
		return "-"
	case 3:
		return "-i"
	default:
		return ""
	}
}
