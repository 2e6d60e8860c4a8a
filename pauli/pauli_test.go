package pauli_test

import (
	"strings"
	"testing"

	"github.com/Abduliqc/htgrouper/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse is a test helper; it fails the test on any parse error.
func mustParse(t *testing.T, s string) pauli.Pauli {
	t.Helper()
	p, err := pauli.Parse(s)
	require.NoError(t, err, "parse %q", s)
	return p
}

// TestParse_RoundTrip feeds canonical strings through Parse and String
// and expects them back unchanged, phase prefix included.
func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"", "I", "X", "Y", "Z",
		"XIIXZ", "-XYYYX", "iXIX", "-iZZ", "YYYY", "-IZ", "iIIII",
	} {
		assert.Equal(t, s, mustParse(t, s).String(), "round trip %q", s)
	}
}

// TestParse_PlusPrefix accepts an explicit "+" and renders it as the
// empty prefix.
func TestParse_PlusPrefix(t *testing.T) {
	p := mustParse(t, "+ZZ")
	assert.Equal(t, mustParse(t, "ZZ"), p)
	assert.Equal(t, "ZZ", p.String())
}

// TestParse_Errors rejects foreign characters and oversized operators.
func TestParse_Errors(t *testing.T) {
	_, err := pauli.Parse("XA")
	assert.ErrorIs(t, err, pauli.ErrInvalidCharacter)

	_, err = pauli.Parse("X Z")
	assert.ErrorIs(t, err, pauli.ErrInvalidCharacter)

	_, err = pauli.Parse("x")
	assert.ErrorIs(t, err, pauli.ErrInvalidCharacter)

	_, err = pauli.Parse(strings.Repeat("X", pauli.MaxQubits+1))
	assert.ErrorIs(t, err, pauli.ErrQubitCount)

	_, err = pauli.Parse(strings.Repeat("Z", pauli.MaxQubits))
	assert.NoError(t, err)
}

// TestParse_Components maps the first character to qubit 0 and exposes
// X/Z per qubit; out-of-range indices read as false.
func TestParse_Components(t *testing.T) {
	p := mustParse(t, "XIZY")
	require.Equal(t, 4, p.Qubits())

	assert.True(t, p.X(0))
	assert.False(t, p.Z(0))
	assert.False(t, p.X(1))
	assert.False(t, p.Z(1))
	assert.False(t, p.X(2))
	assert.True(t, p.Z(2))
	assert.True(t, p.X(3))
	assert.True(t, p.Z(3))

	assert.False(t, p.X(-1))
	assert.False(t, p.Z(17))
}

// TestIdentity_Bounds checks the ErrQubitCount gate on the factory.
func TestIdentity_Bounds(t *testing.T) {
	_, err := pauli.Identity(-1)
	assert.ErrorIs(t, err, pauli.ErrQubitCount)

	_, err = pauli.Identity(pauli.MaxQubits + 1)
	assert.ErrorIs(t, err, pauli.ErrQubitCount)

	p, err := pauli.Identity(pauli.MaxQubits)
	require.NoError(t, err)
	assert.True(t, p.IsIdentity())
	assert.Equal(t, ^uint64(0), p.IdentityBits())
}

// TestSingleFactories places one X or Z and leaves everything else
// identity.
func TestSingleFactories(t *testing.T) {
	x, err := pauli.SingleX(4, 2)
	require.NoError(t, err)
	assert.Equal(t, "IIXI", x.String())

	z, err := pauli.SingleZ(4, 0)
	require.NoError(t, err)
	assert.Equal(t, "ZIII", z.String())

	_, err = pauli.SingleX(4, 4)
	assert.ErrorIs(t, err, pauli.ErrQubitIndex)

	_, err = pauli.SingleZ(4, -1)
	assert.ErrorIs(t, err, pauli.ErrQubitIndex)
}

// TestSetters flips components in place and validates the index range.
func TestSetters(t *testing.T) {
	p, err := pauli.Identity(3)
	require.NoError(t, err)

	require.NoError(t, p.SetX(1, true))
	assert.Equal(t, "IXI", p.Word())

	require.NoError(t, p.SetZ(1, true))
	assert.Equal(t, "IYI", p.Word())

	require.NoError(t, p.SetX(1, false))
	assert.Equal(t, "IZI", p.Word())

	assert.ErrorIs(t, p.SetX(3, true), pauli.ErrQubitIndex)
	assert.ErrorIs(t, p.SetZ(-1, true), pauli.ErrQubitIndex)
}

// TestPhases distinguishes the stored Y=iXZ phase from the displayed
// one: each Y shifts the two by one quarter turn.
func TestPhases(t *testing.T) {
	y := mustParse(t, "Y")
	assert.Equal(t, pauli.NewPhase(0), y.Phase())
	assert.Equal(t, pauli.NewPhase(1), y.XZPhase())

	p := mustParse(t, "-XYYYX")
	assert.Equal(t, pauli.NewPhase(2), p.Phase())
	assert.Equal(t, pauli.NewPhase(1), p.XZPhase())

	p.AddPhase(1)
	assert.Equal(t, "-iXYYYX", p.String())
	p.AddPhase(-1)
	assert.Equal(t, "-XYYYX", p.String())
}

// TestWeightCounts covers Weight, IdentityCount and the bit-field views.
func TestWeightCounts(t *testing.T) {
	p := mustParse(t, "XIIXZ")
	assert.Equal(t, 3, p.Weight())
	assert.Equal(t, 2, p.IdentityCount())
	assert.Equal(t, uint64(0b01001), p.XBits())
	assert.Equal(t, uint64(0b10000), p.ZBits())
	assert.Equal(t, uint64(0b00110), p.IdentityBits())
	assert.False(t, p.IsIdentity())

	id := mustParse(t, "IIIII")
	assert.True(t, id.IsIdentity())
	assert.Equal(t, 5, id.IdentityCount())
	assert.Equal(t, uint64(0b11111), id.IdentityBits())

	for _, s := range []string{"XZY", "IIII", "YXIZIY"} {
		q := mustParse(t, s)
		assert.Equal(t, q.Qubits(), q.Weight()+q.IdentityCount(), s)
	}
}

// TestCommutator checks the symplectic commutation parity against
// hand-worked pairs, including length padding and symmetry.
func TestCommutator(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"X", "Z", 1},
		{"X", "X", 0},
		{"X", "Y", 1},
		{"Y", "Z", 1},
		{"X", "I", 0},
		{"XX", "ZZ", 0},
		{"XI", "ZZ", 1},
		{"XYZ", "YYI", 1},
		{"XYZ", "XYZ", 0},
		{"X", "ZZ", 1},
		{"IZ", "X", 0},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		assert.Equal(t, tc.want, pauli.Commutator(a, b), "[%s, %s]", tc.a, tc.b)
		assert.Equal(t, tc.want, pauli.Commutator(b, a), "[%s, %s]", tc.b, tc.a)
	}
}

// TestCommutesLocally restricts the commutation test to a qubit mask;
// global commutation says nothing about the restrictions.
func TestCommutesLocally(t *testing.T) {
	tests := []struct {
		a, b string
		mask uint64
		want bool
	}{
		{"XX", "ZZ", 0b01, false},
		{"XX", "ZZ", 0b10, false},
		{"XX", "ZZ", 0b11, true},
		{"XZ", "ZX", 0b01, false},
		{"XZ", "ZX", 0b10, false},
		{"XZ", "ZX", 0b11, true},
		{"IX", "ZI", 0b11, true},
		{"XY", "XY", 0b01, true},
		{"XX", "ZZ", 0, true},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		assert.Equal(t, tc.want, pauli.CommutesLocally(a, b, tc.mask),
			"[%s, %s] on %b", tc.a, tc.b, tc.mask)
	}
}

// TestMul multiplies operators and checks component and phase of the
// product, including mixed lengths and phase prefixes on the inputs.
func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"X", "Z", "-iY"},
		{"Z", "X", "iY"},
		{"X", "Y", "iZ"},
		{"Y", "X", "-iZ"},
		{"Y", "Z", "iX"},
		{"Z", "Y", "-iX"},
		{"X", "X", "I"},
		{"Y", "Y", "I"},
		{"Z", "Z", "I"},
		{"XX", "ZZ", "-YY"},
		{"ZZ", "XX", "-YY"},
		{"X", "ZZ", "-iYZ"},
		{"-iZZ", "iXIX", "iYZX"},
		{"I", "Y", "Y"},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		assert.Equal(t, tc.want, pauli.Mul(a, b).String(), "%s * %s", tc.a, tc.b)
	}
}

// TestMul_CommutatorConsistency cross-checks Mul against Commutator:
// products in both orders agree exactly when the operators commute, and
// differ by a sign (two quarter turns) when they anticommute.
func TestMul_CommutatorConsistency(t *testing.T) {
	ops := []string{"X", "Y", "Z", "XX", "XZ", "ZZ", "YIY", "IXZ"}
	for _, sa := range ops {
		for _, sb := range ops {
			a, b := mustParse(t, sa), mustParse(t, sb)
			ab, ba := pauli.Mul(a, b), pauli.Mul(b, a)
			assert.Equal(t, ab.Word(), ba.Word(), "%s,%s", sa, sb)
			shift := 2 * pauli.Commutator(a, b)
			assert.Equal(t, ab.XZPhase(), ba.XZPhase().Plus(shift), "%s,%s", sa, sb)
		}
	}
}
