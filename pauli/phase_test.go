package pauli_test

import (
	"testing"

	"github.com/Abduliqc/htgrouper/pauli"
	"github.com/stretchr/testify/assert"
)

// TestNewPhase_Normalization verifies that arbitrary exponents wrap into
// [0,4), including negative ones.
func TestNewPhase_Normalization(t *testing.T) {
	assert.Equal(t, pauli.NewPhase(3), pauli.NewPhase(-1))
	assert.Equal(t, pauli.NewPhase(0), pauli.NewPhase(4))
	assert.Equal(t, pauli.NewPhase(2), pauli.NewPhase(-6))
	assert.Equal(t, 3, pauli.NewPhase(7).Int())
	assert.Equal(t, 0, pauli.NewPhase(-8).Int())
}

// TestPhase_Arithmetic exercises Plus/Minus/Add/Sub around the mod-4
// ring, in particular the wrap at both ends.
func TestPhase_Arithmetic(t *testing.T) {
	p := pauli.NewPhase(3)
	assert.Equal(t, pauli.NewPhase(0), p.Plus(1))
	assert.Equal(t, pauli.NewPhase(1), p.Plus(2))
	assert.Equal(t, pauli.NewPhase(2), p.Minus(1))
	assert.Equal(t, pauli.NewPhase(0), p.Minus(-1))
	assert.Equal(t, pauli.NewPhase(1), p.Add(pauli.NewPhase(2)))
	assert.Equal(t, pauli.NewPhase(2), p.Sub(pauli.NewPhase(1)))
	assert.Equal(t, pauli.NewPhase(3), p.Sub(pauli.NewPhase(0)))
}

// TestPhase_String checks the four prefix renderings i^0..i^3.
func TestPhase_String(t *testing.T) {
	assert.Equal(t, "", pauli.NewPhase(0).String())
	assert.Equal(t, "i", pauli.NewPhase(1).String())
	assert.Equal(t, "-", pauli.NewPhase(2).String())
	assert.Equal(t, "-i", pauli.NewPhase(3).String())
}
