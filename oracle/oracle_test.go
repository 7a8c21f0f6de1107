package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qukit/qukit/circuit"
)

func TestConstantValidation(t *testing.T) {
	assert := require.New(t)

	_, err := Constant(0, 0)
	assert.ErrorIs(err, ErrInvalidBitWidth)

	_, err = Constant(3, 2)
	assert.ErrorIs(err, ErrInvalidOutput)

	o, err := Constant(3, 1)
	assert.NoError(err)
	assert.Equal(3, o.NbBits())
}

func TestConstantApply(t *testing.T) {
	assert := require.New(t)

	// f(x) = 0 adds no gate
	o, _ := Constant(3, 0)
	qc, _ := circuit.New(4, 0)
	assert.NoError(o.Apply(qc))
	assert.Empty(qc.Instructions())

	// f(x) = 1 flips the output qubit unconditionally
	o, _ = Constant(3, 1)
	qc, _ = circuit.New(4, 0)
	assert.NoError(o.Apply(qc))
	ins := qc.Instructions()
	assert.Len(ins, 1)
	assert.Equal(circuit.X, ins[0].Op)
	assert.Equal([]int{3}, ins[0].Qubits)
}

func TestBalancedValidation(t *testing.T) {
	assert := require.New(t)

	_, err := Balanced(0)
	assert.ErrorIs(err, ErrInvalidBitWidth)

	_, err = BalancedMask(3, 0)
	assert.ErrorIs(err, ErrEmptyMask)

	_, err = BalancedMask(3, 0b1000)
	assert.ErrorIs(err, ErrMaskOutOfRange)

	o, err := Balanced(3)
	assert.NoError(err)
	assert.Equal(uint64(0b111), o.Mask())
	assert.Equal(3, o.Weight())
}

func TestBalancedApply(t *testing.T) {
	assert := require.New(t)

	o, err := BalancedMask(4, 0b1010)
	assert.NoError(err)
	assert.Equal(2, o.Weight())

	qc, _ := circuit.New(5, 0)
	assert.NoError(o.Apply(qc))

	// one CX per masked input, accumulating parity on the output qubit
	ins := qc.Instructions()
	assert.Len(ins, 2)
	assert.Equal(circuit.CX, ins[0].Op)
	assert.Equal([]int{1, 4}, ins[0].Qubits)
	assert.Equal(circuit.CX, ins[1].Op)
	assert.Equal([]int{3, 4}, ins[1].Qubits)
}

func TestApplyOnTooSmallCircuit(t *testing.T) {
	assert := require.New(t)

	o, _ := Balanced(3)
	qc, _ := circuit.New(3, 0) // no room for the output qubit
	assert.ErrorIs(o.Apply(qc), circuit.ErrQubitOutOfRange)
}
