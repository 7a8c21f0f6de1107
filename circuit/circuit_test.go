package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert := require.New(t)

	_, err := New(0, 0)
	assert.ErrorIs(err, ErrInvalidRegisterSize)

	_, err = New(3, -1)
	assert.ErrorIs(err, ErrInvalidRegisterSize)

	qc, err := New(3, 3)
	assert.NoError(err)
	assert.Equal(3, qc.NbQubits())
	assert.Equal(3, qc.NbClbits())
	assert.Empty(qc.Instructions())
}

func TestBuilderRecordsFirstError(t *testing.T) {
	assert := require.New(t)

	qc, err := New(2, 2)
	assert.NoError(err)

	qc.H(0).CX(0, 1).H(5) // out of range
	assert.ErrorIs(qc.Err(), ErrQubitOutOfRange)

	// the error is sticky and later instructions are dropped
	before := len(qc.Instructions())
	qc.X(0).Measure(0, 0)
	assert.ErrorIs(qc.Err(), ErrQubitOutOfRange)
	assert.Equal(before, len(qc.Instructions()))
}

func TestTwoQubitOperands(t *testing.T) {
	assert := require.New(t)

	qc, _ := New(2, 0)
	qc.CX(1, 1)
	assert.ErrorIs(qc.Err(), ErrDuplicateQubit)

	qc, _ = New(2, 0)
	qc.SWAP(0, 1).CZ(1, 0)
	assert.NoError(qc.Err())
	assert.Equal(2, qc.NbGates())
}

func TestMeasure(t *testing.T) {
	assert := require.New(t)

	qc, _ := New(2, 1)
	qc.H(0).Measure(0, 0)
	assert.NoError(qc.Err())
	assert.True(qc.MeasuredQubits().Test(0))
	assert.False(qc.MeasuredQubits().Test(1))

	// no gate may follow a measurement on the same qubit
	qc.X(0)
	assert.ErrorIs(qc.Err(), ErrGateAfterMeasure)

	// but other qubits stay usable
	qc, _ = New(2, 2)
	qc.H(0).Measure(0, 0).X(1).Measure(1, 1)
	assert.NoError(qc.Err())

	qc, _ = New(2, 1)
	qc.Measure(0, 1)
	assert.ErrorIs(qc.Err(), ErrClbitOutOfRange)
}

func TestMeasureAll(t *testing.T) {
	assert := require.New(t)

	qc, _ := New(3, 3)
	qc.H(0).MeasureAll()
	assert.NoError(qc.Err())
	assert.Equal(uint(3), qc.MeasuredQubits().Count())

	qc, _ = New(3, 2)
	qc.MeasureAll()
	assert.ErrorIs(qc.Err(), ErrClbitOutOfRange)
}

func TestAppend(t *testing.T) {
	assert := require.New(t)

	sub, _ := New(2, 0)
	sub.H(0).CX(0, 1)

	qc, _ := New(4, 0)
	qc.Append(sub, 2, 3)
	assert.NoError(qc.Err())

	ins := qc.Instructions()
	assert.Len(ins, 2)
	assert.Equal(H, ins[0].Op)
	assert.Equal([]int{2}, ins[0].Qubits)
	assert.Equal(CX, ins[1].Op)
	assert.Equal([]int{2, 3}, ins[1].Qubits)

	// operand count mismatch
	qc, _ = New(4, 0)
	qc.Append(sub, 1)
	assert.ErrorIs(qc.Err(), ErrQubitOutOfRange)

	// sub-circuits with measurements are rejected
	measured, _ := New(1, 1)
	measured.Measure(0, 0)
	qc, _ = New(2, 2)
	qc.Append(measured, 0)
	assert.ErrorIs(qc.Err(), ErrSubCircuitMeasures)
}

func TestOpString(t *testing.T) {
	assert := require.New(t)

	assert.Equal("h", H.String())
	assert.Equal("cx", CX.String())
	assert.Equal("sdg", Sdg.String())
	assert.Equal("measure", Measure.String())
	assert.Equal("unknown", unknown.String())

	assert.Equal(2, CX.NbQubits())
	assert.Equal(1, RZ.NbParams())
	assert.True(SWAP.IsUnitary())
	assert.False(Measure.IsUnitary())
	assert.False(Barrier.IsUnitary())
}
