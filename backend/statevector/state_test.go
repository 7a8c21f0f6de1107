package statevector

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/qukit/qukit/circuit"
)

func ins(op circuit.Op, qubits ...int) circuit.Instruction {
	return circuit.Instruction{Op: op, Qubits: qubits}
}

func TestNewState(t *testing.T) {
	assert := require.New(t)

	s := NewState(3)
	assert.Equal(3, s.NbQubits())
	assert.Equal(complex128(1), s.Amplitude(0))
	assert.InDelta(1.0, s.Probability(0), 1e-12)
	assert.InDelta(0.0, s.Probability(5), 1e-12)
}

func TestHadamard(t *testing.T) {
	assert := require.New(t)

	s := NewState(1)
	assert.NoError(s.Apply(ins(circuit.H, 0)))
	assert.InDelta(0.5, s.Probability(0), 1e-12)
	assert.InDelta(0.5, s.Probability(1), 1e-12)

	// H is its own inverse
	assert.NoError(s.Apply(ins(circuit.H, 0)))
	assert.InDelta(1.0, s.Probability(0), 1e-12)
}

func TestPauliX(t *testing.T) {
	assert := require.New(t)

	s := NewState(2)
	assert.NoError(s.Apply(ins(circuit.X, 0)))
	assert.InDelta(1.0, s.Probability(0b01), 1e-12)

	assert.NoError(s.Apply(ins(circuit.X, 1)))
	assert.InDelta(1.0, s.Probability(0b11), 1e-12)
}

func TestCX(t *testing.T) {
	assert := require.New(t)

	// control clear: target untouched
	s := NewState(2)
	assert.NoError(s.Apply(ins(circuit.CX, 0, 1)))
	assert.InDelta(1.0, s.Probability(0b00), 1e-12)

	// control set: target flips
	assert.NoError(s.Apply(ins(circuit.X, 0)))
	assert.NoError(s.Apply(ins(circuit.CX, 0, 1)))
	assert.InDelta(1.0, s.Probability(0b11), 1e-12)
}

func TestSWAP(t *testing.T) {
	assert := require.New(t)

	s := NewState(2)
	assert.NoError(s.Apply(ins(circuit.X, 0)))
	assert.NoError(s.Apply(ins(circuit.SWAP, 0, 1)))
	assert.InDelta(1.0, s.Probability(0b10), 1e-12)
}

func TestPhaseInterference(t *testing.T) {
	assert := require.New(t)

	// H Z H = X up to global phase
	s := NewState(1)
	for _, i := range []circuit.Instruction{ins(circuit.H, 0), ins(circuit.Z, 0), ins(circuit.H, 0)} {
		assert.NoError(s.Apply(i))
	}
	assert.InDelta(1.0, s.Probability(1), 1e-12)

	// S·S = Z
	s = NewState(1)
	for _, i := range []circuit.Instruction{
		ins(circuit.H, 0), ins(circuit.S, 0), ins(circuit.S, 0), ins(circuit.H, 0),
	} {
		assert.NoError(s.Apply(i))
	}
	assert.InDelta(1.0, s.Probability(1), 1e-12)
}

func TestRotations(t *testing.T) {
	assert := require.New(t)

	// RX(π) = X up to global phase
	s := NewState(1)
	assert.NoError(s.Apply(circuit.Instruction{Op: circuit.RX, Qubits: []int{0}, Params: []float64{math.Pi}}))
	assert.InDelta(1.0, s.Probability(1), 1e-12)

	// RY(π/2) on |0⟩ is an even split
	s = NewState(1)
	assert.NoError(s.Apply(circuit.Instruction{Op: circuit.RY, Qubits: []int{0}, Params: []float64{math.Pi / 2}}))
	assert.InDelta(0.5, s.Probability(0), 1e-12)
	assert.InDelta(0.5, s.Probability(1), 1e-12)
}

func TestApplyRejectsMeasure(t *testing.T) {
	assert := require.New(t)

	s := NewState(1)
	err := s.Apply(circuit.Instruction{Op: circuit.Measure, Qubits: []int{0}, Clbits: []int{0}})
	assert.Error(err)

	// barriers are silently skipped
	assert.NoError(s.Apply(circuit.Instruction{Op: circuit.Barrier}))
}

func TestNormPreserved(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	singleQubit := []circuit.Op{circuit.H, circuit.X, circuit.Y, circuit.Z, circuit.S, circuit.Sdg, circuit.T, circuit.Tdg}

	properties := gopter.NewProperties(parameters)
	properties.Property("any gate sequence preserves the norm", prop.ForAll(
		func(seq []uint32) bool {
			const nbQubits = 3
			s := NewState(nbQubits)
			for _, v := range seq {
				q := int(v>>4) % nbQubits
				op := v % 9
				var err error
				if op == 8 {
					err = s.Apply(ins(circuit.CX, q, (q+1)%nbQubits))
				} else {
					err = s.Apply(ins(singleQubit[op], q))
				}
				if err != nil {
					return false
				}
			}
			return math.Abs(s.norm()-1) < 1e-9
		},
		gen.SliceOf(gen.UInt32()),
	))
	properties.TestingRun(t)
}
