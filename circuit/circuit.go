// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package circuit provides a builder API for quantum circuits over a fixed
// quantum and classical register.
//
// A circuit records a sequence of instructions (gates, measurements,
// barriers). Builder methods never panic on operand errors; the first error is
// recorded and returned by every subsequent builder call and by Err. Backends
// refuse to run a circuit with a recorded error.
package circuit

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/qukit/qukit/debug"
)

var (
	ErrInvalidRegisterSize = errors.New("register size must be at least 1 qubit")
	ErrQubitOutOfRange     = errors.New("qubit index out of range")
	ErrClbitOutOfRange     = errors.New("classical bit index out of range")
	ErrDuplicateQubit      = errors.New("2-qubit gate operands must be distinct")
	ErrGateAfterMeasure    = errors.New("gate applied to an already measured qubit")
	ErrSubCircuitMeasures  = errors.New("appended sub-circuit must not contain measurements")
)

// Circuit is a quantum circuit over nbQubits qubits and nbClbits classical
// bits. The zero value is not usable; use New.
type Circuit struct {
	nbQubits int
	nbClbits int

	instructions []Instruction

	measured *bitset.BitSet // qubits consumed by a measurement

	err error // first builder error, sticky
}

// New returns an empty circuit over nbQubits qubits and nbClbits classical
// bits
func New(nbQubits, nbClbits int) (*Circuit, error) {
	if nbQubits < 1 {
		return nil, fmt.Errorf("%w: got %d qubits", ErrInvalidRegisterSize, nbQubits)
	}
	if nbClbits < 0 {
		return nil, fmt.Errorf("%w: got %d classical bits", ErrInvalidRegisterSize, nbClbits)
	}
	return &Circuit{
		nbQubits: nbQubits,
		nbClbits: nbClbits,
		measured: bitset.New(uint(nbQubits)),
	}, nil
}

// NbQubits returns the size of the quantum register
func (c *Circuit) NbQubits() int { return c.nbQubits }

// NbClbits returns the size of the classical register
func (c *Circuit) NbClbits() int { return c.nbClbits }

// Instructions returns the recorded instruction sequence. The returned slice
// must not be mutated.
func (c *Circuit) Instructions() []Instruction { return c.instructions }

// MeasuredQubits returns a copy of the set of qubits consumed by a measurement
func (c *Circuit) MeasuredQubits() *bitset.BitSet { return c.measured.Clone() }

// Err returns the first error recorded by a builder method, if any
func (c *Circuit) Err() error { return c.err }

func (c *Circuit) recordErr(err error) {
	if c.err != nil {
		return
	}
	if debug.Debug {
		err = fmt.Errorf("%w\n%s", err, debug.Stack())
	}
	c.err = err
}

func (c *Circuit) checkQubits(op Op, qubits ...int) bool {
	for _, q := range qubits {
		if q < 0 || q >= c.nbQubits {
			c.recordErr(fmt.Errorf("%w: %s on qubit %d, register has %d", ErrQubitOutOfRange, op, q, c.nbQubits))
			return false
		}
		if c.measured.Test(uint(q)) {
			c.recordErr(fmt.Errorf("%w: %s on qubit %d", ErrGateAfterMeasure, op, q))
			return false
		}
	}
	if len(qubits) == 2 && qubits[0] == qubits[1] {
		c.recordErr(fmt.Errorf("%w: %s on qubit %d twice", ErrDuplicateQubit, op, qubits[0]))
		return false
	}
	return true
}

func (c *Circuit) gate(op Op, params []float64, qubits ...int) *Circuit {
	if c.err != nil {
		return c
	}
	if !c.checkQubits(op, qubits...) {
		return c
	}
	c.instructions = append(c.instructions, Instruction{Op: op, Qubits: qubits, Params: params})
	return c
}

// H applies a Hadamard gate to qubit q
func (c *Circuit) H(q int) *Circuit { return c.gate(H, nil, q) }

// X applies a Pauli-X (NOT) gate to qubit q
func (c *Circuit) X(q int) *Circuit { return c.gate(X, nil, q) }

// Y applies a Pauli-Y gate to qubit q
func (c *Circuit) Y(q int) *Circuit { return c.gate(Y, nil, q) }

// Z applies a Pauli-Z gate to qubit q
func (c *Circuit) Z(q int) *Circuit { return c.gate(Z, nil, q) }

// S applies the phase gate to qubit q
func (c *Circuit) S(q int) *Circuit { return c.gate(S, nil, q) }

// Sdg applies the inverse phase gate to qubit q
func (c *Circuit) Sdg(q int) *Circuit { return c.gate(Sdg, nil, q) }

// T applies the π/8 gate to qubit q
func (c *Circuit) T(q int) *Circuit { return c.gate(T, nil, q) }

// Tdg applies the inverse π/8 gate to qubit q
func (c *Circuit) Tdg(q int) *Circuit { return c.gate(Tdg, nil, q) }

// RX applies a rotation of theta radians around the X axis to qubit q
func (c *Circuit) RX(theta float64, q int) *Circuit { return c.gate(RX, []float64{theta}, q) }

// RY applies a rotation of theta radians around the Y axis to qubit q
func (c *Circuit) RY(theta float64, q int) *Circuit { return c.gate(RY, []float64{theta}, q) }

// RZ applies a rotation of theta radians around the Z axis to qubit q
func (c *Circuit) RZ(theta float64, q int) *Circuit { return c.gate(RZ, []float64{theta}, q) }

// CX applies a controlled-X gate with control qubit ctrl and target qubit
// target
func (c *Circuit) CX(ctrl, target int) *Circuit { return c.gate(CX, nil, ctrl, target) }

// CZ applies a controlled-Z gate to qubits q1 and q2
func (c *Circuit) CZ(q1, q2 int) *Circuit { return c.gate(CZ, nil, q1, q2) }

// SWAP exchanges the states of qubits q1 and q2
func (c *Circuit) SWAP(q1, q2 int) *Circuit { return c.gate(SWAP, nil, q1, q2) }

// Barrier records a barrier over the whole register. Barriers carry no
// semantics for the ideal simulator; they survive serialization and QASM
// export.
func (c *Circuit) Barrier() *Circuit {
	if c.err != nil {
		return c
	}
	c.instructions = append(c.instructions, Instruction{Op: Barrier})
	return c
}

// Measure measures qubit q into classical bit cl. A measured qubit accepts no
// further gates.
func (c *Circuit) Measure(q, cl int) *Circuit {
	if c.err != nil {
		return c
	}
	if q < 0 || q >= c.nbQubits {
		c.recordErr(fmt.Errorf("%w: measure of qubit %d, register has %d", ErrQubitOutOfRange, q, c.nbQubits))
		return c
	}
	if cl < 0 || cl >= c.nbClbits {
		c.recordErr(fmt.Errorf("%w: measure into bit %d, register has %d", ErrClbitOutOfRange, cl, c.nbClbits))
		return c
	}
	c.measured.Set(uint(q))
	c.instructions = append(c.instructions, Instruction{Op: Measure, Qubits: []int{q}, Clbits: []int{cl}})
	return c
}

// MeasureAll measures qubit i into classical bit i for the whole quantum
// register
func (c *Circuit) MeasureAll() *Circuit {
	if c.err != nil {
		return c
	}
	if c.nbClbits < c.nbQubits {
		c.recordErr(fmt.Errorf("%w: measure all needs %d classical bits, register has %d", ErrClbitOutOfRange, c.nbQubits, c.nbClbits))
		return c
	}
	for q := 0; q < c.nbQubits; q++ {
		c.Measure(q, q)
	}
	return c
}

// Append replays the unitary instructions of sub on this circuit, mapping
// sub's qubit i to qubits[i]. It is how oracle and gadget sub-circuits are
// embedded into a larger circuit.
func (c *Circuit) Append(sub *Circuit, qubits ...int) *Circuit {
	if c.err != nil {
		return c
	}
	if sub.err != nil {
		c.recordErr(fmt.Errorf("append: %w", sub.err))
		return c
	}
	if len(qubits) != sub.nbQubits {
		c.recordErr(fmt.Errorf("%w: append maps %d qubits onto a %d-qubit sub-circuit", ErrQubitOutOfRange, len(qubits), sub.nbQubits))
		return c
	}
	for _, ins := range sub.instructions {
		switch ins.Op {
		case Barrier:
			c.Barrier()
		case Measure:
			c.recordErr(ErrSubCircuitMeasures)
			return c
		default:
			mapped := make([]int, len(ins.Qubits))
			for i, q := range ins.Qubits {
				mapped[i] = qubits[q]
			}
			c.gate(ins.Op, ins.Params, mapped...)
		}
		if c.err != nil {
			return c
		}
	}
	return c
}

// NbGates returns the number of unitary gates in the circuit
func (c *Circuit) NbGates() int {
	n := 0
	for _, ins := range c.instructions {
		if ins.Op.IsUnitary() {
			n++
		}
	}
	return n
}
