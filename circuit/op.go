// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package circuit

// Op identifies a circuit operation: a gate from the supported gate set, a
// measurement or a barrier.
type Op uint8

const (
	unknown Op = iota
	H
	X
	Y
	Z
	S
	Sdg
	T
	Tdg
	RX
	RY
	RZ
	CX
	CZ
	SWAP
	Measure
	Barrier
)

// String returns the OpenQASM name of the operation
func (op Op) String() string {
	switch op {
	case H:
		return "h"
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case S:
		return "s"
	case Sdg:
		return "sdg"
	case T:
		return "t"
	case Tdg:
		return "tdg"
	case RX:
		return "rx"
	case RY:
		return "ry"
	case RZ:
		return "rz"
	case CX:
		return "cx"
	case CZ:
		return "cz"
	case SWAP:
		return "swap"
	case Measure:
		return "measure"
	case Barrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// NbQubits returns the number of qubit operands the operation consumes.
// Barrier spans the whole register and reports 0.
func (op Op) NbQubits() int {
	switch op {
	case CX, CZ, SWAP:
		return 2
	case Barrier:
		return 0
	default:
		return 1
	}
}

// NbParams returns the number of real parameters (rotation angles) the
// operation carries
func (op Op) NbParams() int {
	switch op {
	case RX, RY, RZ:
		return 1
	default:
		return 0
	}
}

// IsUnitary returns true if the operation is a gate (as opposed to a
// measurement or a barrier)
func (op Op) IsUnitary() bool {
	return op >= H && op <= SWAP
}

// Instruction is one operation applied to specific qubits (and, for
// measurements, classical bits) of a circuit.
type Instruction struct {
	Op     Op
	Qubits []int
	Clbits []int
	Params []float64
}
