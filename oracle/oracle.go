// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package oracle builds the black-box functions probed by oracle-based
// algorithms as circuit fragments.
//
// An oracle realizes a boolean function f over NbBits input bits as gates on a
// circuit with input qubits 0..NbBits-1 and an output qubit NbBits, flipping
// the output qubit where f(x) = 1.
package oracle

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/qukit/qukit/circuit"
)

var (
	ErrInvalidBitWidth = errors.New("oracle bit-width must be at least 1")
	ErrInvalidOutput   = errors.New("constant oracle output must be 0 or 1")
	ErrEmptyMask       = errors.New("balanced oracle mask must have at least one bit set")
	ErrMaskOutOfRange  = errors.New("balanced oracle mask exceeds the bit-width")
)

// Oracle adds a black-box function to a circuit
type Oracle interface {
	// NbBits returns the input bit-width of the function
	NbBits() int

	// Apply adds the oracle's gates to qc. qc must span NbBits+1 qubits:
	// inputs 0..NbBits-1 and the output qubit NbBits.
	Apply(qc *circuit.Circuit) error
}

// ConstantOracle realizes f(x) = output for every input x
type ConstantOracle struct {
	nbBits int
	output uint8
}

// Constant returns the constant oracle of the given bit-width and output bit
func Constant(nbBits int, output uint8) (*ConstantOracle, error) {
	if nbBits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitWidth, nbBits)
	}
	if output > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOutput, output)
	}
	return &ConstantOracle{nbBits: nbBits, output: output}, nil
}

// NbBits implements Oracle
func (o *ConstantOracle) NbBits() int { return o.nbBits }

// Apply implements Oracle. f(x) = 1 flips the output qubit unconditionally;
// f(x) = 0 touches nothing.
func (o *ConstantOracle) Apply(qc *circuit.Circuit) error {
	if o.output == 1 {
		qc.X(o.nbBits)
	}
	return qc.Err()
}

// BalancedOracle realizes f(x) = parity(x & mask) with a nonzero mask, which
// is 1 on exactly half of all inputs
type BalancedOracle struct {
	nbBits int
	mask   uint64
}

// Balanced returns the balanced oracle over the full mask: f(x) = parity(x)
func Balanced(nbBits int) (*BalancedOracle, error) {
	if nbBits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitWidth, nbBits)
	}
	return BalancedMask(nbBits, 1<<uint(nbBits)-1)
}

// BalancedMask returns the balanced oracle f(x) = parity(x & mask)
func BalancedMask(nbBits int, mask uint64) (*BalancedOracle, error) {
	if nbBits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitWidth, nbBits)
	}
	if mask == 0 {
		return nil, ErrEmptyMask
	}
	if mask>>uint(nbBits) != 0 {
		return nil, fmt.Errorf("%w: mask %b, bit-width %d", ErrMaskOutOfRange, mask, nbBits)
	}
	return &BalancedOracle{nbBits: nbBits, mask: mask}, nil
}

// NbBits implements Oracle
func (o *BalancedOracle) NbBits() int { return o.nbBits }

// Mask returns the parity mask
func (o *BalancedOracle) Mask() uint64 { return o.mask }

// Apply implements Oracle. One CX per masked input qubit accumulates the
// parity on the output qubit.
func (o *BalancedOracle) Apply(qc *circuit.Circuit) error {
	for q := 0; q < o.nbBits; q++ {
		if o.mask&(1<<uint(q)) != 0 {
			qc.CX(q, o.nbBits)
		}
	}
	return qc.Err()
}

// Weight returns the number of inputs wired into the parity
func (o *BalancedOracle) Weight() int { return bits.OnesCount64(o.mask) }
