// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package deutschjozsa builds circuits for the Deutsch-Jozsa algorithm, which
// decides with a single oracle evaluation whether a promised boolean function
// is constant or balanced.
//
// On an ideal backend, every shot of the circuit measures the all-zero input
// register if and only if the oracle is constant.
package deutschjozsa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qukit/qukit/backend"
	"github.com/qukit/qukit/circuit"
	"github.com/qukit/qukit/oracle"
)

// Kind is the Deutsch-Jozsa verdict on an oracle
type Kind uint8

const (
	Constant Kind = iota
	Balanced
)

// String returns the string representation of a verdict
func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

var ErrEmptyCounts = errors.New("cannot classify an empty outcome-count mapping")

// Circuit builds the Deutsch-Jozsa circuit for an n-bit oracle: n input
// qubits, one output qubit (qubit n) and n classical bits.
//
// The output qubit is prepared in |−⟩ with X then H, the input register is put
// in uniform superposition, the oracle is evaluated once, and the input
// register is interfered back and measured.
func Circuit(n int, o oracle.Oracle) (*circuit.Circuit, error) {
	if o.NbBits() != n {
		return nil, fmt.Errorf("oracle spans %d bits, want %d", o.NbBits(), n)
	}
	qc, err := circuit.New(n+1, n)
	if err != nil {
		return nil, err
	}

	qc.X(n).H(n)
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	qc.Barrier()

	if err := o.Apply(qc); err != nil {
		return nil, err
	}

	qc.Barrier()
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	// only the input register is read out; the output qubit stays unmeasured
	for q := 0; q < n; q++ {
		qc.Measure(q, q)
	}

	return qc, qc.Err()
}

// Classify returns the verdict encoded in an outcome-count mapping: an oracle
// is constant exactly when the all-zero bitstring dominates. On an ideal
// backend the distribution is a point mass, so any majority is decisive.
func Classify(counts backend.Counts) (Kind, error) {
	total := counts.Total()
	if total == 0 {
		return 0, ErrEmptyCounts
	}
	outcomes := counts.Outcomes()
	allZero := strings.Repeat("0", len(outcomes[0]))
	if 2*counts[allZero] > total {
		return Constant, nil
	}
	return Balanced, nil
}
