// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package statevector implements an ideal, noiseless simulation backend. The
// full state of the quantum register is carried as a dense vector of 2^n
// complex amplitudes; gates are applied by pairing basis-state indices with
// bit masks.
package statevector

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qukit/qukit/circuit"
)

// State is the statevector of a quantum register, in the computational basis.
// Basis state i assigns bit (i>>q)&1 to qubit q.
type State struct {
	amplitudes []complex128
	nbQubits   int
}

// NewState returns the all-zero state |0...0⟩ of an nbQubits register
func NewState(nbQubits int) *State {
	amplitudes := make([]complex128, 1<<uint(nbQubits))
	amplitudes[0] = 1
	return &State{amplitudes: amplitudes, nbQubits: nbQubits}
}

// NbQubits returns the register size
func (s *State) NbQubits() int { return s.nbQubits }

// Amplitude returns the amplitude of basis state i
func (s *State) Amplitude(i uint64) complex128 { return s.amplitudes[i] }

// Probability returns the probability of measuring basis state i
func (s *State) Probability(i uint64) float64 {
	a := s.amplitudes[i]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Probabilities returns the full measurement distribution over basis states
func (s *State) Probabilities() []float64 {
	probs := make([]float64, len(s.amplitudes))
	for i := range s.amplitudes {
		probs[i] = s.Probability(uint64(i))
	}
	return probs
}

// Apply applies one unitary instruction to the state. Barriers are no-ops;
// measurements are not unitary and are rejected.
func (s *State) Apply(ins circuit.Instruction) error {
	switch ins.Op {
	case circuit.H:
		s.applyH(ins.Qubits[0])
	case circuit.X:
		s.applyX(ins.Qubits[0])
	case circuit.Y:
		s.applyY(ins.Qubits[0])
	case circuit.Z:
		s.applyPhaseFlip(ins.Qubits[0], -1)
	case circuit.S:
		s.applyPhaseFlip(ins.Qubits[0], 1i)
	case circuit.Sdg:
		s.applyPhaseFlip(ins.Qubits[0], -1i)
	case circuit.T:
		s.applyPhaseFlip(ins.Qubits[0], cmplx.Exp(complex(0, math.Pi/4)))
	case circuit.Tdg:
		s.applyPhaseFlip(ins.Qubits[0], cmplx.Exp(complex(0, -math.Pi/4)))
	case circuit.RX:
		s.applyRX(ins.Qubits[0], ins.Params[0])
	case circuit.RY:
		s.applyRY(ins.Qubits[0], ins.Params[0])
	case circuit.RZ:
		s.applyRZ(ins.Qubits[0], ins.Params[0])
	case circuit.CX:
		s.applyCX(ins.Qubits[0], ins.Qubits[1])
	case circuit.CZ:
		s.applyCZ(ins.Qubits[0], ins.Qubits[1])
	case circuit.SWAP:
		s.applySWAP(ins.Qubits[0], ins.Qubits[1])
	case circuit.Barrier:
		// no-op
	default:
		return fmt.Errorf("instruction %s is not unitary", ins.Op)
	}
	return nil
}

func (s *State) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	bit := 1 << uint(q)
	for i := range s.amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amplitudes[i], s.amplitudes[j]
			s.amplitudes[i] = hFactor * (a + b)
			s.amplitudes[j] = hFactor * (a - b)
		}
	}
}

func (s *State) applyX(q int) {
	bit := 1 << uint(q)
	for i := range s.amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

func (s *State) applyY(q int) {
	bit := 1 << uint(q)
	for i := range s.amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.amplitudes[i], s.amplitudes[j] = 1i*s.amplitudes[j], -1i*s.amplitudes[i]
		}
	}
}

// applyPhaseFlip multiplies the |1⟩ component of qubit q by factor. Z, S, Sdg,
// T and Tdg are all of this form.
func (s *State) applyPhaseFlip(q int, factor complex128) {
	bit := 1 << uint(q)
	for i := range s.amplitudes {
		if i&bit != 0 {
			s.amplitudes[i] *= factor
		}
	}
}

func (s *State) applyRX(q int, theta float64) {
	bit := 1 << uint(q)
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	for i := range s.amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amplitudes[i], s.amplitudes[j]
			s.amplitudes[i] = c*a + js*b
			s.amplitudes[j] = js*a + c*b
		}
	}
}

func (s *State) applyRY(q int, theta float64) {
	bit := 1 << uint(q)
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	for i := range s.amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amplitudes[i], s.amplitudes[j]
			s.amplitudes[i] = c*a - sn*b
			s.amplitudes[j] = sn*a + c*b
		}
	}
}

func (s *State) applyRZ(q int, theta float64) {
	bit := 1 << uint(q)
	phase := cmplx.Exp(complex(0, theta/2))
	for i := range s.amplitudes {
		if i&bit != 0 {
			s.amplitudes[i] *= phase
		} else {
			s.amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *State) applyCX(ctrl, target int) {
	cBit := 1 << uint(ctrl)
	tBit := 1 << uint(target)
	for i := range s.amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

func (s *State) applyCZ(q1, q2 int) {
	b1 := 1 << uint(q1)
	b2 := 1 << uint(q2)
	for i := range s.amplitudes {
		if i&b1 != 0 && i&b2 != 0 {
			s.amplitudes[i] *= -1
		}
	}
}

func (s *State) applySWAP(q1, q2 int) {
	b1 := 1 << uint(q1)
	b2 := 1 << uint(q2)
	for i := range s.amplitudes {
		if i&b1 != 0 && i&b2 == 0 {
			j := (i &^ b1) | b2
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

// norm returns the squared 2-norm of the state; 1 up to float error for any
// sequence of unitary instructions
func (s *State) norm() float64 {
	n := 0.0
	for i := range s.amplitudes {
		n += s.Probability(uint64(i))
	}
	return n
}
