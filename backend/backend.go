// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package backend defines the execution surface of qukit: it consumes circuits
// built with qukit/circuit and returns aggregated measurement counts.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/qukit/qukit/circuit"
)

// ID represent a unique ID for an execution backend
type ID uint16

const (
	UNKNOWN ID = iota
	STATEVECTOR
)

// Implemented return the list of execution backends implemented in qukit
func Implemented() []ID {
	return []ID{STATEVECTOR}
}

// String returns the string representation of a backend
func (id ID) String() string {
	switch id {
	case STATEVECTOR:
		return "statevector"
	default:
		return "unknown"
	}
}

// Backend executes a circuit for a number of shots and aggregates the measured
// outcomes
type Backend interface {
	// Name returns a human readable backend identifier
	Name() string

	// MaxQubits returns the largest quantum register the backend accepts
	MaxQubits() int

	// Run executes the circuit and returns the aggregated result. It honors
	// ctx cancellation between sampling batches.
	Run(ctx context.Context, qc *circuit.Circuit, opts ...RunOption) (*Result, error)
}

// DefaultShots is the number of shots used when WithShots is not supplied
const DefaultShots = 1024

var ErrInvalidShots = errors.New("shot count must be at least 1")

// RunOption defines option for altering the behavior of a backend Run call.
// See the descriptions of functions returning instances of this type for
// implemented options.
type RunOption func(*RunConfig) error

// RunConfig is the configuration for a Run call with the options applied
type RunConfig struct {
	Shots   int
	Seed    int64
	HasSeed bool
	Memory  bool
}

// NewRunConfig returns a default RunConfig with given run options opts applied
func NewRunConfig(opts ...RunOption) (RunConfig, error) {
	opt := RunConfig{
		Shots: DefaultShots,
	}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return RunConfig{}, err
		}
	}
	return opt, nil
}

// WithShots sets the number of repeated executions to aggregate
func WithShots(shots int) RunOption {
	return func(opt *RunConfig) error {
		if shots < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidShots, shots)
		}
		opt.Shots = shots
		return nil
	}
}

// WithSeed makes sampling deterministic. Two runs of the same circuit with the
// same seed and shot count return identical results.
func WithSeed(seed int64) RunOption {
	return func(opt *RunConfig) error {
		opt.Seed = seed
		opt.HasSeed = true
		return nil
	}
}

// WithMemory records the per-shot outcomes in addition to the aggregated
// counts. See Result.Memory.
func WithMemory() RunOption {
	return func(opt *RunConfig) error {
		opt.Memory = true
		return nil
	}
}
