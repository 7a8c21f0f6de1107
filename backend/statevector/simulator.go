// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package statevector

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/qukit/qukit/backend"
	"github.com/qukit/qukit/circuit"
	"github.com/qukit/qukit/debug"
	"github.com/qukit/qukit/logger"
)

// MaxQubits bounds the register size so the amplitude vector stays in memory
// (2^24 amplitudes is 256MiB)
const MaxQubits = 24

// samplingBatchSize is the number of shots drawn per goroutine with an
// independent rand stream. Fixed so that a seeded run is deterministic
// whatever the parallelism.
const samplingBatchSize = 256

var (
	ErrTooManyQubits  = errors.New("circuit exceeds the simulator's qubit capacity")
	ErrNoMeasurement  = errors.New("circuit contains no measurement")
	ErrStateCorrupted = errors.New("statevector norm drifted from 1")
)

// Simulator executes circuits by ideal statevector simulation. Measurements
// are deferred: the final state's distribution is sampled once per shot. This
// is exact because the circuit builder rejects gates on measured qubits.
//
// Simulator is safe for concurrent use; each Run carries its own state.
type Simulator struct{}

var _ backend.Backend = (*Simulator)(nil)

// NewSimulator returns an ideal statevector simulation backend
func NewSimulator() *Simulator { return &Simulator{} }

// Name implements backend.Backend
func (sim *Simulator) Name() string { return backend.STATEVECTOR.String() }

// MaxQubits implements backend.Backend
func (sim *Simulator) MaxQubits() int { return MaxQubits }

// Run executes the circuit and aggregates the measured outcomes over the
// configured number of shots
func (sim *Simulator) Run(ctx context.Context, qc *circuit.Circuit, opts ...backend.RunOption) (*backend.Result, error) {
	log := logger.Logger()

	cfg, err := backend.NewRunConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply option: %w", err)
	}
	if err := qc.Err(); err != nil {
		return nil, err
	}
	if qc.NbQubits() > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits, capacity %d", ErrTooManyQubits, qc.NbQubits(), MaxQubits)
	}

	log.Debug().
		Int("nbQubits", qc.NbQubits()).
		Int("nbGates", qc.NbGates()).
		Int("shots", cfg.Shots).
		Msg("simulating circuit")

	state := NewState(qc.NbQubits())

	// measures are collected and deferred to the sampling stage; later
	// measures into the same classical bit win
	type measure struct{ qubit, clbit int }
	var measures []measure

	for _, ins := range qc.Instructions() {
		if ins.Op == circuit.Measure {
			measures = append(measures, measure{qubit: ins.Qubits[0], clbit: ins.Clbits[0]})
			continue
		}
		if err := state.Apply(ins); err != nil {
			return nil, err
		}
	}
	if len(measures) == 0 {
		return nil, ErrNoMeasurement
	}

	if debug.Debug {
		if n := state.norm(); math.Abs(n-1) > 1e-9 {
			return nil, fmt.Errorf("%w: norm² = %v", ErrStateCorrupted, n)
		}
	}

	// cumulative distribution over basis states
	cumulative := make([]float64, len(state.amplitudes))
	acc := 0.0
	for i := range cumulative {
		acc += state.Probability(uint64(i))
		cumulative[i] = acc
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = time.Now().UnixNano()
	}

	register := func(basis uint64) uint64 {
		var v uint64
		for _, m := range measures {
			bit := (basis >> uint(m.qubit)) & 1
			v = v&^(1<<uint(m.clbit)) | bit<<uint(m.clbit)
		}
		return v
	}

	outcomes := make([]uint64, cfg.Shots)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for batch := 0; batch*samplingBatchSize < cfg.Shots; batch++ {
		batch := batch
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed + int64(batch)))
			start := batch * samplingBatchSize
			end := min(start+samplingBatchSize, cfg.Shots)
			for shot := start; shot < end; shot++ {
				x := rng.Float64() * acc
				basis := sort.SearchFloat64s(cumulative, x)
				if basis == len(cumulative) {
					basis--
				}
				outcomes[shot] = register(uint64(basis))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return backend.NewResult(sim.Name(), qc.NbClbits(), outcomes, cfg.Memory)
}
