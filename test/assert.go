// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package test provides a helper to check circuits against every implemented
// backend
package test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qukit/qukit/backend"
	"github.com/qukit/qukit/backend/statevector"
	"github.com/qukit/qukit/circuit"
)

// Assert is a helper to test circuits
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized by
// the description strings descs.
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		assert := &Assert{t, require.New(t)}
		fn(assert)
	})
}

// Log logs using the test instance logger.
func (assert *Assert) Log(v ...interface{}) {
	assert.t.Log(v...)
}

func (assert *Assert) instantiate(id backend.ID) backend.Backend {
	switch id {
	case backend.STATEVECTOR:
		return statevector.NewSimulator()
	default:
		assert.FailNow("no backend registered for id " + id.String())
		return nil
	}
}

// CheckCircuit runs the circuit on every configured backend as a subtest,
// verifies the counts total matches the shot count, and hands the counts to
// expect for further assertions. expect may be nil.
func (assert *Assert) CheckCircuit(qc *circuit.Circuit, expect func(assert *Assert, counts backend.Counts), opts ...TestingOption) {
	opt := defaultTestingConfig()
	for _, o := range opts {
		assert.NoError(o(&opt), "applying testing option")
	}

	for _, id := range opt.backends {
		id := id
		assert.Run(func(assert *Assert) {
			b := assert.instantiate(id)
			res, err := b.Run(context.Background(), qc, opt.runOpts...)
			assert.NoError(err, "running circuit")

			cfg, err := backend.NewRunConfig(opt.runOpts...)
			assert.NoError(err)

			counts := res.Counts()
			assert.Equal(cfg.Shots, counts.Total(), "counts must sum to the shot count")
			assert.Equal(cfg.Shots, res.Shots())

			if expect != nil {
				expect(assert, counts)
			}
		}, id.String())
	}
}

// ConcentratedOn checks that every shot of the circuit measures the given
// bitstring
func (assert *Assert) ConcentratedOn(qc *circuit.Circuit, bitstr string, opts ...TestingOption) {
	assert.CheckCircuit(qc, func(assert *Assert, counts backend.Counts) {
		assert.Len(counts, 1, "expected a point distribution, got %s", counts)
		assert.Equal(counts.Total(), counts[bitstr], "expected all shots on %q, got %s", bitstr, counts)
	}, opts...)
}

// NeverSamples checks that no shot of the circuit measures the given
// bitstring
func (assert *Assert) NeverSamples(qc *circuit.Circuit, bitstr string, opts ...TestingOption) {
	assert.CheckCircuit(qc, func(assert *Assert, counts backend.Counts) {
		assert.Zero(counts[bitstr], "outcome %q must not appear, got %s", bitstr, counts)
	}, opts...)
}
