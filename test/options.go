// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package test

import (
	"github.com/qukit/qukit/backend"
)

// TestingOption enables calls to assert.CheckCircuit and friends to run with
// various features.
//
// Default values run on all implemented backends with backend.DefaultShots
// and a fixed seed.
type TestingOption func(*testingConfig) error

type testingConfig struct {
	backends []backend.ID
	runOpts  []backend.RunOption
}

func defaultTestingConfig() testingConfig {
	return testingConfig{
		backends: backend.Implemented(),
		// fixed seed so a failing test replays identically
		runOpts: []backend.RunOption{backend.WithSeed(42)},
	}
}

// WithBackends restricts the backends the circuit is checked on
//
// (defaults to all implemented backends)
func WithBackends(b backend.ID, backends ...backend.ID) TestingOption {
	return func(opt *testingConfig) error {
		opt.backends = []backend.ID{b}
		opt.backends = append(opt.backends, backends...)
		return nil
	}
}

// WithRunOpts forwards run options to every backend Run call performed by the
// check
func WithRunOpts(runOpts ...backend.RunOption) TestingOption {
	return func(opt *testingConfig) error {
		opt.runOpts = append(opt.runOpts, runOpts...)
		return nil
	}
}
