// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package backend

import (
	"context"
	"sync"

	"github.com/qukit/qukit/circuit"
	"github.com/qukit/qukit/logger"
)

// JobStatus is the lifecycle state of an asynchronous execution
type JobStatus uint8

const (
	StatusQueued JobStatus = iota
	StatusRunning
	StatusCompleted
	StatusErrored
)

// String returns the string representation of a job status
func (s JobStatus) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Job is a circuit execution running in the background. Result blocks until
// the run finishes.
type Job struct {
	mu     sync.Mutex
	status JobStatus

	done chan struct{}
	res  *Result
	err  error
}

// Execute submits the circuit to the backend and returns immediately. The
// returned Job completes when the backend's Run does; cancelling ctx cancels
// the run.
func Execute(ctx context.Context, qc *circuit.Circuit, b Backend, opts ...RunOption) *Job {
	job := &Job{done: make(chan struct{})}

	log := logger.Logger().With().Str("backend", b.Name()).Logger()

	go func() {
		defer close(job.done)

		job.setStatus(StatusRunning)
		log.Debug().Int("nbQubits", qc.NbQubits()).Msg("running circuit")

		res, err := b.Run(ctx, qc, opts...)
		job.mu.Lock()
		defer job.mu.Unlock()
		if err != nil {
			log.Err(err).Msg("circuit execution failed")
			job.status = StatusErrored
			job.err = err
			return
		}
		job.status = StatusCompleted
		job.res = res
	}()

	return job
}

func (job *Job) setStatus(s JobStatus) {
	job.mu.Lock()
	job.status = s
	job.mu.Unlock()
}

// Status returns the job's current lifecycle state
func (job *Job) Status() JobStatus {
	job.mu.Lock()
	defer job.mu.Unlock()
	return job.status
}

// Result blocks until the execution finishes and returns its outcome
func (job *Job) Result() (*Result, error) {
	<-job.done
	job.mu.Lock()
	defer job.mu.Unlock()
	return job.res, job.err
}
