// Package qukit provides a quantum circuit construction API, an ideal
// statevector simulation backend, and implementations of textbook quantum
// algorithms on top of them.
//
// qukit supports the following backends:
//   - STATEVECTOR (ideal, noiseless simulation)
//
// A circuit is built with the circuit package, executed on a backend with the
// backend package, and the aggregated measurement counts come back as a
// backend.Counts. See algorithms/deutschjozsa for a complete worked example.
package qukit

import (
	"github.com/blang/semver/v4"

	"github.com/qukit/qukit/backend"
)

var Version = semver.MustParse("0.3.0")

// Backends returns the execution backends implemented by qukit
func Backends() []backend.ID {
	return backend.Implemented()
}
