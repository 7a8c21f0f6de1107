// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package backend

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/icza/bitio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/qukit/qukit/internal/bitstring"
)

var (
	ErrNoMemory  = errors.New("per-shot memory was not recorded; run with WithMemory")
	ErrNoOutcome = errors.New("result holds no outcomes")
)

// Counts is an outcome-count mapping: for each measured bitstring, the number
// of shots that produced it. Bitstrings are classical-register ordered, most
// significant bit first.
type Counts map[string]int

// Total returns the sum of all counts. For a result produced by a backend it
// equals the shot count.
func (c Counts) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

// Probabilities returns the observed frequency of each outcome
func (c Counts) Probabilities() map[string]float64 {
	total := c.Total()
	if total == 0 {
		return nil
	}
	probs := make(map[string]float64, len(c))
	for k, v := range c {
		probs[k] = float64(v) / float64(total)
	}
	return probs
}

// Max returns the most frequent outcome. Ties break on the lexicographically
// smaller bitstring.
func (c Counts) Max() (string, int, error) {
	if len(c) == 0 {
		return "", 0, ErrNoOutcome
	}
	best, bestCount := "", -1
	for _, k := range c.Outcomes() {
		if c[k] > bestCount {
			best, bestCount = k, c[k]
		}
	}
	return best, bestCount, nil
}

// Outcomes returns the observed bitstrings in lexicographic order
func (c Counts) Outcomes() []string {
	keys := maps.Keys(c)
	slices.Sort(keys)
	return keys
}

// String prints the mapping with outcomes in lexicographic order
func (c Counts) String() string {
	var sbb strings.Builder
	sbb.WriteByte('{')
	for i, k := range c.Outcomes() {
		if i > 0 {
			sbb.WriteString(", ")
		}
		fmt.Fprintf(&sbb, "%q: %d", k, c[k])
	}
	sbb.WriteByte('}')
	return sbb.String()
}

// Result aggregates the outcomes of running a circuit on a backend
type Result struct {
	backendName string
	nbClbits    int
	shots       int
	counts      Counts
	memory      []byte // bit-packed shot outcomes, nbClbits bits each, in shot order
}

// NewResult aggregates per-shot classical register values into a Result.
// outcomes holds one register value per shot. If recordMemory is set, the
// shot order is retained and available through Memory.
func NewResult(backendName string, nbClbits int, outcomes []uint64, recordMemory bool) (*Result, error) {
	if nbClbits < 1 || nbClbits > 64 {
		return nil, fmt.Errorf("unsupported classical register size %d", nbClbits)
	}
	if len(outcomes) == 0 {
		return nil, ErrNoOutcome
	}
	res := &Result{
		backendName: backendName,
		nbClbits:    nbClbits,
		shots:       len(outcomes),
		counts:      make(Counts),
	}
	for _, o := range outcomes {
		res.counts[bitstring.Format(o, nbClbits)]++
	}
	if recordMemory {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		for _, o := range outcomes {
			if err := w.WriteBits(o, uint8(nbClbits)); err != nil {
				return nil, err
			}
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		res.memory = buf.Bytes()
	}
	return res, nil
}

// Backend returns the name of the backend that produced the result
func (r *Result) Backend() string { return r.backendName }

// Shots returns the number of aggregated shots
func (r *Result) Shots() int { return r.shots }

// Counts returns the outcome-count mapping. The returned map must not be
// mutated.
func (r *Result) Counts() Counts { return r.counts }

// Memory returns the per-shot outcomes in shot order. It errors with
// ErrNoMemory unless the run recorded memory.
func (r *Result) Memory() ([]string, error) {
	if r.memory == nil {
		return nil, ErrNoMemory
	}
	rd := bitio.NewReader(bytes.NewReader(r.memory))
	shots := make([]string, r.shots)
	for i := range shots {
		o, err := rd.ReadBits(uint8(r.nbClbits))
		if err != nil {
			return nil, err
		}
		shots[i] = bitstring.Format(o, r.nbClbits)
	}
	return shots, nil
}
