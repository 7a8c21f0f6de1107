// Package bitstring converts between classical register values and their
// bitstring form. Bitstrings are written most significant bit first, so bit i
// of the register is the (width-1-i)-th character, matching the convention
// used by outcome-count mappings.
package bitstring

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed bitstring")

// Format writes value as a bitstring of the given width
func Format(value uint64, width int) string {
	b := make([]byte, width)
	for i := 0; i < width; i++ {
		if value&(1<<uint(width-1-i)) != 0 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// Parse returns the register value of a bitstring
func Parse(s string) (uint64, error) {
	if len(s) == 0 || len(s) > 64 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	var v uint64
	for _, c := range s {
		switch c {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
	}
	return v, nil
}
