// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package circuit

import (
	"bufio"
	"fmt"
	"io"
)

// ToQASM writes the circuit as an OpenQASM 2.0 program
func (c *Circuit) ToQASM(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "OPENQASM 2.0;")
	fmt.Fprintln(bw, "include \"qelib1.inc\";")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "qreg q[%d];\n", c.nbQubits)
	if c.nbClbits > 0 {
		fmt.Fprintf(bw, "creg c[%d];\n", c.nbClbits)
	}
	fmt.Fprintln(bw)

	for _, ins := range c.instructions {
		switch ins.Op {
		case Barrier:
			fmt.Fprintln(bw, "barrier q;")
		case Measure:
			fmt.Fprintf(bw, "measure q[%d] -> c[%d];\n", ins.Qubits[0], ins.Clbits[0])
		case RX, RY, RZ:
			fmt.Fprintf(bw, "%s(%v) q[%d];\n", ins.Op, ins.Params[0], ins.Qubits[0])
		case CX, CZ, SWAP:
			fmt.Fprintf(bw, "%s q[%d],q[%d];\n", ins.Op, ins.Qubits[0], ins.Qubits[1])
		default:
			fmt.Fprintf(bw, "%s q[%d];\n", ins.Op, ins.Qubits[0])
		}
	}
	return bw.Flush()
}
