// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qukit/qukit/algorithms/deutschjozsa"
	"github.com/qukit/qukit/oracle"
)

var qasmCmd = &cobra.Command{
	Use:   "qasm",
	Short: "Print the Deutsch-Jozsa circuit for one oracle kind as OpenQASM 2.0",
	Run:   cmdQASM,
}

var fKind string

func init() {
	rootCmd.AddCommand(qasmCmd)
	qasmCmd.Flags().IntVar(&fBits, "bits", 3, "oracle bit-width")
	qasmCmd.Flags().StringVar(&fKind, "kind", "balanced", "oracle kind (constant or balanced)")
}

func cmdQASM(cmd *cobra.Command, args []string) {
	var o oracle.Oracle
	var err error
	switch fKind {
	case "constant":
		o, err = oracle.Constant(fBits, 0)
	case "balanced":
		o, err = oracle.Balanced(fBits)
	default:
		fmt.Printf("unknown oracle kind %q -- qukit qasm -h for help\n", fKind)
		os.Exit(-1)
	}
	if err != nil {
		fmt.Println("cannot build oracle:", err)
		os.Exit(-1)
	}

	qc, err := deutschjozsa.Circuit(fBits, o)
	if err != nil {
		fmt.Println("cannot build circuit:", err)
		os.Exit(-1)
	}
	if err := qc.ToQASM(os.Stdout); err != nil {
		fmt.Println("cannot export circuit:", err)
		os.Exit(-1)
	}
}
