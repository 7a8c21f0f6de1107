// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qukit/qukit/algorithms/deutschjozsa"
	"github.com/qukit/qukit/backend"
	"github.com/qukit/qukit/backend/statevector"
	"github.com/qukit/qukit/oracle"
)

var djCmd = &cobra.Command{
	Use:   "dj",
	Short: "Run the Deutsch-Jozsa algorithm for a constant and a balanced oracle and print the outcome counts",
	Run:   cmdDJ,
}

var (
	fBits  int
	fShots int
	fSeed  int64
)

func init() {
	rootCmd.AddCommand(djCmd)
	djCmd.PersistentFlags().IntVar(&fBits, "bits", 3, "oracle bit-width")
	djCmd.PersistentFlags().IntVar(&fShots, "shots", backend.DefaultShots, "number of shots per run")
	djCmd.PersistentFlags().Int64Var(&fSeed, "seed", -1, "sampling seed; -1 picks one from the clock")
}

func cmdDJ(cmd *cobra.Command, args []string) {
	sim := statevector.NewSimulator()

	runOpts := []backend.RunOption{backend.WithShots(fShots)}
	if fSeed >= 0 {
		runOpts = append(runOpts, backend.WithSeed(fSeed))
	}

	for _, kind := range []deutschjozsa.Kind{deutschjozsa.Constant, deutschjozsa.Balanced} {
		var o oracle.Oracle
		var err error
		if kind == deutschjozsa.Constant {
			o, err = oracle.Constant(fBits, 0)
		} else {
			o, err = oracle.Balanced(fBits)
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

		job := backend.Execute(context.Background(), qc, sim, runOpts...)
		res, err := job.Result()
		if err != nil {
			fmt.Println("execution failed:", err)
			os.Exit(-1)
		}

		fmt.Printf("%s: %s\n", kind, res.Counts())
	}
}
