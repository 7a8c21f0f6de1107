// Copyright 2024 The qukit Authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qukit/qukit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qukit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(qukit.Version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
