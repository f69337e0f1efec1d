//go:build !linux
// +build !linux

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BenchCmd represents the bench command where perf counters are unavailable
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure hardware counter cost of rule generation",
	Long: `
Hardware counter benchmarks read the linux perf interface and are not
available on this platform`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bench requires linux perf support")
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
}
