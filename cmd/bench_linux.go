//go:build linux
// +build linux

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
	"os"

	perf "github.com/hodgesds/perf-utils"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/opueyociutad/goquad/types"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure hardware counter cost of rule generation",
	Long: `
Counts CPU instructions and cycles per generated rule through the kernel
perf interface, which needs an unrestricted kernel.perf_event_paranoid,

goquad bench --rule legendre -n 64 --trials 20`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			rule string
		)
		if rule, err = cmd.Flags().GetString("rule"); err != nil {
			panic(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		trials, _ := cmd.Flags().GetInt("trials")
		RunBench(rule, n, trials)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().StringP("rule", "r", "legendre", "rule family: legendre, lobatto, simpson or simpson38")
	BenchCmd.Flags().IntP("n", "n", 64, "number of evaluation points")
	BenchCmd.Flags().IntP("trials", "t", 20, "number of measured generations")
}

func RunBench(rule string, n, trials int) {
	rt, err := types.ParseRuleType(rule)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	gen := func() error {
		_, genErr := generate[float64](rt, n)
		return genErr
	}
	// One unmeasured generation so allocator warmup stays out of the counts.
	if err = gen(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var (
		instructions = make([]float64, 0, trials)
		cycles       = make([]float64, 0, trials)
	)
	for i := 0; i < trials; i++ {
		pv, err := perf.CPUInstructions(gen)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		instructions = append(instructions, float64(pv.Value))
		if pv, err = perf.CPUCycles(gen); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		cycles = append(cycles, float64(pv.Value))
	}
	iMean, _ := stats.Mean(instructions)
	iMin, _ := stats.Min(instructions)
	cMean, _ := stats.Mean(cycles)
	cMin, _ := stats.Min(cycles)
	fmt.Printf("%s, %d points, %d trials\n", rt, n, trials)
	fmt.Printf("%12.0f\t\t= Mean Instructions\n", iMean)
	fmt.Printf("%12.0f\t\t= Min Instructions\n", iMin)
	fmt.Printf("%12.0f\t\t= Mean Cycles\n", cMean)
	fmt.Printf("%12.0f\t\t= Min Cycles\n", cMin)
}
