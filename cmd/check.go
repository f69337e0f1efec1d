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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/opueyociutad/goquad/quad"
	"github.com/opueyociutad/goquad/types"
	"github.com/opueyociutad/goquad/utils"
	"github.com/opueyociutad/goquad/verify"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Measure the defining properties of a quadrature rule",
	Long: `
Generates a rule and reports its weight sum, symmetry, node ordering,
monomial exactness and Gram matrix defects,

goquad check --rule legendre -n 24 --cross`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			rule string
		)
		if rule, err = cmd.Flags().GetString("rule"); err != nil {
			panic(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		cross, _ := cmd.Flags().GetBool("cross")
		RunCheck(rule, n, cross)
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	CheckCmd.Flags().StringP("rule", "r", "legendre", "rule family: legendre, lobatto, simpson or simpson38")
	CheckCmd.Flags().IntP("n", "n", 7, "number of evaluation points")
	CheckCmd.Flags().BoolP("cross", "x", false, "compare Gauss nodes against the eigensolver construction")
}

func RunCheck(rule string, n int, cross bool) {
	rt, err := types.ParseRuleType(rule)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	r, err := generate[float64](rt, n)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	// The Gram check needs exactness through twice the basis order, which
	// limits the order to n-1 for Gauss and n-2 for Lobatto rules. The
	// composite rules stop being exact at degree 3, so it is skipped.
	gramOrder := -1
	switch rt {
	case types.GaussLegendre:
		gramOrder = n - 1
	case types.GaussLobatto:
		gramOrder = n - 2
	}
	fmt.Printf("%s, %d points\n", rt, n)
	rep := verify.Check(r.Nodes, r.Weights, rt.ExactnessDegree(n), gramOrder)
	rep.Print()
	if cross {
		crossCheck(rt, n, r)
	}
}

// crossCheck compares the Newton built Gauss nodes and weights against the
// eigendecomposition of the Jacobi matrix.
func crossCheck(rt types.RuleType, n int, r quad.Rule[float64]) {
	var X, W utils.Vector
	switch rt {
	case types.GaussLegendre:
		X, W = quad.GolubWelschLegendre(n)
	case types.GaussLobatto:
		X, W = quad.GolubWelschLobatto(n)
	default:
		fmt.Printf("cross check is only defined for the Gauss families\n")
		return
	}
	var nodeDev, weightDev float64
	for i := range r.Nodes {
		nodeDev = math.Max(nodeDev, math.Abs(r.Nodes[i]-X.DataP[i]))
		weightDev = math.Max(weightDev, math.Abs(r.Weights[i]-W.DataP[i]))
	}
	fmt.Printf("%8.1e\t\t= Max Node Deviation (eigensolver)\n", nodeDev)
	fmt.Printf("%8.1e\t\t= Max Weight Deviation (eigensolver)\n", weightDev)
}
