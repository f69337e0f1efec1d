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
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/constraints"

	"github.com/opueyociutad/goquad/quad"
	"github.com/opueyociutad/goquad/types"
)

type GenParams struct {
	Rule      string
	N         int
	Precision string
	Format    string
	Output    string
}

// RuleOutput is the YAML document written for a generated rule.
type RuleOutput[T constraints.Float] struct {
	Family    string `yaml:"Family"`
	N         int    `yaml:"N"`
	Precision string `yaml:"Precision"`
	Nodes     []T    `yaml:"Nodes"`
	Weights   []T    `yaml:"Weights"`
}

// GenCmd represents the gen command
var GenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a single quadrature rule",
	Long: `
Generates the nodes and weights of one quadrature rule on [-1,1],

goquad gen --rule lobatto -n 9 --format yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			gp  = &GenParams{}
		)
		if gp.Rule, err = cmd.Flags().GetString("rule"); err != nil {
			panic(err)
		}
		gp.N, _ = cmd.Flags().GetInt("n")
		gp.Precision, _ = cmd.Flags().GetString("precision")
		gp.Format, _ = cmd.Flags().GetString("format")
		gp.Output, _ = cmd.Flags().GetString("output")
		if !cmd.Flags().Changed("precision") {
			gp.Precision = viper.GetString("precision")
		}
		if !cmd.Flags().Changed("format") {
			gp.Format = viper.GetString("format")
		}
		RunGen(gp)
	},
}

func init() {
	rootCmd.AddCommand(GenCmd)
	GenCmd.Flags().StringP("rule", "r", "legendre", "rule family: legendre, lobatto, simpson or simpson38")
	GenCmd.Flags().IntP("n", "n", 7, "number of evaluation points")
	GenCmd.Flags().StringP("precision", "p", "double", "node and weight precision: double or single")
	GenCmd.Flags().StringP("format", "f", "table", "output format: table, csv or yaml")
	GenCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}

func RunGen(gp *GenParams) {
	rt, err := types.ParseRuleType(gp.Rule)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	prec, err := types.ParsePrecision(gp.Precision)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	switch prec {
	case types.Single:
		r, err := generate[float32](rt, gp.N)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		emitRule(gp, rt, prec, r)
	case types.Double:
		fallthrough
	default:
		r, err := generate[float64](rt, gp.N)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		emitRule(gp, rt, prec, r)
	}
}

// generate dispatches a parsed rule family to its generator.
func generate[T constraints.Float](rt types.RuleType, n int) (quad.Rule[T], error) {
	switch rt {
	case types.GaussLobatto:
		return quad.GaussLobatto[T](n)
	case types.CompositeSimpson:
		return quad.CompositeSimpson[T](n)
	case types.CompositeSimpson38:
		return quad.CompositeSimpson38[T](n)
	case types.GaussLegendre:
		fallthrough
	default:
		return quad.GaussLegendre[T](n)
	}
}

func emitRule[T constraints.Float](gp *GenParams, rt types.RuleType, prec types.Precision, r quad.Rule[T]) {
	var w io.Writer = os.Stdout
	if len(gp.Output) != 0 {
		f, err := os.Create(gp.Output)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		w = f
	}
	if err := writeRule(w, gp.Format, rt, prec, r); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}

func writeRule[T constraints.Float](w io.Writer, format string, rt types.RuleType, prec types.Precision, r quad.Rule[T]) (err error) {
	switch format {
	case "yaml":
		out := RuleOutput[T]{
			Family:    rt.String(),
			N:         r.Len(),
			Precision: prec.String(),
			Nodes:     r.Nodes,
			Weights:   r.Weights,
		}
		var data []byte
		if data, err = yaml.Marshal(out); err != nil {
			return
		}
		_, err = w.Write(data)
	case "csv":
		if _, err = fmt.Fprintf(w, "i,node,weight\n"); err != nil {
			return
		}
		for i := range r.Nodes {
			if _, err = fmt.Fprintf(w, "%d,%v,%v\n", i, r.Nodes[i], r.Weights[i]); err != nil {
				return
			}
		}
	case "table":
		fmt.Fprintf(w, "%s, %d points, exact through degree %d\n",
			rt, r.Len(), rt.ExactnessDegree(r.Len()))
		fmt.Fprintf(w, "%4s %26s %26s\n", "i", "node", "weight")
		for i := range r.Nodes {
			if _, err = fmt.Fprintf(w, "%4d %26.17e %26.17e\n",
				i, float64(r.Nodes[i]), float64(r.Weights[i])); err != nil {
				return
			}
		}
	default:
		err = fmt.Errorf("unknown output format %q, valid formats are: table, csv, yaml", format)
	}
	return
}
