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
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/opueyociutad/goquad/InputParameters"
	"github.com/opueyociutad/goquad/quad"
	"github.com/opueyociutad/goquad/types"
	"github.com/opueyociutad/goquad/utils"
)

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate a batch of quadrature rules from a YAML parameters file",
	Long: `
Reads a parameters file, generates every rule it lists in parallel and
writes one output file per rule,

goquad table -i rules.yaml --workers 4`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err       error
			fileInput string
		)
		if fileInput, err = cmd.Flags().GetString("input"); err != nil {
			panic(err)
		}
		workers, _ := cmd.Flags().GetInt("workers")
		prof, _ := cmd.Flags().GetBool("profile")
		tp := processTableInput(fileInput)
		RunTable(tp, workers, prof)
	},
}

func init() {
	rootCmd.AddCommand(TableCmd)
	TableCmd.Flags().StringP("input", "i", "", "YAML file listing the rules to generate")
	TableCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "number of parallel workers")
	TableCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
}

func processTableInput(fileInput string) (tp *InputParameters.TableParameters) {
	var (
		err error
	)
	if len(fileInput) == 0 {
		err = fmt.Errorf("must supply a table parameters file (-i, --input) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Reference Tables"
Precision: double
Format: csv
OutputDir: tables
Rules:
  - Family: legendre # Can be legendre, lobatto, simpson or simpson38
    N: 16
  - Family: lobatto
    N: 9
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(fileInput); err != nil {
		panic(err)
	}
	tp = &InputParameters.TableParameters{}
	if err = tp.Parse(data); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func RunTable(tp *InputParameters.TableParameters, workers int, prof bool) {
	if prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	tp.Print()
	// Parse validated the labels already.
	prec, _ := types.ParsePrecision(tp.Precision)
	if err := os.MkdirAll(tp.OutputDir, 0755); err != nil {
		panic(err)
	}
	if workers < 1 {
		workers = 1
	}
	pm := utils.NewPartitionMap(workers, len(tp.Rules))
	fmt.Printf("Using %d workers for %d rules\n", pm.ParallelDegree, len(tp.Rules))
	wg := sync.WaitGroup{}
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				if err := writeTableRule(tp, prec, i); err != nil {
					fmt.Printf("error: %s\n", err.Error())
				}
			}
		}(np)
	}
	wg.Wait()
}

// writeTableRule generates rule i of the table and writes it to its own
// file named after the family and point count.
func writeTableRule(tp *InputParameters.TableParameters, prec types.Precision, i int) (err error) {
	rp := tp.Rules[i]
	rt, err := rp.RuleType()
	if err != nil {
		return
	}
	fname := filepath.Join(tp.OutputDir,
		fmt.Sprintf("%s_%04d.%s", strings.ToLower(rp.Family), rp.N, tp.Format))
	f, err := os.Create(fname)
	if err != nil {
		return
	}
	defer f.Close()
	switch prec {
	case types.Single:
		var r quad.Rule[float32]
		if r, err = generate[float32](rt, rp.N); err != nil {
			return
		}
		err = writeRule(f, tp.Format, rt, prec, r)
	case types.Double:
		fallthrough
	default:
		var r quad.Rule[float64]
		if r, err = generate[float64](rt, rp.N); err != nil {
			return
		}
		err = writeRule(f, tp.Format, rt, prec, r)
	}
	if err == nil {
		fmt.Printf("wrote %s\n", fname)
	}
	return
}
