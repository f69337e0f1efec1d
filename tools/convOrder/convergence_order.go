package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	csvDir string
)

func main() {
	csvDirPtr := flag.String("csvDir", csvDir, "directory of rule tables from a refinement study")
	flag.Parse()
	csvDir = *csvDirPtr
	if len(csvDir) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input directory: %v\n", csvDir)
	studies := readTables(csvDir)
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		studies[key].Print()
	}
}

// ConvergenceStudy collects the integration error of one rule family at a
// series of point counts against two smooth reference integrands.
type ConvergenceStudy struct {
	title            string
	numPTS           []int
	h                []float64
	expERR, rungeERR []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, nodes, weights []float64) {
	var (
		expSum, rungeSum float64
	)
	for i := range nodes {
		expSum += weights[i] * math.Exp(nodes[i])
		rungeSum += weights[i] / (1 + nodes[i]*nodes[i])
	}
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.h = append(cs.h, 2/float64(numPTS-1))
	cs.expERR = append(cs.expERR, math.Abs(expSum-(math.Exp(1)-math.Exp(-1))))
	cs.rungeERR = append(cs.rungeERR, math.Abs(rungeSum-math.Pi/2))
}

func (cs *ConvergenceStudy) sort() {
	idx := make([]int, len(cs.numPTS))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return cs.numPTS[idx[i]] < cs.numPTS[idx[j]] })
	numPTS := make([]int, len(idx))
	h, expERR, rungeERR := make([]float64, len(idx)), make([]float64, len(idx)), make([]float64, len(idx))
	for i, j := range idx {
		numPTS[i], h[i], expERR[i], rungeERR[i] = cs.numPTS[j], cs.h[j], cs.expERR[j], cs.rungeERR[j]
	}
	cs.numPTS, cs.h, cs.expERR, cs.rungeERR = numPTS, h, expERR, rungeERR
}

// Order of accuracy observed between two refinements i-1 and i.
func order(errC, errF, hC, hF float64) float64 {
	return math.Log(errC/errF) / math.Log(hC/hF)
}

func (cs *ConvergenceStudy) Print() {
	cs.sort()
	fmt.Printf("Title = %s, Refinements = %d\n", cs.title, len(cs.numPTS))
	fmt.Printf("%6s %10s %12s %7s %12s %7s\n", "N", "h", "exp err", "order", "runge err", "order")
	for i := range cs.numPTS {
		if i == 0 {
			fmt.Printf("%6d %10.3e %12.3e %7s %12.3e %7s\n",
				cs.numPTS[i], cs.h[i], cs.expERR[i], "", cs.rungeERR[i], "")
			continue
		}
		fmt.Printf("%6d %10.3e %12.3e %7.2f %12.3e %7.2f\n",
			cs.numPTS[i], cs.h[i],
			cs.expERR[i], order(cs.expERR[i-1], cs.expERR[i], cs.h[i-1], cs.h[i]),
			cs.rungeERR[i], order(cs.rungeERR[i-1], cs.rungeERR[i], cs.h[i-1], cs.h[i]))
	}
}

func readTables(csvDir string) (studies map[string]*ConvergenceStudy) {
	var (
		files   []string
		err     error
		ok      bool
		cs      *ConvergenceStudy
		nodes   []float64
		weights []float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if files, err = filepath.Glob(filepath.Join(csvDir, "*.csv")); err != nil {
		panic(err)
	}
	if len(files) == 0 {
		fmt.Printf("no .csv rule tables found in %s\n", csvDir)
		os.Exit(1)
	}
	for _, fname := range files {
		// Rule tables are named family_NNNN.csv by the table command.
		title := strings.Split(filepath.Base(fname), "_")[0]
		if nodes, weights, err = readTable(fname); err != nil {
			panic(err)
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		cs.Add(len(nodes), nodes, weights)
	}
	return
}

func readTable(fname string) (nodes, weights []float64, err error) {
	var (
		f            *os.File
		records      [][]string
		node, weight float64
	)
	if f, err = os.Open(fname); err != nil {
		return
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if _, err = strconv.Atoi(rec[0]); err != nil {
			return
		}
		if _, err = fmt.Sscanf(rec[1], "%f", &node); err != nil {
			return
		}
		if _, err = fmt.Sscanf(rec[2], "%f", &weight); err != nil {
			return
		}
		nodes = append(nodes, node)
		weights = append(weights, weight)
	}
	return
}
