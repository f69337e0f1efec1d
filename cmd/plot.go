//go:build cgo
// +build cgo

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
	"image/color"
	"math"
	"os"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"

	"github.com/opueyociutad/goquad/types"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Display the nodes and weights of a quadrature rule",
	Long: `
Opens a render window showing one weight stem per node over the interval
[-1,1], interrupt to exit,

goquad plot --rule lobatto -n 11`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			rule string
		)
		if rule, err = cmd.Flags().GetString("rule"); err != nil {
			panic(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		RunPlot(rule, n)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("rule", "r", "legendre", "rule family: legendre, lobatto, simpson or simpson38")
	PlotCmd.Flags().IntP("n", "n", 11, "number of evaluation points")
}

func RunPlot(rule string, n int) {
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
	var wMax float64
	for _, w := range r.Weights {
		if w > wMax {
			wMax = w
		}
	}
	lines := make(map[color.RGBA][]float32)
	AddLine(-1.05, 0, 1.05, 0, utils2.BLACK, lines)
	for i := range r.Nodes {
		AddLine(r.Nodes[i], 0, r.Nodes[i], r.Weights[i], utils2.RED, lines)
	}
	xy := make([]float32, 0, 2*r.Len())
	for i := range r.Nodes {
		xy = append(xy, float32(r.Nodes[i]), float32(r.Weights[i]))
	}
	AddCrossHairs(xy, utils2.BLACK, lines)
	text := []RenderText{{
		Color: utils2.BLACK,
		Text:  fmt.Sprintf("%s, %d points", rt, n),
		Pitch: 36,
		X:     -0.55,
		Y:     float32(wMax) * 0.95,
	}}
	PlotLinesAndText(lines, text)
}

type RenderText struct {
	Color color.RGBA
	Text  string
	Pitch uint32
	X, Y  float32
}

func PlotLinesAndText(lines map[color.RGBA][]float32,
	text []RenderText) {
	var (
		xMin, xMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	)
	for _, line := range lines {
		xMin, xMax, yMin, yMax = getMinMax(line, xMin, xMax, yMin, yMax)
	}
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range lines {
		ch.AddLine(line, col)
	}
	for _, txt := range text {
		tf := assets.NewTextFormatter("NotoSans",
			"Regular", txt.Pitch,
			txt.Color, true, false)
		ch.Printf(tf, txt.X, txt.Y, "%s", txt.Text)
	}
	for {
	}
}

func AddLine(x1, y1, x2, y2 float64, col color.RGBA,
	lines map[color.RGBA][]float32) {
	lines[col] = append(lines[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}

func AddCrossHairs(xy []float32, col color.RGBA,
	lines map[color.RGBA][]float32) {
	var (
		lenXY = len(xy) / 2
		size  = float32(0.02)
	)
	for i := 0; i < lenXY; i++ {
		lines[col] = append(lines[col],
			xy[2*i]-size, xy[2*i+1],
			xy[2*i]+size, xy[2*i+1],
			xy[2*i], xy[2*i+1]-size,
			xy[2*i], xy[2*i+1]+size,
		)
	}
}

func getMinMax(XY []float32, xi, xa, yi, ya float32) (xMin, xMax, yMin, yMax float32) {
	var (
		x, y  float32
		lenXY = len(XY) / 2
	)
	for i := 0; i < lenXY; i++ {
		x, y = XY[i*2+0], XY[i*2+1]
		if i == 0 {
			xMin = xi
			xMax = xa
			yMin = yi
			yMax = ya
		} else {
			if x < xMin {
				xMin = x
			}
			if x > xMax {
				xMax = x
			}
			if y < yMin {
				yMin = y
			}
			if y > yMax {
				yMax = y
			}
		}
	}
	return
}
