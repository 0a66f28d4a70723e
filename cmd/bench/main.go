// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bench runs perft on a position across a range of depths and
// reports nodes-per-second, plotting the results as an HTML line chart.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kavu-chess/corvid/pkg/position"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: bench <fen> <depth>")
	}

	fen := os.Args[1]

	maxDepth, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return fmt.Errorf("bad depth %q: %w", os.Args[2], err)
	}

	pos, err := position.NewFromFEN(fen)
	if err != nil {
		return err
	}

	depthAxis := make([]string, 0, maxDepth)
	npsData := make([]opts.LineData, 0, maxDepth)

	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := pos.Perft(depth)
		elapsed := time.Since(start)

		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("bench: depth %d, nodes %d, time %s, nps %.0f\n", depth, nodes, elapsed, nps)

		depthAxis = append(depthAxis, strconv.Itoa(depth))
		npsData = append(npsData, opts.LineData{Value: nps})
	}

	plot := charts.NewLine()
	plot.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Perft nodes/sec by depth"}),
	)
	plot.SetXAxis(depthAxis).AddSeries("nodes/sec", npsData)

	plotFile, err := os.Create("bench-plot.html")
	if err != nil {
		return err
	}
	defer plotFile.Close()

	return plot.Render(plotFile)
}
