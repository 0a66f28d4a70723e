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

// Command watch runs a fixed-depth search on a position and shows its
// progress (target and current depth, nodes, score, pv) live in a
// terminal dashboard.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/kavu-chess/corvid/pkg/position"
	"github.com/kavu-chess/corvid/pkg/search"
	searchtime "github.com/kavu-chess/corvid/pkg/search/time"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: watch <fen> <depth>")
	}

	fen := os.Args[1]

	depth, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return fmt.Errorf("bad depth %q: %w", os.Args[2], err)
	}

	pos, err := position.NewFromFEN(fen)
	if err != nil {
		return err
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("watch: failed to initialize termui: %w", err)
	}
	defer ui.Close()

	panel := widgets.NewParagraph()
	panel.Title = "corvid search"
	panel.SetRect(0, 0, 60, 8)

	searchCtx := search.NewContext(pos)
	ctx := &searchCtx

	done := make(chan struct{})
	var pv fmt.Stringer
	var score fmt.Stringer

	go func() {
		defer close(done)
		line, sc, searchErr := ctx.Search(search.Limits{
			Depth: depth,
			Nodes: 1 << 30,
			Time:  &searchtime.InfiniteManager{},
		})
		if searchErr == nil {
			pv, score = line, sc
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	events := ui.PollEvents()

loop:
	for {
		select {
		case <-done:
			render(panel, ctx, depth, pv, score)
			ui.Render(panel)
			break loop

		case <-ticker.C:
			render(panel, ctx, depth, pv, score)
			ui.Render(panel)

		case e := <-events:
			if e.Type == ui.KeyboardEvent {
				ctx.Stop()
				break loop
			}
		}
	}

	return nil
}

// render reads ctx's stats while the search goroutine may still be
// updating them; Stats() loads depth and nodes atomically, so a read
// here is never torn, only possibly one tick behind.
func render(panel *widgets.Paragraph, ctx *search.Context, targetDepth int, pv, score fmt.Stringer) {
	curDepth, nodes := ctx.Stats()

	text := fmt.Sprintf("target depth: %d\ncurrent depth: %d\nnodes: %d\n", targetDepth, curDepth, nodes)
	if score != nil {
		text += fmt.Sprintf("score: %s\n", score)
	}
	if pv != nil {
		text += fmt.Sprintf("pv: %s\n", pv)
	}

	panel.Text = text
}
