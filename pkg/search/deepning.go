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

package search

import (
	"fmt"
	"time"

	"github.com/kavu-chess/corvid/internal/util"
	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/move"
)

// iterativeDeepening repeatedly calls negamax at increasing depths,
// keeping the last fully-completed iteration's line when a limit cuts a
// later iteration short. Earlier iterations populate the transposition
// table, making the search to a given depth faster than searching that
// depth directly.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	start := time.Now()

	for depth := 1; depth <= search.limits.Depth; depth++ {
		search.depth.Store(int64(depth))

		var childPV move.Variation
		score = search.negamax(0, depth, -eval.Inf, eval.Inf, &childPV)

		if search.stopped.Load() {
			// the just-finished iteration may be incomplete; its pv
			// is discarded and the previous iteration's is kept
			break
		}

		pv = childPV

		nodes := search.nodes.Load()
		elapsed := time.Since(start)
		fmt.Printf(
			"info depth %d score %s nodes %d nps %.f time %d pv %s\n",
			depth, score, nodes,
			float64(nodes)/util.Max(0.001, elapsed.Seconds()),
			elapsed.Milliseconds(), pv,
		)
	}

	return pv, score
}
