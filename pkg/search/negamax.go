// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/tt"
)

// negamax is a fail-soft alpha-beta negamax search: one function serves
// both the maximizing and minimizing side since chess is zero-sum and
// one player's advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.nodes.Add(1)

	switch {
	case search.shouldStop():
		// result is discarded, the previous iteration's pv is kept
		return 0

	case search.Position.IsDraw():
		return search.draw()

	case depth <= 0, plys >= MaxDepth:
		return search.quiescence(plys, alpha, beta)
	}

	originalAlpha := alpha

	bestMove := move.Null
	bestEval := -eval.Inf

	if value, ttMove, ok := search.tt.Probe(search.Position.Hash, depth, plys, alpha, beta); ok {
		search.ttHits++
		return value
	} else if ttMove != move.Null {
		bestMove = ttMove
	}

	var list move.List
	search.Position.GenerateMoves(&list, false)

	if list.Len() == 0 {
		if search.Position.IsInCheck(search.Position.SideToMove) {
			return eval.MatedIn(plys)
		}
		return eval.Draw
	}

	ordered := move.ScoreMoves(&list, eval.OfMove(bestMove))
	for i := 0; i < ordered.Len(); i++ {
		var childPV move.Variation
		m := ordered.PickMove(i)

		search.Position.MakeMove(m)
		score := -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
		search.Position.UnmakeMove()

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					break // fail high
				}
			}
		}
	}

	if !search.stopped.Load() {
		var bound tt.Bound
		switch {
		case bestEval <= originalAlpha:
			bound = tt.UpperBound
		case bestEval >= beta:
			bound = tt.LowerBound
		default:
			bound = tt.Exact
		}

		search.tt.Store(search.Position.Hash, depth, plys, bestEval, bound, bestMove)
	}

	return bestEval
}
