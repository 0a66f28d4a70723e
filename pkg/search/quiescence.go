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
	"github.com/kavu-chess/corvid/internal/util"
	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/move"
)

// quiescence searches only captures (including capturing promotions)
// beyond the main search's horizon, to avoid misjudging positions in the
// middle of a tactical exchange. While in check every legal move is
// searched instead; non-capturing promotions are not searched otherwise.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.nodes.Add(1)

	if search.shouldStop() {
		return 0
	}

	if search.Position.IsDraw() {
		return search.draw()
	}

	inCheck := search.Position.IsInCheck(search.Position.SideToMove)

	var bestEval eval.Eval
	if inCheck {
		// standing pat is unsound while in check: every move must be
		// considered since the check has to be escaped somehow
		bestEval = -eval.Inf
	} else {
		standPat := search.score()
		bestEval = standPat

		alpha = util.Max(alpha, standPat)
		if alpha >= beta {
			return standPat
		}
	}

	var list move.List
	search.Position.GenerateMoves(&list, !inCheck)

	if list.Len() == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}
		return bestEval
	}

	ordered := move.ScoreMoves(&list, eval.OfMove(move.Null))
	for i := 0; i < ordered.Len(); i++ {
		m := ordered.PickMove(i)

		search.Position.MakeMove(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Position.UnmakeMove()

		if score > bestEval {
			bestEval = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return bestEval
}
