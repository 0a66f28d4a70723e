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

package eval

import (
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/position"
)

// Evaluate scores p from the perspective of the side to move: material
// plus piece-square terms, with the king's table tapered between
// middlegame and endgame by each color's own non-pawn material.
func Evaluate(p *position.Position) Eval {
	var material [piece.ColorN]int
	var positional [piece.ColorN]int
	var nonPawnMaterial [piece.ColorN]int

	for c := piece.White; c <= piece.Black; c++ {
		for t := piece.Pawn; t <= piece.King; t++ {
			bb := p.PieceBBs[t] & p.ColorBBs[c]
			for bb != bitboard.Empty {
				s := bb.Pop()
				material[c] += piece.Value[t]
				if t == piece.King {
					continue
				}
				positional[c] += pst(t, c, s)
				if t != piece.Pawn {
					nonPawnMaterial[c] += piece.Value[t]
				}
			}
		}
	}

	for c := piece.White; c <= piece.Black; c++ {
		phase := phaseOf(nonPawnMaterial[c])
		positional[c] += kingPST(c, p.Kings[c], phase)
	}

	score := Eval((material[piece.White] + positional[piece.White]) -
		(material[piece.Black] + positional[piece.Black]))

	if p.SideToMove == piece.Black {
		score = -score
	}
	return score
}
