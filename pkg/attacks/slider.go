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

package attacks

import (
	"github.com/kavu-chess/corvid/pkg/attacks/magic"
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/square"
)

// rookTable and bishopTable are magic hash tables populated at init time
// by a runtime magic-number search (see pkg/attacks/magic).
var rookTable *magic.Table
var bishopTable *magic.Table

func init() {
	rookTable = magic.NewTable(1<<12, rookMoves)
	bishopTable = magic.NewTable(1<<9, bishopMoves)
}

// Rook returns the attack set of a rook on square s given the occupied
// squares on the board.
func Rook(s square.Square, occupied bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, occupied)
}

// Bishop returns the attack set of a bishop on square s given the
// occupied squares on the board.
func Bishop(s square.Square, occupied bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, occupied)
}

// Queen returns the attack set of a queen on square s, the union of a
// rook's and a bishop's attack sets from that square.
func Queen(s square.Square, occupied bitboard.Board) bitboard.Board {
	return Rook(s, occupied) | Bishop(s, occupied)
}

// rookDirs and bishopDirs are the (file, rank) step directions a rook
// and a bishop respectively slide along.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rookMoves and bishopMoves are magic.MoveFuncs used both to calculate
// the relevant blocker mask (masking == true) and the actual attack set
// given a blocker configuration (masking == false) for a rook/bishop.
func rookMoves(s square.Square, occupied bitboard.Board, masking bool) bitboard.Board {
	return rayAttacks(s, occupied, masking, rookDirs)
}

func bishopMoves(s square.Square, occupied bitboard.Board, masking bool) bitboard.Board {
	return rayAttacks(s, occupied, masking, bishopDirs)
}

// rayAttacks slides from s in each of the given directions, stopping
// after the first occupied square is reached (and including it), unless
// masking is true, in which case the ray stops one square short of the
// board edge and never includes a blocker, since such squares cannot
// affect the attack set and are thus irrelevant blockers.
func rayAttacks(s square.Square, occupied bitboard.Board, masking bool, dirs [4][2]int) bitboard.Board {
	var attacks bitboard.Board

	for _, dir := range dirs {
		file, rank := s.File(), s.Rank()

		for {
			file += square.File(dir[0])
			rank += square.Rank(dir[1])

			if file < square.FileA || file > square.FileH || rank < square.Rank1 || rank > square.Rank8 {
				break
			}

			to := square.New(file, rank)

			if masking {
				// stop one square before the edge of the board, since a
				// blocker there would be on the edge and thus irrelevant
				nextFile, nextRank := file+square.File(dir[0]), rank+square.Rank(dir[1])
				if nextFile < square.FileA || nextFile > square.FileH || nextRank < square.Rank1 || nextRank > square.Rank8 {
					break
				}

				attacks.Set(to)
				continue
			}

			attacks.Set(to)

			if occupied.IsSet(to) {
				break
			}
		}
	}

	return attacks
}
