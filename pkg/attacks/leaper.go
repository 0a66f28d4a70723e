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

// Package attacks provides precalculated and magic-indexed attack
// bitboards for every piece type.
package attacks

import (
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// lookup tables for the precalculated attack boards of non-sliding pieces
var (
	King      [square.N]bitboard.Board
	Knight    [square.N]bitboard.Board
	PawnPush1 [piece.ColorN][square.N]bitboard.Board
	Pawn      [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = leap(s, kingOffsets)
		Knight[s] = leap(s, knightOffsets)

		PawnPush1[piece.White][s] = leap(s, [][2]int{{0, 1}})
		PawnPush1[piece.Black][s] = leap(s, [][2]int{{0, -1}})

		Pawn[piece.White][s] = leap(s, [][2]int{{1, 1}, {-1, 1}})
		Pawn[piece.Black][s] = leap(s, [][2]int{{1, -1}, {-1, -1}})
	}
}

var kingOffsets = [][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var knightOffsets = [][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// leap generates an attack bitboard by offsetting s by every (file, rank)
// pair in offsets, discarding any result that falls off the board.
func leap(s square.Square, offsets [][2]int) bitboard.Board {
	var b bitboard.Board

	file, rank := s.File(), s.Rank()
	for _, off := range offsets {
		f := file + square.File(off[0])
		r := rank + square.Rank(off[1])

		if f < square.FileA || f > square.FileH || r < square.Rank1 || r > square.Rank8 {
			continue
		}

		b.Set(square.New(f, r))
	}

	return b
}

// Of returns the attack set of the given piece on the given square given
// the board's occupied squares. occupied is unused for non-sliding
// pieces.
func Of(p piece.Piece, s square.Square, occupied bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occupied)
	case piece.Rook:
		return Rook(s, occupied)
	case piece.Queen:
		return Queen(s, occupied)
	case piece.King:
		return King[s]
	default:
		return bitboard.Empty
	}
}

// PawnPush returns the squares every pawn in the given bitboard can push
// to (single push only; double pushes are handled by move generation).
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft gives the result of every pawn in pawns capturing to its left
// from White's perspective (towards the a-file).
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight gives the result of every pawn in pawns capturing to its
// right from White's perspective (towards the h-file).
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}
