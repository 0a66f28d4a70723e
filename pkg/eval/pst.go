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
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// The raw tables below are PeSTO's positional piece-square values
// (https://www.chessprogramming.org/PeSTO%27s_Evaluation_Function),
// written index 0 at a8 running to index 63 at h1. Material is scored
// separately from piece.Value, so only the positional terms are kept
// here; for every non-king piece type the middlegame and endgame tables
// are averaged into a single table, since only the king's table is
// phase-tapered.

var mgPawn = [square.N]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	98, 134, 61, 95, 68, 126, 34, -11,
	-6, 7, 26, 31, 65, 56, 25, -20,
	-14, 13, 6, 21, 23, 12, 17, -23,
	-27, -2, -5, 12, 17, 6, 10, -25,
	-26, -4, -4, -10, 3, 3, 33, -12,
	-35, -1, -20, -23, -15, 24, 38, -22,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var egPawn = [square.N]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	178, 173, 158, 134, 147, 132, 165, 187,
	94, 100, 85, 67, 56, 53, 82, 84,
	32, 24, 13, 5, -2, 4, 17, 17,
	13, 9, -3, -7, -7, -8, 3, -1,
	4, 7, -6, 1, 0, -5, -1, -8,
	13, 8, 8, 10, 13, 0, 2, -7,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var mgKnight = [square.N]int{
	-167, -89, -34, -49, 61, -97, -15, -107,
	-73, -41, 72, 36, 23, 62, 7, -17,
	-47, 60, 37, 65, 84, 129, 73, 44,
	-9, 17, 19, 53, 37, 69, 18, 22,
	-13, 4, 16, 13, 28, 19, 21, -8,
	-23, -9, 12, 10, 19, 17, 25, -16,
	-29, -53, -12, -3, -1, 18, -14, -19,
	-105, -21, -58, -33, -17, -28, -19, -23,
}

var egKnight = [square.N]int{
	-58, -38, -13, -28, -31, -27, -63, -99,
	-25, -8, -25, -2, -9, -25, -24, -52,
	-24, -20, 10, 9, -1, -9, -19, -41,
	-17, 3, 22, 22, 22, 11, 8, -18,
	-18, -6, 16, 25, 16, 17, 4, -18,
	-23, -3, -1, 15, 10, -3, -20, -22,
	-42, -20, -10, -5, -2, -20, -23, -44,
	-29, -51, -23, -15, -22, -18, -50, -64,
}

var mgBishop = [square.N]int{
	-29, 4, -82, -37, -25, -42, 7, -8,
	-26, 16, -18, -13, 30, 59, 18, -47,
	-16, 37, 43, 40, 35, 50, 37, -2,
	-4, 5, 19, 50, 37, 37, 7, -2,
	-6, 13, 13, 26, 34, 12, 10, 4,
	0, 15, 15, 15, 14, 27, 18, 10,
	4, 15, 16, 0, 7, 21, 33, 1,
	-33, -3, -14, -21, -13, -12, -39, -21,
}

var egBishop = [square.N]int{
	-14, -21, -11, -8, -7, -9, -17, -24,
	-8, -4, 7, -12, -3, -13, -4, -14,
	2, -8, 0, -1, -2, 6, 0, 4,
	-3, 9, 12, 9, 14, 10, 3, 2,
	-6, 3, 13, 19, 7, 10, -3, -9,
	-12, -3, 8, 10, 13, 3, -7, -15,
	-14, -18, -7, -1, 4, -9, -15, -27,
	-23, -9, -23, -5, -9, -16, -5, -17,
}

var mgRook = [square.N]int{
	32, 42, 32, 51, 63, 9, 31, 43,
	27, 32, 58, 62, 80, 67, 26, 44,
	-5, 19, 26, 36, 17, 45, 61, 16,
	-24, -11, 7, 26, 24, 35, -8, -20,
	-36, -26, -12, -1, 9, -7, 6, -23,
	-45, -25, -16, -17, 3, 0, -5, -33,
	-44, -16, -20, -9, -1, 11, -6, -71,
	-19, -13, 1, 17, 16, 7, -37, -26,
}

var egRook = [square.N]int{
	13, 10, 18, 15, 12, 12, 8, 5,
	11, 13, 13, 11, -3, 3, 8, 3,
	7, 7, 7, 5, 4, -3, -5, -3,
	4, 3, 13, 1, 2, 1, -1, 2,
	3, 5, 8, 4, -5, -6, -8, -11,
	-4, 0, -5, -1, -7, -12, -8, -16,
	-6, -6, 0, 2, -9, -9, -11, -3,
	-9, 2, 3, -1, -5, -13, 4, -20,
}

var mgQueen = [square.N]int{
	-28, 0, 29, 12, 59, 44, 43, 45,
	-24, -39, -5, 1, -16, 57, 28, 54,
	-13, -17, 7, 8, 29, 56, 47, 57,
	-27, -27, -16, -16, -1, 17, -2, 1,
	-9, -26, -9, -10, -2, -4, 3, -3,
	-14, 2, -11, -2, -5, 2, 14, 5,
	-35, -8, 11, 2, 8, 15, -3, 1,
	-1, -18, -9, 10, -15, -25, -31, -50,
}

var egQueen = [square.N]int{
	-9, 22, 22, 27, 27, 19, 10, 20,
	-17, 20, 32, 41, 58, 25, 30, 0,
	-20, 6, 9, 49, 47, 35, 19, 9,
	3, 22, 24, 45, 57, 40, 57, 36,
	-18, 28, 19, 47, 31, 34, 39, 23,
	-16, -27, 15, 6, 9, 17, 10, 5,
	-22, -23, -30, -16, -16, -23, -36, -32,
	-33, -28, -22, -43, -5, -32, -20, -41,
}

var mgKing = [square.N]int{
	-65, 23, 16, -15, -56, -34, 2, 13,
	29, -1, -20, -7, -8, -4, -38, -29,
	-9, 24, 2, -16, -20, 6, 22, -22,
	-17, -20, -12, -27, -30, -25, -14, -36,
	-49, -1, -27, -39, -46, -44, -33, -51,
	-14, -14, -22, -46, -44, -30, -15, -27,
	1, 7, -8, -64, -43, -16, 9, 8,
	-15, 36, 12, -54, 8, -28, 24, 14,
}

var egKing = [square.N]int{
	-74, -35, -18, -18, -11, 15, 4, -17,
	-12, 17, 14, 17, 17, 38, 23, 11,
	10, 17, 23, 15, 20, 45, 44, 13,
	-8, 22, 24, 27, 26, 33, 26, 3,
	-18, -4, 21, 24, 27, 23, 9, -11,
	-19, -3, 11, 21, 23, 16, 7, -9,
	-27, -11, 4, 13, 14, 4, -5, -17,
	-53, -34, -21, -11, -28, -14, -24, -43,
}

// pieceTable holds the single, non-tapered positional table used for
// every piece type except the king, derived by averaging the PeSTO
// middlegame and endgame tables.
var pieceTable [piece.TypeN][square.N]int

// kingMidgame and kingEndgame are the king's own phase-blended tables.
var kingMidgame = mgKing
var kingEndgame = egKing

func init() {
	average := func(mg, eg [square.N]int) [square.N]int {
		var t [square.N]int
		for s := range t {
			t[s] = (mg[s] + eg[s]) / 2
		}
		return t
	}

	pieceTable[piece.Pawn] = average(mgPawn, egPawn)
	pieceTable[piece.Knight] = average(mgKnight, egKnight)
	pieceTable[piece.Bishop] = average(mgBishop, egBishop)
	pieceTable[piece.Rook] = average(mgRook, egRook)
	pieceTable[piece.Queen] = average(mgQueen, egQueen)
}

// pst returns the positional value of a non-king piece of type t and
// color c on square s. The raw tables are written a8-first; White reads
// square s^56 of that layout while Black reads it unflipped, since LERF
// numbering (a1=0) is the vertical mirror of the a8-first layout the
// tables are written in.
func pst(t piece.Type, c piece.Color, s square.Square) int {
	if c == piece.White {
		return pieceTable[t][s^56]
	}
	return pieceTable[t][s]
}

func kingPST(c piece.Color, s square.Square, phase int) int {
	var mg, eg int
	if c == piece.White {
		mg, eg = kingMidgame[s^56], kingEndgame[s^56]
	} else {
		mg, eg = kingMidgame[s], kingEndgame[s]
	}
	return (mg*(PhaseScale-phase) + eg*phase) / PhaseScale
}

// PhaseScale is the resolution the per-color phase factor is expressed
// in: 0 is fully middlegame, PhaseScale is fully endgame.
const PhaseScale = 256

// PhaseCap is the non-pawn material threshold at and above which a
// color is considered fully in the middlegame, expressed in the same
// centipawn units as piece.Value: 2 rooks, 1 bishop, and 1 knight.
var PhaseCap = 2*piece.Value[piece.Rook] + piece.Value[piece.Bishop] + piece.Value[piece.Knight]

// phaseOf converts a color's non-pawn material total into a phase
// factor in [0, PhaseScale], where 0 means fully middlegame (at or
// above PhaseCap material) and PhaseScale means fully endgame (no
// non-pawn material at all).
func phaseOf(nonPawnMaterial int) int {
	clamped := nonPawnMaterial
	if clamped > PhaseCap {
		clamped = PhaseCap
	}
	return PhaseScale - clamped*PhaseScale/PhaseCap
}
