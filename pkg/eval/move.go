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
	"math"

	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
)

// MoveFunc scores a move for move ordering purposes; higher scores are
// tried earlier.
type MoveFunc func(move.Move) MoveScore

// MoveScore represents the move-ordering evaluation of a single move.
type MoveScore uint16

// constants used to bias move-ordering scores
const (
	PVMove       MoveScore = math.MaxUint16
	MvvLvaOffset MoveScore = 100
	CastleMove   MoveScore = 1
	DefaultMove  MoveScore = 0
)

// MvvLva is the most-valuable-victim/least-valuable-attacker table: a
// less valuable piece capturing a more valuable one is very likely a
// good move.
// score = MvvLvaOffset + MvvLva[victim][attacker]
var MvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	// Attackers:   -   P   N   B   R   Q   K
	piece.Pawn:   {16, 15, 14, 13, 12, 11, 10},
	piece.Knight: {26, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {36, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {46, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {56, 55, 54, 53, 52, 51, 50},
}

// OfMove returns a MoveFunc suitable for ordering a move list, scoring
// pv above all else, then captures and promotions by MVV-LVA, then
// castling, then every other move equally.
func OfMove(pv move.Move) MoveFunc {
	return func(m move.Move) MoveScore {
		switch {
		case m == pv:
			return PVMove

		case m.IsCapture():
			victim := m.CaptureType()
			attacker := m.Piece().Type()
			return MvvLvaOffset + MvvLva[victim][attacker]

		case m.IsPromotion():
			return MvvLvaOffset + MvvLva[piece.NoType][piece.Pawn]

		case m.IsCastle():
			return CastleMove

		default:
			return DefaultMove
		}
	}
}
