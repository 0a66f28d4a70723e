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

// Package castling provides various types and definitions useful when
// dealing with castling moves and rights in a board representation.
package castling

import (
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// Rights represents the current castling rights of a position.
// [Black Queen-side][Black King-side][White Queen-side][White King-side]
type Rights byte

// NewRights creates a castling.Rights from its FEN identifier, e.g.
// "KQkq" or "-".
//
//	White King-side:  K
//	White Queen-side: Q
//	Black King-side:  k
//	Black Queen-side: q
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return NoCasl
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteK
	}
	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQ
	}
	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackK
	}
	if r != "" && r[0] == 'q' {
		rights |= BlackQ
	}

	return rights
}

// constants representing the various castling rights
const (
	WhiteK Rights = 1 << 0
	WhiteQ Rights = 1 << 1
	BlackK Rights = 1 << 2
	BlackQ Rights = 1 << 3

	NoCasl Rights = 0

	WhiteA Rights = WhiteK | WhiteQ
	BlackA Rights = BlackK | BlackQ

	Kingside  Rights = WhiteK | BlackK
	Queenside Rights = WhiteQ | BlackQ

	All Rights = WhiteA | BlackA
)

// N is the number of possible unique castling rights combinations.
const N = 1 << 4

// RightUpdates maps every square to the castling rights that must be
// cleared if a piece moves from or to it: rook squares clear that rook's
// side, king squares clear both of that color's rights. Squares with
// neither a king nor a rook's home leave rights unaffected.
var RightUpdates = [square.N]Rights{
	WhiteQ, NoCasl, NoCasl, NoCasl, WhiteA, NoCasl, NoCasl, WhiteK,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl, NoCasl,
	BlackQ, NoCasl, NoCasl, NoCasl, BlackA, NoCasl, NoCasl, BlackK,
}

// String converts the given Rights to its FEN representation.
func (c Rights) String() string {
	var str string

	if c&WhiteK != 0 {
		str += "K"
	}
	if c&WhiteQ != 0 {
		str += "Q"
	}
	if c&BlackK != 0 {
		str += "k"
	}
	if c&BlackQ != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RookInfo describes the rook hop associated with castling to a given
// king target square.
type RookInfo struct {
	From, To square.Square
	RookType piece.Piece
}

// Rooks is indexed by the king's destination square during castling and
// gives the corresponding rook's source and destination squares. Squares
// which are not a castling destination hold the zero value.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, RookType: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, RookType: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, RookType: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, RookType: piece.BlackRook},
}
