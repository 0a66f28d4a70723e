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

// Package zobrist provides the pseudo-random numbers used to compute the
// Zobrist hash of a position, along with the Key type.
package zobrist

import (
	"github.com/kavu-chess/corvid/internal/util"
	"github.com/kavu-chess/corvid/pkg/castling"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// Key is a 64-bit Zobrist hash value.
type Key uint64

// PieceSquare holds one random number per (piece, square) combination.
// EnPassant holds one per en-passant file, Castling one per possible
// castling.Rights value, and SideToMove is XORed in when it is black to
// move. Every position's hash is the XOR of the keys of its features.
var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [square.FileN]Key
	Castling    [castling.N]Key
	SideToMove  Key
)

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.NoCasl; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
