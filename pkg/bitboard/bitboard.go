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

// Package bitboard implements a 64-bit bitboard and related functions for
// manipulating sets of squares, using the LERF (a1=0, h8=63) numbering
// from pkg/square.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// Board is a 64-bit bitboard, one bit per square.
type Board uint64

// useful bitboard constants
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7
)

// Files indexes a file's bitboard by square.File.
var Files = [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// rank bitboards
const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)
)

// Ranks indexes a rank's bitboard by square.Rank.
var Ranks = [square.RankN]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// castling helper masks, named after the squares they cover
const (
	F1G1   Board = 0x60
	F8G8   Board = F1G1 << (8 * 7)
	C1D1   Board = 0x0c
	C8D8   Board = C1D1 << (8 * 7)
	B1C1D1 Board = 0x0e
	B8C8D8 Board = B1C1D1 << (8 * 7)
)

// Squares indexes the single-bit bitboard of every square.
var Squares [square.N]Board

// Diagonals indexes the full diagonal (rank - file constant) through a
// square by square.Square.Diagonal(); AntiDiagonals by AntiDiagonal().
var Diagonals [15]Board
var AntiDiagonals [15]Board

// Between contains bitboards with the path of squares between two given
// squares set, exclusive of the two squares themselves. It is only valid
// for square pairs which share a file, rank, diagonal, or anti-diagonal;
// for all other pairs the path is Empty.
var Between [square.N][square.N]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << uint(s)
	}

	for s := square.A1; s <= square.H8; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}

	for s1 := square.A1; s1 <= square.H8; s1++ {
		for s2 := square.A1; s2 <= square.H8; s2++ {
			sqs := Squares[s1] | Squares[s2]

			var mask Board
			switch {
			case s1.File() == s2.File():
				mask = Files[s1.File()]
			case s1.Rank() == s2.Rank():
				mask = Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				mask = Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				mask = AntiDiagonals[s1.AntiDiagonal()]
			default:
				// s1 and s2 share no line, so the path between them
				// is undefined and left Empty.
				continue
			}

			Between[s1][s2] = Hyperbola(s1, sqs, mask) & Hyperbola(s2, sqs, mask)
		}
	}
}

// Hyperbola computes the sliding attack set of a piece on square s along
// the given line mask (a file, rank, diagonal, or anti-diagonal), given
// the board's occupancy, using the Hyperbola Quintessence algorithm.
func Hyperbola(s square.Square, occ, mask Board) Board {
	o := occ & mask
	r := Squares[s]
	return ((o - 2*r) ^ reverse(reverse(o)-2*reverse(r))) & mask
}

// reverse reverses the bits of a bitboard, i.e. rotates the board by 180
// degrees (a1 <-> h8, h1 <-> a8).
func reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}

// String renders the bitboard as an 8x8 grid, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for r := square.Rank8; ; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if f != square.FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if r == square.Rank1 {
			break
		}
	}
	return sb.String()
}

// Up shifts the bitboard one rank towards the given color's promotion rank.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the bitboard one rank away from the given color's promotion rank.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the bitboard towards higher ranks (a1 -> a2).
func (b Board) North() Board {
	return b << 8
}

// South shifts the bitboard towards lower ranks (a2 -> a1).
func (b Board) South() Board {
	return b >> 8
}

// East shifts the bitboard towards higher files (a1 -> b1).
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the bitboard towards lower files (b1 -> a1).
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns and clears the least significant set bit.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set bits (population count).
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the square of the least significant set bit.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is set.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
