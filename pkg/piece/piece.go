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

// Package piece implements representations of chess pieces and colors,
// and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white and
// lower case for black.
package piece

// New creates a new Piece with the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		return NoPiece
	}
}

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// constants representing colored chess pieces
const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<colorOffset | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<colorOffset | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<colorOffset | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<colorOffset | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<colorOffset | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<colorOffset | Piece(King)

	BlackPawn   Piece = Piece(Black)<<colorOffset | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<colorOffset | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<colorOffset | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<colorOffset | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<colorOffset | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<colorOffset | Piece(King)
)

// N is the number of piece-color combinations, including the two unused
// slots that fall out of separating the color bit from the type bits.
const N = 16

const (
	colorOffset = 3
	typeMask    = (1 << colorOffset) - 1
)

// String converts a Piece into its algebraic-notation letter.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the piece type of the given Piece.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is reports whether the given Piece has the given Type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

// Type represents the kind of chess piece, independent of color.
type Type uint8

// constants representing chess piece types
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// TypeN is the number of piece types, including NoType.
const TypeN = 7

func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}

// Value is the classical centipawn value of each piece type, used by
// the material component of evaluation and by MVV-LVA move ordering.
var Value = [TypeN]int{
	NoType: 0,
	Pawn:   100,
	Knight: 300,
	Bishop: 315,
	Rook:   500,
	Queen:  900,
	King:   0,
}
