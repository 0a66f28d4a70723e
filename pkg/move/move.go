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

// Package move declares types and constants pertaining to chess moves.
package move

import (
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// Move represents a single chess move along with all the metadata needed
// to make and unmake it without consulting the board: the source and
// target squares, the moving piece, the captured piece type (if any),
// the promotion piece type (if any), whether it is a castle, and whether
// it is an en passant capture.
//
// Format: MSB -> LSB
// [24 enPassant bool][23:22 castle Castle] \
// [21:19 promotionType piece.Type][18:16 captureType piece.Type] \
// [15:12 movingPiece piece.Piece] \
// [11:6 target square.Square][5:0 source square.Square]
type Move uint32

// MaxN is the maximum number of plys tracked in a single game/search line.
const MaxN = 1024

// Null is the "do nothing" move, used as a sentinel for "no move found".
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	pieceWidth  = 4
	typeWidth   = 3
	castleWidth = 2
	epWidth     = 1

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	pieceOffset  = targetOffset + targetWidth
	captOffset   = pieceOffset + pieceWidth
	promoOffset  = captOffset + typeWidth
	castleOffset = promoOffset + typeWidth
	epOffset     = castleOffset + castleWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	pieceMask  = (1 << pieceWidth) - 1
	typeMask   = (1 << typeWidth) - 1
	castleMask = (1 << castleWidth) - 1
	epMask     = (1 << epWidth) - 1
)

// Castle identifies which side, if any, a move castles towards.
type Castle uint8

// constants representing the possible castling directions of a move
const (
	NoCastle Castle = iota
	KingSide
	QueenSide
)

// New creates a new quiet, non-special Move.
func New(source, target square.Square, p piece.Piece) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(p) << pieceOffset
	m |= Move(p.Type()) << promoOffset
	return m
}

// NewCapture creates a new capturing Move.
func NewCapture(source, target square.Square, p piece.Piece, captured piece.Type) Move {
	m := New(source, target, p)
	m |= Move(captured) << captOffset
	return m
}

// NewCastle creates a new castling Move.
func NewCastle(source, target square.Square, p piece.Piece, side Castle) Move {
	m := New(source, target, p)
	m |= Move(side) << castleOffset
	return m
}

// NewEnPassant creates a new en passant capturing Move.
func NewEnPassant(source, target square.Square, p piece.Piece) Move {
	m := NewCapture(source, target, p, piece.Pawn)
	m |= Move(1) << epOffset
	return m
}

// WithPromotion returns m with its promotion piece type set to t.
func (m Move) WithPromotion(t piece.Type) Move {
	m &^= Move(typeMask) << promoOffset
	m |= Move(t) << promoOffset
	return m
}

// String converts a move to its long algebraic notation, e.g. "e2e4",
// "e1g1" (castling is written as the king's move), "d7d8q" (promotion),
// or "0000" (null move).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()

	if m.IsPromotion() {
		s += m.PromotionType().String()
	}

	return s
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// FromBB returns the single-bit bitboard of the move's source square.
func (m Move) FromBB() bitboard.Board {
	return bitboard.Squares[m.Source()]
}

// ToBB returns the single-bit bitboard of the move's target square.
func (m Move) ToBB() bitboard.Board {
	return bitboard.Squares[m.Target()]
}

// Piece returns the piece being moved.
func (m Move) Piece() piece.Piece {
	return piece.Piece((m >> pieceOffset) & pieceMask)
}

// CaptureType returns the type of the captured piece, or piece.NoType if
// the move is not a capture.
func (m Move) CaptureType() piece.Type {
	return piece.Type((m >> captOffset) & typeMask)
}

// PromotionType returns the promoted-to piece type, or the moving
// piece's own type if the move is not a promotion.
func (m Move) PromotionType() piece.Type {
	return piece.Type((m >> promoOffset) & typeMask)
}

// CastleSide returns which side, if any, the move castles towards.
func (m Move) CastleSide() Castle {
	return Castle((m >> castleOffset) & castleMask)
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleSide() != NoCastle
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return (m>>epOffset)&epMask != 0
}

// IsCapture reports whether the move captures a piece, including en
// passant captures.
func (m Move) IsCapture() bool {
	return m.CaptureType() != piece.NoType
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotionType() != m.Piece().Type()
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsReversible reports whether the move can be "undone" in the sense
// relevant to the fifty-move/repetition rules: captures and pawn moves
// are irreversible and reset repetition tracking.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.Piece().Type() != piece.Pawn
}
