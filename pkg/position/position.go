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

// Package position implements a complete chess board representation,
// including legal move generation, make/unmake, FEN parsing, repetition
// tracking, and perft.
package position

import (
	"fmt"
	"strings"

	"github.com/kavu-chess/corvid/pkg/attacks"
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/castling"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

// HistoryN is the maximum game length tracked for unmake/repetition.
const HistoryN = 1024

// Position represents the complete state of a chessboard, including
// piece placement, side to move, castling rights, en passant target, and
// the information needed to make and unmake moves.
type Position struct {
	Mailbox  [square.N]piece.Piece
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	CastlingRights  castling.Rights
	EnPassantTarget square.Square

	Hash zobrist.Key

	Plys      int
	FullMoves int
	DrawClock int

	History [HistoryN]Undo

	state genState
}

// Undo is the unmake record ("MoveInfo") pushed onto History every move.
type Undo struct {
	Move            move.Move
	CapturedPiece   piece.Type
	CastlingRights  castling.Rights
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// New creates a new Position from the standard starting FEN.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		// the starting position is a constant and always parses cleanly
		panic(err)
	}
	return p
}

// String renders a human-readable board diagram along with the FEN.
func (p *Position) String() string {
	var sb strings.Builder

	for r := square.Rank8; ; r-- {
		fmt.Fprintf(&sb, "%d ", int(r)+1)
		for f := square.FileA; f <= square.FileH; f++ {
			sb.WriteByte(' ')
			sb.WriteString(p.Mailbox[square.New(f, r)].String())
		}
		sb.WriteByte('\n')
		if r == square.Rank1 {
			break
		}
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprintf(&sb, "FEN: %s\n", p.FEN())

	return sb.String()
}

// Occupied returns a bitboard of every occupied square.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBBs[piece.White] | p.ColorBBs[piece.Black]
}

// PawnsBB, KnightsBB, BishopsBB, RooksBB, QueensBB, and KingBB return the
// bitboard of pieces of the given type and color.
func (p *Position) PawnsBB(c piece.Color) bitboard.Board   { return p.PieceBBs[piece.Pawn] & p.ColorBBs[c] }
func (p *Position) KnightsBB(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Knight] & p.ColorBBs[c] }
func (p *Position) BishopsBB(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Bishop] & p.ColorBBs[c] }
func (p *Position) RooksBB(c piece.Color) bitboard.Board   { return p.PieceBBs[piece.Rook] & p.ColorBBs[c] }
func (p *Position) QueensBB(c piece.Color) bitboard.Board  { return p.PieceBBs[piece.Queen] & p.ColorBBs[c] }
func (p *Position) KingBB(c piece.Color) bitboard.Board    { return p.PieceBBs[piece.King] & p.ColorBBs[c] }

// FillSquare places piece pc on square s, updating every derived field.
func (p *Position) FillSquare(s square.Square, pc piece.Piece) {
	c, t := pc.Color(), pc.Type()

	p.ColorBBs[c].Set(s)
	p.PieceBBs[t].Set(s)
	p.Mailbox[s] = pc
	p.Hash ^= zobrist.PieceSquare[pc][s]

	if t == piece.King {
		p.Kings[c] = s
	}
}

// ClearSquare removes whatever piece occupies square s.
func (p *Position) ClearSquare(s square.Square) {
	pc := p.Mailbox[s]
	if pc == piece.NoPiece {
		return
	}

	p.ColorBBs[pc.Color()].Unset(s)
	p.PieceBBs[pc.Type()].Unset(s)
	p.Mailbox[s] = piece.NoPiece
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// IsInCheck reports whether the given color's king is in check.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.IsAttacked(p.Kings[c], c.Other())
}

// IsAttacked reports whether square s is attacked by any piece of color by.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	occ := p.Occupied()

	if attacks.Pawn[by.Other()][s]&p.PawnsBB(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&p.KnightsBB(by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&p.KingBB(by) != bitboard.Empty {
		return true
	}

	queens := p.QueensBB(by)

	if attacks.Bishop(s, occ)&(p.BishopsBB(by)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(p.RooksBB(by)|queens) != bitboard.Empty
}
