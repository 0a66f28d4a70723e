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

package position

import (
	"github.com/kavu-chess/corvid/internal/util"
	"github.com/kavu-chess/corvid/pkg/attacks"
	"github.com/kavu-chess/corvid/pkg/castling"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

// MakeMove plays m, which must be legal, updating every field of p and
// pushing an Undo record for the matching UnmakeMove call.
func (p *Position) MakeMove(m move.Move) {
	undo := &p.History[p.Plys]
	undo.Move = m
	undo.CastlingRights = p.CastlingRights
	undo.CapturedPiece = piece.NoType
	undo.EnPassantTarget = p.EnPassantTarget
	undo.DrawClock = p.DrawClock
	undo.Hash = p.Hash

	p.DrawClock++

	if m == move.Null {
		p.makeNull()
		return
	}

	from, to := m.Source(), m.Target()
	pc := m.Piece()

	if pc.Type() == piece.Pawn {
		p.DrawClock = 0
	}

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	switch {
	case pc.Type() == piece.Pawn && util.Abs(int(to)-int(from)) == 16:
		target := from + pawnForward(p.SideToMove)
		them := p.SideToMove.Other()
		if p.PawnsBB(them)&attacks.Pawn[p.SideToMove][target] != 0 {
			p.EnPassantTarget = target
			p.Hash ^= zobrist.EnPassant[target.File()]
		}

	case m.IsCastle():
		info := castling.Rooks[to]
		p.ClearSquare(info.From)
		p.FillSquare(info.To, info.RookType)

	case m.IsEnPassant():
		victim := to - pawnForward(p.SideToMove)
		undo.CapturedPiece = p.Mailbox[victim].Type()
		p.DrawClock = 0
		p.ClearSquare(victim)

	case m.IsCapture():
		undo.CapturedPiece = p.Mailbox[to].Type()
		p.DrawClock = 0
		p.ClearSquare(to)
	}

	p.ClearSquare(from)

	result := pc
	if m.IsPromotion() {
		result = piece.New(m.PromotionType(), p.SideToMove)
	}
	p.FillSquare(to, result)

	p.Hash ^= zobrist.Castling[p.CastlingRights]
	p.CastlingRights &^= castling.RightUpdates[from]
	p.CastlingRights &^= castling.RightUpdates[to]
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.Plys++
	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.White {
		p.FullMoves++
	}
	p.Hash ^= zobrist.SideToMove
}

func (p *Position) makeNull() {
	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	p.Plys++
	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.White {
		p.FullMoves++
	}
	p.Hash ^= zobrist.SideToMove
}

// UnmakeMove undoes the last move played via MakeMove.
func (p *Position) UnmakeMove() {
	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.Black {
		p.FullMoves--
	}
	p.Plys--

	undo := &p.History[p.Plys]
	p.EnPassantTarget = undo.EnPassantTarget
	p.DrawClock = undo.DrawClock
	p.CastlingRights = undo.CastlingRights

	m := undo.Move
	if m == move.Null {
		p.Hash = undo.Hash
		return
	}

	from, to := m.Source(), m.Target()
	pc := m.Piece()

	p.ClearSquare(to)
	p.FillSquare(from, pc)

	switch {
	case m.IsCastle():
		info := castling.Rooks[to]
		p.ClearSquare(info.To)
		p.FillSquare(info.From, info.RookType)

	case m.IsEnPassant():
		victim := to - pawnForward(p.SideToMove)
		p.FillSquare(victim, piece.New(undo.CapturedPiece, p.SideToMove.Other()))

	case m.IsCapture():
		p.FillSquare(to, piece.New(undo.CapturedPiece, p.SideToMove.Other()))
	}

	p.Hash = undo.Hash
}
