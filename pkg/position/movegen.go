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

package position

import (
	"github.com/kavu-chess/corvid/pkg/attacks"
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/castling"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// GenerateMoves fills list with every legal move in the position. If
// capturesOnly is true, only captures (including capturing promotions to
// every piece type) are generated, for use by quiescence search;
// non-capturing promotions are not generated in that mode.
func (p *Position) GenerateMoves(list *move.List, capturesOnly bool) {
	list.Clear()
	p.initState(capturesOnly)

	p.appendKingMoves(list, capturesOnly)

	if p.state.CheckN >= 2 {
		// in double check only the king can move
		return
	}

	p.appendKnightMoves(list)
	p.appendBishopMoves(list)
	p.appendRookMoves(list)
	p.appendQueenMoves(list)
	p.appendPawnMoves(list, capturesOnly)
}

func (p *Position) appendKingMoves(list *move.List, capturesOnly bool) {
	s := &p.state
	king := piece.New(piece.King, s.Us)
	kingSq := p.Kings[s.Us]

	targets := attacks.King[kingSq] & s.KingTarget
	p.serializeMoves(list, king, kingSq, targets)

	if s.CheckN == 0 && !capturesOnly {
		p.appendCastlingMoves(list)
	}
}

func (p *Position) appendKnightMoves(list *move.List) {
	s := &p.state
	knight := piece.New(piece.Knight, s.Us)

	for knights := p.KnightsBB(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		p.serializeMoves(list, knight, from, attacks.Knight[from]&s.Target)
	}
}

func (p *Position) appendBishopMoves(list *move.List) {
	p.appendSliderMoves(list, piece.Bishop, p.BishopsBB(p.state.Us), attacks.Bishop, false)
}

func (p *Position) appendRookMoves(list *move.List) {
	p.appendSliderMoves(list, piece.Rook, p.RooksBB(p.state.Us), attacks.Rook, true)
}

func (p *Position) appendQueenMoves(list *move.List) {
	queens := p.QueensBB(p.state.Us)
	p.appendSliderMoves(list, piece.Queen, queens, attacks.Bishop, false)
	p.appendSliderMoves(list, piece.Queen, queens, attacks.Rook, true)
}

// appendSliderMoves generates moves for bishop-like (straight == false)
// or rook-like (straight == true) pieces, respecting pins: a piece
// pinned on the opposite axis cannot move at all, and a piece pinned on
// its own axis may only move within the pin.
func (p *Position) appendSliderMoves(list *move.List, t piece.Type, pieces bitboard.Board, attacksFn func(square.Square, bitboard.Board) bitboard.Board, straight bool) {
	s := &p.state
	pc := piece.New(t, s.Us)

	ownPin, crossPin := s.PinnedD, s.PinnedHV
	if straight {
		ownPin, crossPin = s.PinnedHV, s.PinnedD
	}

	pieces &^= crossPin

	pinned := pieces & ownPin
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		p.serializeMoves(list, pc, from, attacksFn(from, s.Occupied)&s.Target&ownPin)
	}

	unpinned := pieces &^ ownPin
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		p.serializeMoves(list, pc, from, attacksFn(from, s.Occupied)&s.Target)
	}
}

// pawnForward returns the +8/-8 index delta a pawn of color c advances
// by with each push.
func pawnForward(c piece.Color) square.Square {
	if c == piece.White {
		return 8
	}
	return -8
}

func (p *Position) appendPawnMoves(list *move.List, capturesOnly bool) {
	s := &p.state
	us := s.Us
	pc := piece.New(piece.Pawn, us)

	forward := pawnForward(us)

	var promotionRank, doublePushRank bitboard.Board
	if us == piece.White {
		promotionRank = bitboard.Rank8
		doublePushRank = bitboard.Rank3
	} else {
		promotionRank = bitboard.Rank1
		doublePushRank = bitboard.Rank6
	}

	pawns := p.PawnsBB(us)
	captureTarget := s.Enemies & s.CheckMask

	attackable := pawns &^ s.PinnedHV
	unpinnedAttackers := attackable &^ s.PinnedD
	pinnedAttackers := attackable & s.PinnedD

	capturesLo := attacks.PawnsLeft(unpinnedAttackers, us) & captureTarget
	capturesLo |= attacks.PawnsLeft(pinnedAttackers, us) & captureTarget & s.PinnedD

	capturesHi := attacks.PawnsRight(unpinnedAttackers, us) & captureTarget
	capturesHi |= attacks.PawnsRight(pinnedAttackers, us) & captureTarget & s.PinnedD

	p.appendPawnTargets(list, pc, capturesLo&^promotionRank, forward-1, piece.NoType)
	p.appendPawnTargets(list, pc, capturesHi&^promotionRank, forward+1, piece.NoType)
	p.appendPawnPromotions(list, pc, capturesLo&promotionRank, forward-1)
	p.appendPawnPromotions(list, pc, capturesHi&promotionRank, forward+1)

	if !capturesOnly {
		pushable := pawns &^ s.PinnedD
		unpinnedPushers := pushable &^ s.PinnedHV
		pinnedPushers := pushable & s.PinnedHV

		singlePush := attacks.PawnPush(unpinnedPushers, us)
		singlePush |= attacks.PawnPush(pinnedPushers, us) & s.PinnedHV
		singlePush &^= s.Occupied

		doublePush := attacks.PawnPush(singlePush&doublePushRank, us) &^ s.Occupied & s.Target
		singlePush &= s.Target

		p.appendPawnTargets(list, pc, singlePush&^promotionRank, forward, piece.NoType)
		p.appendPawnTargets(list, pc, doublePush, 2*forward, piece.NoType)
		p.appendPawnPromotions(list, pc, singlePush&promotionRank, forward)
	}

	p.appendEnPassant(list, pc, pawns, s.PinnedD, s.PinnedHV)
}

// appendPawnTargets serializes a bitboard of pawn destination squares
// into moves, deriving each source square as to-delta.
func (p *Position) appendPawnTargets(list *move.List, pc piece.Piece, targets bitboard.Board, delta square.Square, _ piece.Type) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := to - delta
		captured := piece.NoType
		if cap := p.Mailbox[to]; cap != piece.NoPiece {
			captured = cap.Type()
		}
		list.Add(move.NewCapture(from, to, pc, captured))
	}
}

func (p *Position) appendPawnPromotions(list *move.List, pc piece.Piece, targets bitboard.Board, delta square.Square) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := to - delta

		captured := piece.NoType
		if cap := p.Mailbox[to]; cap != piece.NoPiece {
			captured = cap.Type()
		}

		base := move.NewCapture(from, to, pc, captured)
		list.Add(base.WithPromotion(piece.Queen))
		list.Add(base.WithPromotion(piece.Rook))
		list.Add(base.WithPromotion(piece.Bishop))
		list.Add(base.WithPromotion(piece.Knight))
	}
}

func (p *Position) appendEnPassant(list *move.List, pc piece.Piece, pawns, pinnedD, pinnedHV bitboard.Board) {
	s := &p.state
	ep := p.EnPassantTarget
	if ep == square.None {
		return
	}

	us, them := s.Us, s.Them
	forward := pawnForward(us)
	epVictim := ep - forward // the captured pawn's square

	epMask := bitboard.Squares[ep] | bitboard.Squares[epVictim]
	if s.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := p.Kings[us]
	var epRank bitboard.Board
	if us == piece.White {
		epRank = bitboard.Rank5
	} else {
		epRank = bitboard.Rank4
	}

	kingOnEPRank := bitboard.Squares[kingSq]&epRank != bitboard.Empty
	enemyRooksQueens := (p.RooksBB(them) | p.QueensBB(them)) & epRank
	possibleRookPin := kingOnEPRank && enemyRooksQueens != bitboard.Empty

	attackers := attacks.Pawn[them][ep] & pawns &^ pinnedHV

	for fromBB := attackers; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if pinnedD.IsSet(from) && !pinnedD.IsSet(ep) {
			continue
		}

		if possibleRookPin {
			withoutPawns := s.Occupied &^ (bitboard.Squares[from] | bitboard.Squares[epVictim])
			if attacks.Rook(kingSq, withoutPawns)&enemyRooksQueens != bitboard.Empty {
				continue
			}
		}

		list.Add(move.NewEnPassant(from, ep, pc))
	}
}

func (p *Position) appendCastlingMoves(list *move.List) {
	s := &p.state
	occAndSeen := s.Occupied | s.SeenByEnemy

	switch s.Us {
	case piece.White:
		if p.CastlingRights&castling.WhiteK != 0 && occAndSeen&bitboard.F1G1 == bitboard.Empty {
			list.Add(move.NewCastle(square.E1, square.G1, piece.WhiteKing, move.KingSide))
		}
		if p.CastlingRights&castling.WhiteQ != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			list.Add(move.NewCastle(square.E1, square.C1, piece.WhiteKing, move.QueenSide))
		}
	case piece.Black:
		if p.CastlingRights&castling.BlackK != 0 && occAndSeen&bitboard.F8G8 == bitboard.Empty {
			list.Add(move.NewCastle(square.E8, square.G8, piece.BlackKing, move.KingSide))
		}
		if p.CastlingRights&castling.BlackQ != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			list.Add(move.NewCastle(square.E8, square.C8, piece.BlackKing, move.QueenSide))
		}
	}
}

// serializeMoves emits one move per set bit in targets, from square from.
func (p *Position) serializeMoves(list *move.List, pc piece.Piece, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		captured := piece.NoType
		if cap := p.Mailbox[to]; cap != piece.NoPiece {
			captured = cap.Type()
		}
		list.Add(move.NewCapture(from, to, pc, captured))
	}
}
