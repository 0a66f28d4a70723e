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
	"github.com/kavu-chess/corvid/pkg/attacks"
	"github.com/kavu-chess/corvid/pkg/bitboard"
	"github.com/kavu-chess/corvid/pkg/piece"
)

// genState holds the transient bitboards computed once per move
// generation call. It is kept separate from Position since none of it
// needs to survive past the generation of a single move list.
type genState struct {
	Us, Them piece.Color

	Friends, Enemies, Occupied bitboard.Board

	// Target is the set of squares a non-king piece may move to: every
	// square not occupied by a friend, and (if in check) restricted to
	// CheckMask.
	Target bitboard.Board

	// KingTarget is the set of squares the king may move to: every
	// non-friendly square not attacked by the enemy.
	KingTarget bitboard.Board

	CheckN    int
	CheckMask bitboard.Board

	// PinnedHV and PinnedD hold, respectively, pieces pinned along a
	// file/rank and pieces pinned along a diagonal/anti-diagonal.
	PinnedHV, PinnedD bitboard.Board

	SeenByEnemy bitboard.Board
}

// initState populates p.state ahead of move generation. captureOnly
// restricts Target/KingTarget to capture squares, for quiescence search.
func (p *Position) initState(captureOnly bool) {
	s := &p.state

	s.Us = p.SideToMove
	s.Them = s.Us.Other()

	s.Friends = p.ColorBBs[s.Us]
	s.Enemies = p.ColorBBs[s.Them]
	s.Occupied = s.Friends | s.Enemies

	p.calculateCheckmask()
	p.calculatePinmask()

	s.SeenByEnemy = p.seenSquares(s.Them)

	if captureOnly {
		s.Target = s.Enemies & s.CheckMask
		s.KingTarget = s.Enemies &^ s.SeenByEnemy
	} else {
		s.Target = ^s.Friends & s.CheckMask
		s.KingTarget = ^s.Friends &^ s.SeenByEnemy
	}
}

// calculateCheckmask computes the number of checkers on the side-to-move's
// king and the check-mask: the set of squares a friendly piece can move
// to in order to block every check. It is Universe if the king is not in
// check, and Empty in double check (only king moves are legal then).
func (p *Position) calculateCheckmask() {
	s := &p.state

	s.CheckN = 0
	s.CheckMask = bitboard.Empty

	kingSq := p.Kings[s.Us]

	pawns := p.PawnsBB(s.Them) & attacks.Pawn[s.Us][kingSq]
	knights := p.KnightsBB(s.Them) & attacks.Knight[kingSq]
	bishops := (p.BishopsBB(s.Them) | p.QueensBB(s.Them)) & attacks.Bishop(kingSq, s.Occupied)
	rooks := (p.RooksBB(s.Them) | p.QueensBB(s.Them)) & attacks.Rook(kingSq, s.Occupied)

	switch {
	case pawns != bitboard.Empty:
		s.CheckMask |= pawns
		s.CheckN++
	case knights != bitboard.Empty:
		s.CheckMask |= knights
		s.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		s.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		s.CheckN++
	}

	if s.CheckN < 2 && rooks != bitboard.Empty {
		if s.CheckN == 0 && rooks.Count() > 1 {
			// double check from two rooks/queens, checkmask stays empty
			s.CheckN += 2
		} else {
			rookSq := rooks.FirstOne()
			s.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			s.CheckN++
		}
	}

	if s.CheckN == 0 {
		s.CheckMask = bitboard.Universe
	}
}

// calculatePinmask computes the pin-masks: PinnedHV contains pieces
// pinned along a file or rank, PinnedD contains pieces pinned along a
// diagonal. A pinned piece may only move within its own pin-mask.
func (p *Position) calculatePinmask() {
	s := &p.state
	kingSq := p.Kings[s.Us]

	s.PinnedHV = bitboard.Empty
	s.PinnedD = bitboard.Empty

	for rooks := (p.RooksBB(s.Them) | p.QueensBB(s.Them)) & attacks.Rook(kingSq, s.Enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		possiblePin := bitboard.Between[kingSq][rook] | bitboard.Squares[rook]

		if (possiblePin & s.Friends).Count() == 1 {
			s.PinnedHV |= possiblePin
		}
	}

	for bishops := (p.BishopsBB(s.Them) | p.QueensBB(s.Them)) & attacks.Bishop(kingSq, s.Enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		possiblePin := bitboard.Between[kingSq][bishop] | bitboard.Squares[bishop]

		if (possiblePin & s.Friends).Count() == 1 {
			s.PinnedD |= possiblePin
		}
	}
}

// seenSquares returns every square attacked by pieces of color by. The
// enemy king of by is excluded as a sliding-ray blocker, since it must
// move off the ray rather than staying to block it.
func (p *Position) seenSquares(by piece.Color) bitboard.Board {
	pawns := p.PawnsBB(by)
	knights := p.KnightsBB(by)
	bishops := p.BishopsBB(by)
	rooks := p.RooksBB(by)
	queens := p.QueensBB(by)
	kingSq := p.Kings[by]

	blockers := p.Occupied() &^ p.KingBB(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[kingSq]

	return seen
}
