package position_test

import (
	"testing"

	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/position"
	"github.com/kavu-chess/corvid/pkg/square"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

// recomputeHash independently XORs together every applicable Zobrist
// key from a Position's exported state, mirroring the full-recompute
// definition of the hash rather than the incremental update path
// exercised by MakeMove/UnmakeMove.
func recomputeHash(p *position.Position) zobrist.Key {
	var hash zobrist.Key

	for s := square.A1; s <= square.H8; s++ {
		if pc := p.Mailbox[s]; pc != piece.NoPiece {
			hash ^= zobrist.PieceSquare[pc][s]
		}
	}

	hash ^= zobrist.Castling[p.CastlingRights]

	if p.EnPassantTarget != square.None {
		hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	if p.SideToMove == piece.Black {
		hash ^= zobrist.SideToMove
	}

	return hash
}

// TestZobristStability checks that the incrementally-maintained Hash
// field always matches a full recomputation from scratch, both for the
// initial position and after a sequence of made and unmade moves.
func TestZobristStability(t *testing.T) {
	pos := position.New()

	if got, want := pos.Hash, recomputeHash(pos); got != want {
		t.Fatalf("startpos hash = %#x, want %#x", got, want)
	}

	var list move.List
	pos.GenerateMoves(&list, false)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.MakeMove(m)

		if got, want := pos.Hash, recomputeHash(pos); got != want {
			t.Errorf("move %s: hash = %#x, want %#x", m, got, want)
		}

		var replies move.List
		pos.GenerateMoves(&replies, false)
		for j := 0; j < replies.Len(); j++ {
			reply := replies.At(j)
			pos.MakeMove(reply)

			if got, want := pos.Hash, recomputeHash(pos); got != want {
				t.Errorf("move %s %s: hash = %#x, want %#x", m, reply, got, want)
			}

			pos.UnmakeMove()
		}

		pos.UnmakeMove()

		if got, want := pos.Hash, recomputeHash(pos); got != want {
			t.Errorf("move %s: hash after unmake = %#x, want %#x", m, got, want)
		}
	}
}
