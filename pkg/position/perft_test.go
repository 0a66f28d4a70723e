package position_test

import (
	"testing"

	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/position"
)

// Reference perft node counts from the standard perft suite (Kiwipete
// etc.), capped at shallow depths since a depth 5-7 run would take
// minutes.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"startpos d1", position.StartFEN, 1, 20},
		{"startpos d2", position.StartFEN, 2, 400},
		{"startpos d3", position.StartFEN, 3, 8902},
		{"startpos d4", position.StartFEN, 4, 197281},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"position 3 d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"position 3 d4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"position 5 d1", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44},
		{"position 5 d3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			pos, err := position.NewFromFEN(test.fen)
			if err != nil {
				t.Fatalf("bad fen %q: %v", test.fen, err)
			}

			if got := pos.Perft(test.depth); got != test.nodes {
				t.Errorf("perft(%d) = %d, want %d", test.depth, got, test.nodes)
			}
		})
	}
}

// TestMakeUnmakeRoundTrip checks that playing and unplaying every move
// at the root of a position restores its FEN exactly.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			pos, err := position.NewFromFEN(fen)
			if err != nil {
				t.Fatalf("bad fen %q: %v", fen, err)
			}

			before := pos.FEN()
			beforeHash := pos.Hash

			var list move.List
			pos.GenerateMoves(&list, false)

			for i := 0; i < list.Len(); i++ {
				m := list.At(i)
				pos.MakeMove(m)
				pos.UnmakeMove()

				if after := pos.FEN(); after != before {
					t.Fatalf("move %s: fen mismatch after unmake\nbefore: %s\nafter:  %s", m, before, after)
				}
				if pos.Hash != beforeHash {
					t.Fatalf("move %s: hash mismatch after unmake", m)
				}
			}
		})
	}
}
