package eval_test

import (
	"testing"

	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/position"
)

// TestEvaluateSymmetry checks that mirroring a position color-wise
// (reflecting ranks and swapping White/Black) negates its White-relative
// score, so the side-to-move scores Evaluate returns for the two
// positions are equal.
func TestEvaluateSymmetry(t *testing.T) {
	tests := []struct {
		fen    string
		mirror string
	}{
		{
			position.StartFEN,
			position.StartFEN,
		},
		{
			"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
			"rnbq1rk1/pppp1ppp/5n2/2b1p3/2B1P3/2N5/PPPP1PPP/R1BQK1NR w KQ - 5 4",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.fen, func(t *testing.T) {
			pos, err := position.NewFromFEN(test.fen)
			if err != nil {
				t.Fatalf("bad fen %q: %v", test.fen, err)
			}

			mirror, err := position.NewFromFEN(test.mirror)
			if err != nil {
				t.Fatalf("bad fen %q: %v", test.mirror, err)
			}

			a, b := eval.Evaluate(pos), eval.Evaluate(mirror)
			if a != b {
				t.Errorf("Evaluate(%q) = %d, Evaluate(%q) = %d, want equal", test.fen, a, test.mirror, b)
			}
		})
	}
}

// TestEvaluateStartposIsZero checks that the standard starting position,
// being materially and positionally symmetric, evaluates to exactly 0.
func TestEvaluateStartposIsZero(t *testing.T) {
	pos := position.New()
	if score := eval.Evaluate(pos); score != eval.Draw {
		t.Errorf("Evaluate(startpos) = %d, want %d", score, eval.Draw)
	}
}
