package tt_test

import (
	"testing"

	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/tt"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

func TestStoreProbeExact(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0xdeadbeef)
	table.Store(hash, 4, 2, eval.Eval(120), tt.Exact, move.Null)

	value, _, ok := table.Probe(hash, 4, 2, -eval.Inf, eval.Inf)
	if !ok {
		t.Fatal("probe missed an exact entry that should have hit")
	}
	if value != 120 {
		t.Errorf("probe value = %d, want 120", value)
	}
}

func TestProbeMissesShallowerDepth(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0x1234)
	table.Store(hash, 2, 0, eval.Eval(50), tt.Exact, move.Null)

	if _, _, ok := table.Probe(hash, 4, 0, -eval.Inf, eval.Inf); ok {
		t.Error("probe hit an entry searched shallower than requested")
	}
}

func TestProbeBoundCooperation(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0x5678)
	table.Store(hash, 4, 0, eval.Eval(100), tt.UpperBound, move.Null)

	// UpperBound only usable if stored value already fails low against alpha.
	if _, _, ok := table.Probe(hash, 4, 0, eval.Eval(50), eval.Inf); ok {
		t.Error("UpperBound entry used outside alpha cutoff")
	}
	if _, _, ok := table.Probe(hash, 4, 0, eval.Eval(200), eval.Inf); !ok {
		t.Error("UpperBound entry should have been usable below alpha")
	}

	table.Store(hash, 4, 0, eval.Eval(100), tt.LowerBound, move.Null)

	if _, _, ok := table.Probe(hash, 4, 0, -eval.Inf, eval.Eval(200)); ok {
		t.Error("LowerBound entry used outside beta cutoff")
	}
	if _, _, ok := table.Probe(hash, 4, 0, -eval.Inf, eval.Eval(50)); !ok {
		t.Error("LowerBound entry should have been usable above beta")
	}
}

// TestMateScoreNormalization checks that a mate score stored at one
// distance from the root and probed at another is translated correctly,
// rather than reporting the same raw ply-count at every node.
func TestMateScoreNormalization(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0x9999)
	mateIn3FromRoot := eval.MateIn(3)

	table.Store(hash, 10, 5, mateIn3FromRoot, tt.Exact, move.Null)

	value, _, ok := table.Probe(hash, 10, 5, -eval.Inf, eval.Inf)
	if !ok {
		t.Fatal("probe missed a stored mate score")
	}
	if value != mateIn3FromRoot {
		t.Errorf("probe value = %d, want %d", value, mateIn3FromRoot)
	}

	// probing from a different distance from the root keeps the mate
	// distance from this node, so the "plies from root" value returned
	// shifts by the difference between the two root distances.
	value, _, ok = table.Probe(hash, 10, 2, -eval.Inf, eval.Inf)
	if !ok {
		t.Fatal("probe missed a stored mate score at a different root distance")
	}
	if value != mateIn3FromRoot+eval.Eval(5)-eval.Eval(2) {
		t.Errorf("probe value = %d, want normalized mate score for new root distance", value)
	}
}

func TestAlwaysReplace(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0xaaaa)
	table.Store(hash, 10, 0, eval.Eval(500), tt.Exact, move.Null)
	table.Store(hash, 1, 0, eval.Eval(1), tt.Exact, move.Null)

	value, _, ok := table.Probe(hash, 1, 0, -eval.Inf, eval.Inf)
	if !ok || value != 1 {
		t.Errorf("shallower store should have replaced the deeper one, got value=%d ok=%v", value, ok)
	}
}
