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

// Package tt implements a direct-mapped transposition table caching
// search results so that repeated transpositions and iterative
// deepening re-searches can reuse earlier work.
package tt

import (
	"unsafe"

	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

// EntrySize is the size in bytes of a single table entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a table sized to fit within the given megabyte
// budget, direct-mapped with index = hash mod capacity.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}
	return &Table{entries: make([]Entry, size)}
}

// Table is a direct-mapped transposition table with an always-replace
// policy.
type Table struct {
	entries []Entry
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Entry{}
	}
}

// Resize replaces the table with a new, empty one sized to fit within
// the given megabyte budget.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}
	tt.entries = make([]Entry, size)
}

func (tt *Table) indexOf(hash zobrist.Key) uint64 {
	return uint64(hash) % uint64(len(tt.entries))
}

// Bound identifies how a stored Value relates to the true score of the
// position at the depth it was searched to.
type Bound uint8

// constants representing the kind of score bound a tt entry stores
const (
	NoBound Bound = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is a single transposition table record.
type Entry struct {
	Hash  zobrist.Key
	Move  move.Move
	Value eval.Eval
	Bound Bound
	Depth int
}

// mateThreshold marks the boundary beyond which a score is considered a
// mate score subject to ply-from-root normalization, per eval.MateThreshold.
const mateThreshold = eval.MateThreshold

// Store records value (searched to depth, found plyFromRoot plies from
// the search root) under hash, replacing whatever was there before.
// Mate scores are normalized from "plies from root" to "plies from this
// node" so that the entry remains meaningful when probed from a
// different distance from the root.
func (tt *Table) Store(hash zobrist.Key, depth, plyFromRoot int, value eval.Eval, bound Bound, best move.Move) {
	*tt.fetch(hash) = Entry{
		Hash:  hash,
		Move:  best,
		Value: normalize(value, plyFromRoot),
		Bound: bound,
		Depth: depth,
	}
}

// Probe looks up hash in the table. It returns a usable score only if
// the stored entry matches hash exactly, was searched to at least
// depth, and its bound cooperates with the given alpha-beta window:
// Exact entries are always usable, LowerBound entries only if they
// already fail high against beta, UpperBound entries only if they
// already fail low against alpha. Mate scores are de-normalized back to
// "plies from root" before being returned.
func (tt *Table) Probe(hash zobrist.Key, depth, plyFromRoot int, alpha, beta eval.Eval) (value eval.Eval, best move.Move, ok bool) {
	entry := tt.fetch(hash)
	if entry.Bound == NoBound || entry.Hash != hash {
		return 0, move.Null, false
	}

	best = entry.Move
	if entry.Depth < depth {
		return 0, best, false
	}

	score := denormalize(entry.Value, plyFromRoot)
	switch entry.Bound {
	case Exact:
		return score, best, true
	case UpperBound:
		if score <= alpha {
			return score, best, true
		}
	case LowerBound:
		if score >= beta {
			return score, best, true
		}
	}

	return 0, best, false
}

func (tt *Table) fetch(hash zobrist.Key) *Entry {
	return &tt.entries[tt.indexOf(hash)]
}

// normalize converts a score from "plies from root" to "plies from
// this node" for storage.
func normalize(value eval.Eval, plyFromRoot int) eval.Eval {
	switch {
	case value > mateThreshold:
		return value + eval.Eval(plyFromRoot)
	case value < -mateThreshold:
		return value - eval.Eval(plyFromRoot)
	default:
		return value
	}
}

// denormalize converts a stored score from "plies from this node" back
// to "plies from root" for use during search.
func denormalize(value eval.Eval, plyFromRoot int) eval.Eval {
	switch {
	case value > mateThreshold:
		return value - eval.Eval(plyFromRoot)
	case value < -mateThreshold:
		return value + eval.Eval(plyFromRoot)
	default:
		return value
	}
}
