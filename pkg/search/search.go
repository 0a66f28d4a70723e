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

// Package search implements iterative-deepening negamax search with
// quiescence and a transposition table, used to find the best move in a
// position.
package search

import (
	"errors"
	"sync/atomic"

	"github.com/kavu-chess/corvid/internal/util"
	"github.com/kavu-chess/corvid/pkg/eval"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/position"
	"github.com/kavu-chess/corvid/pkg/search/time"
	"github.com/kavu-chess/corvid/pkg/tt"
)

// MaxDepth is the maximum depth the iterative deepening loop will search
// to, also bounding recursion depth so that ply-indexed arrays never
// overrun.
const MaxDepth = 256

// NewContext creates a new Context searching the given position, with
// its own 16MB transposition table.
func NewContext(pos *position.Position) Context {
	ctx := Context{
		Position: pos,
		tt:       tt.NewTable(16),
	}
	ctx.stopped.Store(true)
	return ctx
}

// Context stores the state of a single search: the position being
// searched, the transposition table, search limits, and running stats.
// A new Context should be created per game; the Position may be swapped
// out between searches of the same game.
//
// stopped, depth, and nodes are read concurrently: the search goroutine
// writes them while another goroutine (the UCI "stop" command, or a
// progress-reporting caller like cmd/watch) reads them. stopped uses
// sequentially-consistent store/load, the same tolerance as depth and
// nodes, so a caller may see a slightly stale depth/node count but
// never a torn one.
type Context struct {
	Position *position.Position
	tt       *tt.Table
	depth    atomic.Int64
	stopped  atomic.Bool

	ttHits int
	nodes  atomic.Int64

	limits Limits
}

// Limits bounds how long a search is allowed to run.
type Limits struct {
	Nodes int
	Depth int

	Infinite bool
	Time     time.Manager
}

// Search initializes the context for a new search and runs iterative
// deepening, returning the best line found and its evaluation.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	if search.Position.IsInCheck(search.Position.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is currently running on search.
func (search *Context) InProgress() bool {
	return !search.stopped.Load()
}

// Stop ends any search in progress on search; the main search loop
// notices and returns on its next node check. Safe to call from any
// goroutine while a search is running.
func (search *Context) Stop() {
	search.stopped.Store(true)
}

// Resize changes the size of search's transposition table.
func (search *Context) Resize(mbs int) {
	search.tt.Resize(mbs)
}

// Stats reports the current depth and node count of a running or
// just-finished search. Safe to call from any goroutine while a search
// is running, for progress reporting by callers like cmd/watch.
func (search *Context) Stats() (depth, nodes int) {
	return int(search.depth.Load()), int(search.nodes.Load())
}

func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	search.limits = limits

	search.nodes.Store(0)
	search.ttHits = 0

	search.stopped.Store(false)
	search.limits.Time.GetDeadline()
}

// shouldStop reports whether some search limit has been breached and
// the search should return immediately.
func (search *Context) shouldStop() bool {
	nodes := search.nodes.Load()

	switch {
	case search.stopped.Load():
		return true

	case nodes&2047 != 0, search.limits.Infinite:
		// only check clocks and node counts periodically
		return false

	case nodes > int64(search.limits.Nodes), search.limits.Time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}

// score returns the static evaluation of search's current position.
func (search *Context) score() eval.Eval {
	return eval.Evaluate(search.Position)
}

// draw returns a small randomized draw score so repeated draws during
// search don't all collapse to one value the search can't distinguish.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(int(search.nodes.Load()))
}
